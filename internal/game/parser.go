package game

// File parser.go turns raw player input into a canonical verb, a resolved
// target, and the single best-matching catalog entry.

import (
	"strings"
)

// minVerbLength is the shortest input token that prefix matching will try to
// resolve against canonical verbs.
const minVerbLength = 2

// verbSynonyms maps every accepted verb word to its canonical verb. Every
// canonical verb maps to itself.
var verbSynonyms = map[string]string{
	"look": "look", "loo": "look", "lk": "look", "see": "look",
	"view": "look", "examine": "look", "peek": "look", "observe": "look",
	"lo": "look",

	"talk": "talk", "chat": "talk", "speak": "talk", "converse": "talk",
	"say": "talk", "ta": "talk",

	"inventory": "inventory", "inv": "inventory", "invent": "inventory",
	"items": "inventory", "gear": "inventory", "stuff": "inventory",

	"take": "take", "get": "take", "grab": "take", "pickup": "take",
	"snag": "take", "collect": "take",

	"go": "go", "move": "go", "travel": "go", "head": "go", "walk": "go",
	"run": "go",

	"push": "push", "shove": "push", "press": "push", "nudge": "push",

	"pull": "pull", "tug": "pull", "yank": "pull",

	"hit": "hit", "strike": "hit", "smack": "hit", "punch": "hit",

	"use": "use", "utilize": "use", "activate": "use",

	"place": "place", "put": "place", "set": "place",

	"light": "light", "ignite": "light", "burn": "light",

	"help": "help",
}

// prepositions are dropped from input after the verb; they exist only to
// make commands read naturally and carry no resolution weight.
var prepositions = map[string]bool{
	"at": true, "to": true, "in": true, "on": true, "with": true,
	"from": true, "by": true, "into": true, "onto": true, "of": true,
}

// inventoryFirstVerbs are the item-centric verbs whose targets resolve
// against held items before the surrounding area.
var inventoryFirstVerbs = map[string]bool{
	"use": true, "place": true, "light": true,
}

// ParsedCommand is the outcome of resolving one line of player input. A
// blank Verb means the input was empty, unknown, or ambiguous.
type ParsedCommand struct {
	// Verb is the canonical verb, or "" when none resolved.
	Verb string

	// Target is the resolved target: a known entity name when resolution
	// succeeded, otherwise the raw target text verbatim. Lower case. Empty
	// when the input carried no target.
	Target string

	// RawTarget is the target text exactly as typed (lower case), kept so
	// handlers can report what the player actually asked for.
	RawTarget string

	// Best is the winning catalog entry, or nil.
	Best *CommandSpec
}

// ResolveVerb resolves a single input token to a canonical verb. It tries
// the exact synonym table first, then prefix matching against canonical
// verbs for tokens of at least minVerbLength. When the prefix is shared by
// more than one distinct canonical verb the result is ambiguous and no verb
// is returned; guessing between "push" and "pull" is worse than asking.
func ResolveVerb(token string) (verb string, ambiguous bool) {
	if v, ok := verbSynonyms[token]; ok {
		return v, false
	}
	if len(token) < minVerbLength {
		return "", false
	}

	seen := map[string]bool{}
	for _, canonical := range verbSynonyms {
		if strings.HasPrefix(canonical, token) {
			seen[canonical] = true
		}
	}

	if len(seen) == 1 {
		for v := range seen {
			return v, false
		}
	}
	return "", len(seen) > 1
}

// Parse normalizes and tokenizes raw input, resolves the verb and target,
// and selects the best catalog match. It never fails; unresolvable input
// comes back with a blank Verb for the caller to report.
func Parse(raw string, catalog []*CommandSpec, w *WorldState, area *Area) ParsedCommand {
	var pc ParsedCommand

	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return pc
	}

	tokens := strings.Fields(trimmed)

	// drop prepositions after the verb position
	kept := tokens[:1]
	for _, tok := range tokens[1:] {
		if !prepositions[tok] {
			kept = append(kept, tok)
		}
	}
	tokens = kept

	verb, _ := ResolveVerb(tokens[0])
	pc.RawTarget = strings.Join(tokens[1:], " ")
	if verb == "" {
		return pc
	}
	pc.Verb = verb

	pc.Target = resolveTarget(pc.RawTarget, verb, w, area)
	pc.Best = SelectBest(verb, pc.Target, catalog, w, area)

	return pc
}

// resolveTarget maps the raw target text to a concrete entity name where one
// can be found, preferring held items for item-centric verbs, then in-area
// entities with a whole-word name match, then a substring match. Hidden and
// invisible entities never resolve. When nothing matches, the raw text is
// returned verbatim so handlers can still say what was not found.
func resolveTarget(raw, verb string, w *WorldState, area *Area) string {
	if raw == "" {
		return ""
	}

	if inventoryFirstVerbs[verb] {
		for _, it := range w.Player.HeldItems() {
			if strings.Contains(strings.ToLower(it.Name), raw) {
				return strings.ToLower(it.Name)
			}
		}
	}

	candidates := areaCandidates(area)

	for _, e := range candidates {
		if containsWholeWord(strings.ToLower(e.Name), raw) {
			return strings.ToLower(e.Name)
		}
	}
	for _, e := range candidates {
		if strings.Contains(strings.ToLower(e.Name), raw) {
			return strings.ToLower(e.Name)
		}
	}

	return raw
}

func areaCandidates(area *Area) []*Entity {
	var out []*Entity
	for _, e := range area.Items {
		if e.InArea() {
			out = append(out, e)
		}
	}
	for _, e := range area.NPCs {
		if e.Visible() {
			out = append(out, e)
		}
	}
	for _, e := range area.Secrets {
		if e.Visible() {
			out = append(out, e)
		}
	}
	return out
}

// containsWholeWord reports whether needle appears in haystack on word
// boundaries, so "staff" matches "wooden staff" but "taf" does not.
func containsWholeWord(haystack, needle string) bool {
	if haystack == needle {
		return true
	}
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}
