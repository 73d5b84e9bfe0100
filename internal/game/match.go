package game

// File match.go holds best-match selection: reconciling the several catalog
// entries that can share a verb and target into exactly one winner.

import (
	"sort"
	"strings"
)

// SelectBest picks the single catalog entry for the given canonical verb and
// resolved target, or nil when nothing applies.
//
// With no target, the winner is the highest-priority no-target spec whose
// condition passes. With a target, candidates are pooled in strict preference
// order and only the first non-empty pool is considered:
//
//  1. specs whose full phrase is exactly "<verb> <target>"
//  2. specs whose own target contains the resolved target as a whole word
//  3. specs whose target contains it as a bare substring
//
// Authors routinely declare both a loose and a specific phrase for the same
// verb ("push" next to "push stone door"); the pooling is what makes the
// specific one win. Within the chosen pool, specs failing their condition
// are dropped and the survivor with the highest priority wins, ties going to
// catalog order.
func SelectBest(verb, target string, catalog []*CommandSpec, w *WorldState, area *Area) *CommandSpec {
	pool := selectPool(verb, target, catalog)
	if len(pool) == 0 {
		return nil
	}

	var passing []*CommandSpec
	for _, spec := range pool {
		if w.Evaluate(spec.Condition, area, spec.Target) {
			passing = append(passing, spec)
		}
	}
	if len(passing) == 0 {
		return nil
	}

	sort.SliceStable(passing, func(i, j int) bool {
		return passing[i].Priority > passing[j].Priority
	})
	return passing[0]
}

// selectCandidate mirrors SelectBest but skips the condition filter. It is
// how handlers find the spec whose condition is the only thing standing
// between the player and a match, so they can surface its elseResponse.
func selectCandidate(verb, target string, catalog []*CommandSpec) *CommandSpec {
	pool := selectPool(verb, target, catalog)
	if len(pool) == 0 {
		return nil
	}
	sorted := make([]*CommandSpec, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted[0]
}

func selectPool(verb, target string, catalog []*CommandSpec) []*CommandSpec {
	var matching []*CommandSpec
	for _, spec := range catalog {
		if spec.Verb() == verb {
			matching = append(matching, spec)
		}
	}
	if len(matching) == 0 {
		return nil
	}

	if target == "" {
		var pool []*CommandSpec
		for _, spec := range matching {
			if spec.Target == "" {
				pool = append(pool, spec)
			}
		}
		return pool
	}

	exactPhrase := verb + " " + target
	var exact, wholeWord, substring []*CommandSpec
	for _, spec := range matching {
		if spec.Command == exactPhrase {
			exact = append(exact, spec)
		}
		if spec.Target == "" {
			continue
		}
		if containsWholeWord(spec.Target, target) {
			wholeWord = append(wholeWord, spec)
		} else if strings.Contains(spec.Target, target) {
			substring = append(substring, spec)
		}
	}

	if len(exact) > 0 {
		return exact
	}
	if len(wholeWord) > 0 {
		return wholeWord
	}
	return substring
}
