package game

// File verbs.go holds the verb handler registry and the handlers themselves.
// Each handler composes catalog lookup, best-match selection, condition
// gating, and the trigger engine into player-facing text. Keeping the
// registry a map keeps the verb set open for extension without a monolithic
// switch.

import (
	"fmt"
	"strings"

	"gloamquest/internal/util"
)

type handlerFunc func(s *Session, cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line

var verbHandlers = map[string]handlerFunc{
	"look":      (*Session).handleLook,
	"go":        (*Session).handleGo,
	"talk":      (*Session).handleTalk,
	"take":      (*Session).handleTake,
	"push":      (*Session).handlePush,
	"pull":      (*Session).handlePull,
	"hit":       (*Session).handleHit,
	"use":       (*Session).handleUse,
	"place":     (*Session).handlePlace,
	"light":     (*Session).handleLight,
	"inventory": (*Session).handleInventory,
	"help":      (*Session).handleHelp,
}

var verbHelp = [][2]string{
	{"look [thing]", "describe your surroundings, or one particular thing"},
	{"go <exit>", "travel through one of the area's exits"},
	{"talk <someone>", "strike up a conversation"},
	{"take <item>", "pick something up"},
	{"push/pull/hit <thing>", "apply force to something"},
	{"use <item>", "use an item you are carrying"},
	{"place <item>", "put a carried item somewhere meaningful"},
	{"light <item>", "set something alight"},
	{"inventory [item]", "list what you carry, or inspect one item"},
	{"help", "show this text"},
}

// HelpTopics returns the player verb summary, for shells that want to format
// it themselves.
func HelpTopics() [][2]string {
	return verbHelp
}

func (s *Session) handleLook(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	if cmd.Target == "" {
		return s.renderArea(area)
	}
	if cmd.Best != nil && cmd.Best.Kind != SpecGeneric {
		return s.fireSpec(cmd.Best)
	}
	if cand := selectCandidate(cmd.Verb, cmd.Target, catalog); cand != nil && cand.Kind != SpecGeneric {
		return s.deniedLines(cand, cmd)
	}
	if e := s.nearbyEntity(area, cmd.Target); e != nil {
		return s.renderEntity(e, area)
	}
	return []Line{{Text: fmt.Sprintf("There's nothing matching %q to look at here.", cmd.RawTarget)}}
}

func (s *Session) handleGo(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	if cmd.Target == "" {
		return s.renderArea(area)
	}

	if cmd.Best != nil && cmd.Best.Kind != SpecGeneric {
		spec := cmd.Best
		var lines []Line
		if spec.Response != "" {
			lines = append(lines, Line{Text: spec.Response, Secret: spec.FromSecret()})
		}

		before := s.world.Player.CurrentArea
		if spec.Destination != "" {
			if s.world.Area(spec.Destination) == nil {
				s.log.Warn("exit names unknown destination, staying put",
					"exit", spec.Command, "destination", spec.Destination)
			} else {
				s.world.Player.CurrentArea = spec.Destination
			}
		}
		s.world.ApplyTriggers(spec.Triggers, s.log)

		if s.world.Player.CurrentArea != before {
			lines = append(lines, s.renderArea(s.world.CurrentArea())...)
		}
		return lines
	}

	return s.missLines(cmd, catalog, area)
}

func (s *Session) handleTalk(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	return s.runSpecVerb(cmd, catalog, area, "There's no one here to talk to.")
}

func (s *Session) handleTake(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	return s.runSpecVerb(cmd, catalog, area, "There's nothing here to take.")
}

func (s *Session) handlePush(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	return s.runSpecVerb(cmd, catalog, area, "There's nothing here to push.")
}

func (s *Session) handlePull(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	return s.runSpecVerb(cmd, catalog, area, "There's nothing here to pull.")
}

func (s *Session) handleHit(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	return s.runSpecVerb(cmd, catalog, area, "There's nothing here worth hitting.")
}

func (s *Session) handleUse(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	return s.runSpecVerb(cmd, catalog, area, "You don't have anything to use right now.")
}

func (s *Session) handlePlace(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	return s.runSpecVerb(cmd, catalog, area, "You don't have anything to place right now.")
}

func (s *Session) handleLight(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	return s.runSpecVerb(cmd, catalog, area, "You don't have anything to light right now.")
}

func (s *Session) handleInventory(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	if cmd.Target == "" {
		held := s.world.Player.HeldItems()
		if len(held) == 0 {
			return []Line{{Text: "You aren't carrying anything."}}
		}
		names := make([]string, len(held))
		for i, it := range held {
			names[i] = it.Name
		}
		return []Line{{Text: "You are carrying " + util.MakeTextList(names, true) + "."}}
	}

	if cmd.Best != nil && cmd.Best.Kind != SpecGeneric {
		return s.fireSpec(cmd.Best)
	}
	return []Line{{Text: fmt.Sprintf("You don't have anything matching %q.", cmd.RawTarget)}}
}

func (s *Session) handleHelp(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	lines := []Line{{Text: "You can do these things:"}}
	for _, h := range verbHelp {
		lines = append(lines, Line{Text: "  " + h[0] + " - " + h[1]})
	}
	return lines
}

// runSpecVerb is the shared handler shape: with no target, list what the
// verb could currently apply to; with a target, fire the best match or
// explain the miss.
func (s *Session) runSpecVerb(cmd ParsedCommand, catalog []*CommandSpec, area *Area, emptyMsg string) []Line {
	if cmd.Target == "" {
		names := s.candidateTargets(cmd.Verb, catalog, area)
		if len(names) == 0 {
			return []Line{{Text: emptyMsg}}
		}
		return []Line{{Text: "You could " + cmd.Verb + " " + util.MakeTextList(names, true) + "."}}
	}

	if cmd.Best != nil && cmd.Best.Kind != SpecGeneric {
		return s.fireSpec(cmd.Best)
	}
	return s.missLines(cmd, catalog, area)
}

// fireSpec emits a matched spec's response and applies its triggers.
func (s *Session) fireSpec(spec *CommandSpec) []Line {
	var lines []Line
	if spec.Response != "" {
		lines = append(lines, Line{Text: spec.Response, Secret: spec.FromSecret()})
	}
	s.world.ApplyTriggers(spec.Triggers, s.log)
	return lines
}

// missLines distinguishes the three ways a targeted command can fail to
// match, so "wrong verb for a real object" never reads like "object does not
// exist":
//
//	(a) a matching spec exists but its condition fails right now
//	(b) the target is a real, visible entity with no spec for this verb
//	(c) nothing resolves at all
func (s *Session) missLines(cmd ParsedCommand, catalog []*CommandSpec, area *Area) []Line {
	if cand := selectCandidate(cmd.Verb, cmd.Target, catalog); cand != nil && cand.Kind != SpecGeneric {
		return s.deniedLines(cand, cmd)
	}
	if e := s.nearbyEntity(area, cmd.Target); e != nil {
		return []Line{{Text: "You can't " + cmd.Verb + " the " + strings.ToLower(e.Name) + "."}}
	}
	return []Line{{Text: fmt.Sprintf("There's nothing matching %q to %s here.", cmd.RawTarget, cmd.Verb)}}
}

// deniedLines renders a condition failure: the spec's own elseResponse when
// the author wrote one, otherwise a generic denial.
func (s *Session) deniedLines(cand *CommandSpec, cmd ParsedCommand) []Line {
	if cand.ElseResponse != "" {
		return []Line{{Text: cand.ElseResponse, Secret: cand.FromSecret()}}
	}
	target := cmd.Target
	if target == "" {
		target = cmd.RawTarget
	}
	return []Line{{Text: "You can't " + cmd.Verb + " the " + target + " right now."}}
}

// candidateTargets lists the display names a verb could currently apply to,
// deduplicated, conditions honored.
func (s *Session) candidateTargets(verb string, catalog []*CommandSpec, area *Area) []string {
	var names []string
	seen := map[string]bool{}
	for _, spec := range catalog {
		if spec.Verb() != verb || spec.Target == "" {
			continue
		}
		if !s.world.Evaluate(spec.Condition, area, spec.Target) {
			continue
		}
		name := spec.Target
		if spec.Owner() != nil {
			name = spec.Owner().Name
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names
}

// nearbyEntity finds a real, visible entity by resolved name: in the area
// first, then among held items.
func (s *Session) nearbyEntity(area *Area, name string) *Entity {
	if name == "" {
		return nil
	}
	if e := area.AnyEntity(name); e != nil {
		return e
	}
	for _, it := range s.world.Player.HeldItems() {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}
