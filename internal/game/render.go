package game

// File render.go builds the prose for area and entity descriptions. The
// session returns raw lines; wrapping to console width is the shell's job.

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gloamquest/internal/util"
)

var titleCaser = cases.Title(language.English)

// renderArea produces the full re-description of an area: header, base
// description with any passing environment additives, visible items and
// NPCs, and the currently usable exits.
func (s *Session) renderArea(a *Area) []Line {
	if a == nil {
		return []Line{{Text: "You are nowhere at all. That can't be right."}}
	}

	lines := []Line{{Text: "You are in: " + titleCaser.String(a.Name)}}

	desc := a.Description
	for _, add := range a.Additives {
		if s.world.Evaluate(add.Condition, a, "") {
			desc = joinSentences(desc, add.Text)
		}
	}
	if desc != "" {
		lines = append(lines, Line{Text: desc})
	}

	var itemNames []string
	for _, it := range a.Items {
		if it.InArea() {
			itemNames = append(itemNames, it.Name)
		}
	}
	if len(itemNames) > 0 {
		lines = append(lines, Line{Text: "You see " + util.MakeTextList(itemNames, true) + "."})
	}

	var npcNames []string
	for _, npc := range a.NPCs {
		if npc.Visible() {
			npcNames = append(npcNames, npc.Name)
		}
	}
	if len(npcNames) > 0 {
		verb := " is here."
		if len(npcNames) > 1 {
			verb = " are here."
		}
		lines = append(lines, Line{Text: util.MakeTextList(npcNames, false) + verb})
	}

	if exits := s.usableExits(a); len(exits) > 0 {
		lines = append(lines, Line{Text: "Obvious ways out: " + strings.Join(exits, ", ") + "."})
	}

	return lines
}

// usableExits lists the ways out that currently work: a destination exists
// and the exit's condition passes.
func (s *Session) usableExits(a *Area) []string {
	var out []string
	for _, ex := range a.Exits {
		if ex.Destination == "" {
			continue
		}
		if !s.world.Evaluate(ex.Condition, a, ex.Target) {
			continue
		}
		name := ex.Direction
		if name == "" {
			name = ex.Command
		}
		out = append(out, name)
	}
	return out
}

// renderEntity describes a single entity: its description plus every
// interaction suffix whose condition passes.
func (s *Session) renderEntity(e *Entity, a *Area) []Line {
	desc := e.Description
	for _, inter := range e.Interactions {
		if s.world.Evaluate(inter.Condition, a, e.Name) {
			desc = joinSentences(desc, inter.Text)
		}
	}
	if desc == "" {
		desc = "You see nothing special about the " + strings.ToLower(e.Name) + "."
	}
	return []Line{{Text: desc, Secret: e.Kind == KindSecret}}
}

func joinSentences(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}
