package game

// File catalog.go holds the CommandSpec type and the per-command catalog
// build. The catalog is the full set of command phrases currently reachable
// from the player's position and inventory, and it is rebuilt from scratch
// before every single input because the previous command may have changed
// visibility or possession.

import (
	"strings"
)

// SpecKind records where a CommandSpec came from, which decides a few
// behaviors: exit specs carry a destination, secret specs mark their output
// lines, dummy and generic specs are synthesized fallbacks.
type SpecKind int

const (
	SpecExit SpecKind = iota
	SpecItem
	SpecNPC
	SpecSecret
	SpecInventory
	SpecDummy
	SpecGeneric
)

// CommandSpec is a declared, conditionally-available command phrase bound to
// a response and optional world mutation. Within one catalog build several
// specs may share a verb and target; the best-match selector picks exactly
// one.
type CommandSpec struct {
	// Command is the full literal phrase, lower case, possibly embedding the
	// target ("place staff").
	Command string

	// Target is the entity name this spec resolves against, lower case.
	// Empty for generic specs; the exit direction for exit specs.
	Target string

	Kind SpecKind

	// Response is the text emitted when the spec fires.
	Response string

	// ElseResponse, when present, replaces the generic denial text shown
	// when this spec is the best candidate but its condition fails.
	ElseResponse string

	Condition *Condition
	Triggers  []Trigger

	// Priority breaks ties between specs sharing a verb and target; higher
	// wins, letting authors override a fallback response once some narrative
	// condition is reachable without deleting the fallback.
	Priority int

	// Direction and Destination are meaningful for exit specs only. An exit
	// with no destination responds without moving the player.
	Direction   string
	Destination string

	// State is the exitState flag map, readable via exitState conditions.
	// Exit specs only.
	State StateMap

	owner *Entity
}

// Verb returns the first word of the command phrase.
func (cs *CommandSpec) Verb() string {
	if i := strings.IndexByte(cs.Command, ' '); i != -1 {
		return cs.Command[:i]
	}
	return cs.Command
}

// Owner returns the entity this spec was declared on, or nil for exits and
// synthesized specs.
func (cs *CommandSpec) Owner() *Entity {
	return cs.owner
}

// SetOwner attaches the declaring entity. Called by content loading.
func (cs *CommandSpec) SetOwner(e *Entity) {
	cs.owner = e
}

// FromSecret reports whether firing this spec should produce secret-flagged
// output lines.
func (cs *CommandSpec) FromSecret() bool {
	return cs.Kind == SpecSecret || (cs.owner != nil && cs.owner.Kind == KindSecret)
}

// Copy returns a copy of the spec owned by the given entity. Conditions are
// shared because they are immutable after load; the exit state map is copied
// because it is not.
func (cs *CommandSpec) Copy(owner *Entity) *CommandSpec {
	csCopy := *cs
	csCopy.State = cs.State.Copy()
	csCopy.owner = owner
	return &csCopy
}

// BuildCatalog enumerates every command phrase currently reachable: area
// exits, the commands of every in-area entity, the commands of held items,
// synthesized "inventory <item>" phrases, scenery look phrases, and the two
// generic fallbacks. Pure read; the catalog holds pointers into the live
// world but building it mutates nothing.
func BuildCatalog(w *WorldState, area *Area) []*CommandSpec {
	var cat []*CommandSpec

	cat = append(cat, area.Exits...)

	for _, it := range area.Items {
		if it.InArea() {
			cat = append(cat, it.Commands...)
		}
	}
	for _, npc := range area.NPCs {
		if npc.Visible() {
			cat = append(cat, npc.Commands...)
		}
	}
	for _, sec := range area.Secrets {
		if sec.Visible() {
			cat = append(cat, sec.Commands...)
		}
	}

	for _, it := range w.Player.HeldItems() {
		cat = append(cat, it.Commands...)
		cat = append(cat, inventorySpec(w, it))
	}

	for _, name := range area.DummyItems {
		lower := strings.ToLower(name)
		cat = append(cat, &CommandSpec{
			Command:  "look " + lower,
			Target:   lower,
			Kind:     SpecDummy,
			Response: "You see nothing special about the " + lower + ".",
			Priority: -1,
		})
	}

	cat = append(cat,
		&CommandSpec{Command: "look", Kind: SpecGeneric},
		&CommandSpec{Command: "inventory", Kind: SpecGeneric},
	)

	return cat
}

// inventorySpec synthesizes the "inventory <item>" phrase for a held item.
func inventorySpec(w *WorldState, it *Entity) *CommandSpec {
	response := w.InventoryDescriptions[it.Name]
	if response == "" {
		response = it.Description
	}
	if response == "" {
		response = "It's your " + strings.ToLower(it.Name) + "."
	}
	lower := strings.ToLower(it.Name)
	return &CommandSpec{
		Command:  "inventory " + lower,
		Target:   lower,
		Kind:     SpecInventory,
		Response: response,
		owner:    it,
	}
}
