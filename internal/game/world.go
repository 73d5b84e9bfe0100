// Package game implements the world model, command resolution, and state
// advancement for the interpreter.
package game

import (
	"strings"
)

// Well-known state flag names used by the engine itself. Content is free to
// define any other flags it likes; only these carry built-in meaning.
const (
	FlagInInventory = "inInventory"
	FlagHidden      = "isHidden"
	FlagInvisible   = "isInvisible"
	FlagRemoved     = "isRemoved"
	FlagPickedUp    = "pickedUp"
)

// StateMap holds the named flags of an entity, area, exit, or the player.
// Values are whatever the content declared: bools, strings, or numbers.
type StateMap map[string]interface{}

// Flag returns the value of the named flag. An absent flag reads as false,
// which is what makes undeclared visibility flags mean "visible".
func (m StateMap) Flag(key string) interface{} {
	if m == nil {
		return false
	}
	v, ok := m[key]
	if !ok {
		return false
	}
	return v
}

// Bool reads the named flag as a boolean. Absent or non-boolean flags read as
// false.
func (m StateMap) Bool(key string) bool {
	v, ok := m[key].(bool)
	return ok && v
}

// Set assigns the named flag. The receiver must be non-nil; callers that may
// hold a nil map should go through an entity's SetFlag instead.
func (m StateMap) Set(key string, value interface{}) {
	m[key] = value
}

// Copy returns a shallow copy of the map, which is a sufficient deep copy
// because flag values are immutable scalars.
func (m StateMap) Copy() StateMap {
	if m == nil {
		return nil
	}
	mCopy := make(StateMap, len(m))
	for k, v := range m {
		mCopy[k] = v
	}
	return mCopy
}

// WorldState is the root aggregate: the player plus every area, mutated in
// place for the lifetime of a session. There is exactly one owner at a time;
// nothing in this package retains an Area outside its WorldState.
type WorldState struct {
	// Player is the player's own mutable state.
	Player *PlayerState

	// Areas is every area in the world, in content declaration order.
	Areas []*Area

	// InventoryDescriptions maps an item name to the text shown when the
	// player inspects that item in their inventory. Static content, shared
	// between copies.
	InventoryDescriptions map[string]string

	areasByID map[string]*Area
}

// NewWorldState assembles a world from the player state and area list and
// indexes the areas by ID.
func NewWorldState(player *PlayerState, areas []*Area, invDescs map[string]string) *WorldState {
	w := &WorldState{
		Player:                player,
		Areas:                 areas,
		InventoryDescriptions: invDescs,
		areasByID:             make(map[string]*Area, len(areas)),
	}
	for _, a := range areas {
		w.areasByID[a.ID] = a
	}
	return w
}

// Area returns the area with the given ID, or nil if no such area exists.
func (w *WorldState) Area(id string) *Area {
	return w.areasByID[id]
}

// CurrentArea returns the area the player is currently in. It is nil only if
// content declared a starting area that does not exist, which loading rejects.
func (w *WorldState) CurrentArea() *Area {
	return w.areasByID[w.Player.CurrentArea]
}

// Copy returns a deeply-copied WorldState suitable for restarting a session
// without reloading content.
func (w *WorldState) Copy() *WorldState {
	areas := make([]*Area, len(w.Areas))
	for i := range w.Areas {
		areas[i] = w.Areas[i].Copy()
	}
	return NewWorldState(w.Player.Copy(), areas, w.InventoryDescriptions)
}

// PlayerState is the player's position, pre-declared inventory records, and
// free-form flags. Inventory records are never created or destroyed at
// runtime; possession is tracked by each record's inInventory flag.
type PlayerState struct {
	// CurrentArea is the ID of the area the player is in.
	CurrentArea string

	// Inventory is every item record the player could ever hold. A record
	// counts as possessed only while its inInventory flag is true.
	Inventory []*Entity

	// State is the playerState flag map, including completed-action markers.
	State StateMap
}

// Copy returns a deeply-copied PlayerState.
func (p *PlayerState) Copy() *PlayerState {
	pCopy := &PlayerState{
		CurrentArea: p.CurrentArea,
		Inventory:   make([]*Entity, len(p.Inventory)),
		State:       p.State.Copy(),
	}
	for i := range p.Inventory {
		pCopy.Inventory[i] = p.Inventory[i].Copy()
	}
	return pCopy
}

// InventoryItem returns the inventory record with the given name regardless
// of whether it is currently held, or nil if no record exists. Name matching
// is case-insensitive.
func (p *PlayerState) InventoryItem(name string) *Entity {
	for _, it := range p.Inventory {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// HeldItems returns the inventory records the player currently possesses, in
// declaration order.
func (p *PlayerState) HeldItems() []*Entity {
	var held []*Entity
	for _, it := range p.Inventory {
		if it.Held() && !it.Removed() {
			held = append(held, it)
		}
	}
	return held
}

// Holds reports whether the player possesses the named item right now. An
// item merely listed in the inventory but not flagged inInventory does not
// count.
func (p *PlayerState) Holds(name string) bool {
	it := p.InventoryItem(name)
	return it != nil && it.Held() && !it.Removed()
}

// Additive is a piece of conditional flavor text appended to an area's
// description while its condition holds.
type Additive struct {
	Text      string
	Condition *Condition
}

// Area is a navigable location. Areas are owned exclusively by their
// WorldState and are never duplicated or aliased.
type Area struct {
	// ID is the unique areaId from content.
	ID string

	// Name is the area's display name.
	Name string

	// Description is the base text shown when the area is rendered.
	Description string

	// Additives is conditional flavor text appended to the description.
	Additives []Additive

	Items   []*Entity
	NPCs    []*Entity
	Secrets []*Entity

	// Exits is the area's egress commands, each a CommandSpec of kind
	// SpecExit carrying a direction and destination.
	Exits []*CommandSpec

	// DummyItems is scenery the player may look at but not otherwise
	// interact with.
	DummyItems []string

	// State is the areaState flag map.
	State StateMap
}

// Copy returns a deeply-copied Area.
func (a *Area) Copy() *Area {
	aCopy := &Area{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Additives:   a.Additives,
		Items:       make([]*Entity, len(a.Items)),
		NPCs:        make([]*Entity, len(a.NPCs)),
		Secrets:     make([]*Entity, len(a.Secrets)),
		Exits:       make([]*CommandSpec, len(a.Exits)),
		DummyItems:  a.DummyItems,
		State:       a.State.Copy(),
	}
	for i := range a.Items {
		aCopy.Items[i] = a.Items[i].Copy()
	}
	for i := range a.NPCs {
		aCopy.NPCs[i] = a.NPCs[i].Copy()
	}
	for i := range a.Secrets {
		aCopy.Secrets[i] = a.Secrets[i].Copy()
	}
	for i := range a.Exits {
		aCopy.Exits[i] = a.Exits[i].Copy(nil)
	}
	return aCopy
}

// Entity returns the area's entity of the given kind with the given name, or
// nil. Name matching is case-insensitive.
func (a *Area) Entity(kind EntityKind, name string) *Entity {
	for _, e := range a.entitiesOfKind(kind) {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

// AnyEntity returns the first entity of any kind with the given name that
// passes the visibility filter, searching items, then NPCs, then secrets.
func (a *Area) AnyEntity(name string) *Entity {
	for _, kind := range []EntityKind{KindItem, KindNPC, KindSecret} {
		for _, e := range a.entitiesOfKind(kind) {
			if strings.EqualFold(e.Name, name) && e.Visible() {
				return e
			}
		}
	}
	return nil
}

// Exit returns the exit whose command phrase equals the given phrase, or nil.
func (a *Area) Exit(command string) *CommandSpec {
	for _, ex := range a.Exits {
		if strings.EqualFold(ex.Command, command) {
			return ex
		}
	}
	return nil
}

func (a *Area) entitiesOfKind(kind EntityKind) []*Entity {
	switch kind {
	case KindItem:
		return a.Items
	case KindNPC:
		return a.NPCs
	case KindSecret:
		return a.Secrets
	}
	return nil
}
