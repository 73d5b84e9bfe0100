package game

// File entity.go holds the shared entity shape used for items, NPCs, and
// secrets, plus the visibility rules that decide what the player can
// currently perceive.

// EntityKind discriminates the three entity flavors that share the Entity
// shape.
type EntityKind int

const (
	KindItem EntityKind = iota
	KindNPC
	KindSecret
)

func (k EntityKind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindNPC:
		return "npc"
	case KindSecret:
		return "secret"
	}
	return "unknown"
}

// Interaction is a conditional suffix appended to an entity's description
// while its condition holds.
type Interaction struct {
	Text      string
	Condition *Condition
}

// Entity is one interactable thing in the world: an item, an NPC, or a
// secret, discriminated by Kind. The name is the entity's identity within its
// area and kind; entities are loaded once from content and only their State
// flags ever change.
type Entity struct {
	Kind        EntityKind
	Name        string
	Description string

	// State is the itemState/npcState/secretState flag map.
	State StateMap

	// Interactions is conditional text appended when the entity is examined.
	Interactions []Interaction

	// Commands is every command phrase declared on this entity.
	Commands []*CommandSpec
}

// Copy returns a deeply-copied Entity whose command specs point back at the
// copy as their owner.
func (e *Entity) Copy() *Entity {
	eCopy := &Entity{
		Kind:         e.Kind,
		Name:         e.Name,
		Description:  e.Description,
		State:        e.State.Copy(),
		Interactions: e.Interactions,
		Commands:     make([]*CommandSpec, len(e.Commands)),
	}
	for i := range e.Commands {
		eCopy.Commands[i] = e.Commands[i].Copy(eCopy)
	}
	return eCopy
}

// SetFlag assigns a state flag, allocating the flag map if the entity had
// none declared in content.
func (e *Entity) SetFlag(key string, value interface{}) {
	if e.State == nil {
		e.State = make(StateMap)
	}
	e.State[key] = value
}

// Visible reports whether the entity is currently perceivable at all. Flags
// that content never declared default to false, so an entity with no
// visibility flags is visible.
func (e *Entity) Visible() bool {
	return !e.State.Bool(FlagHidden) && !e.State.Bool(FlagInvisible)
}

// Held reports whether the entity record is flagged as being in the player's
// inventory.
func (e *Entity) Held() bool {
	return e.State.Bool(FlagInInventory)
}

// Removed reports whether the entity record has been permanently removed
// from play.
func (e *Entity) Removed() bool {
	return e.State.Bool(FlagRemoved)
}

// InArea reports whether the entity should be offered as part of its area:
// visible, and for items, not already carried off or removed.
func (e *Entity) InArea() bool {
	if !e.Visible() {
		return false
	}
	if e.Kind == KindItem {
		return !e.Held() && !e.Removed() && !e.State.Bool(FlagPickedUp)
	}
	return true
}
