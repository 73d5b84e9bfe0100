package game

// File trigger.go holds the action trigger engine: ordered state mutations
// that run after a command matches. Each step is independently fallible; a
// dangling reference is a content defect that gets logged and skipped, never
// a crash, and never aborts the steps that follow it.

import (
	"fmt"
	"log/slog"
	"strings"
)

// TriggerKind discriminates the trigger variants.
type TriggerKind int

const (
	TriggerSetState TriggerKind = iota
	TriggerAddItem
	TriggerRemoveItem
	TriggerSetPlayerArea
)

// TargetRefKind discriminates what a setState target path addresses.
type TargetRefKind int

const (
	RefInventoryItem TargetRefKind = iota
	RefArea
	RefAreaNPC
	RefAreaSecret
	RefAreaItem
)

// TargetRef is the typed form of a setState target path, produced at content
// load time so runtime resolution is a switch instead of string splitting.
type TargetRef struct {
	Kind TargetRefKind

	// Area is the area ID, for every kind except RefInventoryItem.
	Area string

	// Name is the NPC ID, secret ID, item name, or inventory item name.
	// Unused for RefArea.
	Name string
}

func (r TargetRef) String() string {
	switch r.Kind {
	case RefInventoryItem:
		return r.Name
	case RefArea:
		return "area:" + r.Area
	case RefAreaNPC:
		return "area:" + r.Area + ".npc:" + r.Name
	case RefAreaSecret:
		return "area:" + r.Area + ".secret:" + r.Name
	case RefAreaItem:
		return "area:" + r.Area + ".item:" + r.Name
	}
	return "<invalid ref>"
}

// ParseTargetRef parses a setState target path. The grammar is either a bare
// inventory item name, or "area:<id>" optionally narrowed by one of
// ".npc:<id>", ".secret:<id>", or ".item:<name>".
func ParseTargetRef(path string) (TargetRef, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return TargetRef{}, fmt.Errorf("empty target path")
	}

	if !strings.HasPrefix(path, "area:") {
		return TargetRef{Kind: RefInventoryItem, Name: path}, nil
	}

	rest := strings.TrimPrefix(path, "area:")
	dot := strings.Index(rest, ".")
	if dot == -1 {
		if rest == "" {
			return TargetRef{}, fmt.Errorf("target path %q has empty area ID", path)
		}
		return TargetRef{Kind: RefArea, Area: rest}, nil
	}

	areaID := rest[:dot]
	if areaID == "" {
		return TargetRef{}, fmt.Errorf("target path %q has empty area ID", path)
	}
	qualifier := rest[dot+1:]

	sep := strings.Index(qualifier, ":")
	if sep == -1 {
		return TargetRef{}, fmt.Errorf("target path %q has qualifier without a name", path)
	}
	kind, name := qualifier[:sep], qualifier[sep+1:]
	if name == "" {
		return TargetRef{}, fmt.Errorf("target path %q has empty %s name", path, kind)
	}

	switch kind {
	case "npc":
		return TargetRef{Kind: RefAreaNPC, Area: areaID, Name: name}, nil
	case "secret":
		return TargetRef{Kind: RefAreaSecret, Area: areaID, Name: name}, nil
	case "item":
		return TargetRef{Kind: RefAreaItem, Area: areaID, Name: name}, nil
	}
	return TargetRef{}, fmt.Errorf("target path %q has unknown qualifier %q", path, kind)
}

// Trigger is one ordered world mutation. Which fields are meaningful depends
// on Kind: TriggerSetState uses Target, Key, and Value; TriggerAddItem and
// TriggerRemoveItem use Item; TriggerSetPlayerArea uses AreaID.
type Trigger struct {
	Kind   TriggerKind
	Target TargetRef
	Key    string
	Value  interface{}
	Item   string
	AreaID string
}

// ApplyTriggers executes the trigger list in declaration order against the
// live world. There is no rollback: steps that already ran stay applied even
// if a later step has to be skipped.
func (w *WorldState) ApplyTriggers(triggers []Trigger, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}

	for _, t := range triggers {
		switch t.Kind {
		case TriggerSetState:
			w.applySetState(t, log)
		case TriggerAddItem:
			w.setItemHeld(t.Item, true, log)
		case TriggerRemoveItem:
			w.setItemHeld(t.Item, false, log)
		case TriggerSetPlayerArea:
			if w.Area(t.AreaID) == nil {
				log.Warn("trigger names unknown area, skipping",
					"trigger", "setPlayerArea", "areaId", t.AreaID)
				continue
			}
			w.Player.CurrentArea = t.AreaID
		default:
			log.Warn("unknown trigger kind, skipping", "kind", int(t.Kind))
		}
	}
}

func (w *WorldState) applySetState(t Trigger, log *slog.Logger) {
	if t.Target.Kind == RefInventoryItem {
		it := w.Player.InventoryItem(t.Target.Name)
		if it == nil {
			log.Warn("trigger names unknown inventory item, skipping",
				"trigger", "setState", "item", t.Target.Name)
			return
		}
		it.SetFlag(t.Key, t.Value)
		return
	}

	area := w.Area(t.Target.Area)
	if area == nil {
		log.Warn("trigger names unknown area, skipping",
			"trigger", "setState", "target", t.Target.String())
		return
	}

	if t.Target.Kind == RefArea {
		if area.State == nil {
			area.State = make(StateMap)
		}
		area.State.Set(t.Key, t.Value)
		return
	}

	var kind EntityKind
	switch t.Target.Kind {
	case RefAreaNPC:
		kind = KindNPC
	case RefAreaSecret:
		kind = KindSecret
	case RefAreaItem:
		kind = KindItem
	}

	e := area.Entity(kind, t.Target.Name)
	if e == nil {
		log.Warn("trigger names unknown entity, skipping",
			"trigger", "setState", "target", t.Target.String())
		return
	}
	e.SetFlag(t.Key, t.Value)
}

// setItemHeld flips possession of a pre-declared inventory record. Records
// are never synthesized here; content that triggers an add for an undeclared
// item gets a diagnostic instead of a new record.
func (w *WorldState) setItemHeld(name string, held bool, log *slog.Logger) {
	it := w.Player.InventoryItem(name)
	if it == nil {
		log.Warn("trigger names undeclared inventory item, skipping",
			"item", name, "held", held)
		return
	}
	it.SetFlag(FlagInInventory, held)
}
