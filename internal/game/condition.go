package game

// File condition.go holds the condition tagged union and its recursive
// evaluator. Conditions are parsed from content at load time; evaluation is a
// pure read over the WorldState.

// CondKind discriminates the condition variants.
type CondKind int

const (
	// CondAll is the AND of every condition in All.
	CondAll CondKind = iota

	CondAreaState
	CondHasItem
	CondLacksItem
	CondPlayerState
	CondNPCState
	CondItemState
	CondSecretState
	CondExitState
)

// Condition is one node of a predicate over world state. Which fields are
// meaningful depends on Kind:
//
//   - CondAll uses All.
//   - CondAreaState and CondPlayerState use Key and Value.
//   - CondHasItem and CondLacksItem use Name (the item).
//   - CondNPCState and CondExitState use Name (the NPC, or the exit's command
//     phrase) plus Key and Value.
//   - CondItemState and CondSecretState use Key and Value; Name is optional
//     and falls back to the target of the command being evaluated.
type Condition struct {
	Kind  CondKind
	Key   string
	Value interface{}
	Name  string
	All   []*Condition
}

// Evaluate reports whether the condition currently holds. A nil condition
// always passes. Anything that cannot be resolved, such as a reference to an
// entity that is not present, evaluates false rather than erroring; the only
// exception is the absent-flag default, which makes undeclared visibility
// flags read as false (visible).
//
// itemCtx is the name of the item or secret the enclosing command targets,
// used by itemState and secretState conditions that do not name one
// themselves.
func (w *WorldState) Evaluate(cond *Condition, area *Area, itemCtx string) bool {
	if cond == nil {
		return true
	}

	switch cond.Kind {
	case CondAll:
		for _, c := range cond.All {
			if !w.Evaluate(c, area, itemCtx) {
				return false
			}
		}
		return true
	case CondAreaState:
		if area == nil {
			return false
		}
		return flagEquals(area.State, cond.Key, cond.Value)
	case CondPlayerState:
		return flagEquals(w.Player.State, cond.Key, cond.Value)
	case CondHasItem:
		return w.Player.Holds(cond.Name)
	case CondLacksItem:
		return !w.Player.Holds(cond.Name)
	case CondNPCState:
		if area == nil {
			return false
		}
		npc := area.Entity(KindNPC, cond.Name)
		if npc == nil {
			return false
		}
		return flagEquals(npc.State, cond.Key, cond.Value)
	case CondItemState:
		name := cond.Name
		if name == "" {
			name = itemCtx
		}
		// the same item name can exist both as an inventory record and as an
		// area record; the inventory copy wins.
		if it := w.Player.InventoryItem(name); it != nil {
			return flagEquals(it.State, cond.Key, cond.Value)
		}
		if area == nil {
			return false
		}
		it := area.Entity(KindItem, name)
		if it == nil {
			return false
		}
		return flagEquals(it.State, cond.Key, cond.Value)
	case CondSecretState:
		name := cond.Name
		if name == "" {
			name = itemCtx
		}
		if area == nil {
			return false
		}
		sec := area.Entity(KindSecret, name)
		if sec == nil {
			return false
		}
		return flagEquals(sec.State, cond.Key, cond.Value)
	case CondExitState:
		if area == nil {
			return false
		}
		ex := area.Exit(cond.Name)
		if ex == nil {
			return false
		}
		return flagEquals(ex.State, cond.Key, cond.Value)
	}

	// an unrecognized kind fails closed; loading rejects these, so reaching
	// here means a hand-built Condition with a bogus Kind.
	return false
}

// flagEquals compares the stored flag value against the wanted one, treating
// an absent flag as false and normalizing numeric types so that a 1 declared
// in Go compares equal to the float64 that JSON decoding produces.
func flagEquals(m StateMap, key string, want interface{}) bool {
	got := m.Flag(key)
	if gn, ok := asFloat(got); ok {
		if wn, wok := asFloat(want); wok {
			return gn == wn
		}
		return false
	}
	return got == want
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
