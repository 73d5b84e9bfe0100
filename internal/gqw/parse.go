package gqw

// File parse.go validates raw content and converts it into engine types.
// Loose stringly-typed conditions and triggers from JSON become the engine's
// tagged unions here, and anything with an unrecognized tag or a malformed
// target path is rejected at load instead of failing silently at play time.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"gloamquest/internal/game"
	"gloamquest/internal/gqerrors"
)

func parseWorldData(top topLevelWorld) (*game.WorldState, error) {
	if top.PlayerData == nil {
		return nil, gqerrors.Authorf("world content defines no playerData")
	}

	seenAreas := map[string]bool{}
	areas := make([]*game.Area, 0, len(top.Areas))
	for _, ra := range top.Areas {
		if ra.AreaID == "" {
			return nil, gqerrors.Authorf("area %q: empty areaId", ra.Name)
		}
		if seenAreas[ra.AreaID] {
			return nil, gqerrors.Authorf("areas[%q]: duplicate areaId", ra.AreaID)
		}
		seenAreas[ra.AreaID] = true

		area, err := parseArea(ra)
		if err != nil {
			return nil, gqerrors.WrapAuthorf(err, "areas[%q]", ra.AreaID)
		}
		areas = append(areas, area)
	}

	player, err := parsePlayer(*top.PlayerData)
	if err != nil {
		return nil, gqerrors.WrapAuthorf(err, "playerData")
	}

	world := game.NewWorldState(player, areas, top.InventoryDescriptions)

	if world.Area(player.CurrentArea) == nil {
		return nil, gqerrors.Authorf("playerData: currentArea: no area with ID %q exists", player.CurrentArea)
	}
	if err := checkReferences(world); err != nil {
		return nil, err
	}

	return world, nil
}

func parsePlayer(rp rawPlayer) (*game.PlayerState, error) {
	p := &game.PlayerState{
		CurrentArea: rp.CurrentArea,
		State:       game.StateMap(rp.PlayerState),
	}

	seen := map[string]bool{}
	for _, re := range rp.Inventory {
		e, err := parseEntity(re, game.KindItem)
		if err != nil {
			return nil, fmt.Errorf("inventory[%q]: %w", re.Name, err)
		}
		key := strings.ToLower(e.Name)
		if seen[key] {
			return nil, fmt.Errorf("inventory[%q]: duplicate item name", re.Name)
		}
		seen[key] = true
		p.Inventory = append(p.Inventory, e)
	}

	return p, nil
}

func parseArea(ra rawArea) (*game.Area, error) {
	area := &game.Area{
		ID:          ra.AreaID,
		Name:        ra.Name,
		Description: ra.Description,
		DummyItems:  ra.DummyItems,
		State:       game.StateMap(ra.AreaState),
	}

	for i, add := range ra.Environment.Additives {
		cond, err := parseCondition(add.Condition)
		if err != nil {
			return nil, fmt.Errorf("environment.additives[%d]: %w", i, err)
		}
		area.Additives = append(area.Additives, game.Additive{Text: add.Text, Condition: cond})
	}

	var err error
	if area.Items, err = parseEntities(ra.Items, game.KindItem); err != nil {
		return nil, err
	}
	if area.NPCs, err = parseEntities(ra.NPCs, game.KindNPC); err != nil {
		return nil, err
	}
	if area.Secrets, err = parseEntities(ra.Secrets, game.KindSecret); err != nil {
		return nil, err
	}

	for _, rx := range ra.Exits {
		ex, err := parseExit(rx)
		if err != nil {
			return nil, fmt.Errorf("exits[%q]: %w", rx.Command, err)
		}
		area.Exits = append(area.Exits, ex)
	}

	return area, nil
}

func parseEntities(raws []rawEntity, kind game.EntityKind) ([]*game.Entity, error) {
	var out []*game.Entity
	seen := map[string]bool{}
	for _, re := range raws {
		e, err := parseEntity(re, kind)
		if err != nil {
			return nil, fmt.Errorf("%ss[%q]: %w", kind, re.Name, err)
		}
		key := strings.ToLower(e.Name)
		if seen[key] {
			return nil, fmt.Errorf("%ss[%q]: duplicate name", kind, re.Name)
		}
		seen[key] = true
		out = append(out, e)
	}
	return out, nil
}

func parseEntity(re rawEntity, kind game.EntityKind) (*game.Entity, error) {
	if re.Name == "" {
		return nil, fmt.Errorf("entity has no name")
	}

	e := &game.Entity{
		Kind:        kind,
		Name:        re.Name,
		Description: re.Description,
		State:       entityState(re, kind),
	}

	for i, inter := range re.Interactions {
		cond, err := parseCondition(inter.Condition)
		if err != nil {
			return nil, fmt.Errorf("interactions[%d]: %w", i, err)
		}
		e.Interactions = append(e.Interactions, game.Interaction{Text: inter.Text, Condition: cond})
	}

	for _, rc := range re.Commands {
		spec, err := parseCommandSpec(rc, specKindFor(kind))
		if err != nil {
			return nil, fmt.Errorf("commands[%q]: %w", rc.Command, err)
		}
		if spec.Target == "" {
			spec.Target = strings.ToLower(re.Name)
		}
		spec.SetOwner(e)
		e.Commands = append(e.Commands, spec)
	}

	return e, nil
}

// entityState picks the declared state map matching the entity's kind,
// falling back across the three keys so that, say, an inventory item
// declared with itemState round-trips no matter which list held it.
func entityState(re rawEntity, kind game.EntityKind) game.StateMap {
	switch kind {
	case game.KindNPC:
		if re.NPCState != nil {
			return game.StateMap(re.NPCState)
		}
	case game.KindSecret:
		if re.SecretState != nil {
			return game.StateMap(re.SecretState)
		}
	}
	if re.ItemState != nil {
		return game.StateMap(re.ItemState)
	}
	return nil
}

func specKindFor(kind game.EntityKind) game.SpecKind {
	switch kind {
	case game.KindNPC:
		return game.SpecNPC
	case game.KindSecret:
		return game.SpecSecret
	}
	return game.SpecItem
}

func parseCommandSpec(rc rawCommand, defaultKind game.SpecKind) (*game.CommandSpec, error) {
	if rc.Command == "" {
		return nil, fmt.Errorf("empty command phrase")
	}

	kind := defaultKind
	if rc.Type != "" {
		k, ok := specKinds[rc.Type]
		if !ok {
			return nil, fmt.Errorf("unknown command type %q", rc.Type)
		}
		kind = k
	}

	cond, err := parseCondition(rc.Condition)
	if err != nil {
		return nil, err
	}
	triggers, err := parseTriggers(rc.ActionTrigger)
	if err != nil {
		return nil, err
	}

	return &game.CommandSpec{
		Command:      strings.ToLower(rc.Command),
		Target:       strings.ToLower(rc.Target),
		Kind:         kind,
		Response:     rc.Response,
		ElseResponse: rc.ElseResponse,
		Condition:    cond,
		Triggers:     triggers,
		Priority:     rc.Priority,
	}, nil
}

var specKinds = map[string]game.SpecKind{
	"exit":      game.SpecExit,
	"item":      game.SpecItem,
	"npc":       game.SpecNPC,
	"secret":    game.SpecSecret,
	"inventory": game.SpecInventory,
	"dummy":     game.SpecDummy,
	"generic":   game.SpecGeneric,
}

func parseExit(rx rawExit) (*game.CommandSpec, error) {
	if rx.Command == "" {
		return nil, fmt.Errorf("empty command phrase")
	}

	cond, err := parseCondition(rx.Condition)
	if err != nil {
		return nil, err
	}
	triggers, err := parseTriggers(rx.ActionTrigger)
	if err != nil {
		return nil, err
	}

	target := strings.ToLower(rx.Direction)
	if target == "" {
		// fall back to the phrase minus its verb so fuzzy targets still hit
		if i := strings.IndexByte(rx.Command, ' '); i != -1 {
			target = strings.ToLower(rx.Command[i+1:])
		}
	}

	return &game.CommandSpec{
		Command:      strings.ToLower(rx.Command),
		Target:       target,
		Kind:         game.SpecExit,
		Response:     rx.Response,
		ElseResponse: rx.ElseResponse,
		Condition:    cond,
		Triggers:     triggers,
		Priority:     rx.Priority,
		Direction:    rx.Direction,
		Destination:  rx.Destination,
		State:        game.StateMap(rx.ExitState),
	}, nil
}

// parseCondition converts a raw condition into the engine's tagged union. A
// JSON array means the AND of its elements; absence means always-passes and
// parses to nil.
func parseCondition(raw json.RawMessage) (*game.Condition, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, fmt.Errorf("condition list: %w", err)
		}
		all := make([]*game.Condition, 0, len(elems))
		for i, el := range elems {
			c, err := parseCondition(el)
			if err != nil {
				return nil, fmt.Errorf("condition[%d]: %w", i, err)
			}
			if c != nil {
				all = append(all, c)
			}
		}
		return &game.Condition{Kind: game.CondAll, All: all}, nil
	}

	var rc rawCondition
	if err := json.Unmarshal(trimmed, &rc); err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}

	switch rc.Type {
	case "areaState":
		return &game.Condition{Kind: game.CondAreaState, Key: rc.Key, Value: rc.Value}, nil
	case "playerState":
		return &game.Condition{Kind: game.CondPlayerState, Key: rc.Key, Value: rc.Value}, nil
	case "hasItem":
		return &game.Condition{Kind: game.CondHasItem, Name: rc.Item}, nil
	case "doesNotHaveItem":
		return &game.Condition{Kind: game.CondLacksItem, Name: rc.Item}, nil
	case "npcState":
		return &game.Condition{Kind: game.CondNPCState, Name: rc.NPC, Key: rc.Key, Value: rc.Value}, nil
	case "itemState":
		return &game.Condition{Kind: game.CondItemState, Name: rc.Item, Key: rc.Key, Value: rc.Value}, nil
	case "secretState":
		return &game.Condition{Kind: game.CondSecretState, Name: rc.Secret, Key: rc.Key, Value: rc.Value}, nil
	case "exitState":
		return &game.Condition{Kind: game.CondExitState, Name: rc.Command, Key: rc.Key, Value: rc.Value}, nil
	}
	return nil, fmt.Errorf("unknown condition type %q", rc.Type)
}

func parseTriggers(raws []rawTrigger) ([]game.Trigger, error) {
	var out []game.Trigger
	for i, rt := range raws {
		t, err := parseTrigger(rt)
		if err != nil {
			return nil, fmt.Errorf("actionTrigger[%d]: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseTrigger(rt rawTrigger) (game.Trigger, error) {
	switch rt.Type {
	case "setState":
		ref, err := game.ParseTargetRef(rt.Target)
		if err != nil {
			return game.Trigger{}, err
		}
		if rt.Key == "" {
			return game.Trigger{}, fmt.Errorf("setState trigger has no key")
		}
		return game.Trigger{Kind: game.TriggerSetState, Target: ref, Key: rt.Key, Value: rt.Value}, nil
	case "addItemToInventory":
		if rt.Item == "" {
			return game.Trigger{}, fmt.Errorf("addItemToInventory trigger has no item")
		}
		return game.Trigger{Kind: game.TriggerAddItem, Item: rt.Item}, nil
	case "removeItemFromInventory":
		if rt.Item == "" {
			return game.Trigger{}, fmt.Errorf("removeItemFromInventory trigger has no item")
		}
		return game.Trigger{Kind: game.TriggerRemoveItem, Item: rt.Item}, nil
	case "setPlayerArea":
		if rt.AreaID == "" {
			return game.Trigger{}, fmt.Errorf("setPlayerArea trigger has no areaId")
		}
		return game.Trigger{Kind: game.TriggerSetPlayerArea, AreaID: rt.AreaID}, nil
	}
	return game.Trigger{}, fmt.Errorf("unknown trigger type %q", rt.Type)
}

// checkReferences walks the assembled world verifying cross-references that
// are knowable statically. Unknown exit destinations and setPlayerArea
// targets are load errors; a setState path naming an area or entity that
// does not exist is only warned about, because play degrades gracefully by
// skipping that step.
func checkReferences(w *game.WorldState) error {
	for _, a := range w.Areas {
		for _, ex := range a.Exits {
			if ex.Destination != "" && w.Area(ex.Destination) == nil {
				return gqerrors.Authorf("areas[%q]: exits[%q]: destination: no area with ID %q exists",
					a.ID, ex.Command, ex.Destination)
			}
			warnDanglingTriggers(w, a.ID, ex.Command, ex.Triggers)
			if err := checkTriggerAreas(w, a.ID, ex.Command, ex.Triggers); err != nil {
				return err
			}
		}
		for _, list := range [][]*game.Entity{a.Items, a.NPCs, a.Secrets} {
			for _, e := range list {
				for _, spec := range e.Commands {
					warnDanglingTriggers(w, a.ID, spec.Command, spec.Triggers)
					if err := checkTriggerAreas(w, a.ID, spec.Command, spec.Triggers); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func checkTriggerAreas(w *game.WorldState, areaID, command string, triggers []game.Trigger) error {
	for _, t := range triggers {
		if t.Kind == game.TriggerSetPlayerArea && w.Area(t.AreaID) == nil {
			return gqerrors.Authorf("areas[%q]: command %q: setPlayerArea: no area with ID %q exists",
				areaID, command, t.AreaID)
		}
	}
	return nil
}

func warnDanglingTriggers(w *game.WorldState, areaID, command string, triggers []game.Trigger) {
	for _, t := range triggers {
		if t.Kind != game.TriggerSetState || t.Target.Kind == game.RefInventoryItem {
			continue
		}
		if w.Area(t.Target.Area) == nil {
			slog.Warn("setState trigger names unknown area",
				"area", areaID, "command", command, "target", t.Target.String())
		}
	}
}
