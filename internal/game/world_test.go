package game

// Shared world fixture for the package's tests: a two-area world with an
// item to take, an NPC with a priority-overridden response, a hidden secret,
// scenery, and a locked exit.

func testWorld() *WorldState {
	coin := &Entity{
		Kind:        KindItem,
		Name:        "Golden Coin",
		Description: "A shiny coin half-buried in the dirt.",
	}
	coin.Commands = []*CommandSpec{{
		Command:  "take coin",
		Target:   "golden coin",
		Kind:     SpecItem,
		Response: "You take the coin.",
		Triggers: []Trigger{
			{Kind: TriggerAddItem, Item: "Golden Coin"},
			{
				Kind:   TriggerSetState,
				Target: TargetRef{Kind: RefAreaItem, Area: "square", Name: "Golden Coin"},
				Key:    FlagPickedUp,
				Value:  true,
			},
		},
	}}
	coin.Commands[0].SetOwner(coin)

	keeper := &Entity{
		Kind:        KindNPC,
		Name:        "Old Keeper",
		Description: "A stooped keeper leaning on a cane.",
	}
	keeper.Commands = []*CommandSpec{
		{
			Command:  "talk keeper",
			Target:   "old keeper",
			Kind:     SpecNPC,
			Response: "The keeper nods at you.",
		},
		{
			Command:   "talk keeper",
			Target:    "old keeper",
			Kind:      SpecNPC,
			Priority:  1,
			Condition: &Condition{Kind: CondHasItem, Name: "Golden Coin"},
			Response:  "The keeper eyes your coin greedily.",
		},
	}
	for _, c := range keeper.Commands {
		c.SetOwner(keeper)
	}

	stone := &Entity{
		Kind:        KindSecret,
		Name:        "Runed Stone",
		Description: "Faint runes cover the stone.",
		State:       StateMap{FlagHidden: true},
	}
	stone.Commands = []*CommandSpec{{
		Command:  "push stone",
		Target:   "runed stone",
		Kind:     SpecSecret,
		Response: "The stone grinds aside.",
	}}
	stone.Commands[0].SetOwner(stone)

	square := &Area{
		ID:          "square",
		Name:        "Village Square",
		Description: "A quiet square ringed by crooked houses.",
		Additives: []Additive{{
			Text:      "Torchlight flickers in the gloom.",
			Condition: &Condition{Kind: CondAreaState, Key: "litTorches", Value: true},
		}},
		Items:      []*Entity{coin},
		NPCs:       []*Entity{keeper},
		Secrets:    []*Entity{stone},
		DummyItems: []string{"fountain"},
		Exits: []*CommandSpec{{
			Command:      "go north",
			Target:       "north",
			Kind:         SpecExit,
			Direction:    "north",
			Destination:  "forest",
			Condition:    &Condition{Kind: CondHasItem, Name: "Key"},
			ElseResponse: "The door is locked.",
		}},
		State: StateMap{},
	}

	forest := &Area{
		ID:          "forest",
		Name:        "Gloaming Forest",
		Description: "Trees crowd close here, dripping with moss.",
	}

	invCoin := &Entity{Kind: KindItem, Name: "Golden Coin", Description: "Your hard-won coin."}
	key := &Entity{Kind: KindItem, Name: "Key", Description: "A heavy iron key."}
	torch := &Entity{
		Kind:        KindItem,
		Name:        "Torch",
		Description: "A pitch-soaked torch.",
		State:       StateMap{FlagInInventory: true},
	}
	torch.Commands = []*CommandSpec{{
		Command:  "light torch",
		Target:   "torch",
		Kind:     SpecItem,
		Response: "The torch sputters to life.",
	}}
	torch.Commands[0].SetOwner(torch)

	player := &PlayerState{
		CurrentArea: "square",
		Inventory:   []*Entity{invCoin, key, torch},
		State:       StateMap{},
	}

	return NewWorldState(player, []*Area{square, forest}, map[string]string{
		"Torch": "A good dry torch.",
	})
}
