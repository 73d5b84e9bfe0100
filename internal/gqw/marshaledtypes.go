package gqw

// File marshaledtypes.go holds the raw shapes that world content decodes
// into before validation. Conditions arrive as json.RawMessage because a
// condition may be a single object or an array meaning the AND of its
// elements.

import (
	"encoding/json"
)

// topLevelManifest is the full structure of a GQW manifest file.
type topLevelManifest struct {
	Format string   `toml:"format"`
	Type   string   `toml:"type"`
	Files  []string `toml:"files"`
}

// topLevelWorld is the full structure of a GQW world data file.
type topLevelWorld struct {
	PlayerData            *rawPlayer        `json:"playerData"`
	Areas                 []rawArea         `json:"areas"`
	InventoryDescriptions map[string]string `json:"inventoryDescriptions"`
}

type rawPlayer struct {
	CurrentArea string                 `json:"currentArea"`
	Inventory   []rawEntity            `json:"inventory"`
	PlayerState map[string]interface{} `json:"playerState"`
}

type rawArea struct {
	AreaID      string                 `json:"areaId"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Environment rawEnvironment         `json:"environment"`
	Items       []rawEntity            `json:"items"`
	NPCs        []rawEntity            `json:"npcs"`
	Secrets     []rawEntity            `json:"secrets"`
	Exits       []rawExit              `json:"exits"`
	DummyItems  []string               `json:"dummyItems"`
	AreaState   map[string]interface{} `json:"areaState"`
}

type rawEnvironment struct {
	Additives []rawAdditive `json:"additives"`
}

type rawAdditive struct {
	Text      string          `json:"text"`
	Condition json.RawMessage `json:"condition"`
}

type rawEntity struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// exactly one of these is expected, matching the list that declared the
	// entity; the others stay nil.
	ItemState   map[string]interface{} `json:"itemState"`
	NPCState    map[string]interface{} `json:"npcState"`
	SecretState map[string]interface{} `json:"secretState"`

	Interactions []rawAdditive `json:"interactions"`
	Commands     []rawCommand  `json:"commands"`
}

type rawCommand struct {
	Command       string          `json:"command"`
	Target        string          `json:"target"`
	Type          string          `json:"type"`
	Response      string          `json:"response"`
	ElseResponse  string          `json:"elseResponse"`
	Condition     json.RawMessage `json:"condition"`
	ActionTrigger []rawTrigger    `json:"actionTrigger"`
	Priority      int             `json:"priority"`
}

type rawExit struct {
	Command       string                 `json:"command"`
	Direction     string                 `json:"direction"`
	Destination   string                 `json:"destination"`
	Response      string                 `json:"response"`
	ElseResponse  string                 `json:"elseResponse"`
	Condition     json.RawMessage        `json:"condition"`
	ActionTrigger []rawTrigger           `json:"actionTrigger"`
	Priority      int                    `json:"priority"`
	ExitState     map[string]interface{} `json:"exitState"`
}

type rawCondition struct {
	Type    string      `json:"type"`
	Key     string      `json:"key"`
	Value   interface{} `json:"value"`
	Item    string      `json:"item"`
	NPC     string      `json:"npc"`
	Secret  string      `json:"secret"`
	Command string      `json:"command"`
}

type rawTrigger struct {
	Type   string      `json:"type"`
	Target string      `json:"target"`
	Key    string      `json:"key"`
	Value  interface{} `json:"value"`
	Item   string      `json:"item"`
	AreaID string      `json:"areaId"`
}
