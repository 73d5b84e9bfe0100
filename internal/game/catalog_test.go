package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func findSpec(catalog []*CommandSpec, command string) *CommandSpec {
	for _, spec := range catalog {
		if spec.Command == command {
			return spec
		}
	}
	return nil
}

func Test_BuildCatalog(t *testing.T) {
	assert := assert.New(t)

	w := testWorld()
	area := w.CurrentArea()

	catalog := BuildCatalog(w, area)

	// exits, in-area item commands, and NPC commands are all reachable
	assert.NotNil(findSpec(catalog, "go north"))
	assert.NotNil(findSpec(catalog, "take coin"))
	assert.NotNil(findSpec(catalog, "talk keeper"))

	// the hidden secret contributes nothing yet
	assert.Nil(findSpec(catalog, "push stone"))

	// the held torch contributes its own command plus a synthesized
	// inventory phrase
	assert.NotNil(findSpec(catalog, "light torch"))
	inv := findSpec(catalog, "inventory torch")
	if assert.NotNil(inv) {
		assert.Equal(SpecInventory, inv.Kind)
		assert.Equal("A good dry torch.", inv.Response)
	}

	// unheld inventory records contribute nothing
	assert.Nil(findSpec(catalog, "inventory key"))

	// scenery gets a low-priority look phrase
	dummy := findSpec(catalog, "look fountain")
	if assert.NotNil(dummy) {
		assert.Equal(SpecDummy, dummy.Kind)
		assert.Equal(-1, dummy.Priority)
		assert.Equal("You see nothing special about the fountain.", dummy.Response)
	}

	// the generic fallbacks are always present
	look := findSpec(catalog, "look")
	if assert.NotNil(look) {
		assert.Equal(SpecGeneric, look.Kind)
	}
	assert.NotNil(findSpec(catalog, "inventory"))
}

func Test_BuildCatalog_reflectsMutationsOnRebuild(t *testing.T) {
	assert := assert.New(t)

	w := testWorld()
	area := w.CurrentArea()

	// unhide the secret and pick up the coin
	area.Entity(KindSecret, "Runed Stone").SetFlag(FlagHidden, false)
	area.Entity(KindItem, "Golden Coin").SetFlag(FlagPickedUp, true)
	w.Player.InventoryItem("Golden Coin").SetFlag(FlagInInventory, true)

	catalog := BuildCatalog(w, area)

	assert.NotNil(findSpec(catalog, "push stone"))
	assert.Nil(findSpec(catalog, "take coin"))
	assert.NotNil(findSpec(catalog, "inventory golden coin"))
}

func Test_BuildCatalog_invisibleNPCContributesNothing(t *testing.T) {
	assert := assert.New(t)

	w := testWorld()
	area := w.CurrentArea()

	area.Entity(KindNPC, "Old Keeper").SetFlag(FlagInvisible, true)

	catalog := BuildCatalog(w, area)

	assert.Nil(findSpec(catalog, "talk keeper"))
}

func Test_CommandSpec_Verb(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("take", (&CommandSpec{Command: "take coin"}).Verb())
	assert.Equal("look", (&CommandSpec{Command: "look"}).Verb())
}

func Test_CommandSpec_FromSecret(t *testing.T) {
	assert := assert.New(t)

	plain := &CommandSpec{Command: "take coin", Kind: SpecItem}
	assert.False(plain.FromSecret())

	marked := &CommandSpec{Command: "push stone", Kind: SpecSecret}
	assert.True(marked.FromSecret())

	owned := &CommandSpec{Command: "push stone", Kind: SpecItem}
	owned.SetOwner(&Entity{Kind: KindSecret, Name: "Runed Stone"})
	assert.True(owned.FromSecret())
}

func Test_inventorySpec_descriptionFallbacks(t *testing.T) {
	assert := assert.New(t)

	w := testWorld()

	// a declared inventory description wins over the entity's own
	torch := w.Player.InventoryItem("Torch")
	assert.Equal("A good dry torch.", inventorySpec(w, torch).Response)

	// otherwise the entity description is used
	key := w.Player.InventoryItem("Key")
	assert.Equal("A heavy iron key.", inventorySpec(w, key).Response)

	// and a bare record still gets something to say
	bare := &Entity{Kind: KindItem, Name: "Pebble"}
	assert.Equal("It's your pebble.", inventorySpec(w, bare).Response)
}
