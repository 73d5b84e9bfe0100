package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SelectBest_poolPreference(t *testing.T) {
	exact := &CommandSpec{Command: "push door", Target: "door", Response: "exact"}
	wholeWord := &CommandSpec{Command: "push stone", Target: "old stone door", Response: "whole word"}
	substring := &CommandSpec{Command: "push frame", Target: "doorframe", Response: "substring"}

	testCases := []struct {
		name    string
		catalog []*CommandSpec
		expect  *CommandSpec
	}{
		{
			name:    "exact phrase beats whole-word match",
			catalog: []*CommandSpec{wholeWord, exact},
			expect:  exact,
		},
		{
			name:    "whole-word match beats substring match",
			catalog: []*CommandSpec{substring, wholeWord},
			expect:  wholeWord,
		},
		{
			name:    "substring match when nothing better",
			catalog: []*CommandSpec{substring},
			expect:  substring,
		},
		{
			name:    "no match at all",
			catalog: []*CommandSpec{{Command: "pull lever", Target: "lever"}},
			expect:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			w := testWorld()
			area := w.CurrentArea()

			actual := SelectBest("push", "door", tc.catalog, w, area)

			assert.Same(tc.expect, actual)
		})
	}
}

func Test_SelectBest_priorityOverride(t *testing.T) {
	assert := assert.New(t)

	w := testWorld()
	area := w.CurrentArea()
	catalog := BuildCatalog(w, area)

	// without the coin the override's condition fails and the base wins
	best := SelectBest("talk", "old keeper", catalog, w, area)
	if assert.NotNil(best) {
		assert.Equal("The keeper nods at you.", best.Response)
	}

	w.Player.InventoryItem("Golden Coin").SetFlag(FlagInInventory, true)

	best = SelectBest("talk", "old keeper", catalog, w, area)
	if assert.NotNil(best) {
		assert.Equal("The keeper eyes your coin greedily.", best.Response)
	}
}

func Test_SelectBest_tieGoesToCatalogOrder(t *testing.T) {
	assert := assert.New(t)

	w := testWorld()
	area := w.CurrentArea()

	first := &CommandSpec{Command: "pull rope", Target: "rope", Response: "first"}
	second := &CommandSpec{Command: "pull rope", Target: "rope", Response: "second"}

	best := SelectBest("pull", "rope", []*CommandSpec{first, second}, w, area)

	assert.Same(first, best)
}

func Test_SelectBest_noTargetKeepsOnlyBareSpecs(t *testing.T) {
	assert := assert.New(t)

	w := testWorld()
	area := w.CurrentArea()

	targeted := &CommandSpec{Command: "look fountain", Target: "fountain"}
	bare := &CommandSpec{Command: "look", Kind: SpecGeneric}

	best := SelectBest("look", "", []*CommandSpec{targeted, bare}, w, area)

	assert.Same(bare, best)
}

func Test_SelectBest_allCandidatesFailingConditionsMeansNil(t *testing.T) {
	assert := assert.New(t)

	w := testWorld()
	area := w.CurrentArea()

	gated := &CommandSpec{
		Command:   "go north",
		Target:    "north",
		Condition: &Condition{Kind: CondHasItem, Name: "Key"},
	}

	assert.Nil(SelectBest("go", "north", []*CommandSpec{gated}, w, area))

	// but the candidate selector still surfaces it for denial text
	assert.Same(gated, selectCandidate("go", "north", []*CommandSpec{gated}))
}
