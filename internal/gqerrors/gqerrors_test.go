package gqerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Author(t *testing.T) {
	assert := assert.New(t)

	err := Author("the world file is missing a start area", "playerData.currentArea unset")

	assert.Equal("playerData.currentArea unset", err.Error())
	assert.Equal("the world file is missing a start area", HumanMessage(err))
}

func Test_Authorf_usesMessageForBothRenderings(t *testing.T) {
	assert := assert.New(t)

	err := Authorf("areas[%q]: duplicate areaId", "square")

	assert.Equal(`areas["square"]: duplicate areaId`, HumanMessage(err))
	assert.Contains(err.Error(), "duplicate areaId")
}

func Test_WrapAuthorf_preservesWrappedError(t *testing.T) {
	assert := assert.New(t)

	sentinel := errors.New("underlying problem")
	err := WrapAuthorf(sentinel, "loading %s", "world.json")

	assert.ErrorIs(err, sentinel)
	assert.Equal("loading world.json", HumanMessage(err))
	assert.Contains(err.Error(), "underlying problem")
}

func Test_HumanMessage_findsAuthorErrorThroughWrapping(t *testing.T) {
	assert := assert.New(t)

	inner := Author("friendly text", "technical text")
	outer := fmt.Errorf("while loading: %w", inner)

	assert.Equal("friendly text", HumanMessage(outer))
}

func Test_HumanMessage_plainError(t *testing.T) {
	assert := assert.New(t)

	err := errors.New("just a regular error")

	assert.Equal("just a regular error", HumanMessage(err))
}
