package gloamquest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testWorldJSON = `{
	"playerData": {"currentArea": "room"},
	"areas": [
		{
			"areaId": "room",
			"name": "Tiny Room",
			"description": "Four walls and not much else.",
			"dummyItems": ["walls"]
		}
	]
}`

func writeTestWorld(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "world.json")
	if err := os.WriteFile(path, []byte(testWorldJSON), 0o644); err != nil {
		t.Fatalf("write world file: %v", err)
	}
	return path
}

func Test_Engine_RunUntilQuit(t *testing.T) {
	assert := assert.New(t)

	in := strings.NewReader("look at walls\nquit\n")
	out := &bytes.Buffer{}

	eng, err := New(in, out, writeTestWorld(t), false)
	if !assert.NoError(err) {
		return
	}

	if !assert.NoError(eng.RunUntilQuit()) {
		return
	}
	assert.NoError(eng.Close())

	text := out.String()
	assert.Contains(text, "Welcome to GloamQuest")
	assert.Contains(text, "You are in: Tiny Room")
	assert.Contains(text, "You see nothing special about the walls.")
	assert.Contains(text, "Goodbye")
}

func Test_Engine_RunUntilQuit_endOfInputAlsoQuits(t *testing.T) {
	assert := assert.New(t)

	in := strings.NewReader("look\n")
	out := &bytes.Buffer{}

	eng, err := New(in, out, writeTestWorld(t), false)
	if !assert.NoError(err) {
		return
	}

	if assert.NoError(eng.RunUntilQuit()) {
		assert.Contains(out.String(), "Goodbye")
	}
}

func Test_Engine_New_missingWorldFile(t *testing.T) {
	assert := assert.New(t)

	_, err := New(strings.NewReader(""), &bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.json"), false)

	assert.Error(err)
}
