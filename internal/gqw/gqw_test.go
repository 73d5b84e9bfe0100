package gqw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func Test_LoadWorldFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := writeTestFile(t, dir, "world.json", validWorldJSON)

	w, err := LoadWorldFile(path)

	if assert.NoError(err) {
		assert.Equal("square", w.Player.CurrentArea)
		assert.Len(w.Areas, 2)
	}
}

func Test_LoadWorldFile_notJSON(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := writeTestFile(t, dir, "world.json", "this is not json at all")

	_, err := LoadWorldFile(path)

	assert.Error(err)
}

func Test_LoadResourceBundle_singleWorldFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := writeTestFile(t, dir, "world.json", validWorldJSON)

	w, err := LoadResourceBundle(path)

	if assert.NoError(err) {
		assert.Equal("square", w.Player.CurrentArea)
	}
}

func Test_LoadResourceBundle_manifestMergesFiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	writeTestFile(t, dir, "player.json", `{
		"playerData": {"currentArea": "square"},
		"areas": [{"areaId": "square", "name": "Village Square", "description": "A square."}],
		"inventoryDescriptions": {"Torch": "A good dry torch."}
	}`)
	writeTestFile(t, dir, "forest.json", `{
		"areas": [{"areaId": "forest", "name": "Gloaming Forest", "description": "Trees."}],
		"inventoryDescriptions": {"Key": "A heavy iron key."}
	}`)
	manifest := writeTestFile(t, dir, "world.toml", `
format = "gqw"
type = "manifest"
files = ["player.json", "forest.json"]
`)

	w, err := LoadResourceBundle(manifest)

	if assert.NoError(err) {
		assert.Len(w.Areas, 2)
		assert.NotNil(w.Area("square"))
		assert.NotNil(w.Area("forest"))
		assert.Equal("A good dry torch.", w.InventoryDescriptions["Torch"])
		assert.Equal("A heavy iron key.", w.InventoryDescriptions["Key"])
	}
}

func Test_LoadResourceBundle_nestedManifests(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	writeTestFile(t, dir, "player.json", `{
		"playerData": {"currentArea": "square"},
		"areas": [{"areaId": "square", "name": "Village Square"}]
	}`)
	writeTestFile(t, dir, "inner.toml", `
format = "gqw"
type = "manifest"
files = ["player.json"]
`)
	outer := writeTestFile(t, dir, "outer.toml", `
format = "gqw"
type = "manifest"
files = ["inner.toml"]
`)

	w, err := LoadResourceBundle(outer)

	if assert.NoError(err) {
		assert.NotNil(w.Area("square"))
	}
}

func Test_LoadResourceBundle_emptyManifest(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	manifest := writeTestFile(t, dir, "world.toml", `
format = "gqw"
type = "manifest"
files = []
`)

	_, err := LoadResourceBundle(manifest)

	assert.ErrorIs(err, ErrManifestEmpty)
}

func Test_LoadResourceBundle_circularManifest(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	manifest := writeTestFile(t, dir, "world.toml", `
format = "gqw"
type = "manifest"
files = ["world.toml"]
`)

	_, err := LoadResourceBundle(manifest)

	assert.ErrorIs(err, ErrManifestCircularRef)
}

func Test_LoadResourceBundle_duplicatePlayerData(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	writeTestFile(t, dir, "one.json", `{
		"playerData": {"currentArea": "a"},
		"areas": [{"areaId": "a", "name": "A"}]
	}`)
	writeTestFile(t, dir, "two.json", `{
		"playerData": {"currentArea": "a"}
	}`)
	manifest := writeTestFile(t, dir, "world.toml", `
format = "gqw"
type = "manifest"
files = ["one.json", "two.json"]
`)

	_, err := LoadResourceBundle(manifest)

	if assert.Error(err) {
		assert.Contains(err.Error(), "playerData more than once")
	}
}

func Test_LoadManifestFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := writeTestFile(t, dir, "world.toml", `
format = "gqw"
type = "manifest"
files = ["a.json", "b.json"]
`)

	manif, err := LoadManifestFile(path)

	if assert.NoError(err) {
		assert.Equal([]string{"a.json", "b.json"}, manif.Files)
	}
}
