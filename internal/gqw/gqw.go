// Package gqw has functions for loading game data in the GQW (GloamQuest
// Worlds) content format: JSON world data files, optionally bundled by a
// TOML manifest that lists files to load and merge.
package gqw

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"gloamquest/internal/game"
	"gloamquest/internal/gqerrors"
)

const MaxManifestRecursionDepth = 32

var (
	// ErrManifestEmpty is the error returned when a manifest file is read
	// successfully but specifies no files to load.
	ErrManifestEmpty = errors.New("does not list any valid files to include")

	// ErrManifestStackOverflow is the error returned when manifests nest
	// deeper than MaxManifestRecursionDepth.
	ErrManifestStackOverflow = errors.New("too many manifests deep")

	// ErrManifestCircularRef is the error returned when a chain of manifests
	// refers back to a file already being loaded.
	ErrManifestCircularRef = errors.New("manifest inclusion chain refers back to itself")
)

// Manifest contains data loaded from a GQW manifest file.
type Manifest struct {
	Files []string
}

// LoadResourceBundle loads a world from the given path. A ".toml" path is
// treated as a manifest whose files (world data or further manifests,
// relative to it) are all loaded and merged into a single world before
// validation; anything else is read as a single JSON world data file.
func LoadResourceBundle(path string) (*game.WorldState, error) {
	merged, err := recursiveReadBundle(path, nil)
	if err != nil {
		return nil, err
	}
	return parseWorldData(merged)
}

// LoadWorldFile loads and validates a world from a single JSON world data
// file.
func LoadWorldFile(path string) (*game.WorldState, error) {
	top, err := readWorldFile(path)
	if err != nil {
		return nil, err
	}
	return parseWorldData(top)
}

// LoadManifestFile loads manifest data from a GQW manifest file.
func LoadManifestFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}

	var top topLevelManifest
	if err := toml.Unmarshal(data, &top); err != nil {
		return Manifest{}, gqerrors.WrapAuthorf(err, "%s: not a valid manifest", path)
	}
	return Manifest{Files: top.Files}, nil
}

func recursiveReadBundle(path string, stack []string) (topLevelWorld, error) {
	var merged topLevelWorld

	abs, err := filepath.Abs(path)
	if err != nil {
		return merged, err
	}
	for _, seen := range stack {
		if seen == abs {
			return merged, gqerrors.WrapAuthorf(ErrManifestCircularRef, "%s", path)
		}
	}
	if len(stack) >= MaxManifestRecursionDepth {
		return merged, gqerrors.WrapAuthorf(ErrManifestStackOverflow, "%s", path)
	}

	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return readWorldFile(path)
	}

	manif, err := LoadManifestFile(path)
	if err != nil {
		return merged, err
	}
	if len(manif.Files) == 0 {
		return merged, gqerrors.WrapAuthorf(ErrManifestEmpty, "%s", path)
	}

	stack = append(stack, abs)
	dir := filepath.Dir(path)
	for _, f := range manif.Files {
		part, err := recursiveReadBundle(filepath.Join(dir, f), stack)
		if err != nil {
			return merged, err
		}
		if err := mergeWorld(&merged, part); err != nil {
			return merged, gqerrors.WrapAuthorf(err, "%s", f)
		}
	}

	return merged, nil
}

func readWorldFile(path string) (topLevelWorld, error) {
	var top topLevelWorld

	data, err := os.ReadFile(path)
	if err != nil {
		return top, err
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return top, gqerrors.WrapAuthorf(err, "%s: not a valid world data file", path)
	}
	return top, nil
}

// mergeWorld folds one loaded file into the bundle being assembled. Exactly
// one file in a bundle may declare playerData; areas accumulate and are
// checked for ID conflicts during parsing; inventory descriptions merge with
// later files winning.
func mergeWorld(into *topLevelWorld, part topLevelWorld) error {
	if part.PlayerData != nil {
		if into.PlayerData != nil {
			return errors.New("bundle declares playerData more than once")
		}
		into.PlayerData = part.PlayerData
	}

	into.Areas = append(into.Areas, part.Areas...)

	if part.InventoryDescriptions != nil {
		if into.InventoryDescriptions == nil {
			into.InventoryDescriptions = map[string]string{}
		}
		for k, v := range part.InventoryDescriptions {
			into.InventoryDescriptions[k] = v
		}
	}

	return nil
}
