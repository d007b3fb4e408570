package main

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/ini.v1"
)

const layoutSection = "mansion"

//go:embed mansion.ini
var mansionLayout []byte

var errInvalidLayout = errors.New("invalid mansion layout")

// loadMansion builds the room tree described by an INI layout and returns
// its root. Every room must be reachable from the root exactly once.
func loadMansion(data []byte) (*Room, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if !cfg.HasSection(layoutSection) {
		return nil, fmt.Errorf("%w: missing [%s] section", errInvalidLayout, layoutSection)
	}
	rootKey := cfg.Section(layoutSection).Key("Root").String()

	// First pass: create rooms
	rooms := map[string]*Room{}
	for _, sec := range cfg.Sections() {
		key := sec.Name()
		if key == ini.DefaultSection || key == layoutSection {
			continue
		}
		name := sec.Key("Name").String()
		if name == "" {
			return nil, fmt.Errorf("%w: room %q has no name", errInvalidLayout, key)
		}
		rooms[key] = createRoom(name, sec.Key("Clue").String())
	}

	root, ok := rooms[rootKey]
	if !ok {
		return nil, fmt.Errorf("%w: root room %q not found", errInvalidLayout, rootKey)
	}

	// Second pass: link passages
	owned := map[string]string{}
	link := func(parent, child string) (*Room, error) {
		if child == "" {
			return nil, nil
		}
		r, ok := rooms[child]
		if !ok {
			return nil, fmt.Errorf("%w: room %q leads to unknown room %q", errInvalidLayout, parent, child)
		}
		if child == rootKey {
			return nil, fmt.Errorf("%w: room %q leads back to the root", errInvalidLayout, parent)
		}
		if prev, dup := owned[child]; dup {
			return nil, fmt.Errorf("%w: room %q is reachable from both %q and %q", errInvalidLayout, child, prev, parent)
		}
		owned[child] = parent
		return r, nil
	}
	for key, r := range rooms {
		sec := cfg.Section(key)
		if r.Left, err = link(key, sec.Key("Left").String()); err != nil {
			return nil, err
		}
		if r.Right, err = link(key, sec.Key("Right").String()); err != nil {
			return nil, err
		}
	}

	if n := countRooms(root); n != len(rooms) {
		return nil, fmt.Errorf("%w: %d of %d rooms are unreachable from %q", errInvalidLayout, len(rooms)-n, len(rooms), rootKey)
	}
	return root, nil
}

func buildMansion() (*Room, error) {
	return loadMansion(mansionLayout)
}
