package key

import (
	"slices"
	"strings"
)

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	// ModMeta is the Windows key. Notepad++ shortcuts cannot use it.
	ModMeta
)

// modifiers lists each modifier in display order with the names a
// shortcut string may spell it with.
var modifiers = []struct {
	mod     Modifier
	display string
	names   []string
}{
	{ModCtrl, "Ctrl", []string{"ctrl", "control", "c"}},
	{ModAlt, "Alt", []string{"alt", "a"}},
	{ModShift, "Shift", []string{"shift", "s"}},
	{ModMeta, "Meta", []string{"meta", "win", "super", "m"}},
}

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// String formats m the way Notepad++ menus show it, e.g. "Ctrl+Alt".
func (m Modifier) String() string {
	var held []string
	for _, d := range modifiers {
		if m.Has(d.mod) {
			held = append(held, d.display)
		}
	}
	return strings.Join(held, "+")
}

// ModifierFromName returns the modifier spelled name (case-insensitive),
// or ModNone.
func ModifierFromName(name string) Modifier {
	name = strings.ToLower(name)
	for _, d := range modifiers {
		if slices.Contains(d.names, name) {
			return d.mod
		}
	}
	return ModNone
}
