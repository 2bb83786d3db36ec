package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/nppbridge/internal/npp"
)

// Parse errors
var (
	ErrEmptySpec      = errors.New("empty key string")
	ErrInvalidSpec    = errors.New("invalid key string")
	ErrUnsupportedMod = errors.New("modifier not supported by host shortcuts")
)

// Chord is a key together with the modifiers held while pressing it.
type Chord struct {
	Key       Key
	Modifiers Modifier
}

// String returns the chord in "Ctrl+Alt+K" form.
func (c Chord) String() string {
	if c.Modifiers == ModNone {
		return c.Key.String()
	}
	return c.Modifiers.String() + "+" + c.Key.String()
}

// ShortcutKey converts the chord to the host's shortcut descriptor.
func (c Chord) ShortcutKey() (npp.ShortcutKey, error) {
	if c.Modifiers.Has(ModMeta) {
		return npp.ShortcutKey{}, fmt.Errorf("%w: %s", ErrUnsupportedMod, c)
	}
	return npp.ShortcutKey{
		IsCtrl:  c.Modifiers.Has(ModCtrl),
		IsAlt:   c.Modifiers.Has(ModAlt),
		IsShift: c.Modifiers.Has(ModShift),
		Key:     uint8(c.Key),
	}, nil
}

// Parse parses a key string into a Chord.
//
// Supported formats:
//   - Single key: "a", "F5", "Enter"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-F4>", "<C-S-p>"
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if strings.Contains(spec, "+") && spec != "+" {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses the inside of "<C-s>" style notation. "D" is
// accepted as a Meta alias.
func parseVimStyle(inner string) (Chord, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Chord{}, ErrInvalidSpec
	}
	return splitChord(strings.Split(inner, "-"), func(name string) Modifier {
		if len(name) != 1 {
			return ModNone
		}
		if name == "d" || name == "D" {
			return ModMeta
		}
		return ModifierFromName(name)
	})
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Chord, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Chord{}, ErrInvalidSpec
	}
	return splitChord(parts, ModifierFromName)
}

// splitChord reads every part but the last as a modifier and the last as
// the key.
func splitChord(parts []string, lookup func(string) Modifier) (Chord, error) {
	var mods Modifier
	last := len(parts) - 1
	for _, p := range parts[:last] {
		p = strings.TrimSpace(p)
		mod := lookup(p)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods |= mod
	}
	return parseKeyWithModifiers(parts[last], mods)
}

// parseKeyWithModifiers resolves the key part. Letters are case-insensitive:
// the virtual key for 'a' and 'A' is the same and Shift must be explicit.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Chord, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Chord{}, ErrInvalidSpec
	}

	if k := KeyFromName(strings.ToLower(keyPart)); k != KeyNone {
		return Chord{Key: k, Modifiers: mods}, nil
	}

	if len(keyPart) == 1 {
		c := keyPart[0]
		switch {
		case c >= 'a' && c <= 'z':
			return Chord{Key: Key(c - 'a' + 'A'), Modifiers: mods}, nil
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return Chord{Key: Key(c), Modifiers: mods}, nil
		}
	}

	return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// ParseShortcut parses spec and converts it to a host shortcut.
func ParseShortcut(spec string) (npp.ShortcutKey, error) {
	chord, err := Parse(spec)
	if err != nil {
		return npp.ShortcutKey{}, err
	}
	return chord.ShortcutKey()
}
