package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a Win32 virtual-key code.
type Key uint8

// Virtual-key codes for the named keys. Letters and digits use their ASCII
// upper-case value ('A' is 0x41, '0' is 0x30).
const (
	KeyNone      Key = 0x00
	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyEnter     Key = 0x0D
	KeyPause     Key = 0x13
	KeyEscape    Key = 0x1B
	KeySpace     Key = 0x20
	KeyPageUp    Key = 0x21
	KeyPageDown  Key = 0x22
	KeyEnd       Key = 0x23
	KeyHome      Key = 0x24
	KeyLeft      Key = 0x25
	KeyUp        Key = 0x26
	KeyRight     Key = 0x27
	KeyDown      Key = 0x28
	KeyInsert    Key = 0x2D
	KeyDelete    Key = 0x2E
	KeyF1        Key = 0x70
	KeyF24       Key = 0x87
)

var keyNames = map[string]Key{
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"pause":     KeyPause,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"space":     KeySpace,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"end":       KeyEnd,
	"home":      KeyHome,
	"left":      KeyLeft,
	"up":        KeyUp,
	"right":     KeyRight,
	"down":      KeyDown,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"delete":    KeyDelete,
	"del":       KeyDelete,
}

// KeyFromName returns the key for a lowercase name, or KeyNone.
// Function keys are written "f1" through "f24".
func KeyFromName(name string) Key {
	if k, ok := keyNames[name]; ok {
		return k
	}
	if num, ok := strings.CutPrefix(name, "f"); ok && num != "" && num[0] != '0' {
		if n, err := strconv.Atoi(num); err == nil && n >= 1 && n <= 24 {
			return KeyF1 + Key(n-1)
		}
	}
	return KeyNone
}

// IsFunctionKey returns true if this is F1-F24.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF24
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch {
	case k == KeyNone:
		return "None"
	case k.IsFunctionKey():
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= '0' && k <= '9', k >= 'A' && k <= 'Z':
		return string(rune(k))
	}
	if title, ok := keyTitles[k]; ok {
		return title
	}
	return fmt.Sprintf("VK(0x%02X)", uint8(k))
}

var keyTitles = map[Key]string{
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyEnter:     "Enter",
	KeyPause:     "Pause",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEnd:       "End",
	KeyHome:      "Home",
	KeyLeft:      "Left",
	KeyUp:        "Up",
	KeyRight:     "Right",
	KeyDown:      "Down",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
}
