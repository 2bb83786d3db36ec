// Package key parses keyboard shortcut strings into the host's
// shortcut descriptor.
//
// Shortcuts can be written in two formats:
//
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-F4>", "<C-S-p>"
//
// The key part is a letter, a digit, or a named key ("F5", "Enter",
// "Space", "Home", ...). Keys map to Win32 virtual-key codes because that is
// what the host stores in a shortcut. The host has no Meta modifier, so a
// chord using it parses but cannot be turned into a shortcut.
package key
