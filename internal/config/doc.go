// Package config loads the extension's settings.
//
// Settings come from three layers, each overriding the one below:
//
//  1. Built-in defaults
//  2. NppBridge.toml (or NppBridge.yaml / NppBridge.yml) in the host's
//     plugins configuration directory
//  3. NPPBRIDGE_* environment variables
//
// A missing file is not an error. A file that fails to parse is skipped and
// reported; the remaining layers still apply. Values of the wrong type keep
// their defaults, and out-of-range values are clamped by Validate, so Load
// always returns a usable Config alongside any problems it found.
//
// # Keys
//
//	name            menu name of the extension
//	log.level       debug, info, warn or error
//	log.file        log file, relative to the configuration directory
//	about.title     About box title
//	about.message   About box text
//	about.shortcut  About shortcut, e.g. "Ctrl+Alt+Shift+A" or "<C-A-S-a>"
//	script.enabled  run the Lua reaction script
//	script.path     script file, relative to the configuration directory
//	script.timeout  per-call script deadline, e.g. "200ms"
package config
