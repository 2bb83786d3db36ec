// Package script runs an optional Lua file that reacts to host events.
//
// The script is plain Lua with a reduced standard library: base, table,
// string and math are available; io, os, debug and package are not, and
// the base functions that load code (dofile, loadfile, load, loadstring,
// require) are removed. Every call runs on the host's UI thread under a
// deadline, so a runaway loop is cut off instead of freezing the editor.
//
// A script defines any of these global functions; missing ones are skipped:
//
//	function on_ready() end
//	function on_file_opened(id, path) end
//	function on_file_closed(id) end
//	function on_buffer_activated(id, path) end
//	function on_shutdown() end
//	function on_plugin_message(internal_msg, source) return 0 end
//
// The global module npp exposes:
//
//	npp.log(msg)   write msg to the extension's log
//	npp.name       the extension's menu name
//	npp.version    the host version, e.g. "8.630"
//
// When a Host is supplied it also has these, each returning nil and a
// message on failure:
//
//	npp.current_buffer()          id of the active buffer
//	npp.buffer_path(id)           full path of a buffer
//	npp.config_dir()              the plugins config directory
//	npp.check_command(n, on)      set the checkmark of menu command n (from 1)
package script
