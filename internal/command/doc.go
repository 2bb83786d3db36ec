// Package command builds the menu command table handed to the host.
//
// The host reads the table once through getFuncsArray, keeps the pointer
// for the lifetime of the process, and later writes the command ids it
// assigned back into the items. The table therefore lives in an Arena
// whose memory never moves and is never freed, and it is built exactly
// once: every Publish returns the same pointer and count.
//
// Menu clicks arrive through C trampolines, one per entry, that call back
// into Invoke with the entry's index.
package command
