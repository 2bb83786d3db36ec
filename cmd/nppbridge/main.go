// Command nppbridge builds the Notepad++ extension DLL:
//
//	go build -buildmode=c-shared -o NppBridge.dll ./cmd/nppbridge
//
// Copy NppBridge.dll to <Notepad++>\plugins\NppBridge\. The exported entry
// points live in internal/boundary.
package main

import _ "github.com/dshills/nppbridge/internal/boundary"

func main() {}
