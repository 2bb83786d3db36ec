// Package handles stores the window handles the host passes to setInfo.
//
// The host calls setInfo once, before anything else is meaningful, and from
// then on every part of the extension that needs to address the host UI
// reads the handles from here. Getters never fail: before Set they return
// the zero handle, which callers treat as "not yet available".
package handles

import (
	"sync/atomic"

	"github.com/dshills/nppbridge/internal/npp"
)

// Registry holds one npp.NppData. The zero value is ready to use.
type Registry struct {
	data atomic.Pointer[npp.NppData]
}

// Set replaces the whole handle set. The value is copied; no pointer to
// host memory is kept.
func (r *Registry) Set(data npp.NppData) {
	r.data.Store(&data)
}

// IsSet reports whether Set has been called.
func (r *Registry) IsSet() bool {
	return r.data.Load() != nil
}

// Snapshot returns a copy of the current handle set, zero before Set.
func (r *Registry) Snapshot() npp.NppData {
	if d := r.data.Load(); d != nil {
		return *d
	}
	return npp.NppData{}
}

// NppHandle returns the host main window.
func (r *Registry) NppHandle() npp.Handle {
	return r.Snapshot().NppHandle
}

// ScintillaMainHandle returns the primary text view.
func (r *Registry) ScintillaMainHandle() npp.Handle {
	return r.Snapshot().ScintillaMainHandle
}

// ScintillaSecondHandle returns the secondary text view.
func (r *Registry) ScintillaSecondHandle() npp.Handle {
	return r.Snapshot().ScintillaSecondHandle
}

// Scintilla returns the handle of the given view (npp.MAIN_VIEW or
// npp.SUB_VIEW). Any other view yields the zero handle.
func (r *Registry) Scintilla(view int32) npp.Handle {
	switch view {
	case npp.MAIN_VIEW:
		return r.ScintillaMainHandle()
	case npp.SUB_VIEW:
		return r.ScintillaSecondHandle()
	default:
		return 0
	}
}
