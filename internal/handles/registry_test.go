package handles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/nppbridge/internal/npp"
)

func TestRegistry_ZeroBeforeSet(t *testing.T) {
	var r Registry

	assert.False(t, r.IsSet())
	assert.Zero(t, r.NppHandle())
	assert.Zero(t, r.ScintillaMainHandle())
	assert.Zero(t, r.ScintillaSecondHandle())
	assert.Equal(t, npp.NppData{}, r.Snapshot())
}

func TestRegistry_SetThenGet(t *testing.T) {
	var r Registry
	r.Set(npp.NppData{NppHandle: 0x101, ScintillaMainHandle: 0x202, ScintillaSecondHandle: 0x303})

	assert.True(t, r.IsSet())
	assert.Equal(t, npp.Handle(0x101), r.NppHandle())
	assert.Equal(t, npp.Handle(0x202), r.ScintillaMainHandle())
	assert.Equal(t, npp.Handle(0x303), r.ScintillaSecondHandle())
}

func TestRegistry_SetReplacesWholeSet(t *testing.T) {
	var r Registry
	r.Set(npp.NppData{NppHandle: 1, ScintillaMainHandle: 2, ScintillaSecondHandle: 3})
	r.Set(npp.NppData{NppHandle: 9})

	assert.Equal(t, npp.NppData{NppHandle: 9}, r.Snapshot())
}

func TestRegistry_SetCopiesValue(t *testing.T) {
	var r Registry
	data := npp.NppData{NppHandle: 1, ScintillaMainHandle: 2, ScintillaSecondHandle: 3}
	r.Set(data)

	data.NppHandle = 99

	assert.Equal(t, npp.Handle(1), r.NppHandle())
}

func TestRegistry_Scintilla(t *testing.T) {
	var r Registry
	r.Set(npp.NppData{NppHandle: 1, ScintillaMainHandle: 2, ScintillaSecondHandle: 3})

	assert.Equal(t, npp.Handle(2), r.Scintilla(npp.MAIN_VIEW))
	assert.Equal(t, npp.Handle(3), r.Scintilla(npp.SUB_VIEW))
	assert.Zero(t, r.Scintilla(7))
}
