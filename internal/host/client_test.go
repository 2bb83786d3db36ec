package host

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/nppbridge/internal/handles"
	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/wide"
)

type sent struct {
	hwnd   npp.Handle
	msg    uint32
	wParam uintptr
	lParam uintptr
}

type box struct {
	owner         npp.Handle
	text, caption string
	flags         uint32
}

// fakeHost answers the subset of messages Client uses.
type fakeHost struct {
	configDir string
	paths     map[npp.BufferID]string
	current   npp.BufferID
	version   uint32

	sent  []sent
	boxes []box
}

func (f *fakeHost) Send(hwnd npp.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	f.sent = append(f.sent, sent{hwnd, msg, wParam, lParam})
	switch msg {
	case npp.NPPM_GETFULLPATHFROMBUFFERID:
		p, ok := f.paths[npp.BufferID(wParam)]
		if !ok {
			return ^uintptr(0)
		}
		return uintptr(len(wide.Encode(p)))
	case npp.NPPM_GETCURRENTBUFFERID:
		return uintptr(f.current)
	case npp.NPPM_GETNPPVERSION:
		return uintptr(f.version)
	}
	return 0
}

func (f *fakeHost) SendPtr(hwnd npp.Handle, msg uint32, wParam uintptr, lParam unsafe.Pointer) uintptr {
	f.sent = append(f.sent, sent{hwnd, msg, wParam, uintptr(lParam)})
	switch msg {
	case npp.NPPM_GETPLUGINSCONFIGDIR:
		if f.configDir == "" {
			return 0
		}
		dst := unsafe.Slice((*uint16)(lParam), int(wParam))
		wide.CopyTerminated(dst, f.configDir)
		return 1
	case npp.NPPM_GETFULLPATHFROMBUFFERID:
		p, ok := f.paths[npp.BufferID(wParam)]
		if !ok {
			return ^uintptr(0)
		}
		units := wide.Terminated(p)
		copy(unsafe.Slice((*uint16)(lParam), len(units)), units)
		return uintptr(len(units) - 1)
	}
	return 0
}

func (f *fakeHost) MessageBox(owner npp.Handle, text, caption string, flags uint32) error {
	f.boxes = append(f.boxes, box{owner, text, caption, flags})
	return nil
}

func newClient(f *fakeHost) (*Client, *handles.Registry) {
	reg := &handles.Registry{}
	reg.Set(npp.NppData{NppHandle: 0x100, ScintillaMainHandle: 0x200, ScintillaSecondHandle: 0x300})
	return NewClient(f, reg), reg
}

func TestClient_NoHostBeforeSetInfo(t *testing.T) {
	f := &fakeHost{}
	c := NewClient(f, &handles.Registry{})

	_, err := c.PluginsConfigDir()
	assert.ErrorIs(t, err, ErrNoHost)
	_, err = c.CurrentBufferID()
	assert.ErrorIs(t, err, ErrNoHost)
	_, err = c.NppVersion()
	assert.ErrorIs(t, err, ErrNoHost)
	assert.Empty(t, f.sent, "nothing is sent to a null window")
}

func TestClient_PluginsConfigDir(t *testing.T) {
	f := &fakeHost{configDir: `C:\Users\me\AppData\Roaming\Notepad++\plugins\config`}
	c, _ := newClient(f)

	dir, err := c.PluginsConfigDir()
	require.NoError(t, err)
	assert.Equal(t, f.configDir, dir)

	require.Len(t, f.sent, 1)
	assert.Equal(t, npp.Handle(0x100), f.sent[0].hwnd)
	assert.Equal(t, uintptr(MaxPath), f.sent[0].wParam)

	f.configDir = ""
	_, err = c.PluginsConfigDir()
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestClient_FullPathFromBufferID(t *testing.T) {
	f := &fakeHost{paths: map[npp.BufferID]string{
		7: `C:\work\notes ✓.txt`,
		8: "",
	}}
	c, _ := newClient(f)

	p, err := c.FullPathFromBufferID(7)
	require.NoError(t, err)
	assert.Equal(t, `C:\work\notes ✓.txt`, p)

	p, err = c.FullPathFromBufferID(8)
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = c.FullPathFromBufferID(9)
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}

func TestClient_Queries(t *testing.T) {
	f := &fakeHost{current: 42, version: 8<<16 | 630}
	c, _ := newClient(f)

	id, err := c.CurrentBufferID()
	require.NoError(t, err)
	assert.Equal(t, npp.BufferID(42), id)

	v, err := c.NppVersion()
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 8, Minor: 630}, v)
	assert.Equal(t, "8.630", v.String())
}

func TestClient_SetMenuItemCheck(t *testing.T) {
	f := &fakeHost{}
	c, _ := newClient(f)

	require.NoError(t, c.SetMenuItemCheck(22000, true))
	require.NoError(t, c.SetMenuItemCheck(22000, false))

	require.Len(t, f.sent, 2)
	assert.Equal(t, sent{0x100, npp.NPPM_SETMENUITEMCHECK, 22000, 1}, f.sent[0])
	assert.Equal(t, sent{0x100, npp.NPPM_SETMENUITEMCHECK, 22000, 0}, f.sent[1])
}

func TestClient_MessageBox(t *testing.T) {
	f := &fakeHost{}
	c, _ := newClient(f)

	require.NoError(t, c.MessageBox("hello", "About"))
	require.Len(t, f.boxes, 1)
	assert.Equal(t, box{0x100, "hello", "About", MB_OK | MB_ICONINFORMATION}, f.boxes[0])
}
