package host

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/wide"
)

// MaxPath is the buffer size, in UTF-16 units, used for path queries.
const MaxPath = 32768

// Errors returned by Client.
var (
	ErrNoHost        = errors.New("host window not known yet")
	ErrQueryFailed   = errors.New("host query failed")
	ErrInvalidBuffer = errors.New("invalid buffer id")
)

// HandleSource supplies the host's main window handle.
type HandleSource interface {
	NppHandle() npp.Handle
}

// Version is the host's version as reported by NPPM_GETNPPVERSION.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Client sends typed queries to the host.
type Client struct {
	m       Messenger
	handles HandleSource
}

// NewClient creates a client sending through m to the window handles
// reports.
func NewClient(m Messenger, handles HandleSource) *Client {
	return &Client{m: m, handles: handles}
}

func (c *Client) hwnd() (npp.Handle, error) {
	h := c.handles.NppHandle()
	if h.IsZero() {
		return 0, ErrNoHost
	}
	return h, nil
}

// PluginsConfigDir returns the directory where extensions keep their
// settings.
func (c *Client) PluginsConfigDir() (string, error) {
	h, err := c.hwnd()
	if err != nil {
		return "", err
	}

	buf := make([]uint16, MaxPath)
	ok := c.m.SendPtr(h, npp.NPPM_GETPLUGINSCONFIGDIR, uintptr(len(buf)), unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)
	if ok == 0 {
		return "", fmt.Errorf("plugins config dir: %w", ErrQueryFailed)
	}

	dir := wide.Decode(buf)
	if dir == "" {
		return "", fmt.Errorf("plugins config dir: %w", ErrQueryFailed)
	}
	return dir, nil
}

// FullPathFromBufferID returns the file path of a buffer.
func (c *Client) FullPathFromBufferID(id npp.BufferID) (string, error) {
	h, err := c.hwnd()
	if err != nil {
		return "", err
	}

	n := int(int32(c.m.Send(h, npp.NPPM_GETFULLPATHFROMBUFFERID, uintptr(id), 0)))
	if n < 0 {
		return "", fmt.Errorf("buffer %d: %w", id, ErrInvalidBuffer)
	}
	if n == 0 {
		return "", nil
	}

	buf := make([]uint16, n+1)
	got := int(int32(c.m.SendPtr(h, npp.NPPM_GETFULLPATHFROMBUFFERID, uintptr(id), unsafe.Pointer(&buf[0]))))
	runtime.KeepAlive(buf)
	if got < 0 {
		return "", fmt.Errorf("buffer %d: %w", id, ErrInvalidBuffer)
	}
	return wide.Decode(buf), nil
}

// CurrentBufferID returns the active buffer.
func (c *Client) CurrentBufferID() (npp.BufferID, error) {
	h, err := c.hwnd()
	if err != nil {
		return 0, err
	}
	return npp.BufferID(c.m.Send(h, npp.NPPM_GETCURRENTBUFFERID, 0, 0)), nil
}

// NppVersion returns the host version.
func (c *Client) NppVersion() (Version, error) {
	h, err := c.hwnd()
	if err != nil {
		return Version{}, err
	}
	v := uint32(c.m.Send(h, npp.NPPM_GETNPPVERSION, 0, 0))
	return Version{Major: int(v >> 16), Minor: int(v & 0xFFFF)}, nil
}

// SetMenuItemCheck sets the checkmark of a registered command.
func (c *Client) SetMenuItemCheck(cmdID int32, checked bool) error {
	h, err := c.hwnd()
	if err != nil {
		return err
	}
	var flag uintptr
	if checked {
		flag = 1
	}
	c.m.Send(h, npp.NPPM_SETMENUITEMCHECK, uintptr(cmdID), flag)
	return nil
}

// MessageBox shows an information box owned by the host window. Before
// set-info it is shown without an owner.
func (c *Client) MessageBox(text, caption string) error {
	return c.m.MessageBox(c.handles.NppHandle(), text, caption, MB_OK|MB_ICONINFORMATION)
}
