package plugin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/nppbridge/internal/command"
	"github.com/dshills/nppbridge/internal/config"
	"github.com/dshills/nppbridge/internal/config/loader"
	"github.com/dshills/nppbridge/internal/handles"
	"github.com/dshills/nppbridge/internal/host"
	"github.com/dshills/nppbridge/internal/key"
	"github.com/dshills/nppbridge/internal/logging"
	"github.com/dshills/nppbridge/internal/notify"
	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/relay"
	"github.com/dshills/nppbridge/internal/script"
)

// AboutCommand is the menu label of the About entry.
const AboutCommand = "About"

// Plugin coordinates the extension's components behind the six entry
// points.
type Plugin struct {
	session string

	handles *handles.Registry
	client  *host.Client
	notify  *notify.Dispatcher
	relay   *relay.Relay

	logs   *logging.Logging
	logger *zap.Logger

	cfg    config.Config
	script *script.Script
	state  Session

	configureOnce sync.Once
	nameOnce      sync.Once
	name          string
	tableOnce     sync.Once
	table         *command.Table

	opts options
}

type options struct {
	messenger host.Messenger
	configFS  loader.FileSystem
	env       func(string) (string, bool)
	configDir string
}

// Option configures a Plugin.
type Option func(*options)

// WithMessenger sets how messages reach the host.
func WithMessenger(m host.Messenger) Option {
	return func(o *options) {
		o.messenger = m
	}
}

// WithConfigFS sets the file system settings are read from.
func WithConfigFS(fs loader.FileSystem) Option {
	return func(o *options) {
		o.configFS = fs
	}
}

// WithEnv sets the environment lookup used for settings overrides.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		o.env = lookup
	}
}

// WithConfigDir uses dir instead of asking the host for its plugins
// configuration directory.
func WithConfigDir(dir string) Option {
	return func(o *options) {
		o.configDir = dir
	}
}

var defaultPlugin = sync.OnceValue(func() *Plugin {
	return New()
})

// Default returns the process-wide Plugin used by the exported entry
// points.
func Default() *Plugin {
	return defaultPlugin()
}

// New creates a Plugin with default settings. Settings from disk are
// applied on the first SetInfo.
func New(opts ...Option) *Plugin {
	o := options{messenger: host.NewMessenger()}
	for _, opt := range opts {
		opt(&o)
	}

	session := uuid.NewString()
	logs := logging.New(zap.String("session", session))

	p := &Plugin{
		session: session,
		handles: &handles.Registry{},
		logs:    logs,
		logger:  logs.Component("plugin"),
		cfg:     config.Default(),
		opts:    o,
	}
	p.client = host.NewClient(o.messenger, p.handles)
	p.notify = notify.New(notify.WithLogger(logs.Component("notify")))
	p.relay = relay.New(logs.Component("relay"))

	p.registerReactions()
	return p
}

// SessionID identifies this load of the extension in logs.
func (p *Plugin) SessionID() string {
	return p.session
}

// Handles returns the handle registry.
func (p *Plugin) Handles() *handles.Registry {
	return p.handles
}

// Config returns the active settings.
func (p *Plugin) Config() config.Config {
	return p.cfg
}

// SetInfo records the host's window handles. The first call also loads
// settings, the log file and the script. Later calls only replace the
// handles.
func (p *Plugin) SetInfo(data npp.NppData) {
	p.guard("setInfo", "", func() {
		p.handles.Set(data)
		p.configureOnce.Do(p.configure)
	})
}

// Name returns the extension's menu name. The value is fixed by the first
// call; settings loaded later do not change it.
func (p *Plugin) Name() string {
	p.guard("getName", "", func() {
		p.nameOnce.Do(func() {
			p.name = p.cfg.Name
		})
	})
	if p.name == "" {
		return config.DefaultName
	}
	return p.name
}

// Commands publishes the command table into arena on the first call and
// returns its base pointer and length on every call.
func (p *Plugin) Commands(arena command.Arena, trampoline command.Trampoline) (items *npp.FuncItem, n int) {
	p.guard("getFuncsArray", "", func() {
		t, err := p.commandTable()
		if err != nil {
			p.logger.Error("building command table", zap.Error(err))
			return
		}
		items, n = t.Publish(arena, trampoline)
	})
	return items, n
}

// Invoke runs command i. It is called by the command trampolines.
func (p *Plugin) Invoke(i int) {
	p.guard("command", fmt.Sprint(i), func() {
		if p.table == nil {
			p.logger.Warn("command before table", zap.Int("index", i), zap.Error(ErrNoTable))
			return
		}
		if err := p.table.Invoke(i); err != nil {
			p.logger.Error("command failed", zap.Int("index", i), zap.Error(err))
		}
	})
}

// Notify routes a host notification. A nil notification is ignored.
func (p *Plugin) Notify(n *npp.SCNotification) {
	if n == nil {
		return
	}
	p.guard("beNotified", n.Code().String(), func() {
		p.notify.Dispatch(n)
	})
}

// Message answers a generic host message. Unknown messages return 0.
func (p *Plugin) Message(msg uint32, wParam, lParam uintptr) (result uintptr) {
	p.guard("messageProc", fmt.Sprint(msg), func() {
		result = p.relay.Relay(relay.Message{ID: msg, WParam: wParam, LParam: lParam})
	})
	return result
}

// IsUnicode reports that the extension uses UTF-16 strings.
func (p *Plugin) IsUnicode() bool {
	return true
}

// Session returns the state tracked from notifications.
func (p *Plugin) Session() Session {
	return p.state
}

// guard runs fn and turns a panic into a logged error.
func (p *Plugin) guard(entry, arg string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("entry point panicked", zap.Error(panicError(entry, arg, r)), zap.Stack("stack"))
		}
	}()
	fn()
}

// configure loads settings, redirects the log and loads the script.
func (p *Plugin) configure() {
	dir, err := p.configDir()
	if err != nil {
		p.logger.Warn("using default settings", zap.Error(err))
		return
	}

	var loaderOpts []config.Option
	if p.opts.configFS != nil {
		loaderOpts = append(loaderOpts, config.WithFS(p.opts.configFS))
	}
	if p.opts.env != nil {
		loaderOpts = append(loaderOpts, config.WithEnv(p.opts.env))
	}
	cfg, cfgErr := config.NewLoader(dir, loaderOpts...).Load()
	p.cfg = cfg

	if err := p.logs.Configure(logging.Config{Level: cfg.Log.Level, Path: cfg.Log.File, Dir: dir}); err != nil {
		p.logger.Warn("log file unavailable", zap.Error(err))
	}
	p.logger.Info("configured",
		zap.String("dir", dir),
		zap.String("source", cfg.Source),
		zap.String("name", cfg.Name),
	)
	if cfgErr != nil {
		p.logger.Warn("settings problems", zap.Error(cfgErr))
	}

	p.loadScript()
}

func (p *Plugin) configDir() (string, error) {
	if p.opts.configDir != "" {
		return p.opts.configDir, nil
	}
	dir, err := p.client.PluginsConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoConfigDir, err)
	}
	return dir, nil
}

func (p *Plugin) loadScript() {
	if !p.cfg.Script.Enabled {
		return
	}

	info := script.Info{Name: p.Name()}
	if v, err := p.client.NppVersion(); err == nil {
		info.Version = v.String()
	}

	path := p.cfg.ScriptFile()
	sc, err := script.LoadFile(context.Background(), path, info,
		script.WithCallTimeout(p.cfg.Script.Timeout),
		script.WithLogger(p.logs.Component("script")),
		script.WithHost(scriptHost{p}),
	)
	switch {
	case errors.Is(err, script.ErrNoScript):
		p.logger.Debug("no script", zap.String("path", path))
	case err != nil:
		p.logger.Warn("script not loaded", zap.String("path", path), zap.Error(err))
	default:
		p.script = sc
		p.logger.Info("script loaded", zap.String("path", path), zap.Strings("hooks", sc.Defined()))
	}
}

// scriptHost answers the script's npp queries through the host client.
type scriptHost struct {
	p *Plugin
}

func (h scriptHost) CurrentBuffer() (npp.BufferID, error) { return h.p.client.CurrentBufferID() }
func (h scriptHost) ConfigDir() (string, error)           { return h.p.configDir() }

func (h scriptHost) BufferPath(id npp.BufferID) (string, error) {
	return h.p.client.FullPathFromBufferID(id)
}

// CheckCommand needs the host-assigned id, so it fails until the host has
// fetched the table.
func (h scriptHost) CheckCommand(index int, on bool) error {
	if h.p.table == nil {
		return ErrNoTable
	}
	id, err := h.p.table.CommandID(index)
	if err != nil {
		return err
	}
	return h.p.client.SetMenuItemCheck(id, on)
}

// commandTable builds the table from the active settings once.
func (p *Plugin) commandTable() (*command.Table, error) {
	var err error
	p.tableOnce.Do(func() {
		about := command.Entry{Name: AboutCommand, Func: p.about}
		if spec := p.cfg.About.Shortcut; spec != "" {
			sk, perr := key.ParseShortcut(spec)
			if perr != nil {
				p.logger.Warn("ignoring about shortcut", zap.String("shortcut", spec), zap.Error(perr))
			} else {
				about.Shortcut = &sk
			}
		}
		p.table, err = command.NewTable(about)
	})
	if p.table == nil {
		if err == nil {
			err = ErrNoTable
		}
		return nil, err
	}
	return p.table, nil
}

// about shows the About box.
func (p *Plugin) about() {
	if err := p.client.MessageBox(p.cfg.About.Message, p.cfg.About.Title); err != nil {
		p.logger.Warn("about box", zap.Error(err))
	}
}
