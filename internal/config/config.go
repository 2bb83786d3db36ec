package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dshills/nppbridge/internal/config/loader"
	"github.com/dshills/nppbridge/internal/key"
)

// FileBase is the configuration file name without extension.
const FileBase = "NppBridge"

// Defaults.
const (
	DefaultName          = "Go Notepad++ Plugin"
	DefaultLogLevel      = "info"
	DefaultLogFile       = FileBase + ".log"
	DefaultAboutTitle    = "About"
	DefaultAboutMessage  = "A Notepad++ extension written in Go."
	DefaultScriptPath    = FileBase + ".lua"
	DefaultScriptTimeout = 200 * time.Millisecond

	// MaxScriptTimeout bounds how long one script call may hold the host's
	// UI thread.
	MaxScriptTimeout = 5 * time.Second
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config is a snapshot of the extension's settings.
type Config struct {
	// Name is the extension's menu name.
	Name string

	Log    LogConfig
	About  AboutConfig
	Script ScriptConfig

	// Dir is the directory the settings were loaded from.
	Dir string
	// Source is the file that was read, or "" when none was found.
	Source string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	// File is relative to Dir unless absolute. Empty disables file logging.
	File string
}

// AboutConfig holds the About command settings.
type AboutConfig struct {
	Title    string
	Message  string
	Shortcut string
}

// ScriptConfig holds the Lua reaction script settings.
type ScriptConfig struct {
	Enabled bool
	// Path is relative to Dir unless absolute.
	Path    string
	Timeout time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Name: DefaultName,
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
		About: AboutConfig{
			Title:   DefaultAboutTitle,
			Message: DefaultAboutMessage,
		},
		Script: ScriptConfig{
			Enabled: true,
			Path:    DefaultScriptPath,
			Timeout: DefaultScriptTimeout,
		},
	}
}

// ScriptFile returns the absolute script path.
func (c Config) ScriptFile() string {
	return c.resolve(c.Script.Path)
}

func (c Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// Validate resets out-of-range values to their defaults and reports each
// one it changed.
func (c *Config) Validate() error {
	var errs []error
	reject := func(path string, value any, msg string) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Message: msg})
	}

	if strings.TrimSpace(c.Name) == "" {
		reject("name", c.Name, "must not be empty")
		c.Name = DefaultName
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		reject("log.level", c.Log.Level, "must be one of debug, info, warn, error")
		c.Log.Level = DefaultLogLevel
	}

	if c.About.Shortcut != "" {
		if _, err := key.ParseShortcut(c.About.Shortcut); err != nil {
			reject("about.shortcut", c.About.Shortcut, err.Error())
			c.About.Shortcut = ""
		}
	}

	switch {
	case c.Script.Timeout <= 0:
		reject("script.timeout", c.Script.Timeout, "must be positive")
		c.Script.Timeout = DefaultScriptTimeout
	case c.Script.Timeout > MaxScriptTimeout:
		reject("script.timeout", c.Script.Timeout, "capped at "+MaxScriptTimeout.String())
		c.Script.Timeout = MaxScriptTimeout
	}

	if c.Script.Enabled && c.Script.Path == "" {
		reject("script.path", c.Script.Path, "must be set when the script is enabled")
		c.Script.Path = DefaultScriptPath
	}

	return errors.Join(errs...)
}

// envMapping maps environment variables to setting paths.
var envMapping = map[string]string{
	"NPPBRIDGE_NAME":           "name",
	"NPPBRIDGE_LOG_LEVEL":      "log.level",
	"NPPBRIDGE_LOG_FILE":       "log.file",
	"NPPBRIDGE_SCRIPT_ENABLED": "script.enabled",
	"NPPBRIDGE_SCRIPT_PATH":    "script.path",
	"NPPBRIDGE_SCRIPT_TIMEOUT": "script.timeout",
}

// Loader reads settings from a configuration directory.
type Loader struct {
	fs  loader.FileSystem
	dir string
	env func(string) (string, bool)
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS sets the file system used to read configuration files.
func WithFS(fs loader.FileSystem) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithEnv sets the environment lookup function.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(l *Loader) {
		l.env = lookup
	}
}

// NewLoader creates a loader for dir.
func NewLoader(dir string, opts ...Option) *Loader {
	l := &Loader{
		fs:  loader.DefaultFS(),
		dir: dir,
		env: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Candidates returns the configuration files looked for, in order.
func (l *Loader) Candidates() []string {
	if l.dir == "" {
		return nil
	}
	return []string{
		filepath.Join(l.dir, FileBase+".toml"),
		filepath.Join(l.dir, FileBase+".yaml"),
		filepath.Join(l.dir, FileBase+".yml"),
	}
}

// Load reads the settings. The returned Config is always usable; the error
// collects every problem found along the way.
func (l *Loader) Load() (Config, error) {
	var errs []error
	merged := defaultMap()

	source, fileLoader := l.fileLoader()
	if fileLoader != nil {
		data, err := fileLoader.Load()
		if err != nil {
			errs = append(errs, err)
			source = ""
		} else {
			merged = loader.Merge(merged, data)
		}
	}

	envData, err := loader.NewEnvLoader(envMapping).WithLookup(l.env).Load()
	if err != nil {
		errs = append(errs, fmt.Errorf("environment: %w", err))
	}
	merged = loader.Merge(merged, envData)

	cfg, decodeErrs := decode(merged)
	errs = append(errs, decodeErrs...)
	cfg.Dir = l.dir
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}

	return cfg, errors.Join(errs...)
}

// fileLoader returns the loader for the first configuration file present.
func (l *Loader) fileLoader() (string, loader.Loader) {
	for _, path := range l.Candidates() {
		if _, err := l.fs.Stat(path); err != nil {
			continue
		}
		if strings.HasSuffix(path, ".toml") {
			return path, loader.NewTOMLLoader(l.fs, path)
		}
		return path, loader.NewYAMLLoader(l.fs, path)
	}
	return "", nil
}

// defaultMap returns Default as a settings map.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"name": d.Name,
		"log": map[string]any{
			"level": d.Log.Level,
			"file":  d.Log.File,
		},
		"about": map[string]any{
			"title":    d.About.Title,
			"message":  d.About.Message,
			"shortcut": d.About.Shortcut,
		},
		"script": map[string]any{
			"enabled": d.Script.Enabled,
			"path":    d.Script.Path,
			"timeout": d.Script.Timeout,
		},
	}
}

// decode reads typed values out of a merged map. A value of the wrong type
// keeps its default and is reported.
func decode(m map[string]any) (Config, []error) {
	cfg := Default()
	var errs []error

	str := func(path string, dst *string) {
		if err := getString(m, path, dst); err != nil {
			errs = append(errs, err)
		}
	}

	str("name", &cfg.Name)
	str("log.level", &cfg.Log.Level)
	str("log.file", &cfg.Log.File)
	str("about.title", &cfg.About.Title)
	str("about.message", &cfg.About.Message)
	str("about.shortcut", &cfg.About.Shortcut)
	str("script.path", &cfg.Script.Path)

	if err := getBool(m, "script.enabled", &cfg.Script.Enabled); err != nil {
		errs = append(errs, err)
	}
	if err := getDuration(m, "script.timeout", &cfg.Script.Timeout); err != nil {
		errs = append(errs, err)
	}

	return cfg, errs
}

func getString(m map[string]any, path string, dst *string) error {
	v, ok := loader.Lookup(m, path)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	*dst = s
	return nil
}

func getBool(m map[string]any, path string, dst *bool) error {
	v, ok := loader.Lookup(m, path)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	*dst = b
	return nil
}

// getDuration accepts a duration string, a time.Duration, or an integer
// number of milliseconds.
func getDuration(m map[string]any, path string, dst *time.Duration) error {
	v, ok := loader.Lookup(m, path)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case time.Duration:
		*dst = val
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		*dst = d
	case int:
		*dst = time.Duration(val) * time.Millisecond
	case int64:
		*dst = time.Duration(val) * time.Millisecond
	default:
		return &TypeError{Path: path, Expected: "duration", Actual: typeName(v)}
	}
	return nil
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
