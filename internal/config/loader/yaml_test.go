package loader

import (
	"errors"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/cfg/NppBridge.yaml", `
name: From YAML
about:
  title: Hello
  shortcut: Ctrl+Alt+A
script:
  enabled: false
`)

	config, err := NewYAMLLoader(memfs, "/cfg/NppBridge.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	checks := map[string]any{
		"name":           "From YAML",
		"about.title":    "Hello",
		"about.shortcut": "Ctrl+Alt+A",
		"script.enabled": false,
	}
	for path, want := range checks {
		if got, ok := Lookup(config, path); !ok || got != want {
			t.Errorf("%s = %v (%v), want %v", path, got, ok, want)
		}
	}
}

func TestYAMLLoader_FileNotFound(t *testing.T) {
	config, err := NewYAMLLoader(NewMemFS(), "/missing.yaml").Load()
	if err != nil || config != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", config, err)
	}
}

func TestYAMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", "name: [unclosed\n  - x: y")

	_, err := NewYAMLLoader(memfs, "/bad.yaml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	in := map[string]any{
		"outer": map[any]any{1: "one", "two": []any{map[any]any{"k": "v"}}},
	}

	out := normalize(in).(map[string]any)
	outer, ok := out["outer"].(map[string]any)
	if !ok {
		t.Fatalf("outer = %T, want map[string]any", out["outer"])
	}
	if outer["1"] != "one" {
		t.Errorf("outer[1] = %v", outer["1"])
	}
	list := outer["two"].([]any)
	if _, ok := list[0].(map[string]any); !ok {
		t.Errorf("list element = %T, want map[string]any", list[0])
	}
}
