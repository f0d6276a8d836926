package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if cfg.History.Backend != "file" {
		t.Errorf("expected backend file, got %s", cfg.History.Backend)
	}
	if cfg.History.Limit <= 0 {
		t.Error("history limit should be positive")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		t.Error("shutdown timeout should be positive")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("expected default addr, got %s", cfg.Server.Addr)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physcalc.yaml")
	data := []byte("history:\n  backend: sqlite\nserver:\n  addr: \":9090\"\n  shutdown_timeout: 3s\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.History.Backend != "sqlite" {
		t.Errorf("expected backend sqlite, got %s", cfg.History.Backend)
	}
	if !cfg.History.Enabled {
		t.Error("unset fields should keep their defaults")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("history: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physcalc.yaml")
	cfg := DefaultConfig()
	cfg.DataDir = "/var/lib/physcalc"
	cfg.History.Limit = 7
	cfg.TUI.AltScreen = false

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.DataDir != cfg.DataDir || got.History.Limit != 7 || got.TUI.AltScreen {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("density", ListPresets("density")[0])
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p["density"] <= 0 {
		t.Errorf("expected positive density, got %f", p["density"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if p := GetPreset("density", "nonexistent"); p != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if p := GetPreset("nonexistent", "walk"); p != nil {
		t.Error("expected nil for nonexistent solver")
	}
}

func TestListPresets(t *testing.T) {
	for solver := range Presets {
		names := ListPresets(solver)
		if len(names) == 0 {
			t.Errorf("expected presets for %s", solver)
		}
		if !slices.IsSorted(names) {
			t.Errorf("presets for %s are not sorted: %v", solver, names)
		}
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent solver")
	}
}

func TestPresetWithout(t *testing.T) {
	p := Preset{"force": 10, "mass": 2, "acceleration": 5}
	args := p.Without("mass")
	if _, ok := args["mass"]; ok {
		t.Error("held-out parameter should be absent")
	}
	if len(args) != 2 || len(p) != 3 {
		t.Errorf("unexpected sizes: args %d, preset %d", len(args), len(p))
	}
}
