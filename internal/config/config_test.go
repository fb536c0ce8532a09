package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults %+v differ from Default() %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Width != 160 || cfg.Grid.Height != 60 {
		t.Errorf("default grid = %dx%d, expected 160x60", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Grid.FPS != 20 {
		t.Errorf("default fps = %d, expected 20", cfg.Grid.FPS)
	}
	if cfg.Show.MaxFireworks != 7 {
		t.Errorf("default max_fireworks = %d, expected 7", cfg.Show.MaxFireworks)
	}
	if cfg.Show.MinFireworkSize != 5 || cfg.Show.MaxFireworkSize != 15 {
		t.Errorf("default sizes = [%d, %d], expected [5, 15]", cfg.Show.MinFireworkSize, cfg.Show.MaxFireworkSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("show:\n  max_fireworks: 3\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Show.MaxFireworks != 3 {
		t.Errorf("max_fireworks = %d, expected 3", cfg.Show.MaxFireworks)
	}
	if cfg.Show.MaxFireworkSize != 15 {
		t.Errorf("max_firework_size should keep default 15, got %d", cfg.Show.MaxFireworkSize)
	}
	if cfg.Grid.Width != 160 {
		t.Errorf("grid width should keep default 160, got %d", cfg.Grid.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"auto grid", func(c *Config) { c.Grid.Width, c.Grid.Height = 0, 0 }, true},
		{"negative width", func(c *Config) { c.Grid.Width = -1 }, false},
		{"zero fps", func(c *Config) { c.Grid.FPS = 0 }, false},
		{"zero max fireworks", func(c *Config) { c.Show.MaxFireworks = 0 }, false},
		{"zero min size", func(c *Config) { c.Show.MinFireworkSize = 0 }, false},
		{"min above max", func(c *Config) { c.Show.MinFireworkSize = 20 }, false},
		{"equal sizes", func(c *Config) { c.Show.MinFireworkSize, c.Show.MaxFireworkSize = 8, 8 }, true},
		{"inverted spawn", func(c *Config) { c.Show.SpawnMinMS = 600 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid {
				if err == nil {
					t.Error("expected validation error")
				} else if !errors.Is(err, ErrInvalid) {
					t.Errorf("error should wrap ErrInvalid, got %v", err)
				}
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "show.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 100\n  height: 40\nbackend: tcell\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Width != 100 || cfg.Grid.Height != 40 {
		t.Errorf("grid = %dx%d, expected 100x40", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Backend != "tcell" {
		t.Errorf("backend = %q, expected tcell", cfg.Backend)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("show:\n  min_firework_size: 9\n  max_firework_size: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom file should wrap ErrInvalid, got %v", err)
	}
}

func TestWithGridSize(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 0

	resolved := cfg.WithGridSize(120, 30)
	if resolved.Grid.Width != 120 {
		t.Errorf("zero width should resolve to 120, got %d", resolved.Grid.Width)
	}
	if resolved.Grid.Height != 60 {
		t.Errorf("explicit height should be kept, got %d", resolved.Grid.Height)
	}
	if cfg.Grid.Width != 0 {
		t.Error("WithGridSize should not mutate the receiver")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "max_fireworks: 7") {
		t.Errorf("marshalled YAML should use snake_case keys, got:\n%s", data)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("absolute path should be untouched, got %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.fireworks/history.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".fireworks", "history.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("~"); got != home {
		t.Errorf("ExpandHome(~) = %q, want %q", got, home)
	}
	for _, p := range []string{"~alice/history.db", "~.db", "./~/x.db"} {
		if got, _ := ExpandHome(p); got != p {
			t.Errorf("ExpandHome(%q) = %q, should be unchanged", p, got)
		}
	}
}
