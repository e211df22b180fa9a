package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfig(t *testing.T) {
	globalDir := t.TempDir()
	projectDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", globalDir)

	t.Run("new config file", func(t *testing.T) {
		cfg, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to create config: %v", err)
		}

		if err := cfg.Set("tree.sort", "mixed"); err != nil {
			t.Fatalf("Failed to save config: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(projectDir, ProjectFile))
		if err != nil {
			t.Fatalf("Failed to read config file: %v", err)
		}

		var config map[string]map[string]string
		if err := json.Unmarshal(data, &config); err != nil {
			t.Fatalf("Failed to parse config file: %v", err)
		}

		if config["tree"]["sort"] != "mixed" {
			t.Errorf("Expected value 'mixed', got '%s'", config["tree"]["sort"])
		}
	})

	t.Run("global keys go to the global file", func(t *testing.T) {
		cfg, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to create config: %v", err)
		}
		if !cfg.IsGlobalKey("display.color") {
			t.Fatal("Expected display.color to be global")
		}
		if err := cfg.Set("display.color", "never"); err != nil {
			t.Fatalf("Failed to save config: %v", err)
		}

		if _, err := os.Stat(filepath.Join(globalDir, "treepath", "config.json")); err != nil {
			t.Errorf("Expected global config file to exist: %v", err)
		}
	})

	t.Run("load existing config", func(t *testing.T) {
		cfg, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.Get("tree.sort"); got != "mixed" {
			t.Errorf("Expected value 'mixed', got '%s'", got)
		}
		if got := cfg.Get("display.color"); got != "never" {
			t.Errorf("Expected value 'never', got '%s'", got)
		}
		if got := cfg.GetOr("tree.summary", "false"); got != "false" {
			t.Errorf("Expected default 'false', got '%s'", got)
		}
		want := []string{"display.color", "tree.sort"}
		if keys := cfg.GetAllKeys(); !reflect.DeepEqual(keys, want) {
			t.Errorf("Expected keys %v, got %v", want, keys)
		}
	})

	t.Run("delete", func(t *testing.T) {
		cfg, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if err := cfg.Delete("tree.sort"); err != nil {
			t.Fatalf("Failed to delete: %v", err)
		}

		reloaded, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to reload config: %v", err)
		}
		if reloaded.Has("tree.sort") {
			t.Error("Expected tree.sort to be removed")
		}
		if !reloaded.Has("display.color") {
			t.Error("Expected display.color to be kept")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(projectDir, ProjectFile)
		if err := os.WriteFile(path, []byte("invalid json"), 0o644); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		if _, err := New(projectDir); err == nil {
			t.Error("Expected error for invalid JSON, got nil")
		}
	})
}
