package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Profile.Name != "Default" {
		t.Errorf("Profile.Name = %q, want Default", config.Profile.Name)
	}
	if config.Profile.HypeMinEnergy != 7 {
		t.Errorf("HypeMinEnergy = %d, want 7", config.Profile.HypeMinEnergy)
	}
	if config.Profile.ChillMaxEnergy != 3 {
		t.Errorf("ChillMaxEnergy = %d, want 3", config.Profile.ChillMaxEnergy)
	}
	if config.Profile.FavoriteGenre != "rock" {
		t.Errorf("FavoriteGenre = %q, want rock", config.Profile.FavoriteGenre)
	}
	if !config.Profile.IncludeMixed {
		t.Error("IncludeMixed = false, want true")
	}
	if config.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", config.Output.Format)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses a profile file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `[profile]
name = "Late Night"
hype_min_energy = 8
chill_max_energy = 4
favorite_genre = "jazz"
include_mixed = false
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if config.Profile.Name != "Late Night" {
			t.Errorf("Profile.Name = %q, want Late Night", config.Profile.Name)
		}
		if config.Profile.HypeMinEnergy != 8 {
			t.Errorf("HypeMinEnergy = %d, want 8", config.Profile.HypeMinEnergy)
		}
		if config.Profile.FavoriteGenre != "jazz" {
			t.Errorf("FavoriteGenre = %q, want jazz", config.Profile.FavoriteGenre)
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("malformed toml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("[profile\nname = "), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("writes the example config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("CreateConfigFile failed: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if config.Profile.HypeMinEnergy != 7 {
			t.Errorf("HypeMinEnergy = %d, want 7", config.Profile.HypeMinEnergy)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if err := CreateConfigFile(path); err == nil {
			t.Error("expected an error when the file exists")
		}
	})
}
