package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func withConfigHome(t *testing.T, dir string) {
	t.Helper()
	old, had := os.LookupEnv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", dir)
	t.Cleanup(func() {
		if had {
			os.Setenv("XDG_CONFIG_HOME", old)
		} else {
			os.Unsetenv("XDG_CONFIG_HOME")
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	withConfigHome(t, t.TempDir())

	cfg := LoadConfig()
	if cfg.Unit != "mm" {
		t.Errorf("Unit = %q, want mm", cfg.Unit)
	}
	if cfg.Decimals != 10000 {
		t.Errorf("Decimals = %d, want 10000", cfg.Decimals)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.NoCache {
		t.Error("NoCache should default to false")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	withConfigHome(t, dir)

	confDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(confDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "unit = \"in\"\ndecimals = 100\nno_cache = true\nlisten = \":9090\"\n"
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if cfg.Unit != "in" {
		t.Errorf("Unit = %q, want in", cfg.Unit)
	}
	if cfg.Decimals != 100 {
		t.Errorf("Decimals = %d, want 100", cfg.Decimals)
	}
	if !cfg.NoCache {
		t.Error("NoCache should be true")
	}
	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q, want :9090", cfg.Listen)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	withConfigHome(t, dir)

	confDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(confDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte("unit = \"px\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if cfg.Unit != "px" {
		t.Errorf("Unit = %q, want px", cfg.Unit)
	}
	// Unset fields keep defaults
	if cfg.Decimals != 10000 {
		t.Errorf("Decimals = %d, want default 10000", cfg.Decimals)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	withConfigHome(t, dir)

	confDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(confDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte("unit = ["), 0644); err != nil {
		t.Fatal(err)
	}

	// Malformed config degrades to defaults instead of failing startup.
	cfg := LoadConfig()
	if cfg.Unit != "mm" {
		t.Errorf("Unit = %q, want default mm", cfg.Unit)
	}
}
