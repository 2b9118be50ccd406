package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvToken, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.CursorMarker != DefaultCursorMarker {
		t.Errorf("CursorMarker = %q, want default %q", cfg.CursorMarker, DefaultCursorMarker)
	}
	if cfg.Separator != DefaultSeparator {
		t.Errorf("Separator = %q, want default %q", cfg.Separator, DefaultSeparator)
	}
	if cfg.APIToken != "" {
		t.Errorf("APIToken should be empty without file or env, got %q", cfg.APIToken)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvToken, "")

	cfg := &Config{
		APIToken: "secret",
		BaseURL:  "https://example.test/rest/v2",
		NoteFile: "/tmp/inbox.md",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.APIToken != "secret" {
		t.Errorf("APIToken = %q, want secret", loaded.APIToken)
	}
	if loaded.BaseURL != "https://example.test/rest/v2" {
		t.Errorf("BaseURL = %q, want saved value", loaded.BaseURL)
	}
	if loaded.NoteFile != "/tmp/inbox.md" {
		t.Errorf("NoteFile = %q, want saved value", loaded.NoteFile)
	}
	// Fields absent from the file pick up defaults
	if loaded.CursorMarker != DefaultCursorMarker {
		t.Errorf("CursorMarker = %q, want default", loaded.CursorMarker)
	}
}

func TestEnvTokenOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{APIToken: "from-file"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv(EnvToken, "from-env")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.APIToken != "from-env" {
		t.Errorf("APIToken = %q, env variable should win", loaded.APIToken)
	}
}

func TestSaveRestrictsPermissions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{APIToken: "secret"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Config file mode = %o, want 0600 (it holds the token)", info.Mode().Perm())
	}
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	want := filepath.Join(dir, "todomark", "config.yaml")
	if path != want {
		t.Errorf("Path = %q, want %q", path, want)
	}
}
