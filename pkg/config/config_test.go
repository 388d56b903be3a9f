package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWithExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := Init(path); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if GetConfigDir() != filepath.Dir(path) {
		t.Errorf("config dir = %q", GetConfigDir())
	}
	if GetCredentialsPath() != filepath.Join(filepath.Dir(path), "credentials") {
		t.Errorf("credentials path = %q", GetCredentialsPath())
	}
}

func TestDefaults(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if got := GetString("api.user_base_url"); !strings.HasSuffix(got, "/route") {
		t.Errorf("api.user_base_url = %q, want /route suffix", got)
	}
	if got := GetString("api.post_base_url"); !strings.HasSuffix(got, "/posts") {
		t.Errorf("api.post_base_url = %q, want /posts suffix", got)
	}
	if got := GetInt("api.timeout"); got != 30 {
		t.Errorf("api.timeout = %d, want 30", got)
	}
	if got := GetString("output.format"); got != "text" {
		t.Errorf("output.format = %q, want text", got)
	}
	if GetString("log.file") == "" {
		t.Error("log.file should have a default")
	}
}

func TestExpandPath(t *testing.T) {
	if got := expandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := expandPath("~/logs"); strings.HasPrefix(got, "~") {
		t.Errorf("tilde not expanded: %q", got)
	}
}
