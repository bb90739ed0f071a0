package userdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetHome_EnvOverride(t *testing.T) {
	t.Setenv("SHORTCUTS_HOME", "/tmp/test-home")
	home, err := GetHome()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if home != "/tmp/test-home" {
		t.Errorf("expected /tmp/test-home, got %s", home)
	}
}

func TestGetHome_Default(t *testing.T) {
	t.Setenv("SHORTCUTS_HOME", "")
	home, err := GetHome()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected, _ := os.UserHomeDir()
	if home != expected {
		t.Errorf("expected %s, got %s", expected, home)
	}
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("SHORTCUTS_HOME", "/tmp/h")
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != filepath.Join("/tmp/h", ".config", "shortcuts") {
		t.Errorf("unexpected config dir %s", dir)
	}
}

func TestGetRegistryPath(t *testing.T) {
	t.Setenv("SHORTCUTS_HOME", "/tmp/h")
	p, err := GetRegistryPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != filepath.Join("/tmp/h", ".config", "shortcuts", "shortcuts.conf") {
		t.Errorf("unexpected registry path %s", p)
	}
}

func TestGetSettingsPath(t *testing.T) {
	t.Setenv("SHORTCUTS_HOME", "/tmp/h")
	p, err := GetSettingsPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != filepath.Join("/tmp/h", ".config", "shortcuts", "settings.yaml") {
		t.Errorf("unexpected settings path %s", p)
	}
}
