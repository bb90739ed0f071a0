package userdata

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nagygr/shortcuts/internal/registry"
)

func TestInitRegistry_CreatesDefault(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("SHORTCUTS_HOME", tmp)

	var buf bytes.Buffer
	if err := InitRegistry(&buf); err != nil {
		t.Fatalf("InitRegistry failed: %v", err)
	}

	dir := filepath.Join(tmp, ".config", "shortcuts")
	assertDirExists(t, dir)
	assertDirPerm(t, dir, DirPermNormal)

	data, err := os.ReadFile(filepath.Join(dir, "shortcuts.conf"))
	if err != nil {
		t.Fatalf("reading registry: %v", err)
	}
	if string(data) != registry.DefaultDocument {
		t.Error("registry content differs from the default document")
	}

	if strings.Count(buf.String(), "[ OK ]") != 2 {
		t.Errorf("expected two created items, got:\n%s", buf.String())
	}
}

func TestInitRegistry_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("SHORTCUTS_HOME", tmp)

	if err := InitRegistry(&bytes.Buffer{}); err != nil {
		t.Fatalf("first InitRegistry failed: %v", err)
	}

	path := filepath.Join(tmp, ".config", "shortcuts", "shortcuts.conf")
	custom := `{"applications": []}`
	if err := os.WriteFile(path, []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := InitRegistry(&buf); err != nil {
		t.Fatalf("second InitRegistry failed: %v", err)
	}
	if strings.Count(buf.String(), "[SKIP]") != 2 {
		t.Errorf("expected two skipped items, got:\n%s", buf.String())
	}

	data, _ := os.ReadFile(path)
	if string(data) != custom {
		t.Error("existing registry was overwritten")
	}
}

func TestInitRegistry_ConfigDirIsFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("SHORTCUTS_HOME", tmp)

	if err := os.MkdirAll(filepath.Join(tmp, ".config"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, ".config", "shortcuts"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := InitRegistry(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error when the config directory is a file")
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertDirPerm(t *testing.T, path string, expected os.FileMode) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on Windows")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("stat %s: %v", path, err)
		return
	}
	if info.Mode().Perm() != expected {
		t.Errorf("expected %s to have perm %o, got %o", path, expected, info.Mode().Perm())
	}
}
