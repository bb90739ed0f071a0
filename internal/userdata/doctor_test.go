package userdata

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeHomeFile(t *testing.T, home, rel, content string) {
	t.Helper()
	path := filepath.Join(home, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckRegistry_MissingRegistry(t *testing.T) {
	t.Setenv("SHORTCUTS_HOME", t.TempDir())

	var buf bytes.Buffer
	report, err := CheckRegistry(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Applications != 0 {
		t.Errorf("expected no applications, got %d", report.Applications)
	}
	if !strings.Contains(buf.String(), "[MISS]") || !strings.Contains(buf.String(), "shortcuts init") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestCheckRegistry_ReportsApplications(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SHORTCUTS_HOME", home)

	writeHomeFile(t, home, ".config/shortcuts/shortcuts.conf", `{
  "version": "1.0.0",
  "applications": [
    {"name": "vim", "config": ".vimrc", "syntax": "nnoremap (\\S+) (.*)"},
    {"name": "tmux", "config": ".tmux.conf", "syntax": "bind (\\S+) (.*)"},
    {"name": "bad", "config": ".vimrc", "syntax": "only (one) group"},
    {"name": "dir", "config": ".config", "syntax": "(a) (b)"}
  ]
}`)
	writeHomeFile(t, home, ".vimrc", "nnoremap <C-n> :next<CR>\n")

	var buf bytes.Buffer
	report, err := CheckRegistry(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Applications != 4 {
		t.Errorf("Applications = %d, want 4", report.Applications)
	}
	if report.Failures != 2 {
		t.Errorf("Failures = %d, want 2", report.Failures)
	}
	if report.Missing != 1 {
		t.Errorf("Missing = %d, want 1", report.Missing)
	}
	if report.Outdated {
		t.Error("expected current document version")
	}

	output := buf.String()
	for _, want := range []string{"[ OK ] vim:", "[MISS] tmux:", "[FAIL] bad:", "[FAIL] dir:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestCheckRegistry_OutdatedVersion(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unversioned", `{"applications": []}`},
		{"older version", `{"version": "0.9.0", "applications": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("SHORTCUTS_HOME", home)
			writeHomeFile(t, home, ".config/shortcuts/shortcuts.conf", tt.doc)

			var buf bytes.Buffer
			report, err := CheckRegistry(&buf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !report.Outdated {
				t.Error("expected Outdated to be true")
			}
			if !strings.Contains(buf.String(), "[WARN]") {
				t.Errorf("expected warning in output:\n%s", buf.String())
			}
		})
	}
}

func TestCheckRegistry_InvalidDocument(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SHORTCUTS_HOME", home)
	writeHomeFile(t, home, ".config/shortcuts/shortcuts.conf", `{"applications": [{"name": "x"}]}`)

	var buf bytes.Buffer
	if _, err := CheckRegistry(&buf); err == nil {
		t.Fatal("expected error for invalid registry")
	}
	if !strings.Contains(buf.String(), "[FAIL]") {
		t.Errorf("expected failure line:\n%s", buf.String())
	}
}
