package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestErrorKinds_Distinguishable(t *testing.T) {
	ioErr := fmt.Errorf("loading: %w", &IOError{Op: "reading", Path: "/x", Err: fs.ErrNotExist})
	parseErr := fmt.Errorf("loading: %w", &ParseError{Path: "/x", Reason: "missing applications"})
	patErr := &PatternError{Pattern: "(", Reason: "does not compile"}

	if !IsIOError(ioErr) || IsParseError(ioErr) || IsPatternError(ioErr) {
		t.Errorf("IOError misclassified: %v", ioErr)
	}
	if !IsParseError(parseErr) || IsIOError(parseErr) {
		t.Errorf("ParseError misclassified: %v", parseErr)
	}
	if !IsPatternError(patErr) || IsIOError(patErr) {
		t.Errorf("PatternError misclassified: %v", patErr)
	}
}

func TestIOError_Unwrap(t *testing.T) {
	err := &IOError{Op: "opening", Path: "/missing", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected IOError to unwrap to fs.ErrNotExist")
	}
	if !strings.Contains(err.Error(), "/missing") {
		t.Errorf("expected path in message, got %q", err.Error())
	}
}

func TestIOError_PathNamedOnce(t *testing.T) {
	_, openErr := os.Open(filepath.Join(t.TempDir(), "config"))
	var pe *fs.PathError
	if !errors.As(openErr, &pe) {
		t.Fatalf("expected *fs.PathError, got %T", openErr)
	}

	err := &IOError{Op: "opening", Path: pe.Path, Err: openErr}
	if n := strings.Count(err.Error(), pe.Path); n != 1 {
		t.Errorf("path appears %d times in %q", n, err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected IOError to still unwrap to fs.ErrNotExist")
	}

	other := &IOError{Op: "reading", Path: "/registry", Err: openErr}
	if !strings.Contains(other.Error(), pe.Path) {
		t.Errorf("expected the cause's own path to be kept in %q", other.Error())
	}
}

func TestPatternError_Message(t *testing.T) {
	err := &PatternError{Pattern: "(a)", Reason: "needs at least 2 capturing groups, has 1"}
	want := `pattern "(a)": needs at least 2 capturing groups, has 1`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestApplication_String(t *testing.T) {
	app := Application{Name: "vim", Config: ".vimrc", Syntax: "(a) (b)"}
	if app.String() != "vim" {
		t.Errorf("got %q, want vim", app.String())
	}
}
