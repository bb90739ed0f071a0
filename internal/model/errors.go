package model

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrUnknownApplication is returned when a selection does not name any
// application in the registry.
var ErrUnknownApplication = errors.New("unknown application")

// IOError reports that a registry or target file could not be created,
// opened, or read.
type IOError struct {
	Op   string // "reading", "creating", "opening", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	cause := e.Err
	// *fs.PathError already names the path.
	var pe *fs.PathError
	if errors.As(cause, &pe) && pe.Path == e.Path {
		cause = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a structurally invalid registry document.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "parsing " + e.Path
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// PatternError reports a syntax field that does not compile, or that
// compiles without the two capturing groups extraction relies on.
type PatternError struct {
	Pattern string
	Reason  string
	Err     error
}

func (e *PatternError) Error() string {
	msg := fmt.Sprintf("pattern %q", e.Pattern)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PatternError) Unwrap() error { return e.Err }

// IsIOError reports whether err is, or wraps, an *IOError.
func IsIOError(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsPatternError reports whether err is, or wraps, a *PatternError.
func IsPatternError(err error) bool {
	var target *PatternError
	return errors.As(err, &target)
}
