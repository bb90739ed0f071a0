// Package model holds the value types shared by the shortcut pipeline
// (Application, Entry) and the three error kinds a caller must be able to
// tell apart: IOError, ParseError, and PatternError.
package model
