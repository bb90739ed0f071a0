// Package cli defines the Cobra command tree for the shortcuts CLI. The root
// command keeps the classic behavior (help, unrecognized arguments, or the
// interactive menu); every other file registers one subcommand. Commands
// delegate to internal packages and only handle flags and output.
package cli
