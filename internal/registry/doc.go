// Package registry loads the application registry from
// ~/.config/shortcuts/shortcuts.conf. A missing registry is bootstrapped
// from DefaultDocument before it is read. Documents are validated against
// an embedded JSON Schema, so structural problems surface as
// *model.ParseError, while file system failures surface as *model.IOError.
// The package also owns the built-in help text.
package registry
