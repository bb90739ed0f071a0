// Package extract pulls (key, command) pairs out of an application's config
// file. The syntax must match a line in full; a line that only contains a
// match somewhere inside it is skipped.
package extract
