// Package render turns extracted entries into display text, either as plain
// "key: command" lines or as an HTML table whose cell text is escaped.
package render
