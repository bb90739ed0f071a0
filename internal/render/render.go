package render

import (
	"fmt"
	"strings"

	"github.com/nagygr/shortcuts/internal/model"
)

// Mode selects the output format.
type Mode int

const (
	ModePlain Mode = iota
	ModeHTML
)

// String returns the mode name as accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeHTML:
		return "html"
	default:
		return "plain"
	}
}

// ParseMode parses "plain", "text", or "html" (case-insensitive). An empty
// string selects ModePlain.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "text":
		return ModePlain, nil
	case "html":
		return ModeHTML, nil
	default:
		return ModePlain, fmt.Errorf("unknown render mode %q (valid: plain, html)", s)
	}
}

// Render formats entries in the given mode.
func Render(entries []model.Entry, mode Mode) string {
	if mode == ModeHTML {
		return HTML(entries)
	}
	return Plain(entries)
}

// Plain writes one "key: command" line per entry.
func Plain(entries []model.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Key)
		b.WriteString(": ")
		b.WriteString(e.Command)
		b.WriteByte('\n')
	}
	return b.String()
}

// HTML writes a table with one row per entry: bold key, italic command.
func HTML(entries []model.Entry) string {
	var b strings.Builder
	b.WriteString("<table>\n")
	for _, e := range entries {
		b.WriteString("<tr><td><b>")
		writeEscaped(&b, e.Key)
		b.WriteString("</b></td><td><i>")
		writeEscaped(&b, e.Command)
		b.WriteString("</i></td></tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

// Error renders a failure message and its cause. In HTML mode both parts are
// escaped like entry text.
func Error(mode Mode, message string, err error) string {
	cause := "<nil>"
	if err != nil {
		cause = err.Error()
	}

	if mode == ModeHTML {
		return "<p><b>" + EscapeHTML(message) + "</b>: <i>" + EscapeHTML(cause) + "</i></p>\n"
	}
	return message + ": " + cause + "\n"
}
