package render

import (
	"strconv"
	"strings"
)

// Markers emitted by the HTML escaper.
const (
	nbsp      = "&nbsp;"
	lineBreak = "<br>"
	tabWidth  = 4
)

var tabMarker = strings.Repeat(nbsp, tabWidth)

// escapeState tracks whether the previous character was a literal space.
type escapeState int

const (
	stateNormal escapeState = iota
	stateAfterSpace
)

// EscapeHTML escapes s for embedding in the HTML rendering. The first space
// of a run stays a space and every further space becomes &nbsp;, so runs
// survive whitespace collapsing.
func EscapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	writeEscaped(&b, s)
	return b.String()
}

func writeEscaped(b *strings.Builder, s string) {
	state := stateNormal
	for _, r := range s {
		if r == ' ' {
			if state == stateAfterSpace {
				b.WriteString(nbsp)
			} else {
				b.WriteByte(' ')
				state = stateAfterSpace
			}
			continue
		}

		state = stateNormal
		switch {
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '&':
			b.WriteString("&amp;")
		case r == '"':
			b.WriteString("&quot;")
		case r == '\n':
			b.WriteString(lineBreak)
		case r == '\t':
			b.WriteString(tabMarker)
		case r >= 128:
			b.WriteString("&#")
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteByte(';')
		default:
			b.WriteRune(r)
		}
	}
}
