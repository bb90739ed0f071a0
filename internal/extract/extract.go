package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/nagygr/shortcuts/internal/model"
)

// minGroups is the number of capturing groups every syntax must define:
// group 1 is the key, group 2 the command.
const minGroups = 2

// Pattern is a compiled application syntax that only accepts whole lines.
type Pattern struct {
	syntax string
	re     *regexp.Regexp
}

// Compile compiles syntax for full-line matching. It returns a
// *model.PatternError when syntax does not compile or defines fewer than
// two capturing groups.
func Compile(syntax string) (*Pattern, error) {
	// The bare syntax is compiled on its own first so that unbalanced
	// parentheses cannot pair up with the anchoring group.
	bare, err := regexp.Compile(syntax)
	if err != nil {
		return nil, &model.PatternError{Pattern: syntax, Reason: "does not compile", Err: err}
	}
	if n := bare.NumSubexp(); n < minGroups {
		return nil, &model.PatternError{
			Pattern: syntax,
			Reason:  fmt.Sprintf("needs at least %d capturing groups, has %d", minGroups, n),
		}
	}

	re, err := regexp.Compile(`\A(?:` + syntax + `)\z`)
	if err != nil {
		return nil, &model.PatternError{Pattern: syntax, Reason: "does not compile", Err: err}
	}
	return &Pattern{syntax: syntax, re: re}, nil
}

// String returns the syntax the pattern was compiled from.
func (p *Pattern) String() string {
	return p.syntax
}

// Match returns the entry for line, or false when the whole line does not
// match.
func (p *Pattern) Match(line string) (model.Entry, bool) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return model.Entry{}, false
	}
	return model.Entry{
		Key:     m[1],
		Command: strings.TrimSpace(m[2]),
	}, true
}

// ExtractReader reads r to the end and returns one entry per matching line,
// in line order. On a read error nothing is returned.
func (p *Pattern) ExtractReader(r io.Reader) ([]model.Entry, error) {
	br := bufio.NewReader(r)
	entries := []model.Entry{}

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if entry, ok := p.Match(trimEOL(line)); ok {
				entries = append(entries, entry)
			}
		}
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Extract compiles syntax and scans the file at path. Pattern problems are
// *model.PatternError; open or read failures are *model.IOError. The file
// is closed before Extract returns.
func Extract(path, syntax string) ([]model.Entry, error) {
	p, err := Compile(syntax)
	if err != nil {
		return nil, err
	}
	return p.ExtractFile(path)
}

// ExtractFile scans the file at path with an already compiled pattern.
func (p *Pattern) ExtractFile(path string) ([]model.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &model.IOError{Op: "opening", Path: path, Err: err}
	}
	defer f.Close()

	entries, err := p.ExtractReader(f)
	if err != nil {
		return nil, &model.IOError{Op: "reading", Path: path, Err: err}
	}
	return entries, nil
}

// trimEOL strips one trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
