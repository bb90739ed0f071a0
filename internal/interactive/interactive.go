// Package interactive is the headless presentation shell: a numbered
// application menu on stdin/stdout that re-renders on every selection.
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nagygr/shortcuts/internal/pipeline"
	"github.com/nagygr/shortcuts/internal/render"
)

// QuitCommand ends the session.
const QuitCommand = "q"

// Run shows the first application, then lets the user pick another one by
// number until they enter QuitCommand or input ends. The pipeline must
// already have its registry loaded.
func Run(p *pipeline.Pipeline, mode render.Mode, r io.Reader, w io.Writer) error {
	names := p.ListApplications()
	if len(names) == 0 {
		fmt.Fprintf(w, "No applications configured in %s\n", p.RegistryPath())
		return nil
	}

	reader := bufio.NewReader(r)
	show(p, mode, w, names, 0)

	for {
		idx, done, err := selectFromList(reader, w, names)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if idx < 0 {
			continue
		}
		show(p, mode, w, names, idx)
	}
}

// show writes a header and the rendering of the application at idx.
func show(p *pipeline.Pipeline, mode render.Mode, w io.Writer, names []string, idx int) {
	if mode == render.ModePlain {
		fmt.Fprintf(w, "\n== %s ==\n", names[idx])
	}
	fmt.Fprint(w, p.RenderAt(idx, mode))
}

// selectFromList prints the menu and reads one answer. It returns the chosen
// index, -1 for an invalid answer, or done when the session should end.
func selectFromList(reader *bufio.Reader, w io.Writer, names []string) (int, bool, error) {
	fmt.Fprintf(w, "\nSelect application:\n")
	for i, name := range names {
		fmt.Fprintf(w, "  %d) %s\n", i+1, name)
	}
	fmt.Fprintf(w, "Enter number [1-%d] or %s to quit: ", len(names), QuitCommand)

	line, err := reader.ReadString('\n')
	eof := errors.Is(err, io.EOF)
	if err != nil && !eof {
		return 0, false, fmt.Errorf("reading selection: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" && eof {
		fmt.Fprintln(w)
		return 0, true, nil
	}
	if strings.EqualFold(answer, QuitCommand) {
		return 0, true, nil
	}

	num, convErr := strconv.Atoi(answer)
	if convErr != nil || num < 1 || num > len(names) {
		fmt.Fprintf(w, "invalid selection %q: choose 1-%d\n", answer, len(names))
		return -1, eof, nil
	}
	// A final answer without a newline is still shown; the next read ends.
	return num - 1, false, nil
}
