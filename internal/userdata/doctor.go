package userdata

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/nagygr/shortcuts/internal/branding"
	"github.com/nagygr/shortcuts/internal/extract"
	"github.com/nagygr/shortcuts/internal/platform"
	"github.com/nagygr/shortcuts/internal/registry"
)

// RegistryReport summarizes a CheckRegistry run.
type RegistryReport struct {
	Applications int
	Failures     int
	Missing      int
	Outdated     bool
}

// CheckRegistry validates the registry and every application it lists:
//   - the registry exists and is a valid document
//   - the document version is current
//   - each syntax compiles with two capture groups
//   - each config file exists
//
// It returns an error only when the registry itself cannot be read or parsed.
func CheckRegistry(w io.Writer) (*RegistryReport, error) {
	home, err := GetHome()
	if err != nil {
		return nil, err
	}
	path := registry.Path(home)

	fmt.Fprintln(w, "Registry check:")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		fmt.Fprintf(w, "         Run '%s init' to create\n", branding.CLIName())
		return &RegistryReport{}, nil
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	reg, err := registry.Parse(path, data)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return nil, err
	}
	fmt.Fprintf(w, "  [ OK ] %s is valid (%d applications)\n", path, reg.Len())

	report := &RegistryReport{Applications: reg.Len()}
	if reg.IsOutdated() {
		report.Outdated = true
		version := reg.Version
		if version == "" {
			version = "unversioned"
		}
		fmt.Fprintf(w, "  [WARN] document version %s is older than %s\n", version, registry.DefaultVersion)
	}

	fmt.Fprintln(w, "Applications:")
	for _, app := range reg.Applications {
		if _, err := extract.Compile(app.Syntax); err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", app.Name, err)
			report.Failures++
			continue
		}

		target := platform.ResolvePath(home, app.Config)
		info, err := os.Stat(target)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [MISS] %s: %s not found\n", app.Name, target)
			report.Missing++
		case info.IsDir():
			fmt.Fprintf(w, "  [FAIL] %s: %s is a directory\n", app.Name, target)
			report.Failures++
		default:
			fmt.Fprintf(w, "  [ OK ] %s: %s\n", app.Name, target)
		}
	}

	return report, nil
}
