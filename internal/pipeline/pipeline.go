package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nagygr/shortcuts/internal/extract"
	"github.com/nagygr/shortcuts/internal/model"
	"github.com/nagygr/shortcuts/internal/platform"
	"github.com/nagygr/shortcuts/internal/registry"
	"github.com/nagygr/shortcuts/internal/render"
)

// Stage messages shown in front of a rendered error.
const (
	StageAccessConfig  = "Error while accessing the config file"
	StageParseConfig   = "Error while parsing the config file"
	StageParseShortcut = "Error while parsing the application's shortcut file"
	StageSelect        = "Error while selecting the application"
)

// ErrNotLoaded is returned when the registry is used before LoadRegistry.
var ErrNotLoaded = errors.New("registry not loaded")

// Pipeline is the boundary the presentation shell talks to. It holds the
// registry loaded at startup and runs a full extraction on every render.
type Pipeline struct {
	home     string
	store    *registry.Store
	registry *registry.Registry
	logger   *zap.Logger
}

// New returns a Pipeline for the given home directory. A nil logger
// discards output.
func New(home string, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		home:   home,
		store:  registry.NewStore(home, logger),
		logger: logger,
	}
}

// LoadRegistry reads (or bootstraps) the registry. It is meant to be called
// once per session.
func (p *Pipeline) LoadRegistry() error {
	reg, err := p.store.Load()
	if err != nil {
		return err
	}
	p.registry = reg
	return nil
}

// RegistryPath returns the location of the registry file.
func (p *Pipeline) RegistryPath() string {
	return p.store.Path()
}

// Registry returns the loaded registry, or nil before LoadRegistry.
func (p *Pipeline) Registry() *registry.Registry {
	return p.registry
}

// ListApplications returns the application names in registry order.
func (p *Pipeline) ListApplications() []string {
	return p.registry.Names()
}

// Applications returns a copy of the loaded applications.
func (p *Pipeline) Applications() []model.Application {
	if p.registry == nil {
		return nil
	}
	return append([]model.Application(nil), p.registry.Applications...)
}

// Resolve returns the filesystem path of an application's config file.
func (p *Pipeline) Resolve(app model.Application) string {
	return platform.ResolvePath(p.home, app.Config)
}

// Lookup returns the index of the first application named name.
func (p *Pipeline) Lookup(name string) (int, error) {
	if p.registry == nil {
		return -1, ErrNotLoaded
	}
	idx, ok := p.registry.IndexOf(name)
	if !ok {
		return -1, fmt.Errorf("%w %q", model.ErrUnknownApplication, name)
	}
	return idx, nil
}

// Entries runs a full extraction for the application at index.
func (p *Pipeline) Entries(index int) ([]model.Entry, error) {
	if p.registry == nil {
		return nil, ErrNotLoaded
	}
	app, ok := p.registry.At(index)
	if !ok {
		return nil, fmt.Errorf("%w at index %d (registry has %d)", model.ErrUnknownApplication, index, p.registry.Len())
	}

	path := p.Resolve(app)
	p.logger.Info("parsing configuration file",
		zap.String("application", app.Name),
		zap.String("path", path))

	entries, err := extract.Extract(path, app.Syntax)
	if err != nil {
		p.logger.Debug("extraction failed", zap.String("application", app.Name), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Show renders the application at index. On failure the returned string is
// the rendered error message and err is the cause.
func (p *Pipeline) Show(index int, mode render.Mode) (string, error) {
	entries, err := p.Entries(index)
	if err != nil {
		return render.Error(mode, StageFor(err), err), err
	}
	return render.Render(entries, mode), nil
}

// RenderAt renders the application at index, or the error that prevented it.
func (p *Pipeline) RenderAt(index int, mode render.Mode) string {
	out, _ := p.Show(index, mode)
	return out
}

// RenderFor renders the first application named name, or the error that
// prevented it.
func (p *Pipeline) RenderFor(name string, mode render.Mode) string {
	idx, err := p.Lookup(name)
	if err != nil {
		return render.Error(mode, StageFor(err), err)
	}
	return p.RenderAt(idx, mode)
}

// LoadError renders a LoadRegistry failure.
func LoadError(mode render.Mode, err error) string {
	return render.Error(mode, LoadStage(err), err)
}

// LoadStage names the stage of a LoadRegistry failure.
func LoadStage(err error) string {
	if model.IsParseError(err) {
		return StageParseConfig
	}
	return StageAccessConfig
}

// StageFor names the stage of a selection or extraction failure.
func StageFor(err error) string {
	if errors.Is(err, model.ErrUnknownApplication) || errors.Is(err, ErrNotLoaded) {
		return StageSelect
	}
	return StageParseShortcut
}
