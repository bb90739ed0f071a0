package registry

import (
	"github.com/samber/lo"

	"github.com/nagygr/shortcuts/internal/model"
)

// Registry is the ordered list of applications loaded from the registry
// file. The first application is the default selection.
type Registry struct {
	Version      string
	Applications []model.Application
}

// document is the on-disk shape of the registry file.
type document struct {
	Version      string              `json:"version,omitempty"`
	Applications []model.Application `json:"applications"`
}

// Len returns the number of applications.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Applications)
}

// At returns the application at index i.
func (r *Registry) At(i int) (model.Application, bool) {
	if i < 0 || i >= r.Len() {
		return model.Application{}, false
	}
	return r.Applications[i], true
}

// IndexOf returns the index of the first application named name.
func (r *Registry) IndexOf(name string) (int, bool) {
	if r == nil {
		return -1, false
	}
	_, idx, ok := lo.FindIndexOf(r.Applications, func(a model.Application) bool {
		return a.Name == name
	})
	return idx, ok
}

// Names returns the application names in registry order. Duplicates are kept.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return lo.Map(r.Applications, func(a model.Application, _ int) string {
		return a.Name
	})
}
