package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/nagygr/shortcuts/internal/branding"
	"github.com/nagygr/shortcuts/internal/model"
)

// Permissions for the bootstrapped config directory and registry file.
const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Dir returns the config directory under home (<home>/.config/shortcuts).
func Dir(home string) string {
	return filepath.Join(home, branding.ConfigDir())
}

// Path returns the registry file location under home.
func Path(home string) string {
	return filepath.Join(Dir(home), branding.RegistryFile())
}

// Store loads the application registry for one home directory.
type Store struct {
	home   string
	logger *zap.Logger
}

// NewStore returns a Store rooted at home. A nil logger discards output.
func NewStore(home string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{home: home, logger: logger}
}

// Path returns the registry file this store reads.
func (s *Store) Path() string {
	return Path(s.home)
}

// Load reads the registry, writing DefaultDocument first when the file does
// not exist. Failures to create or read files are *model.IOError; invalid
// documents are *model.ParseError.
func (s *Store) Load() (*Registry, error) {
	path := s.Path()

	created, err := Bootstrap(path)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("created default config file", zap.String("path", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.IOError{Op: "reading", Path: path, Err: err}
	}

	reg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded registry",
		zap.String("path", path),
		zap.Int("applications", reg.Len()))
	return reg, nil
}

// Load is shorthand for NewStore(home, nil).Load().
func Load(home string) (*Registry, error) {
	return NewStore(home, nil).Load()
}

// Bootstrap creates path with DefaultDocument if it does not exist,
// creating parent directories as needed. It reports whether it wrote the file.
func Bootstrap(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, &model.IOError{Op: "accessing", Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return false, &model.IOError{Op: "creating directory", Path: dir, Err: err}
	}
	if err := os.WriteFile(path, []byte(DefaultDocument), filePerm); err != nil {
		return false, &model.IOError{Op: "creating", Path: path, Err: err}
	}
	return true, nil
}

// Parse decodes and validates a registry document. path is only used in
// error messages.
func Parse(path string, data []byte) (*Registry, error) {
	result, err := Validate(data)
	if err != nil {
		if errors.Is(err, errMalformed) {
			return nil, &model.ParseError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &model.ParseError{
			Path:   path,
			Reason: fmt.Sprintf("%d validation issue(s): %s", len(result.Issues), result.Summary()),
		}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &model.ParseError{Path: path, Err: err}
	}

	if doc.Version != "" {
		if _, err := semver.NewVersion(doc.Version); err != nil {
			return nil, &model.ParseError{
				Path:   path,
				Reason: fmt.Sprintf("version %q is not a semantic version", doc.Version),
				Err:    err,
			}
		}
	}

	apps := doc.Applications
	if apps == nil {
		apps = []model.Application{}
	}
	return &Registry{Version: doc.Version, Applications: apps}, nil
}

// IsOutdated reports whether the document version predates DefaultVersion.
// Documents without a version count as outdated.
func (r *Registry) IsOutdated() bool {
	if r.Version == "" {
		return true
	}
	current, err := semver.NewVersion(r.Version)
	if err != nil {
		return true
	}
	return current.LessThan(semver.MustParse(DefaultVersion))
}
