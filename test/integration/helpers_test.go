//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nagygr/shortcuts/internal/registry"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // SHORTCUTS_HOME, where relative config paths resolve
	RegistryPath string
}

// setupTestEnv creates an isolated home directory and points SHORTCUTS_HOME
// at it. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("SHORTCUTS_HOME", home)

	return &testEnv{
		HomeDir:      home,
		RegistryPath: registry.Path(home),
	}
}

// setupConfigs writes the application config files the default registry
// points at, with a mix of matching and non-matching lines.
func setupConfigs(t *testing.T, homeDir string) {
	t.Helper()

	writeFile(t, filepath.Join(homeDir, ".config", "i3", "config"), `# i3 config
set $mod Mod4
bindsym $mod+Return exec alacritty
bindsym $mod+Shift+q kill
  bindsym $mod+d exec dmenu_run
bindsym $mod+f fullscreen toggle
`)

	writeFile(t, filepath.Join(homeDir, ".vimrc"), `set number
nnoremap <C-n> :NERDTreeToggle<CR>
nmap <leader>w :w<CR>
inoremap jk <Esc>
map ,, :nohlsearch<CR>
`)

	writeFile(t, filepath.Join(homeDir, ".config", "vifm", "vifmrc"), "nnoremap ,e :!$EDITOR %f<cr>\r\nset vicmd=vim\r\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}
