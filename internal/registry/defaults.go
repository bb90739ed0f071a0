package registry

import "github.com/nagygr/shortcuts/internal/model"

// DefaultVersion is the format revision of DefaultDocument.
const DefaultVersion = "1.0.0"

// DefaultDocument is written verbatim to the registry location when no
// registry exists yet.
const DefaultDocument = `{
    "version": "1.0.0",
    "applications": [
        {
            "name": "i3",
            "config": ".config/i3/config",
            "syntax": "bindsym ([a-zA-Z0-9$+]+) (.*)"
        },
        {
            "name": "vim",
            "config": ".vimrc",
            "syntax": "(?:map|nmap|nnoremap|tnoremap) ((?:[a-zA-Z0-9<>]|[[:punct:]])+) (.*)"
        },
        {
            "name": "vifm",
            "config": ".config/vifm/vifmrc",
            "syntax": "nnoremap ([a-zA-Z0-9<>,]+) (.*)"
        }
    ]
}
`

// HelpText describes the program and the registry format.
const HelpText = `Shortcuts
=========

This application parses application configs for keyboard shortcuts and echoes them.

It uses information given in its config file for each application:

- the application name: it is used in the selector to tell Shortcuts
    which application's config to look for
- the config's path: the path to the config file (either an absolute path
    or a path relative to the user's home directory; "~/" is accepted too)
- the syntax: the regex that matches the lines that define shortcuts
    - the regex must match the whole line
    - the regex must contain two unnamed capturing groups: the first is the keyboard
        shortcut, the second is the command that's executed
    - the regex can contain any number of additional non-capturing groups
        - Form: (?:regex)

The config file's location is: $HOME/.config/shortcuts/shortcuts.conf.
If it is not found there then the directory is created and a default config
file is placed there.`

// DefaultApplications returns the applications listed in DefaultDocument.
func DefaultApplications() []model.Application {
	return []model.Application{
		{
			Name:   "i3",
			Config: ".config/i3/config",
			Syntax: "bindsym ([a-zA-Z0-9$+]+) (.*)",
		},
		{
			Name:   "vim",
			Config: ".vimrc",
			Syntax: "(?:map|nmap|nnoremap|tnoremap) ((?:[a-zA-Z0-9<>]|[[:punct:]])+) (.*)",
		},
		{
			Name:   "vifm",
			Config: ".config/vifm/vifmrc",
			Syntax: "nnoremap ([a-zA-Z0-9<>,]+) (.*)",
		},
	}
}
