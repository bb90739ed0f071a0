package model

// Application is one entry of the registry: a named program whose config
// file is scanned for shortcut definitions.
type Application struct {
	Name   string `json:"name"`
	Config string `json:"config"` // Absolute, "~/"-prefixed, or relative to the user's home.
	Syntax string `json:"syntax"` // Regex; group 1 is the key, group 2 the command.
}

// String returns the display name, the way a selector lists it.
func (a Application) String() string {
	return a.Name
}

// Entry is one extracted (key, command) pair.
type Entry struct {
	Key     string `json:"key"`
	Command string `json:"command"`
}
