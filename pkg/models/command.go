package models

// Command represents one configured snippet entry. The config file stores
// commands as YAML; the embedded default bundle stores them as JSON.
type Command struct {
	Label       string `yaml:"label" json:"label"`
	Insert      string `yaml:"insert" json:"insert"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Group       string `yaml:"group,omitempty" json:"group,omitempty"`
}

// Valid reports whether the command has the minimal required shape:
// a display label and an insertion payload. Description and Group are
// optional and may be empty.
func (c Command) Valid() bool {
	return c.Label != "" && c.Insert != ""
}

// FilterValid returns the commands that pass shape validation, preserving
// input order. Invalid records are dropped silently; callers that want to
// report them iterate themselves.
func FilterValid(cmds []Command) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Valid() {
			out = append(out, c)
		}
	}
	return out
}
