// Package source reads the configured command list from ranked configuration
// scopes. A more specific scope fully shadows broader ones: the first scope
// with a non-empty command list wins, scopes are never merged. When every
// scope is empty the embedded default bundle is used.
package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/snipdeck/snipdeck/pkg/bundle"
	"github.com/snipdeck/snipdeck/pkg/models"
)

// Key is the configuration key holding the command list.
const Key = "commands"

// ProjectFile is the per-project configuration file name, found in the
// working directory or any ancestor.
const ProjectFile = ".snipdeck.yaml"

type layer struct {
	name string
	path string
	v    *viper.Viper
}

// Source resolves the current command snapshot from ranked scope layers,
// most specific first.
type Source struct {
	layers []*layer
}

// Open builds the scope stack: the explicit --config file when given, then
// the project file discovered by walking up from dir, then the global file
// under the user config directory. Missing files are legal; a scope without
// a file simply never shadows anything.
func Open(explicit, dir string) (*Source, error) {
	s := &Source{}

	if explicit != "" {
		s.addLayer("flag", explicit)
	}
	if project := findProjectFile(dir); project != "" {
		s.addLayer("project", project)
	}
	global, err := globalPath()
	if err != nil {
		return nil, fmt.Errorf("resolve global config path: %w", err)
	}
	s.addLayer("global", global)

	return s, nil
}

func (s *Source) addLayer(name, path string) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	s.layers = append(s.layers, &layer{name: name, path: path, v: v})
}

// Snapshot returns the current command list: the first scope with a
// non-empty value, or the default bundle. Every call re-reads the scope
// files so the answer always reflects the configuration on disk.
func (s *Source) Snapshot() []models.Command {
	stack := make([][]models.Command, 0, len(s.layers))
	for _, l := range s.layers {
		stack = append(stack, l.read())
	}
	if cmds := resolve(stack...); cmds != nil {
		return cmds
	}
	return bundle.Defaults()
}

// resolve picks the first non-empty layer from an ordered
// most-to-least-specific stack. Pure; nil when every layer is empty.
func resolve(stack ...[]models.Command) []models.Command {
	for _, cmds := range stack {
		if len(cmds) > 0 {
			return cmds
		}
	}
	return nil
}

func (l *layer) read() []models.Command {
	if err := l.v.ReadInConfig(); err != nil {
		// A missing scope file is normal; anything else is worth a debug line.
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("scope", l.name).Debug("config scope unreadable")
		}
		return nil
	}
	var cmds []models.Command
	if err := l.v.UnmarshalKey(Key, &cmds); err != nil {
		logrus.WithError(err).WithField("scope", l.name).Warn("ignoring malformed command list")
		return nil
	}
	return cmds
}

// Watch registers onChange to run whenever any existing scope file changes
// on disk. The callback is a notify-only hint; Snapshot re-reads regardless.
func (s *Source) Watch(onChange func()) {
	for _, l := range s.layers {
		if _, err := os.Stat(l.path); err != nil {
			continue
		}
		l.v.OnConfigChange(func(fsnotify.Event) { onChange() })
		l.v.WatchConfig()
	}
}

// Paths returns the scope file paths, most specific first.
func (s *Source) Paths() []string {
	out := make([]string, 0, len(s.layers))
	for _, l := range s.layers {
		out = append(out, l.path)
	}
	return out
}

// ActiveScope names the scope whose commands the snapshot currently comes
// from, or "bundle" when every scope is empty.
func (s *Source) ActiveScope() string {
	for _, l := range s.layers {
		if len(l.read()) > 0 {
			return l.name
		}
	}
	return "bundle"
}

func findProjectFile(dir string) string {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return ""
		}
	}
	for {
		candidate := filepath.Join(dir, ProjectFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func globalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "snipdeck", "config.yaml"), nil
}
