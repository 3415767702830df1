// Package bundle supplies the built-in fallback command list, used only when
// no configuration scope defines any commands.
package bundle

import (
	_ "embed"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/snipdeck/snipdeck/pkg/models"
)

//go:embed defaults.json
var defaultsJSON []byte

// Defaults returns the bundled default commands. Records missing a label or
// payload are dropped silently. A corrupt bundle is logged and treated as an
// empty list; startup never fails because of it.
func Defaults() []models.Command {
	return parse(defaultsJSON)
}

func parse(data []byte) []models.Command {
	var cmds []models.Command
	if err := json.Unmarshal(data, &cmds); err != nil {
		logrus.WithError(err).Warn("default command bundle is malformed, using empty list")
		return nil
	}
	return models.FilterValid(cmds)
}
