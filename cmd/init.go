package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/snipdeck/snipdeck/pkg/service"
	"github.com/snipdeck/snipdeck/pkg/source"
)

const starterConfig = `# snipdeck configuration
#
# Each command needs a label and an insert payload; description and group are
# optional. Group paths use "/" to nest, e.g. "Markdown/Tables".
commands:
  - label: Hello
    insert: "Hello from snipdeck!\n"
    description: Starter snippet
`

func NewInitCmd(svc **service.Service) *cobra.Command {
	var initGlobal bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a starter configuration file.

By default the project scope is initialized (a .snipdeck.yaml in the current
directory, which shadows the global config). With --global the file goes to
the user config directory instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if initGlobal {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("resolve home directory: %w", err)
				}
				path = filepath.Join(home, ".config", "snipdeck", "config.yaml")
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					return fmt.Errorf("create config directory: %w", err)
				}
			} else {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				path = filepath.Join(cwd, source.ProjectFile)
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Printf("Initialized %s\n", path)
			fmt.Println("\nReady to use! Try 'snipdeck tui' to browse your snippets.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&initGlobal, "global", false, "Initialize the global scope instead of the project scope")

	return cmd
}
