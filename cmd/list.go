package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/snipdeck/snipdeck/pkg/models"
	"github.com/snipdeck/snipdeck/pkg/service"
)

func NewListCmd(svc **service.Service) *cobra.Command {
	var (
		listJSON  bool
		listGroup string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List configured snippets",
		Aliases: []string{"ls"},
		Long: `List the snippets from the active configuration scope.

Examples:
  snipdeck list              # List every snippet
  snipdeck list --group md   # Only snippets whose group path contains "md"
  snipdeck list --json       # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			cmds := s.Commands()

			if listGroup != "" {
				var filtered []models.Command
				for _, c := range cmds {
					if containsFold(c.Group, listGroup) {
						filtered = append(filtered, c)
					}
				}
				cmds = filtered
			}

			if listJSON {
				data, err := json.MarshalIndent(cmds, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal commands: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(cmds) == 0 {
				fmt.Println("No snippets configured.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tGROUP\tDESCRIPTION")
			for _, c := range cmds {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Label, c.Group, c.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&listGroup, "group", "", "Filter by group path substring")

	return cmd
}
