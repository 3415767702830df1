package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/snipdeck/snipdeck/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var (
		searchJSON  bool
		searchLimit int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search snippets by label, description or payload",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			query := strings.Join(args, " ")

			results, err := s.Search(query, searchLimit)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			if searchJSON {
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal results: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(results) == 0 {
				fmt.Printf("No snippets match %q.\n", query)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tGROUP\tDESCRIPTION")
			for _, c := range results {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Label, c.Group, c.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results (default 50)")

	return cmd
}
