package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snipdeck/snipdeck/pkg/projection"
	"github.com/snipdeck/snipdeck/pkg/service"
)

func NewTreeCmd(svc **service.Service) *cobra.Command {
	var showPayload bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the snippet grouping tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			var render func(parent *projection.Item, prefix string)
			render = func(parent *projection.Item, prefix string) {
				items := s.Projection.Children(parent)
				for i, item := range items {
					item := item
					connector := "├─ "
					childPrefix := prefix + "│  "
					if i == len(items)-1 {
						connector = "└─ "
						childPrefix = prefix + "   "
					}

					if item.Kind == projection.KindGroup {
						fmt.Printf("%s%s%s/\n", prefix, connector, item.Label)
						render(&item, childPrefix)
						continue
					}

					line := fmt.Sprintf("%s%s%s", prefix, connector, item.Label)
					if item.Description != "" {
						line += "  (" + item.Description + ")"
					}
					fmt.Println(line)
					if showPayload {
						for _, pl := range strings.Split(strings.TrimRight(item.Insert, "\n"), "\n") {
							fmt.Printf("%s│ %s\n", childPrefix, pl)
						}
					}
				}
			}

			fmt.Println(".")
			render(nil, "")
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPayload, "payload", false, "Show insertion payloads inline")

	return cmd
}
