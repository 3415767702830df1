package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/snipdeck/snipdeck/pkg/models"
	"github.com/snipdeck/snipdeck/pkg/service"
)

// configDocument mirrors the on-disk schema for strict validation.
type configDocument struct {
	Commands []models.Command `yaml:"commands"`
}

func NewConfigCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration scopes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the scope files and which one is active",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			for _, p := range s.Source.Paths() {
				marker := " "
				if _, err := os.Stat(p); err == nil {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, p)
			}
			fmt.Printf("\nactive scope: %s\n", s.Source.ActiveScope())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the configured scope files",
		Long: `Validate every existing scope file: strict YAML schema (typos in field
names are reported, unlike normal loading which ignores them) and the
required label/insert shape of each record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			problems := 0
			for _, path := range s.Source.Paths() {
				data, err := os.ReadFile(path)
				if err != nil {
					continue // missing scope files are fine
				}
				problems += checkDocument(path, data)
			}

			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			fmt.Println("All scope files valid.")
			return nil
		},
	})

	return cmd
}

// checkDocument reports schema and shape problems in one scope file.
func checkDocument(path string, data []byte) int {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc configDocument
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		fmt.Printf("%s: %v\n", path, err)
		return 1
	}

	problems := 0
	for i, c := range doc.Commands {
		if !c.Valid() {
			problems++
			fmt.Printf("%s: record %d (%q): missing %s\n", path, i, c.Label, missingFields(c.Label, c.Insert))
		}
	}
	return problems
}

func missingFields(label, insert string) string {
	switch {
	case label == "" && insert == "":
		return "label and insert"
	case label == "":
		return "label"
	default:
		return "insert"
	}
}
