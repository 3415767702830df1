package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/snipdeck/snipdeck/pkg/editor"
	"github.com/snipdeck/snipdeck/pkg/service"
)

func NewInsertCmd(svc **service.Service) *cobra.Command {
	var (
		insertFile string
		insertSel  string
		writeBack  bool
	)

	cmd := &cobra.Command{
		Use:   "insert <label>",
		Short: "Apply a snippet to a text buffer",
		Long: `Apply the snippet with the given label to a text buffer.

The buffer comes from --file, or from stdin when piped. Selections are byte
ranges: each non-empty range is replaced by the snippet, each bare offset gets
it inserted, all in a single edit. Without --sel the snippet is appended.

Examples:
  snipdeck insert "MIT header" --file main.go --sel 0 -w
  cat draft.md | snipdeck insert "Table"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			c, err := s.FindCommand(args[0])
			if err != nil {
				return err
			}

			sels, err := editor.ParseSelections(insertSel)
			if err != nil {
				return err
			}

			buf, err := readBuffer(insertFile)
			if err != nil {
				return err
			}
			if buf != nil {
				buf.Selections = sels
			}

			result, err := editor.Insert(buf, c.Insert)
			if err != nil {
				if errors.Is(err, editor.ErrNoBuffer) {
					// Informational, not fatal: the user can re-run with a
					// target buffer.
					fmt.Fprintln(os.Stderr, "snipdeck: no active editable buffer (pass --file or pipe stdin)")
					return nil
				}
				return err
			}

			if writeBack && insertFile != "" {
				return os.WriteFile(insertFile, []byte(result), 0644)
			}
			_, err = io.WriteString(os.Stdout, result)
			return err
		},
	}

	cmd.Flags().StringVarP(&insertFile, "file", "f", "", "Buffer file to edit")
	cmd.Flags().StringVar(&insertSel, "sel", "", "Selections as start:end ranges or bare offsets, comma separated")
	cmd.Flags().BoolVarP(&writeBack, "write", "w", false, "Write the result back to --file instead of stdout")

	return cmd
}

// readBuffer loads the target buffer: --file wins, otherwise piped stdin.
// A nil buffer means no target at all.
func readBuffer(path string) (*editor.Buffer, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read buffer: %w", err)
		}
		return &editor.Buffer{Text: string(data)}, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return nil, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return &editor.Buffer{Text: string(data)}, nil
}
