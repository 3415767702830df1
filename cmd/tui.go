package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/snipdeck/snipdeck/internal/tui/palette"
	"github.com/snipdeck/snipdeck/pkg/service"
)

// NewTuiCmd creates the `snipdeck tui` command.
func NewTuiCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive snippet palette",
		Long: `Launch an interactive palette for browsing and inserting snippets.

Groups expand and collapse lazily; the list refreshes live when a config
file changes. Activating a snippet copies it to the clipboard and prints it
to stdout on exit, so it can be piped straight into another tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check for TTY. The guard reads stdin, and the palette renders to
			// stderr, so stdout stays free to pipe the chosen snippet.
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("TUI mode requires an interactive terminal")
			}

			s := *svc
			m := palette.New(s)

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run palette: %w", err)
			}

			if fm, ok := final.(*palette.Model); ok && fm.Chosen != "" {
				_, err = io.WriteString(os.Stdout, fm.Chosen)
			}
			return err
		},
	}

	return cmd
}
