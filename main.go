package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snipdeck/snipdeck/cmd"
	"github.com/snipdeck/snipdeck/pkg/service"
)

var (
	svc     *service.Service
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "snipdeck",
		Short:         "A configurable snippet palette for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (overrides project and global scopes)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		var err error
		svc, err = service.New(&service.Config{ConfigFile: cfgFile})
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewListCmd(&svc))
	rootCmd.AddCommand(cmd.NewTreeCmd(&svc))
	rootCmd.AddCommand(cmd.NewSearchCmd(&svc))
	rootCmd.AddCommand(cmd.NewInsertCmd(&svc))
	rootCmd.AddCommand(cmd.NewTuiCmd(&svc))
	rootCmd.AddCommand(cmd.NewInitCmd(&svc))
	rootCmd.AddCommand(cmd.NewConfigCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
