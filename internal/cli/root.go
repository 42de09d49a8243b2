package cli

import (
	"fmt"

	"github.com/jakoblorz/fsx/internal/config"
	"github.com/jakoblorz/fsx/internal/filesystem"
	"github.com/jakoblorz/fsx/internal/history"
	"github.com/jakoblorz/fsx/internal/shell"
	"github.com/jakoblorz/fsx/internal/tui"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fsx",
		Short: "Interactive file explorer with an activity log",
		Long: `An interactive shell over the local filesystem.

Commands like ls, cd, cp, rm and search operate on files and directories,
and every dispatched action is appended to a persistent activity log that
the history command reads back.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.UI.NoColor {
				tui.DisableColors()
			}

			log := history.New(fs, cfg.History.Path)
			sh := shell.New(fs, log, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())

			if line, _ := cmd.Flags().GetString("command"); line != "" {
				sh.Dispatch(line)
				return nil
			}

			return sh.Run(cmd.InOrStdin())
		},
	}

	rootCmd.Flags().StringP("command", "c", "", "Run a single command line and exit instead of starting the shell")

	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	cfg := config.LoadOrDefault()

	rootCmd := NewRootCommand(fs, cfg)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
