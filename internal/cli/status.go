package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/aak-labs/aak/internal/config"
	"github.com/aak-labs/aak/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the kernel working copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		dir := cwd
		switch {
		case workspace.IsProjectRoot(cwd):
			fmt.Fprintf(w, "Project root: %s\n", cwd)
		case workspace.HasGitMetadata(config.TargetDir()):
			dir = config.TargetDir()
			fmt.Fprintf(w, "Checkout: %s\n", dir)
		default:
			fmt.Fprintf(w, "No kernel working copy here or at %s.\n", config.TargetDir())
			fmt.Fprintln(w, "Run 'aak setup' to clone it.")
			return nil
		}

		info, err := workspace.Inspect(dir)
		if err != nil {
			if errors.Is(err, workspace.ErrNotARepository) {
				fmt.Fprintln(w, "Not under version control.")
				return nil
			}
			return err
		}

		branch := info.Branch
		if branch == "" {
			branch = "(detached)"
		}
		fmt.Fprintf(w, "Branch:   %s\n", branch)
		fmt.Fprintf(w, "HEAD:     %s\n", info.ShortCommit())
		return nil
	},
}
