package cli

import (
	"github.com/aak-labs/aak/internal/adb"
	"github.com/aak-labs/aak/internal/bootstrap"
	"github.com/aak-labs/aak/internal/branding"
	"github.com/aak-labs/aak/internal/config"
	"github.com/spf13/cobra"
)

var setupRepoURL string

func init() {
	setupCmd.Flags().StringVar(&setupRepoURL, "repo-url", "", "Kernel repository URL (default from config or built-in)")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup [target-dir]",
	Short: "Bootstrap the " + branding.DisplayName() + " workspace",
	Long: `Bootstrap the ` + branding.DisplayName() + ` workspace.

Locates or clones the kernel repository, installs its dependencies with uv,
and checks for an Android device bridge. A missing adb is advisory only;
a missing uv or a failed clone or sync aborts with a non-zero exit code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetDir := config.TargetDir()
		if len(args) == 1 {
			targetDir = args[0]
		}

		repoURL := setupRepoURL
		if repoURL == "" {
			repoURL = config.RepoURL()
		}

		return bootstrap.Run(cmd.Context(), bootstrap.Options{
			TargetDir: targetDir,
			RepoURL:   repoURL,
			Stdout:    cmd.OutOrStdout(),
			Stderr:    cmd.ErrOrStderr(),
			NewDeviceLister: func(path string) bootstrap.DeviceLister {
				return adb.New(path)
			},
		})
	},
}
