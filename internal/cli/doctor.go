package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aak-labs/aak/internal/config"
	"github.com/aak-labs/aak/internal/toolchain"
	"github.com/aak-labs/aak/internal/workspace"
	"github.com/spf13/cobra"
)

// defaultUVMinVersion is the oldest uv release the kernel's pyproject is
// known to work with; overridable via the uv.min_version config key.
const defaultUVMinVersion = "0.4.0"

var (
	checkTools     bool
	checkWorkspace bool
	checkConfig    bool
	checkEnv       bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify git/uv/adb availability and versions")
	doctorCmd.Flags().BoolVar(&checkWorkspace, "check-workspace", false, "Verify the kernel working copy")
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Validate the user config file against its schema")
	doctorCmd.Flags().BoolVar(&checkEnv, "check-env", false, "Verify provider credentials are present")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the bootstrap environment",
	Long:  `Run diagnostic checks on the tools, working copy, config, and environment the kernel depends on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		anyFlag := checkTools || checkWorkspace || checkConfig || checkEnv

		if !anyFlag || checkTools {
			runToolsCheck(cmd.Context(), w)
		}
		if !anyFlag || checkWorkspace {
			runWorkspaceCheck(w)
		}
		if !anyFlag || checkConfig {
			runConfigCheck(w)
		}
		if !anyFlag || checkEnv {
			runEnvCheck(w)
		}
		return nil
	},
}

func runToolsCheck(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Tool check:")

	for _, name := range []string{toolchain.ToolGit, toolchain.ToolUV, toolchain.ToolADB} {
		st := toolchain.ProbeVersion(ctx, nil, nil, name)
		if !st.Found {
			fmt.Fprintf(w, "  [MISS] %s not found\n", name)
			if hint := toolchain.InstallHint(name); hint != "" {
				fmt.Fprintf(w, "         Install with: %s\n", hint)
			}
			continue
		}
		if st.Version == "" {
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, st.Path)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s %s at %s\n", name, st.Version, st.Path)

		if name == toolchain.ToolUV {
			min := config.Get(config.KeyUVMinVersion)
			if min == "" {
				min = defaultUVMinVersion
			}
			ok, err := toolchain.MeetsMinimum(st.Version, min)
			if err != nil {
				fmt.Fprintf(w, "  [WARN] could not compare uv version against %s: %v\n", min, err)
			} else if !ok {
				fmt.Fprintf(w, "  [WARN] uv %s is older than the supported minimum %s\n", st.Version, min)
			}
		}
	}
}

func runWorkspaceCheck(w io.Writer) {
	fmt.Fprintln(w, "Workspace check:")

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] cannot determine working directory: %v\n", err)
		return
	}

	if workspace.IsProjectRoot(cwd) {
		fmt.Fprintf(w, "  [ OK ] %s is a kernel project root\n", cwd)
		reportCheckout(w, cwd)
		return
	}

	target := config.TargetDir()
	if workspace.HasGitMetadata(target) {
		fmt.Fprintf(w, "  [ OK ] existing checkout at %s\n", target)
		reportCheckout(w, target)
		return
	}

	fmt.Fprintf(w, "  [MISS] no kernel working copy here or at %s\n", target)
	fmt.Fprintf(w, "         Run '%s setup' to clone it\n", rootCmd.Use)
}

func reportCheckout(w io.Writer, dir string) {
	info, err := workspace.Inspect(dir)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] cannot read checkout state: %v\n", err)
		return
	}
	branch := info.Branch
	if branch == "" {
		branch = "(detached)"
	}
	fmt.Fprintf(w, "  [ OK ] on %s @ %s\n", branch, info.ShortCommit())
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, "Config check:")

	path := config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] no config file at %s (defaults apply)\n", path)
		return
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] cannot validate %s: %v\n", path, err)
		return
	}
	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
		return
	}
	fmt.Fprintf(w, "  [FAIL] %s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
}

func runEnvCheck(w io.Writer) {
	fmt.Fprintln(w, "Environment check:")

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] cannot determine working directory: %v\n", err)
		return
	}

	settings, err := config.LoadSettings(cwd)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] cannot resolve kernel settings: %v\n", err)
		return
	}

	fmt.Fprintf(w, "  [ OK ] provider %s (model %s)\n", settings.Provider, settings.Model())
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	fmt.Fprintln(w, "  [ OK ] provider credentials present")
}
