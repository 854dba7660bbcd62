// Package branding provides compile-time identity values for the CLI.
//
// Forkers pointing the bootstrapper at their own kernel fork edit
// branding.yaml in this package; Go's //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string   `yaml:"cli_name"`
	DisplayName   string   `yaml:"display_name"`
	Description   string   `yaml:"description"`
	HomeDir       string   `yaml:"home_dir"`
	EnvPrefix     string   `yaml:"env_prefix"`
	KernelRepoURL string   `yaml:"kernel_repo_url"`
	TargetDir     string   `yaml:"target_dir"`
	MarkerFiles   []string `yaml:"marker_files"`
	RunCommand    string   `yaml:"run_command"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "aak",
			DisplayName:   "Android Action Kernel",
			Description:   "Bootstrapper for the Android Action Kernel workspace",
			HomeDir:       ".aak",
			EnvPrefix:     "AAK",
			KernelRepoURL: "https://github.com/aak-labs/android-action-kernel.git",
			TargetDir:     "android-action-kernel",
			MarkerFiles:   []string{"pyproject.toml", "kernel.py"},
			RunCommand:    "uv run android-action-kernel",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "aak").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".aak").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AAK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// KernelRepoURL returns the default git URL for cloning the kernel.
func KernelRepoURL() string { load(); return defaults.KernelRepoURL }

// TargetDir returns the default clone directory name.
func TargetDir() string { load(); return defaults.TargetDir }

// MarkerFiles returns the files whose joint presence marks a project root.
func MarkerFiles() []string { load(); return defaults.MarkerFiles }

// RunCommand returns the command end users invoke to start the kernel.
func RunCommand() string { load(); return defaults.RunCommand }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REPO_URL") → "AAK_REPO_URL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
