package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aak-labs/aak/internal/adb"
	"github.com/aak-labs/aak/internal/config"
	"github.com/aak-labs/aak/internal/toolchain"
	"github.com/spf13/cobra"
)

var devicesJSON bool

func init() {
	devicesCmd.Flags().BoolVar(&devicesJSON, "json", false, "Print devices as JSON")
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List Android devices attached via adb",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := adb.New(resolveADBPath())
		if !client.Available() {
			return fmt.Errorf("adb (%s) not found; install with: %s",
				client.Path(), toolchain.InstallHint(toolchain.ToolADB))
		}

		devices, err := client.Devices(cmd.Context())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if devicesJSON {
			out, err := json.MarshalIndent(devices, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling devices: %w", err)
			}
			fmt.Fprintln(w, string(out))
			return nil
		}

		if len(devices) == 0 {
			fmt.Fprintln(w, "No devices attached.")
			return nil
		}
		for _, d := range devices {
			if len(d.Properties) == 0 {
				fmt.Fprintf(w, "%-24s %s\n", d.Serial, d.State)
				continue
			}
			fmt.Fprintf(w, "%-24s %-14s %s\n", d.Serial, d.State, formatProperties(d.Properties))
		}
		return nil
	},
}

// resolveADBPath picks the adb binary: ADB_PATH (process env or workspace
// .env) wins, then the adb.path config key, then plain "adb" on PATH.
func resolveADBPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	if settings, err := config.LoadSettings(cwd); err == nil && settings.ADBPath != config.DefaultADBPath {
		return settings.ADBPath
	}
	if v := config.Get(config.KeyADBPath); v != "" {
		return v
	}
	return config.DefaultADBPath
}

func formatProperties(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+props[k])
	}
	return strings.Join(parts, " ")
}
