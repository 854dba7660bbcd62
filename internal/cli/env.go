package cli

import (
	"fmt"
	"os"

	"github.com/aak-labs/aak/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the kernel settings the current environment resolves to",
	Long: `Show the runtime settings the kernel would start with: provider, model,
adb path, and step limits. Process environment wins over the workspace
.env file. Secret values are redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		settings, err := config.LoadSettings(cwd)
		if err != nil {
			return fmt.Errorf("resolving kernel settings: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-16s %s\n", "LLM_PROVIDER", settings.Provider)
		fmt.Fprintf(w, "%-16s %s\n", "model", settings.Model())
		switch settings.Provider {
		case config.ProviderGroq:
			fmt.Fprintf(w, "%-16s %s\n", "GROQ_API_KEY", redactedOrUnset("GROQ_API_KEY", settings.GroqAPIKey))
		case config.ProviderOpenAI:
			fmt.Fprintf(w, "%-16s %s\n", "OPENAI_API_KEY", redactedOrUnset("OPENAI_API_KEY", settings.OpenAIAPIKey))
		case config.ProviderBedrock:
			fmt.Fprintf(w, "%-16s %s\n", "AWS_REGION", settings.AWSRegion)
		}
		fmt.Fprintf(w, "%-16s %s\n", "ADB_PATH", settings.ADBPath)
		fmt.Fprintf(w, "%-16s %d\n", "MAX_STEPS", settings.MaxSteps)
		fmt.Fprintf(w, "%-16s %s\n", "STEP_DELAY", settings.StepDelay)

		if err := settings.Validate(); err != nil {
			fmt.Fprintf(w, "\nWarning: %v\n", err)
		}
		return nil
	},
}

func redactedOrUnset(key, value string) string {
	if value == "" {
		return "(unset)"
	}
	return config.RedactValue(key, value)
}
