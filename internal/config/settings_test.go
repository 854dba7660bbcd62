package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettingsDefaults(t *testing.T) {
	clearKernelEnv(t)

	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if s.Provider != ProviderGroq {
		t.Errorf("Provider = %q, want %q", s.Provider, ProviderGroq)
	}
	if s.Model() != DefaultGroqModel {
		t.Errorf("Model() = %q, want %q", s.Model(), DefaultGroqModel)
	}
	if s.ADBPath != DefaultADBPath {
		t.Errorf("ADBPath = %q, want %q", s.ADBPath, DefaultADBPath)
	}
	if s.MaxSteps != DefaultMaxSteps {
		t.Errorf("MaxSteps = %d, want %d", s.MaxSteps, DefaultMaxSteps)
	}
	if s.StepDelay != DefaultStepDelay {
		t.Errorf("StepDelay = %v, want %v", s.StepDelay, DefaultStepDelay)
	}
}

func TestLoadSettingsEnvFileOverlay(t *testing.T) {
	clearKernelEnv(t)

	dir := t.TempDir()
	content := `# kernel settings
LLM_PROVIDER=openai
OPENAI_API_KEY=sk-from-dotenv
MAX_STEPS=25
STEP_DELAY=0.5
`
	if err := os.WriteFile(filepath.Join(dir, EnvFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if s.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want %q", s.Provider, ProviderOpenAI)
	}
	if s.OpenAIAPIKey != "sk-from-dotenv" {
		t.Errorf("OpenAIAPIKey = %q", s.OpenAIAPIKey)
	}
	if s.Model() != DefaultOpenAIModel {
		t.Errorf("Model() = %q, want %q", s.Model(), DefaultOpenAIModel)
	}
	if s.MaxSteps != 25 {
		t.Errorf("MaxSteps = %d, want 25", s.MaxSteps)
	}
	if s.StepDelay != 500*time.Millisecond {
		t.Errorf("StepDelay = %v, want 500ms", s.StepDelay)
	}
}

func TestLoadSettingsProcessEnvWins(t *testing.T) {
	clearKernelEnv(t)

	dir := t.TempDir()
	content := "LLM_PROVIDER=openai\nGROQ_API_KEY=gsk_dotenv\n"
	if err := os.WriteFile(filepath.Join(dir, EnvFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LLM_PROVIDER", ProviderBedrock)

	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if s.Provider != ProviderBedrock {
		t.Errorf("Provider = %q, want %q (process env should win)", s.Provider, ProviderBedrock)
	}
	if s.GroqAPIKey != "gsk_dotenv" {
		t.Errorf("GroqAPIKey = %q, want value from .env", s.GroqAPIKey)
	}
	if s.Model() != DefaultBedrockModel {
		t.Errorf("Model() = %q, want %q", s.Model(), DefaultBedrockModel)
	}
}

func TestLoadSettingsBadMaxSteps(t *testing.T) {
	clearKernelEnv(t)
	t.Setenv("MAX_STEPS", "lots")

	if _, err := LoadSettings(t.TempDir()); err == nil {
		t.Fatal("expected error for non-numeric MAX_STEPS")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"groq with key", Settings{Provider: ProviderGroq, GroqAPIKey: "gsk_x"}, false},
		{"groq missing key", Settings{Provider: ProviderGroq}, true},
		{"openai with key", Settings{Provider: ProviderOpenAI, OpenAIAPIKey: "sk-x"}, false},
		{"openai missing key", Settings{Provider: ProviderOpenAI}, true},
		{"bedrock needs nothing", Settings{Provider: ProviderBedrock}, false},
		{"unknown provider", Settings{Provider: "ollama"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseEnvFile(t *testing.T) {
	tmp := t.TempDir()
	envFile := filepath.Join(tmp, "test.env")

	content := `# This is a comment
LLM_PROVIDER=groq
GROQ_MODEL=llama-3.3-70b-versatile

# Another comment
BEDROCK_MODEL=us.meta.llama3-3-70b-instruct-v1:0
EMPTY_VALUE=
`
	os.WriteFile(envFile, []byte(content), 0644)

	entries, err := ParseEnvFile(envFile)
	if err != nil {
		t.Fatalf("ParseEnvFile failed: %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Key != "LLM_PROVIDER" || entries[0].Value != "groq" {
		t.Errorf("entry 0: got %s=%s", entries[0].Key, entries[0].Value)
	}
	if entries[3].Key != "EMPTY_VALUE" || entries[3].Value != "" {
		t.Errorf("entry 3: got %s=%s", entries[3].Key, entries[3].Value)
	}
}

func TestParseEnvFileMissing(t *testing.T) {
	_, err := ParseEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	if !os.IsNotExist(err) {
		t.Errorf("expected os.IsNotExist error, got %v", err)
	}
}

func TestRedactValue(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected string
	}{
		{"GROQ_API_KEY", "gsk_abcdef123456", "gsk_***"},
		{"OPENAI_API_KEY", "sk-12345", "sk-1***"},
		{"MY_SECRET", "ab", "***"},
		{"LLM_PROVIDER", "groq", "groq"},
		{"AWS_REGION", "us-east-1", "us-east-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := RedactValue(tt.key, tt.value); got != tt.expected {
				t.Errorf("RedactValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.expected)
			}
		})
	}
}

// clearKernelEnv unsets every env var LoadSettings consults so tests are
// hermetic regardless of the host environment.
func clearKernelEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LLM_PROVIDER", "GROQ_API_KEY", "GROQ_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL",
		"AWS_REGION", "BEDROCK_MODEL",
		"ADB_PATH", "MAX_STEPS", "STEP_DELAY",
	} {
		t.Setenv(key, "")
	}
}
