package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Provider identifiers accepted in LLM_PROVIDER.
const (
	ProviderGroq    = "groq"
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

// Kernel defaults. These mirror the values the kernel itself assumes, so the
// env report and the final guidance stay truthful.
const (
	DefaultGroqModel    = "llama-3.3-70b-versatile"
	DefaultOpenAIModel  = "gpt-4o"
	DefaultBedrockModel = "us.meta.llama3-3-70b-instruct-v1:0"
	DefaultAWSRegion    = "us-east-1"
	DefaultADBPath      = "adb"
	DefaultMaxSteps     = 10
	DefaultStepDelay    = 2 * time.Second
)

// EnvFileName is the dotenv file the kernel loads from its project root.
const EnvFileName = ".env"

// Settings is the kernel's runtime environment contract as the bootstrapper
// understands it: everything here is read from process env, with a .env file
// in the workspace root taking effect for keys the process env leaves unset.
type Settings struct {
	Provider string

	GroqAPIKey string
	GroqModel  string

	OpenAIAPIKey string
	OpenAIModel  string

	AWSRegion    string
	BedrockModel string

	ADBPath   string
	MaxSteps  int
	StepDelay time.Duration
}

// EnvEntry represents a single key-value pair from a .env file.
type EnvEntry struct {
	Key   string
	Value string
}

// LoadSettings resolves the kernel settings for the workspace rooted at dir.
// Process environment wins over the workspace .env file, which wins over
// built-in defaults. A missing .env file is not an error.
func LoadSettings(dir string) (*Settings, error) {
	overlay := map[string]string{}
	envPath := filepath.Join(dir, EnvFileName)
	if entries, err := ParseEnvFile(envPath); err == nil {
		for _, e := range entries {
			overlay[e.Key] = e.Value
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := overlay[key]; v != "" {
			return v
		}
		return fallback
	}

	s := &Settings{
		Provider:     get("LLM_PROVIDER", ProviderGroq),
		GroqAPIKey:   get("GROQ_API_KEY", ""),
		GroqModel:    get("GROQ_MODEL", DefaultGroqModel),
		OpenAIAPIKey: get("OPENAI_API_KEY", ""),
		OpenAIModel:  get("OPENAI_MODEL", DefaultOpenAIModel),
		AWSRegion:    get("AWS_REGION", DefaultAWSRegion),
		BedrockModel: get("BEDROCK_MODEL", DefaultBedrockModel),
		ADBPath:      get("ADB_PATH", DefaultADBPath),
		MaxSteps:     DefaultMaxSteps,
		StepDelay:    DefaultStepDelay,
	}

	if v := get("MAX_STEPS", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing MAX_STEPS %q: %w", v, err)
		}
		s.MaxSteps = n
	}
	if v := get("STEP_DELAY", ""); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing STEP_DELAY %q: %w", v, err)
		}
		s.StepDelay = time.Duration(secs * float64(time.Second))
	}

	return s, nil
}

// Model returns the model name for the selected provider.
func (s *Settings) Model() string {
	switch s.Provider {
	case ProviderGroq:
		return s.GroqModel
	case ProviderBedrock:
		return s.BedrockModel
	default:
		return s.OpenAIModel
	}
}

// Validate reports whether the selected provider has its required credential.
// Bedrock uses the AWS credential chain and needs nothing explicit here.
func (s *Settings) Validate() error {
	switch s.Provider {
	case ProviderGroq:
		if s.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when using the %s provider", ProviderGroq)
		}
	case ProviderOpenAI:
		if s.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when using the %s provider", ProviderOpenAI)
		}
	case ProviderBedrock:
		// AWS credential chain.
	default:
		return fmt.Errorf("unknown provider %q: supported providers are %q, %q, %q",
			s.Provider, ProviderGroq, ProviderOpenAI, ProviderBedrock)
	}
	return nil
}

// ParseEnvFile reads a .env file and returns key-value entries.
// It skips blank lines and lines starting with #.
func ParseEnvFile(path string) ([]EnvEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []EnvEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		entries = append(entries, EnvEntry{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return entries, nil
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// RedactValue returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
// Values with 4+ chars show the first 4 chars + "***".
// Values with fewer than 4 chars are fully redacted as "***".
func RedactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
