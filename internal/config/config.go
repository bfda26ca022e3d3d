package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Port          string
	OpenAIKey     string
	OpenAIModel   string
	QuestionCount int
	FFmpegBinary  string
}

// fileConfig is the optional YAML config file. Every field overrides the
// corresponding env/default value when set.
type fileConfig struct {
	Port          string `yaml:"port"`
	Model         string `yaml:"model"`
	QuestionCount int    `yaml:"question_count"`
	FFmpegBinary  string `yaml:"ffmpeg_binary"`
}

// Load loads configuration from environment variables, then applies the
// optional YAML file named by INTERVU_CONFIG. A missing OPENAI_API_KEY is
// not an error: generation and evaluation degrade to their fallbacks.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		QuestionCount: 4,
		FFmpegBinary:  getEnv("FFMPEG_BINARY", "ffmpeg"),
	}

	if v := os.Getenv("QUESTION_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("QUESTION_COUNT must be a positive integer, got %q", v)
		}
		cfg.QuestionCount = n
	}

	if path := os.Getenv("INTERVU_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.Model != "" {
		c.OpenAIModel = fc.Model
	}
	if fc.QuestionCount != 0 {
		if fc.QuestionCount < 1 {
			return fmt.Errorf("question_count in %s must be positive, got %d", path, fc.QuestionCount)
		}
		c.QuestionCount = fc.QuestionCount
	}
	if fc.FFmpegBinary != "" {
		c.FFmpegBinary = fc.FFmpegBinary
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
