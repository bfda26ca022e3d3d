package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervu/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "OPENAI_API_KEY", "OPENAI_MODEL", "QUESTION_COUNT", "FFMPEG_BINARY", "INTERVU_CONFIG"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.OpenAIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 4, cfg.QuestionCount)
	assert.Equal(t, "ffmpeg", cfg.FFmpegBinary)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("QUESTION_COUNT", "6")
	t.Setenv("FFMPEG_BINARY", "/opt/ffmpeg/bin/ffmpeg")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 6, cfg.QuestionCount)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpegBinary)
}

func TestLoadRejectsBadQuestionCount(t *testing.T) {
	for _, v := range []string{"zero", "0", "-2"} {
		clearEnv(t)
		t.Setenv("QUESTION_COUNT", v)

		_, err := config.Load()
		assert.Error(t, err, "QUESTION_COUNT=%s should be rejected", v)
	}
}

func TestLoadAppliesYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "intervu.yaml")
	content := "port: \"3000\"\nmodel: gpt-4o\nquestion_count: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("INTERVU_CONFIG", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 5, cfg.QuestionCount)
	assert.Equal(t, "ffmpeg", cfg.FFmpegBinary, "fields absent from the file keep their defaults")
}

func TestLoadRejectsUnreadableOrInvalidFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("INTERVU_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := config.Load()
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("question_count: [not a number"), 0644))
	t.Setenv("INTERVU_CONFIG", path)
	_, err = config.Load()
	assert.Error(t, err)
}
