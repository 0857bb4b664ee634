package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LINE_CHANNEL_ACCESS_TOKEN", "channel-token")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadPath("")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.ServerAddr())
	assert.Equal(t, ProviderGemini, cfg.OCRProvider)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "https://api.line.me/v2/bot/message/reply", cfg.ReplyAPIURL)
	assert.Equal(t, "https://api-data.line.me/v2/bot/message", cfg.ContentAPIURL)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "prod")
	t.Setenv("LINE_REPLY_TOKEN", "fallback-token")

	cfg, err := LoadPath("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr())
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "fallback-token", cfg.DefaultReplyToken)
}

func TestLoadGeminiKeyRequired(t *testing.T) {
	t.Setenv("LINE_CHANNEL_ACCESS_TOKEN", "channel-token")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadPath("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadOCRSpaceProvider(t *testing.T) {
	t.Setenv("LINE_CHANNEL_ACCESS_TOKEN", "channel-token")
	t.Setenv("OCR_PROVIDER", "ocrspace")
	t.Setenv("OCR_SPACE_API_KEY", "space-key")

	cfg, err := LoadPath("")
	require.NoError(t, err)
	assert.Equal(t, ProviderOCRSpace, cfg.OCRProvider)
}

func TestLoadUnknownProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OCR_PROVIDER", "tesseract")

	_, err := LoadPath("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown OCR_PROVIDER")
}
