package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Providers selectable via OCR_PROVIDER.
const (
	ProviderGemini   = "gemini"
	ProviderOCRSpace = "ocrspace"
)

// Config holds all process-wide settings. Loaded once at startup and treated
// as immutable afterwards; handler logic never reads the environment directly.
type Config struct {
	Env  string `yaml:"env" env:"ENV" env-default:"dev"`
	Port int    `yaml:"port" env:"PORT" env-default:"3000"`

	OCRProvider    string `yaml:"ocr_provider" env:"OCR_PROVIDER" env-default:"gemini"`
	GeminiAPIKey   string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	GeminiModel    string `yaml:"gemini_model" env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
	OCRSpaceAPIKey string `yaml:"ocr_space_api_key" env:"OCR_SPACE_API_KEY"`

	ChannelAccessToken string `yaml:"channel_access_token" env:"LINE_CHANNEL_ACCESS_TOKEN" env-required:"true"`
	// DefaultReplyToken is used when a webhook batch carries no reply token
	// of its own (e.g. replayed or hand-crafted payloads).
	DefaultReplyToken string `yaml:"default_reply_token" env:"LINE_REPLY_TOKEN"`
	ReplyAPIURL       string `yaml:"reply_api_url" env:"LINE_REPLY_API_URL" env-default:"https://api.line.me/v2/bot/message/reply"`
	ContentAPIURL     string `yaml:"content_api_url" env:"LINE_CONTENT_API_URL" env-default:"https://api-data.line.me/v2/bot/message"`
}

// ServerAddr is the listen address derived from PORT.
func (c *Config) ServerAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads settings from an optional yaml file and the environment.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadPath(fetchConfigPath())
}

// LoadPath loads config from the given yaml file, or from the environment
// alone when path is empty.
func LoadPath(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.OCRProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set when OCR_PROVIDER is %s", ProviderGemini)
		}
	case ProviderOCRSpace:
		if c.OCRSpaceAPIKey == "" {
			return fmt.Errorf("OCR_SPACE_API_KEY must be set when OCR_PROVIDER is %s", ProviderOCRSpace)
		}
	default:
		return fmt.Errorf("unknown OCR_PROVIDER: %s", c.OCRProvider)
	}
	return nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
