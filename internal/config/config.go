package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Telegram holds the bot credentials for notifications. Both fields
// fall back to environment variables so CI runs never need a config
// file with secrets in it.
type Telegram struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

type Config struct {
	Sections   []string  `yaml:"sections"`
	Keywords   []string  `yaml:"keywords"`
	AlertTerms []string  `yaml:"alert_terms"`
	CacheTTL   string    `yaml:"cache_ttl,omitempty"`
	TopN       int       `yaml:"top_n,omitempty"`
	Telegram   *Telegram `yaml:"telegram,omitempty"`
}

// validSections are the gazette sections the reading endpoint accepts.
var validSections = map[string]bool{"do1": true, "do2": true, "do3": true}

func (c *Config) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d <= 0 {
		return 30 * time.Minute
	}
	return d
}

// GetTopN returns the digest size, defaulting to 5.
func (c *Config) GetTopN() int {
	if c.TopN <= 0 {
		return 5
	}
	return c.TopN
}

// BotToken returns the resolved bot token (config or env var).
func (c *Config) BotToken() string {
	if c.Telegram != nil && c.Telegram.BotToken != "" {
		return c.Telegram.BotToken
	}
	return os.Getenv("TELEGRAM_BOT_TOKEN")
}

// ChatID returns the resolved chat id (config or env var).
func (c *Config) ChatID() string {
	if c.Telegram != nil && c.Telegram.ChatID != "" {
		return c.Telegram.ChatID
	}
	return os.Getenv("TELEGRAM_CHAT_ID")
}

// TelegramEnabled reports whether both credentials are available.
func (c *Config) TelegramEnabled() bool {
	return c.BotToken() != "" && c.ChatID() != ""
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "fiscalizagov", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if len(cfg.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	for i, s := range cfg.Sections {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if !validSections[normalized] {
			return fmt.Errorf("section %q: unknown section code (valid: do1, do2, do3)", s)
		}
		cfg.Sections[i] = normalized
	}
	if cfg.CacheTTL != "" {
		if _, err := time.ParseDuration(cfg.CacheTTL); err != nil {
			return fmt.Errorf("invalid cache_ttl %q: %w", cfg.CacheTTL, err)
		}
	}
	return nil
}

// ParseSections splits a comma-separated section override ("do1,do2")
// and validates it against the known codes.
func ParseSections(raw string) ([]string, error) {
	var sections []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !validSections[s] {
			return nil, fmt.Errorf("unknown section %q (valid: do1, do2, do3)", s)
		}
		sections = append(sections, s)
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("no sections in %q", raw)
	}
	return sections, nil
}

// ParseTerms splits a comma-separated term list, trimming entries and
// dropping empty ones.
func ParseTerms(raw string) []string {
	var terms []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
