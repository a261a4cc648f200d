// Package config handles YAML configuration loading, environment
// variable expansion, and validation for the bot binaries.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Update delivery modes.
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Config is the top-level configuration structure.
type Config struct {
	// Token is the bot token issued by BotFather. Usually supplied
	// as ${TGWIRE_TOKEN} so it stays out of the file.
	Token string `yaml:"token"`

	// APIURL overrides the Bot API base URL. Empty means the
	// public api.telegram.org endpoint.
	APIURL string `yaml:"api_url,omitempty"`

	// Mode selects how updates are received: "polling" or "webhook".
	Mode string `yaml:"mode"`

	// ListenAddr is the local address the HTTP server binds to. The
	// server carries /health and /metrics in both modes and the
	// webhook receiver in webhook mode.
	ListenAddr string `yaml:"listen_addr,omitempty"`

	Polling PollingConfig `yaml:"polling,omitempty"`
	Webhook WebhookConfig `yaml:"webhook,omitempty"`

	// Digests are scheduled messages sent on cron expressions.
	Digests []DigestEntry `yaml:"digests,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// PollingConfig tunes the getUpdates loop.
type PollingConfig struct {
	// Timeout is the long-polling window in seconds.
	Timeout int `yaml:"timeout,omitempty"`

	// AllowedUpdates restricts the update types delivered.
	AllowedUpdates []string `yaml:"allowed_updates,omitempty"`

	// OffsetDB is the SQLite file persisting the update offset
	// across restarts. Empty keeps the offset in memory.
	OffsetDB string `yaml:"offset_db,omitempty"`
}

// WebhookConfig describes the webhook endpoint.
type WebhookConfig struct {
	// URL is the public HTTPS URL registered with setWebhook.
	URL string `yaml:"url"`

	// SecretToken is sent back by Telegram in the
	// X-Telegram-Bot-Api-Secret-Token header.
	SecretToken string `yaml:"secret_token,omitempty"`

	// Path is the local route the receiver is mounted at.
	Path string `yaml:"path,omitempty"`
}

// DigestEntry is one scheduled message.
type DigestEntry struct {
	// ChatID is the numeric chat or a channel @username.
	ChatID string `yaml:"chat_id"`

	// Cron is a standard five-field cron expression.
	Cron string `yaml:"cron"`

	// Text is the message body.
	Text string `yaml:"text"`
}

// envPattern matches ${VAR} and ${VAR:-default} expressions.
var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-((?:[^}\\]|\\.)*))?\}`)

// tokenPattern is the shape of a BotFather token: numeric bot ID,
// colon, opaque secret.
var tokenPattern = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]+$`)

// Load reads a YAML configuration file, expands environment
// variables, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	expanded, err := expandEnv(raw)
	if err != nil {
		return nil, fmt.Errorf("config: expanding variables in %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = ModePolling
	}
	if c.Polling.Timeout == 0 {
		c.Polling.Timeout = 30
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.Webhook.Path == "" {
		c.Webhook.Path = "/telegram"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the structural validity of a Config. Error text
// never echoes the token value.
func (c *Config) Validate() error {
	var errs []error

	if c.Token == "" {
		errs = append(errs, errors.New("config: token is required"))
	} else if !tokenPattern.MatchString(c.Token) {
		errs = append(errs, errors.New("config: token does not look like a bot token"))
	}

	switch c.Mode {
	case ModePolling:
		if c.Polling.Timeout < 0 {
			errs = append(errs, fmt.Errorf("config: polling.timeout must not be negative, got %d", c.Polling.Timeout))
		}
	case ModeWebhook:
		if c.Webhook.URL == "" {
			errs = append(errs, errors.New("config: webhook.url is required in webhook mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown mode %q (supported: polling, webhook)", c.Mode))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log_level %q", c.LogLevel))
	}

	for i, d := range c.Digests {
		if d.ChatID == "" {
			errs = append(errs, fmt.Errorf("config: digests[%d]: chat_id is required", i))
		}
		if d.Cron == "" {
			errs = append(errs, fmt.Errorf("config: digests[%d]: cron is required", i))
		}
		if d.Text == "" {
			errs = append(errs, fmt.Errorf("config: digests[%d]: text is required", i))
		}
	}

	return errors.Join(errs...)
}

// expandEnv replaces ${VAR} and ${VAR:-default} patterns in raw YAML
// bytes. Returns an error listing all unresolved variables.
func expandEnv(raw []byte) ([]byte, error) {
	var errs []error

	result := envPattern.ReplaceAllFunc(raw, func(match []byte) []byte {
		subs := envPattern.FindSubmatch(match)
		name := string(subs[1])
		hasDefault := len(subs) > 2 && subs[2] != nil
		defaultVal := ""
		if hasDefault {
			defaultVal = string(subs[2])
		}

		value, ok := os.LookupEnv(name)
		if ok {
			return []byte(value)
		}

		if hasDefault {
			return []byte(defaultVal)
		}

		errs = append(errs, fmt.Errorf("unresolved variable: %s", name))
		return match
	})

	return result, errors.Join(errs...)
}
