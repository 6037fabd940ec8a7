package instapaper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// EnvPrefix prefixes every variable Config reads, e.g. INSTAPAPER_CONSUMER_KEY.
const EnvPrefix = "INSTAPAPER"

// Config holds everything needed to build a Client from the environment.
// Names are derived with split_words rather than envconfig tags so that an
// unset INSTAPAPER_USERNAME never falls back to the login's $USERNAME.
// Either Token/TokenSecret or Username/Password should be set; with neither
// the client is built unauthenticated.
type Config struct {
	ConsumerKey    string `split_words:"true" required:"true"`
	ConsumerSecret string `split_words:"true" required:"true"`

	// Stored OAuth token from an earlier Authenticate.
	Token       string `split_words:"true"`
	TokenSecret string `split_words:"true"`

	// xAuth login, used only when no token is configured.
	Username string `split_words:"true"`
	Password string `split_words:"true"`

	BaseURL     string        `split_words:"true" default:"https://www.instapaper.com"`
	HTTPTimeout time.Duration `split_words:"true" default:"30s"`
	Debug       bool          `split_words:"true" default:"false"`
}

// LoadConfig reads Config from INSTAPAPER_* variables. Variables in envFiles
// are loaded first without overriding the process environment; with no
// envFiles a ./.env file is loaded if one exists.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("token_present", cfg.Token != "").
		Bool("username_present", cfg.Username != "").
		Bool("debug", cfg.Debug).
		Msg("instapaper config loaded")
	return &cfg, nil
}

// NewFromConfig builds a Client from cfg. With a stored token it is used
// directly; otherwise, when a username is set, the client authenticates.
// opts are applied after the ones derived from cfg. An empty BaseURL or a
// zero HTTPTimeout keeps the client defaults, so a hand-built Config only
// needs the consumer pair.
func NewFromConfig(ctx context.Context, cfg *Config, opts ...Option) (*Client, error) {
	base := []Option{WithDebugLogging(cfg.Debug)}
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPTimeout > 0 {
		base = append(base, WithHTTPTimeout(cfg.HTTPTimeout))
	}

	switch {
	case cfg.Token != "" || cfg.TokenSecret != "":
		base = append(base, WithToken(cfg.Token, cfg.TokenSecret))
		return New(cfg.ConsumerKey, cfg.ConsumerSecret, append(base, opts...)...)
	case cfg.Username != "":
		return Authenticate(ctx, cfg.Username, cfg.Password, cfg.ConsumerKey, cfg.ConsumerSecret, append(base, opts...)...)
	default:
		return New(cfg.ConsumerKey, cfg.ConsumerSecret, append(base, opts...)...)
	}
}
