// Package config resolves site configuration with precedence:
// defaults < config file < BLOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
)

// Config holds the resolved site configuration.
type Config struct {
	Title        string      `mapstructure:"title"`
	BaseURL      string      `mapstructure:"base_url"`
	Author       string      `mapstructure:"author"`
	Timezone     string      `mapstructure:"timezone"`
	ContentDir   string      `mapstructure:"content_dir"`
	TemplatesDir string      `mapstructure:"templates_dir"`
	StaticDir    string      `mapstructure:"static_dir"`
	OutputDir    string      `mapstructure:"output_dir"`
	FeedLimit    int         `mapstructure:"feed_limit"`
	Serve        ServeConfig `mapstructure:"serve"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// Option describes one configuration key, its default, and its meaning.
type Option struct {
	Key     string
	Default any
	Comment string
}

// Options returns the configuration keys and their defaults.
func Options() []Option {
	return []Option{
		{Key: "title", Default: "", Comment: "Site title, shown in templates and feeds"},
		{Key: "base_url", Default: "", Comment: "Absolute site URL used in feeds, e.g. https://example.com"},
		{Key: "author", Default: "", Comment: "Author name used in feeds"},
		{Key: "timezone", Default: "UTC", Comment: "IANA timezone for post dates"},
		{Key: "content_dir", Default: "content", Comment: "Directory of markdown content"},
		{Key: "templates_dir", Default: "templates", Comment: "Directory of template overrides; embedded theme is the fallback"},
		{Key: "static_dir", Default: "static", Comment: "Directory of static files copied verbatim"},
		{Key: "output_dir", Default: "public", Comment: "Directory the site is written to"},
		{Key: "feed_limit", Default: 50, Comment: "Maximum entries per RSS/Atom feed"},
		{Key: "serve.addr", Default: "127.0.0.1:8080", Comment: "Listen address for the preview server"},
	}
}

// Load resolves configuration from the given Viper instance and validates it.
// If cfgPath is non-empty it names the config file; otherwise blog.yaml is
// looked up in the working directory.
func Load(v *viper.Viper, cfgPath string) (*Config, error) {
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if v.ConfigFileUsed() == "" {
		v.SetConfigName("blog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("blog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required fields are present and well formed.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timezone, validation.Required, validation.By(validTimezone)),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.FeedLimit, validation.Required, validation.Min(1)),
	)
}

// Location loads the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func validTimezone(value any) error {
	name, _ := value.(string)
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone %q", name)
	}
	return nil
}
