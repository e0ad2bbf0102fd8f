package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// DefaultCategories is the fixed category list linked from the homepage.
var DefaultCategories = []string{
	"liquids",
	"electronics",
	"food",
	"toiletries",
	"medication",
	"tools",
	"sports",
	"baby",
	"customs",
}

type Config struct {
	Site struct {
		URL string
	}
	Data struct {
		File     string
		Variable string
	}
	Output struct {
		File     string
		Comments bool
	}
	Sitemap struct {
		Categories []string
		UTC        bool
	}
	Server struct {
		Port int
	}
	Log struct {
		File  string
		Debug bool
	}
}

// LoadConfig reads config.yaml from the working directory or ./config.
// A missing file is fine, the defaults describe a complete setup.
func LoadConfig() (*Config, error) {
	return load(viper.New(), "")
}

// LoadConfigFile reads an explicit config file instead of searching for one.
func LoadConfigFile(path string) (*Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("sitemap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Default values
	v.SetDefault("site.url", "https://www.canibringonplane.com")
	v.SetDefault("data.file", "js/data-embedded.js")
	v.SetDefault("data.variable", "ITEMS_DATA")
	v.SetDefault("output.file", "sitemap.xml")
	v.SetDefault("output.comments", true)
	v.SetDefault("sitemap.categories", DefaultCategories)
	v.SetDefault("sitemap.utc", true)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.file", "")
	v.SetDefault("log.debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	config.Site.URL = strings.TrimRight(config.Site.URL, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Site.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("site.url must be an absolute http(s) URL, got %q", c.Site.URL)
	}
	if c.Data.File == "" {
		return errors.New("data.file must not be empty")
	}
	if c.Data.Variable == "" {
		return errors.New("data.variable must not be empty")
	}
	if c.Output.File == "" {
		return errors.New("output.file must not be empty")
	}
	return nil
}
