package cli

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/pipeline"
)

const (
	envPrefix   = "TIERPYRAMID"
	defaultAddr = "127.0.0.1:8080"
)

// config holds settings shared by all commands. Flags override it.
type config struct {
	Width        float64  `mapstructure:"width"`
	Height       float64  `mapstructure:"height"`
	TopWidth     float64  `mapstructure:"top-width"`
	CornerRadius *float64 `mapstructure:"corner-radius"`
	Style        string   `mapstructure:"style"`
	Catalog      string   `mapstructure:"catalog"`
	Cache        bool     `mapstructure:"cache"`
	RedisURL     string   `mapstructure:"redis-url"`
	Addr         string   `mapstructure:"addr"`
	Watch        bool     `mapstructure:"watch"`
}

// defaultConfigPath returns ~/.config/tierpyramid/config.toml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path (or the default location) and
// the TIERPYRAMID_* environment. A missing file is not an error.
func loadConfig(path string) (config, error) {
	var cfg config

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("width", pipeline.DefaultWidth)
	v.SetDefault("height", pipeline.DefaultHeight)
	v.SetDefault("top-width", pipeline.DefaultTopWidth)
	v.SetDefault("corner-radius", pipeline.DefaultCornerRadius)
	v.SetDefault("style", pipeline.DefaultStyle)
	v.SetDefault("catalog", "")
	v.SetDefault("cache", true)
	v.SetDefault("redis-url", "")
	v.SetDefault("addr", defaultAddr)
	v.SetDefault("watch", false)

	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "find home directory")
		}
		path = p
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	return cfg, nil
}

// options converts the config into pipeline options.
func (c config) options() pipeline.Options {
	return pipeline.Options{
		Width:        c.Width,
		Height:       c.Height,
		TopWidth:     c.TopWidth,
		CornerRadius: c.CornerRadius,
		Style:        c.Style,
	}
}
