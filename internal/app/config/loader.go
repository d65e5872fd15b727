package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "PAYFLOW"

// Load reads configuration with priority: config file > ENV > defaults.
// The API base URL and key have no defaults and cause an immediate
// error when absent — the demo cannot run without a backend.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("wallet-agent", "local")
	v.SetDefault("log-level", "info")
	v.SetDefault("journal-path", "")

	source := "env"
	settingPath := ""
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		source = "file"
		settingPath = v.ConfigFileUsed()
	} else {
		v.SetConfigName("payflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.payflow")
		if err := v.ReadInConfig(); err == nil {
			source = "file"
			settingPath = v.ConfigFileUsed()
		} else {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := NewAppConfig(
		v.GetString("api-url"),
		v.GetString("api-key"),
		v.GetString("wallet-agent"),
		v.GetString("log-level"),
		v.GetString("journal-path"),
		source,
		settingPath,
	)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on configuration the flow cannot run without.
func Validate(cfg Config) error {
	if cfg.APIURL() == "" {
		return errors.New("PAYFLOW_API_URL is not set")
	}
	if _, err := url.ParseRequestURI(cfg.APIURL()); err != nil {
		return fmt.Errorf("PAYFLOW_API_URL is not a valid URL: %w", err)
	}
	if cfg.APIKey() == "" {
		return errors.New("PAYFLOW_API_KEY is not set")
	}
	return nil
}
