package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AuthConfig struct {
	GoogleClientID string
	TokenPath      string
}

type NotifyConfig struct {
	SocketURL       string
	RefreshInterval time.Duration
}

type AppConfig struct {
	Environment string
	API         APIConfig
	Auth        AuthConfig
	Notify      NotifyConfig
}

// Load reads .env (if present), an optional config.yaml, and EDUHUB_*
// environment variables, in increasing precedence.
func Load() (*AppConfig, error) {
	godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("EDUHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.StringToTimeDurationHookFunc()
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Auth.TokenPath == "" {
		cfg.Auth.TokenPath = defaultTokenPath()
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("api.baseurl", "http://localhost:5000")
	v.SetDefault("api.timeout", "30s")

	// Keys must be registered for AutomaticEnv to surface them in Unmarshal.
	v.SetDefault("auth.googleclientid", "")
	v.SetDefault("auth.tokenpath", "")

	v.SetDefault("notify.socketurl", "ws://localhost:5000/ws")
	v.SetDefault("notify.refreshinterval", "60s")
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eduhub/token"
	}
	return filepath.Join(home, ".eduhub", "token")
}
