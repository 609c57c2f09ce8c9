// Package config resolves mindlog settings from flags, MINDLOG_* environment
// variables, an optional config.yaml and built-in defaults, in that order.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/unowned-ai/mindlog/pkg/utils"
)

const (
	KeyDB       = "db"
	KeyWAL      = "wal"
	KeySync     = "sync"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
	KeyJournal  = "journal"

	EnvPrefix      = "MINDLOG"
	DefaultJournal = "default"
)

// Config holds the resolved settings.
type Config struct {
	DB       string `mapstructure:"db"`
	WAL      bool   `mapstructure:"wal"`
	Sync     string `mapstructure:"sync"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	Journal  string `mapstructure:"journal"`
}

// New returns a viper instance with defaults and environment binding in
// place. configDir is searched for config.yaml; empty means the user config
// directory.
func New(configDir string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyDB, utils.GetDefaultDBPathOnly())
	v.SetDefault(KeyWAL, false)
	v.SetDefault(KeySync, "FULL")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyJournal, DefaultJournal)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configDir == "" {
		configDir = utils.ConfigDir()
	}
	v.AddConfigPath(configDir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	return v
}

// BindFlags binds flags to their config keys. Flag names use dashes
// ("log-level"); keys use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyDB, KeyWAL, KeySync, KeyLogLevel, KeyLogFile, KeyJournal} {
		flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the optional config file and decodes every setting. A missing
// config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Journal == "" {
		cfg.Journal = DefaultJournal
	}
	return cfg, nil
}
