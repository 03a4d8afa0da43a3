package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. MERGER_TOKEN_LIST.
const EnvPrefix = "MERGER"

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	TokenList          string
	RewardsList        string
	Out                string
	TokenListOut       string
	Copy               bool
	OmitBaseToken      bool
	LegacyBaseTokenKey bool
	Interval           time.Duration
	LogLevel           string
}

// Load merges a .env file, config file, environment variables, and flags into Config.
// Flags win over env, env over the config file.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("out", "")
		v.SetDefault("copy", false)
		v.SetDefault("omit-base-token", false)
		v.SetDefault("legacy-base-token-key", false)
		v.SetDefault("interval", time.Second)
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		TokenList:          strings.TrimSpace(v.GetString("token-list")),
		RewardsList:        strings.TrimSpace(v.GetString("rewards-list")),
		Out:                strings.TrimSpace(v.GetString("out")),
		TokenListOut:       strings.TrimSpace(v.GetString("token-list-out")),
		Copy:               v.GetBool("copy"),
		OmitBaseToken:      v.GetBool("omit-base-token"),
		LegacyBaseTokenKey: v.GetBool("legacy-base-token-key"),
		Interval:           v.GetDuration("interval"),
		LogLevel:           v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, setDefaults func(v *viper.Viper)) (*viper.Viper, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("merger")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	return v, nil
}

// ToStdout reports whether a path names standard output.
func ToStdout(path string) bool {
	return path == "" || path == "-"
}
