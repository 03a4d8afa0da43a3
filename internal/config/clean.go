package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CleanConfig holds the settings of the clean command. Its output is read from the
// token-list-out key only, never from the pool list's out key.
type CleanConfig struct {
	TokenList          string
	TokenListOut       string
	Copy               bool
	LegacyBaseTokenKey bool
	LogLevel           string
}

// LoadClean reads CleanConfig from the same sources and with the same precedence as Load.
func LoadClean(cfgFile string, flags *pflag.FlagSet) (CleanConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("token-list-out", "")
		v.SetDefault("copy", false)
		v.SetDefault("legacy-base-token-key", false)
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return CleanConfig{}, err
	}

	return CleanConfig{
		TokenList:          strings.TrimSpace(v.GetString("token-list")),
		TokenListOut:       strings.TrimSpace(v.GetString("token-list-out")),
		Copy:               v.GetBool("copy"),
		LegacyBaseTokenKey: v.GetBool("legacy-base-token-key"),
		LogLevel:           v.GetString("log-level"),
	}, nil
}
