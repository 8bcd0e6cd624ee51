package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// PriceConfig holds configuration for the price command, merged from
// flags, environment variables, and an optional config file.
type PriceConfig struct {
	RPCURL      string
	Input       string
	Out         string
	Errors      string
	PGDSN       string
	SlippageBps uint32
	LogLevel    string
}

// LoadPrice merges config file, environment variables, and flags into
// PriceConfig. Flags win over env, env wins over file.
func LoadPrice(cfgFile string, flags *pflag.FlagSet) (PriceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("PRICER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("out", "./data/priced_trades.jsonl")
	v.SetDefault("errors", "./data/price_errors.jsonl")
	v.SetDefault("slippage-bps", uint32(50))
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return PriceConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return PriceConfig{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return PriceConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := PriceConfig{
		RPCURL:      v.GetString("rpc"),
		Input:       v.GetString("in"),
		Out:         v.GetString("out"),
		Errors:      v.GetString("errors"),
		PGDSN:       v.GetString("pg-dsn"),
		SlippageBps: v.GetUint32("slippage-bps"),
		LogLevel:    v.GetString("log-level"),
	}

	return cfg, nil
}
