package config

import (
	"fmt"

	"github.com/norrisa/dataman/internal/problem"
	"github.com/spf13/viper"
)

type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Checker CheckerConfig `mapstructure:"checker"`
	Bank    BankConfig    `mapstructure:"bank"`
	History HistoryConfig `mapstructure:"history"`
}

type DisplayConfig struct {
	UseColor bool `mapstructure:"use_color"`
}

type CheckerConfig struct {
	Operators []string `mapstructure:"operators" validate:"min=1,dive,operator"`
}

type BankConfig struct {
	Capacity int `mapstructure:"capacity" validate:"gte=0"`
}

type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// EnabledOperator reports whether the answer checker may use op.
// Operators left out of checker.operators are disabled for practice.
func (c CheckerConfig) EnabledOperator(op problem.Operator) bool {
	for _, symbol := range c.Operators {
		if problem.Operator(symbol) == op {
			return true
		}
	}
	return false
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dataman")
	}

	v.SetDefault("display.use_color", true)
	defaultOperators := make([]string, 0, len(problem.Operators()))
	for _, op := range problem.Operators() {
		defaultOperators = append(defaultOperators, string(op))
	}
	v.SetDefault("checker.operators", defaultOperators)
	v.SetDefault("bank.capacity", 0)
	v.SetDefault("history.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
