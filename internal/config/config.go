package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/billtrack/billtrack/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Logging LoggingConfig `validate:"required"`
	Billing BillingConfig `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// BillingConfig carries the windows used by the billing status engine.
// The defaults match the long-standing product behavior: a 7 day grace
// window after expiration and a 3 day heads-up window before it.
type BillingConfig struct {
	GracePeriodDays    int `mapstructure:"grace_period_days" validate:"gte=0"`
	UpcomingWindowDays int `mapstructure:"upcoming_window_days" validate:"gte=0"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/billtrack")

	// Set up environment variables support
	v.SetEnvPrefix("BILLTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("billing.grace_period_days", types.DefaultGracePeriodDays)
	v.SetDefault("billing.upcoming_window_days", types.DefaultUpcomingWindowDays)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Billing: BillingConfig{
			GracePeriodDays:    types.DefaultGracePeriodDays,
			UpcomingWindowDays: types.DefaultUpcomingWindowDays,
		},
	}
}
