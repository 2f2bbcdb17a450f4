package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultCurrencySymbol = "$"
	defaultTemplateDir    = "web/templates"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port           string `mapstructure:"port" validate:"required,numeric"`
	LogLevel       string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CurrencySymbol string `mapstructure:"currency_symbol" validate:"required,max=4"`
	TemplateDir    string `mapstructure:"template_dir" validate:"required"`
}

// Load reads .env (if present) and the environment and returns a validated Config.
func Load() (Config, error) {
	// A missing .env is fine; a present but unreadable one fails Load.
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("currency_symbol", defaultCurrencySymbol)
	v.SetDefault("template_dir", defaultTemplateDir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate config: %w", err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s failed %s (value: %q)", e.Field(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
