package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Sheets   SheetsConfig
	Ticket   TicketConfig
	Retry    RetryConfig
	Game     GameConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// SheetsConfig holds published-sheet polling configuration
type SheetsConfig struct {
	EntriesURL   string
	ResultsURL   string
	PollInterval time.Duration
}

// TicketConfig holds ticket API-specific configuration
type TicketConfig struct {
	BaseURL string
	APIKey  string
	MockAPI bool
}

// RetryConfig holds outbound HTTP retry configuration
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxJitter   time.Duration
}

// GameConfig holds game rule configuration
type GameConfig struct {
	Platforms []string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, environment variables cover it
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("Sheets.PollInterval", 2*time.Minute)
	viper.SetDefault("Ticket.MockAPI", true)
	viper.SetDefault("Retry.MaxAttempts", 3)
	viper.SetDefault("Retry.BaseDelay", 500*time.Millisecond)
	viper.SetDefault("Retry.MaxJitter", 250*time.Millisecond)
	viper.SetDefault("Game.Platforms", []string{"POPN1", "POPLUZ"})
	viper.SetDefault("LogLevel", "info")
}
