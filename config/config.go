package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// IntakeQ credentials, one per practice.
	CashPayAPIKey   string `mapstructure:"CASH_PAY_INTAKEQ_API_KEY"`
	InsuranceAPIKey string `mapstructure:"INSURANCE_INTAKEQ_API_KEY"`

	// IntakeQ endpoint configuration.
	IntakeQBaseURL        string `mapstructure:"INTAKEQ_BASE_URL"`
	IntakeQCreateTimeoutS int    `mapstructure:"INTAKEQ_CREATE_TIMEOUT_SECONDS"`
	IntakeQSearchTimeoutS int    `mapstructure:"INTAKEQ_SEARCH_TIMEOUT_SECONDS"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("INTAKEQ_BASE_URL", "https://intakeq.com/api/v1")
	viper.SetDefault("INTAKEQ_CREATE_TIMEOUT_SECONDS", 60)
	viper.SetDefault("INTAKEQ_SEARCH_TIMEOUT_SECONDS", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
