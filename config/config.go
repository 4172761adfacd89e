package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the service.
type Config struct {
	ServerPort string
	DataPath   string
	GinMode    string
	LogLevel   string
	LogFormat  string
}

// LoadConfig reads settings from the environment (with an optional .env
// file) and applies defaults.
func LoadConfig() *Config {
	_ = godotenv.Load() // silently ignore a missing .env

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SCHEME_DATA_PATH", "data/bank_schemes.json")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	return &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		DataPath:   v.GetString("SCHEME_DATA_PATH"),
		GinMode:    v.GetString("GIN_MODE"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		LogFormat:  v.GetString("LOG_FORMAT"),
	}
}
