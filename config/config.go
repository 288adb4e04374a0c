package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server        Server
	Database      Database
	Oracle        Oracle
	SessionSecret string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Oracle struct {
	GeminiApiKey   string
	Model          string
	TimeoutSeconds int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("ORACLE_TIMEOUT_SECONDS", 60)
	viper.SetDefault("SESSION_SECRET", "studybuddy-dev-secret")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Oracle.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.Oracle.Model = viper.GetString("GEMINI_MODEL")
	config.Oracle.TimeoutSeconds = viper.GetInt("ORACLE_TIMEOUT_SECONDS")

	config.SessionSecret = viper.GetString("SESSION_SECRET")

	log.Info().Str("port", config.Server.Port).Str("model", config.Oracle.Model).Msg("Config loaded")
	return &config, nil
}
