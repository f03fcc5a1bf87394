package config

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	GinMode         string
	DBPath          string
	ModelPath       string
	TemplateGlob    string
	JWTSecret       string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SessionTTLHours int
}

// NewConfig reads configuration from the environment (and an optional .env
// file) with sensible defaults for local development.
func NewConfig() *Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DB_PATH", "database/symptom_checker.db")
	viper.SetDefault("MODEL_PATH", "model/trained_model.json")
	viper.SetDefault("TEMPLATE_GLOB", "templates/*.html")
	viper.SetDefault("JWT_SECRET", "symptom_checker_super_secret_2024")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_TTL_HOURS", 24)

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		GinMode:         viper.GetString("GIN_MODE"),
		DBPath:          viper.GetString("DB_PATH"),
		ModelPath:       viper.GetString("MODEL_PATH"),
		TemplateGlob:    viper.GetString("TEMPLATE_GLOB"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		RedisDB:         viper.GetInt("REDIS_DB"),
		SessionTTLHours: viper.GetInt("SESSION_TTL_HOURS"),
	}

	log.Info("config parsed")

	return cfg
}
