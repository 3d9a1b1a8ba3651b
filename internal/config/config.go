package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	LogFile   string
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DSN", "modemarket.db") // sqlite file in project root
	v.SetDefault("JWT_SECRET", "dev-only-secret")
	v.SetDefault("LOG_FILE", "./modemarket.log")

	cfg := Config{
		Port:      v.GetString("PORT"),
		DBDSN:     v.GetString("DB_DSN"),
		JWTSecret: v.GetString("JWT_SECRET"),
		LogFile:   v.GetString("LOG_FILE"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
