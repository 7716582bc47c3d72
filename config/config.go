package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var loadOnce sync.Once

// Config reads a key from the environment, loading .env on first use.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Debug().Msg("no .env file, using process environment")
		}
	})
	return os.Getenv(key)
}

func ConfigDefault(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

func ConfigInt(key string, def int) int {
	v, err := strconv.Atoi(Config(key))
	if err != nil {
		return def
	}
	return v
}

func IsProduction() bool {
	return Config("APP_ENV") == "production"
}
