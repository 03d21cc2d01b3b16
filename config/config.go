package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	UploadDir     string
	PublicBaseURL string
	HeaderAuth    bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "Asia/Jakarta"),
		DBPath:        get("DB_PATH", "digifarm.db"),
		UploadDir:     get("UPLOAD_DIR", "static/photos"),
		PublicBaseURL: get("PUBLIC_BASE_URL", "/static/photos"),
		HeaderAuth:    get("ENABLE_HEADER_AUTH", "false") == "true",
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
