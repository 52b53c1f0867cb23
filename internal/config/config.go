package config

import (
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Uploads
		Search
		Global
	}

	HTTP struct {
		Port int32
		Host string
		// AllowedOrigins is the CORS whitelist for the mobile client;
		// defaults cover the Expo dev-server ports.
		AllowedOrigins []string
	}
	Database struct {
		Path string
	}
	Uploads struct {
		Dir          string
		MaxSizeBytes int64
	}
	Search struct {
		Threshold     float64
		MinTermLength int
	}
	Global struct {
		Mode                     string // "debug" or "release"
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("mode", "debug")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", "./books.db")
	v.SetDefault("uploads_dir", "./uploads")
	v.SetDefault("uploads_max_size_bytes", 10<<20)
	v.SetDefault("search_threshold", 0.35)
	v.SetDefault("search_min_term_length", 2)
	v.SetDefault("cors_allowed_origins", "http://localhost:8081,http://localhost:19006")

	return &Config{
		HTTP: HTTP{
			Port:           v.GetInt32("PORT"),
			Host:           v.GetString("HOST"),
			AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Uploads: Uploads{
			Dir:          v.GetString("UPLOADS_DIR"),
			MaxSizeBytes: v.GetInt64("UPLOADS_MAX_SIZE_BYTES"),
		},
		Search: Search{
			Threshold:     v.GetFloat64("SEARCH_THRESHOLD"),
			MinTermLength: v.GetInt("SEARCH_MIN_TERM_LENGTH"),
		},
		Global: Global{
			Mode:                     v.GetString("MODE"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
