// internal/config/config.go
package config

import (
	"os"
	"strings"
)

type Config struct {
	Port            string
	Environment     string
	JWTSecret       string
	Brands          []string
	ArchivalBackend string
	MetaAPIVersion  string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		JWTSecret:       os.Getenv("API_JWT_SECRET"),
		Brands:          splitList(getEnv("BRANDS", "desa")),
		ArchivalBackend: getEnv("ARCHIVAL_BACKEND", "drive"),
		MetaAPIVersion:  getEnv("META_API_VERSION", "v19.0"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
