package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port      string
	JWTSecret string

	// Storage configuration. Driver is "file" for the local JSON store
	// or "mysql" for the database-backed store.
	StorageDriver string
	DataDir       string
	DatabaseURL   string

	SeedData bool

	// Rate limiting
	RequestsPerMinute int
	RateBurst         int
}

func Load() *Config {
	requestsPerMinute, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	rateBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	seedData, _ := strconv.ParseBool(getEnv("SEED_DATA", "true"))

	return &Config{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),

		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		DatabaseURL:   getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/motosync?charset=utf8mb4&parseTime=True&loc=Local"),

		SeedData: seedData,

		RequestsPerMinute: requestsPerMinute,
		RateBurst:         rateBurst,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
