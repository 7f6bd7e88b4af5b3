package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds process settings read from the environment.
type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBTimezone   string
	MaxOpenConns int
	MaxIdleConns int

	ServerAddr string
	GinMode    string
	JWTSecret  string
	JWTTTL     time.Duration

	LogLevel string
	LogFile  string
}

// Load reads .env (if present) and the environment, with defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found – relying on env vars")
	}
	return Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "password"),
		DBName:       getEnv("DB_NAME", "transit_manage"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		DBTimezone:   getEnv("DB_TIMEZONE", "UTC"),
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ServerAddr:   getEnv("SERVER_ADDR", "0.0.0.0:8080"),
		GinMode:      getEnv("GIN_MODE", "release"),
		JWTSecret:    getEnv("JWT_SECRET", "supersecret"),
		JWTTTL:       time.Duration(getEnvInt("JWT_TTL_HOURS", 72)) * time.Hour,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", "./logs/app.log"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithField("key", key).Warnf("invalid integer %q, using %d", v, defaultValue)
		return defaultValue
	}
	return i
}
