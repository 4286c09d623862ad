package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	DefaultTheme  string
	TokenTTLHours int
	RateLimit     int // 每分钟最大请求数
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/charts/charts.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	defaultTheme := os.Getenv("DEFAULT_THEME")
	if defaultTheme == "" {
		defaultTheme = "light"
	}

	tokenTTL := 24
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tokenTTL = n
		}
	}

	rateLimit := 120
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	return &Config{
		Port:          port,
		DBPath:        dbPath,
		JWTSecret:     jwtSecret,
		DefaultTheme:  defaultTheme,
		TokenTTLHours: tokenTTL,
		RateLimit:     rateLimit,
	}
}
