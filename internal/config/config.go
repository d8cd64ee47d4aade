package config

import (
	"os"
	"strconv"
)

// Config 进程级配置，启动时加载一次
type Config struct {
	HTTPAddr string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTAccessSecret  string
	JWTRefreshSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

var App *Config

// Load 从环境变量加载配置，缺省值用于本地开发
func Load() *Config {
	App = &Config{
		HTTPAddr: getEnv("CIRCULO_HTTP_ADDR", ":8080"),

		MySQLDSN: getEnv("CIRCULO_MYSQL_DSN",
			"user:password@tcp(127.0.0.1:3306)/circulo?charset=utf8mb4&parseTime=True"),

		RedisAddr:     getEnv("CIRCULO_REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("CIRCULO_REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("CIRCULO_REDIS_DB", 0),

		JWTAccessSecret:  getEnv("CIRCULO_JWT_ACCESS_SECRET", "secret-key"),
		JWTRefreshSecret: getEnv("CIRCULO_JWT_REFRESH_SECRET", "refresh-key"),

		SMTPHost:     getEnv("CIRCULO_SMTP_HOST", "smtp.example.com"),
		SMTPPort:     getEnvInt("CIRCULO_SMTP_PORT", 587),
		SMTPUsername: getEnv("CIRCULO_SMTP_USERNAME", "no-reply@example.com"),
		SMTPPassword: getEnv("CIRCULO_SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("CIRCULO_SMTP_FROM", "Circulo <no-reply@example.com>"),
	}
	return App
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
