package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// .env là tùy chọn, thiếu thì dùng biến môi trường
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment variables")
	}
}

func Config(key string) string {
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
