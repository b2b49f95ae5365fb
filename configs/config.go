package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource        string
	Port            string
	SessionDuration time.Duration
}

// เวลาบุฟเฟต์ต่อโต๊ะ 105 นาที — ห้าม hardcode ที่อื่น ให้อ่านจาก config เท่านั้น
const defaultSessionSeconds = 6300

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment defaults")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "buffet.db"),
		Port:            getEnv("PORT", "8000"),
		SessionDuration: time.Duration(getEnvInt("SESSION_DURATION_SECONDS", defaultSessionSeconds)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}
