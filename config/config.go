package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort       string
	RemoteBaseURL    string        // Базовый URL сайта колледжа (study.ukrtb.ru)
	RemoteReferer    string        // Referer для запросов к API колледжа
	ScheduleCacheTTL time.Duration // TTL кэша расписаний
	ListCacheTTL     time.Duration // TTL кэша справочников (группы/преподаватели)
	RequestTimeout   time.Duration // Таймаут одного запроса к API колледжа
	AllowedOrigins   []string
	Environment      string
}

func Load() *Config {
	scheduleMinutes, _ := strconv.Atoi(getEnv("SCHEDULE_CACHE_TTL_MINUTES", "5"))
	listMinutes, _ := strconv.Atoi(getEnv("LIST_CACHE_TTL_MINUTES", "30"))
	timeoutSeconds, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "15"))

	baseURL := getEnv("REMOTE_BASE_URL", "https://study.ukrtb.ru")

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		RemoteBaseURL:    baseURL,
		RemoteReferer:    getEnv("REMOTE_REFERER", baseURL+"/schedule"),
		ScheduleCacheTTL: time.Duration(scheduleMinutes) * time.Minute,
		ListCacheTTL:     time.Duration(listMinutes) * time.Minute,
		RequestTimeout:   time.Duration(timeoutSeconds) * time.Second,
		AllowedOrigins:   []string{getEnv("ALLOWED_ORIGIN", "*")},
		Environment:      getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
