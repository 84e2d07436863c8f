package common

import (
	"log"
	"os"
	"strconv"
)

// Глобальные переменные конфигурации
var (
	BOT_TOKEN     string // Токен Telegram бота
	CHANNEL_ID    string // Канал для публикации офферов (@username или числовой ID)
	BOT_LINK_BASE string // Базовая ссылка для реферальных ссылок (deep link на /start)

	// Настройки автопубликации
	POST_INTERVAL_SECONDS      int // Интервал между публикациями в секундах (14400 = 4 часа)
	POST_INITIAL_DELAY_SECONDS int // Задержка первой публикации после старта бота

	// Настройки каталога офферов
	CATALOG_MIN_SIZE       int // Минимальный размер каталога, ниже которого запускается генерация
	CATALOG_GENERATE_COUNT int // Сколько офферов генерировать за один проход
	PICK_POOL_SIZE         int // Из скольких последних офферов выбирается оффер для публикации

	// Настройки реферальной системы
	REFERRAL_REWARD_AMOUNT float64 // Награда за одного приглашенного в долларах
)

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() {
	BOT_TOKEN = os.Getenv("TELEGRAM_BOT_TOKEN")
	CHANNEL_ID = os.Getenv("TELEGRAM_CHANNEL_ID")
	BOT_LINK_BASE = getEnvOrDefault("BOT_LINK_BASE", "https://t.me/LuxuryTrendBot?start=")

	POST_INTERVAL_SECONDS = getEnvIntOrDefault("POST_INTERVAL_SECONDS", 14400)
	POST_INITIAL_DELAY_SECONDS = getEnvIntOrDefault("POST_INITIAL_DELAY_SECONDS", 10)

	CATALOG_MIN_SIZE = getEnvIntOrDefault("CATALOG_MIN_SIZE", 10)
	CATALOG_GENERATE_COUNT = getEnvIntOrDefault("CATALOG_GENERATE_COUNT", 20)
	PICK_POOL_SIZE = getEnvIntOrDefault("PICK_POOL_SIZE", 10)

	REFERRAL_REWARD_AMOUNT = getEnvFloatOrDefault("REFERRAL_REWARD_AMOUNT", 5.0)

	if BOT_TOKEN == "" {
		log.Printf("CONFIG: ВНИМАНИЕ: TELEGRAM_BOT_TOKEN не задан")
	}
	if CHANNEL_ID == "" {
		log.Printf("CONFIG: ВНИМАНИЕ: TELEGRAM_CHANNEL_ID не задан, публикация в канал недоступна")
	}

	log.Printf("CONFIG: Конфигурация загружена: интервал публикации %d сек, награда за реферала %.2f$",
		POST_INTERVAL_SECONDS, REFERRAL_REWARD_AMOUNT)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("CONFIG: Некорректное значение %s='%s', используется %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("CONFIG: Некорректное значение %s='%s', используется %.2f", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
