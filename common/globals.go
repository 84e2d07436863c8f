package common

import (
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotStats счетчики работы бота за время жизни процесса
type BotStats struct {
	PostsSent       atomic.Int64 // Успешно опубликованные посты
	OffersGenerated atomic.Int64 // Сгенерированные офферы
	StartedAt       time.Time    // Время запуска бота
}

// Uptime возвращает время работы бота
func (s *BotStats) Uptime() time.Duration {
	return time.Since(s.StartedAt).Truncate(time.Second)
}

// Stats глобальные счетчики бота
var Stats = &BotStats{}

// GlobalBot глобальный экземпляр бота для отправки уведомлений
var GlobalBot *tgbotapi.BotAPI

// InitGlobals инициализирует глобальные переменные
func InitGlobals() {
	Stats.StartedAt = time.Now()
}
