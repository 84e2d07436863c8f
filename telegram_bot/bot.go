package telegram_bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot представляет экземпляр Telegram бота
type Bot struct {
	API     *tgbotapi.BotAPI
	Updates tgbotapi.UpdatesChannel
}

// MessageHandler обработчик входящих сообщений
type MessageHandler interface {
	HandleMessage(message *tgbotapi.Message)
}

// NewBot создает новый экземпляр бота
func NewBot(token string) (*Bot, error) {
	log.Printf("TELEGRAM_BOT: Инициализация Telegram бота")

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	bot.Debug = false
	log.Printf("TELEGRAM_BOT: Авторизован как @%s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)
	log.Printf("TELEGRAM_BOT: Запущен канал обновлений Telegram")

	return &Bot{
		API:     bot,
		Updates: updates,
	}, nil
}

// Start запускает основной цикл обработки обновлений
func (b *Bot) Start(handler MessageHandler) {
	log.Printf("TELEGRAM_BOT: Запуск основного цикла обработки обновлений")

	for update := range b.Updates {
		if update.Message == nil {
			continue
		}

		log.Printf("TELEGRAM_BOT: Получено сообщение от пользователя TelegramID=%d, текст='%s'",
			update.Message.From.ID, update.Message.Text)
		handler.HandleMessage(update.Message)
	}
}

// SetBotCommands устанавливает команды бота в боковом меню
func SetBotCommands(bot *tgbotapi.BotAPI) error {
	log.Printf("TELEGRAM_BOT: Настройка команд бота")

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "🚀 Start the bot"},
		{Command: "referral", Description: "💸 Your referral dashboard & link"},
		{Command: "leaderboard", Description: "🏆 Top referrers"},
		{Command: "status", Description: "✅ Bot status"},
		{Command: "stats", Description: "📊 Offer statistics"},
		{Command: "post", Description: "📢 Send a post to the channel now"},
		{Command: "help", Description: "❓ Show all commands"},
	}

	config := tgbotapi.NewSetMyCommands(commands...)
	_, err := bot.Request(config)
	if err != nil {
		log.Printf("TELEGRAM_BOT: Ошибка настройки команд: %v", err)
		return err
	}

	log.Printf("TELEGRAM_BOT: Команды бота успешно настроены")
	return nil
}
