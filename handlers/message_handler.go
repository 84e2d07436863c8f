package handlers

import (
	"fmt"
	"log"

	"trendbot/common"
	"trendbot/menus"
	"trendbot/publisher"
	"trendbot/referral"
	"trendbot/telegram_bot"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Publisher запуск цикла публикации по требованию. Сериализацию с
// запланированными публикациями обеспечивает реализация
type Publisher interface {
	PublishNow() (*publisher.Result, error)
}

// MessageHandler обрабатывает команды пользователей
type MessageHandler struct {
	api       *tgbotapi.BotAPI
	ledger    *referral.Service
	publisher Publisher
	db        *common.Database
}

// NewMessageHandler создает обработчик сообщений
func NewMessageHandler(api *tgbotapi.BotAPI, ledger *referral.Service, pub Publisher, db *common.Database) *MessageHandler {
	return &MessageHandler{
		api:       api,
		ledger:    ledger,
		publisher: pub,
		db:        db,
	}
}

// HandleMessage разбирает входящее сообщение и выполняет команду
func (h *MessageHandler) HandleMessage(message *tgbotapi.Message) {
	if !message.IsCommand() {
		return
	}

	switch message.Command() {
	case "start":
		h.handleStart(message)
	case "help":
		h.reply(message.Chat.ID, menus.BuildHelpText())
	case "status":
		h.handleStatus(message)
	case "stats":
		h.handleStats(message)
	case "post":
		h.handlePost(message)
	case "referral":
		h.handleReferral(message)
	case "leaderboard":
		h.handleLeaderboard(message)
	default:
		log.Printf("HANDLERS: Неизвестная команда '%s' от пользователя %d", message.Command(), message.From.ID)
	}
}

// handleStart обрабатывает /start с возможным реферальным кодом в аргументе
func (h *MessageHandler) handleStart(message *tgbotapi.Message) {
	claimedCode := message.CommandArguments()

	result, err := h.ledger.Onboard(message.From.ID, message.From.UserName, message.From.FirstName, claimedCode)
	if err != nil {
		log.Printf("HANDLERS: Ошибка онбординга пользователя %d: %v", message.From.ID, err)
		h.reply(message.Chat.ID, "❌ Something went wrong. Please try /start again.")
		return
	}

	// Уведомляем пригласившего о начисленной награде (best-effort)
	if result.Referrer != nil {
		referredName := result.User.FirstName
		if referredName == "" {
			referredName = result.User.Username
		}
		telegram_bot.SendReferralNotification(h.api, result.Referrer, referredName, result.RewardAmount)
	}

	if result.IsNew {
		h.reply(message.Chat.ID, menus.BuildWelcomeText(result.User, result.Referrer != nil))
	} else {
		h.reply(message.Chat.ID, menus.BuildReturningText(result.User))
	}
}

// handleStatus обрабатывает /status
func (h *MessageHandler) handleStatus(message *tgbotapi.Message) {
	offersCount, err := h.db.CountOffers()
	if err != nil {
		log.Printf("HANDLERS: Ошибка подсчета офферов: %v", err)
	}

	text := menus.BuildStatusText(
		offersCount,
		common.Stats.Uptime(),
		common.Stats.PostsSent.Load(),
		common.Stats.OffersGenerated.Load(),
	)
	h.reply(message.Chat.ID, text)
}

// handleStats обрабатывает /stats
func (h *MessageHandler) handleStats(message *tgbotapi.Message) {
	stats, err := h.db.GetOfferStatistics()
	if err != nil {
		log.Printf("HANDLERS: Ошибка получения статистики: %v", err)
		h.reply(message.Chat.ID, "❌ Failed to load statistics.")
		return
	}
	h.reply(message.Chat.ID, menus.BuildStatsText(stats))
}

// handlePost обрабатывает /post - принудительную публикацию в канал
func (h *MessageHandler) handlePost(message *tgbotapi.Message) {
	_, err := h.publisher.PublishNow()
	if err != nil {
		log.Printf("HANDLERS: Ошибка принудительной публикации: %v", err)
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Failed to send post: %v", err))
		return
	}
	h.reply(message.Chat.ID, "✅ Test post sent to channel!")
}

// handleReferral обрабатывает /referral - личный кабинет
func (h *MessageHandler) handleReferral(message *tgbotapi.Message) {
	user, referrals, err := h.ledger.Dashboard(message.From.ID, message.From.UserName, message.From.FirstName)
	if err != nil {
		log.Printf("HANDLERS: Ошибка получения кабинета пользователя %d: %v", message.From.ID, err)
		h.reply(message.Chat.ID, "❌ Failed to load your dashboard.")
		return
	}
	h.reply(message.Chat.ID, menus.BuildReferralDashboardText(user, referrals))
}

// handleLeaderboard обрабатывает /leaderboard
func (h *MessageHandler) handleLeaderboard(message *tgbotapi.Message) {
	leaders, err := h.ledger.Leaderboard(10)
	if err != nil {
		log.Printf("HANDLERS: Ошибка получения таблицы лидеров: %v", err)
		h.reply(message.Chat.ID, "❌ Failed to load the leaderboard.")
		return
	}
	h.reply(message.Chat.ID, menus.BuildLeaderboardText(leaders))
}

// reply отправляет ответ пользователю
func (h *MessageHandler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := h.api.Send(msg); err != nil {
		log.Printf("HANDLERS: Ошибка отправки ответа в чат %d: %v", chatID, err)
	}
}
