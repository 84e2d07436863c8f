package telegram_bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"trendbot/common"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ChannelSender публикует сообщения в канал через Telegram API
type ChannelSender struct {
	api *tgbotapi.BotAPI
}

// NewChannelSender создает отправщик сообщений в канал
func NewChannelSender(api *tgbotapi.BotAPI) *ChannelSender {
	return &ChannelSender{api: api}
}

// SendToChannel отправляет текст в канал и возвращает message_id.
// channelID принимается как @username или числовой ID чата
func (s *ChannelSender) SendToChannel(channelID string, text string) (int, error) {
	var msg tgbotapi.MessageConfig
	if strings.HasPrefix(channelID, "@") {
		msg = tgbotapi.NewMessageToChannel(channelID, text)
	} else {
		chatID, err := strconv.ParseInt(channelID, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("некорректный идентификатор канала '%s': %v", channelID, err)
		}
		msg = tgbotapi.NewMessage(chatID, text)
	}
	msg.ParseMode = tgbotapi.ModeMarkdown

	sent, err := s.api.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// SendReferralNotification отправляет пригласившему уведомление о новом
// реферале. Отправка best-effort: пользователь мог заблокировать бота,
// ошибка логируется и отбрасывается
func SendReferralNotification(api *tgbotapi.BotAPI, referrer *common.User, referredName string, reward float64) {
	if api == nil || referrer == nil {
		return
	}

	if referredName == "" {
		referredName = "Someone"
	}

	text := "🎉 **New Referral!**\n\n" +
		fmt.Sprintf("💎 %s joined using your referral link!\n", referredName) +
		fmt.Sprintf("💰 You earned: $%.2f\n", reward) +
		fmt.Sprintf("📊 Total referrals: %d\n\n", referrer.ReferralCount) +
		"Keep sharing to earn more! 🚀"

	msg := tgbotapi.NewMessage(referrer.UserID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := api.Send(msg); err != nil {
		log.Printf("TELEGRAM_BOT: Уведомление пригласившему %d не доставлено: %v", referrer.UserID, err)
	}
}
