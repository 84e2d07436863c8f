package publisher

import (
	"fmt"
	"math/rand"
	"strings"

	"trendbot/common"
)

// Эмодзи по категориям офферов
var categoryEmojis = map[string][]string{
	common.CategoryMakeMoney:      {"💰", "💵", "🤑", "💸", "🏆", "💎", "🚀"},
	common.CategoryAITools:        {"🤖", "⚡", "🚀", "💡", "🔥", "⭐", "🎯"},
	common.CategoryCryptoAirdrops: {"🪙", "💎", "🚀", "📈", "⭐", "🔥", "💰"},
	common.CategoryNewsletters:    {"📧", "📰", "📊", "💌", "🎯", "📈", "⭐"},
	common.CategoryGadgets:        {"📱", "💻", "⌚", "🎧", "🔌", "🚀", "💡"},
}

var hooks = []string{
	"🚨 MONEY OPPORTUNITY ALERT!",
	"💰 EXCLUSIVE DEAL DISCOVERED!",
	"🔥 TRENDING NOW - LIMITED TIME!",
	"⚡ INSTANT PROFIT OPPORTUNITY!",
	"🎯 HIGH-COMMISSION ALERT!",
	"💎 PREMIUM OPPORTUNITY FOUND!",
	"🚀 VIRAL MONEY-MAKER SPOTTED!",
}

var ctas = []string{
	"👆 CLICK TO CLAIM YOUR OPPORTUNITY",
	"🔗 TAP HERE TO START EARNING",
	"💰 CLICK NOW - LIMITED SPOTS",
	"⚡ INSTANT ACCESS - CLICK HERE",
	"🎯 CLAIM YOUR COMMISSION NOW",
	"🚀 START EARNING TODAY - CLICK",
	"💎 EXCLUSIVE ACCESS - TAP HERE",
}

var urgencyPhrases = []string{
	"⏰ *Limited time offer - Act fast!*",
	"🔥 *Trending now - Don't miss out!*",
	"⚡ *High demand - Secure your spot!*",
	"💎 *Exclusive access - Limited availability!*",
	"🚀 *Viral opportunity - Join now!*",
}

// ContentGenerator собирает текст поста для канала из оффера
type ContentGenerator struct {
	rng *rand.Rand
}

// NewContentGenerator создает генератор контента с заданным источником случайности
func NewContentGenerator(rng *rand.Rand) *ContentGenerator {
	return &ContentGenerator{rng: rng}
}

// GeneratePost формирует текст поста. Работает для любого валидного оффера:
// отсутствующая популярность просто не выводится
func (c *ContentGenerator) GeneratePost(offer *common.Offer) string {
	emojis, ok := categoryEmojis[offer.Category]
	if !ok {
		emojis = []string{"🔥"}
	}
	emoji := emojis[c.rng.Intn(len(emojis))]
	hook := hooks[c.rng.Intn(len(hooks))]
	cta := ctas[c.rng.Intn(len(ctas))]

	// Для newsletter-площадок комиссия начисляется за подписчика
	var commissionText string
	if offer.Platform == "SparkLoop" || offer.Platform == "beehiiv" {
		commissionText = fmt.Sprintf("💵 **Earn**: $%.2f per subscriber", offer.Commission)
	} else {
		commissionText = fmt.Sprintf("💵 **Commission**: $%.2f", offer.Commission)
	}

	var post strings.Builder
	fmt.Fprintf(&post, "%s **%s** %s\n\n", emoji, hook, emoji)
	fmt.Fprintf(&post, "🎯 **%s**\n\n", offer.Title)
	fmt.Fprintf(&post, "%s\n", commissionText)
	fmt.Fprintf(&post, "⭐ **Platform**: %s\n", offer.Platform)
	fmt.Fprintf(&post, "📈 **Category**: %s\n", categoryTitle(offer.Category))

	if offer.Gravity > 0 {
		fmt.Fprintf(&post, "🔥 **Popularity**: %.0f/100\n", offer.Gravity)
	}

	fmt.Fprintf(&post, "\n%s\n\n", offer.Description)
	fmt.Fprintf(&post, "%s\n", cta)
	fmt.Fprintf(&post, "🔗 %s\n\n", offer.AffiliateLink)
	post.WriteString(urgencyPhrases[c.rng.Intn(len(urgencyPhrases))])

	return post.String()
}

// categoryTitle превращает make_money в Make Money
func categoryTitle(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
