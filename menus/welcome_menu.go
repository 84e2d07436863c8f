package menus

import (
	"fmt"

	"trendbot/common"
)

// commandsBlock общий блок команд для приветственных сообщений
const commandsBlock = `**Commands:**
/referral - Get your referral link & stats
/leaderboard - See top earners
/help - Show all commands
/status - Check bot status

🎯 *I automatically post premium opportunities every 4 hours!*

💎 **Start earning luxury-level passive income today!**`

// introBlock описание бота для новых пользователей
const introBlock = `I'm your premium automated money opportunity finder. I discover the most exclusive and high-paying opportunities:

💰 **Premium Affiliate Offers** - High-commission luxury products
📧 **Elite Newsletter Monetization** - Exclusive subscriber rewards
🚀 **Cutting-Edge AI Tools** - Latest technology opportunities
💎 **Luxury Crypto Airdrops** - Premium blockchain opportunities`

// BuildWelcomeText собирает приветствие для нового пользователя.
// referred - пришел ли пользователь по реферальной ссылке
func BuildWelcomeText(user *common.User, referred bool) string {
	text := "💎 **Welcome to LuxuryTrendBot!**\n\n"
	if referred {
		text += "🎉 **You were referred by a VIP member!**\n\n"
	}

	text += introBlock + "\n\n"
	text += "**🔥 REFERRAL PROGRAM:**\n"
	text += fmt.Sprintf("💸 Earn $%.0f for each person you refer!\n", common.REFERRAL_REWARD_AMOUNT)
	text += fmt.Sprintf("🔗 Your referral link: %s%s\n", common.BOT_LINK_BASE, user.ReferralCode)
	text += "📊 Share and earn unlimited rewards!\n\n"
	text += commandsBlock

	return text
}

// BuildReturningText собирает приветствие для вернувшегося пользователя
func BuildReturningText(user *common.User) string {
	return "💎 **Welcome back to LuxuryTrendBot!**\n\n" +
		"**Your Referral Stats:**\n" +
		fmt.Sprintf("👥 Referrals: %d\n", user.ReferralCount) +
		fmt.Sprintf("💰 Earnings: $%.2f\n", user.TotalEarnings) +
		fmt.Sprintf("🔗 Your link: %s%s\n\n", common.BOT_LINK_BASE, user.ReferralCode) +
		"**Quick Commands:**\n" +
		"/referral - Referral dashboard\n" +
		"/leaderboard - Top earners\n" +
		"/help - All commands\n\n" +
		"🎯 *Keep sharing to earn more rewards!*"
}
