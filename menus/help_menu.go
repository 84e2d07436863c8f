package menus

import (
	"fmt"

	"trendbot/common"
)

// BuildHelpText собирает текст команды /help
func BuildHelpText() string {
	return "💎 **LuxuryTrendBot Help**\n\n" +
		"**🔥 REFERRAL COMMANDS:**\n" +
		"• `/referral` - Your referral dashboard & link\n" +
		"• `/leaderboard` - Top referrers leaderboard\n" +
		fmt.Sprintf("• **Earn $%.0f per referral!** 💰\n\n", common.REFERRAL_REWARD_AMOUNT) +
		"**📊 BOT COMMANDS:**\n" +
		"• `/start` - Welcome message\n" +
		"• `/help` - Show this help\n" +
		"• `/status` - Check bot status\n" +
		"• `/stats` - View statistics\n" +
		"• `/post` - Send post to channel\n\n" +
		"**💸 REFERRAL PROGRAM:**\n" +
		"• Share your unique referral link\n" +
		fmt.Sprintf("• Earn $%.0f for each person who joins\n", common.REFERRAL_REWARD_AMOUNT) +
		"• Unlimited earning potential\n" +
		"• Instant rewards & notifications\n" +
		"• Climb the leaderboard for recognition\n\n" +
		"**Exclusive Platforms:**\n" +
		"• **ClickBank** - High-commission affiliate offers\n" +
		"• **Digistore24** - Premium digital product commissions\n" +
		"• **SparkLoop** - Newsletter monetization ($2-7/subscriber)\n" +
		"• **beehiiv** - High-value newsletter growth opportunities\n\n" +
		"**Luxury Automation:**\n" +
		"• Posts every 4 hours automatically\n" +
		"• Smart premium offer rotation\n" +
		"• Category-based luxury content\n\n" +
		"💎 *Bot runs 24/7 to maximize your earning potential!*\n\n" +
		"🚀 **Use /referral to start earning immediately!**"
}
