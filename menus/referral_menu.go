package menus

import (
	"fmt"
	"sort"
	"strings"

	"trendbot/common"
)

// BuildReferralDashboardText собирает личный кабинет для команды /referral
func BuildReferralDashboardText(user *common.User, referrals []common.Referral) string {
	var text strings.Builder
	text.WriteString("💎 **Your Referral Dashboard**\n\n")
	text.WriteString("**📊 Your Stats:**\n")
	fmt.Fprintf(&text, "👥 **Total Referrals**: %d\n", user.ReferralCount)
	fmt.Fprintf(&text, "💰 **Total Earnings**: $%.2f\n", user.TotalEarnings)
	fmt.Fprintf(&text, "🏆 **Referral Code**: %s\n\n", user.ReferralCode)
	text.WriteString("**🔗 Your Referral Link:**\n")
	fmt.Fprintf(&text, "`%s%s`\n\n", common.BOT_LINK_BASE, user.ReferralCode)
	text.WriteString("**💸 How It Works:**\n")
	text.WriteString("• Share your link with friends\n")
	fmt.Fprintf(&text, "• Earn $%.0f for each person who joins\n", common.REFERRAL_REWARD_AMOUNT)
	text.WriteString("• No limits - unlimited earning potential!\n\n")
	text.WriteString("**Recent Referrals:**\n")

	if len(referrals) == 0 {
		text.WriteString("No referrals yet. Start sharing your link! 🚀")
	} else {
		// Показываем последние 5
		shown := referrals
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, referral := range shown {
			statusEmoji := "⏳"
			if referral.Status == common.ReferralStatusConfirmed || referral.Status == common.ReferralStatusPaid {
				statusEmoji = "✅"
			}
			fmt.Fprintf(&text, "%s $%.2f - %s\n", statusEmoji, referral.RewardAmount,
				referral.CreatedAt.Format("01/02"))
		}
	}

	text.WriteString("\n💎 **Keep sharing to climb the leaderboard!**")
	return text.String()
}

// BuildLeaderboardText собирает таблицу лидеров для команды /leaderboard.
// Первые три места получают медали, остальные - порядковый номер
func BuildLeaderboardText(leaders []common.User) string {
	if len(leaders) == 0 {
		return "🏆 **Referral Leaderboard**\n\n" +
			"No referrers yet! Be the first to start earning! 🚀\n\n" +
			"Use /referral to get your link and start climbing the leaderboard! 💎"
	}

	var text strings.Builder
	text.WriteString("🏆 **Top Referrers - Leaderboard**\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, user := range leaders {
		medal := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			medal = medals[i]
		}

		name := user.FirstName
		if name == "" {
			name = user.Username
		}
		if name == "" {
			name = "Anonymous"
		}

		fmt.Fprintf(&text, "%s **%s**\n", medal, name)
		fmt.Fprintf(&text, "   👥 %d referrals | 💰 $%.2f\n\n", user.ReferralCount, user.TotalEarnings)
	}

	text.WriteString("💎 **Want to be on the leaderboard?**\n")
	text.WriteString("Use /referral to get your link and start earning! 🚀")
	return text.String()
}

// sortedKeys возвращает ключи карты в стабильном порядке
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
