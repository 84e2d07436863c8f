package menus

import (
	"fmt"
	"strings"
	"time"

	"trendbot/common"
)

// BuildStatusText собирает текст команды /status
func BuildStatusText(offersCount int, uptime time.Duration, postsSent, offersGenerated int64) string {
	return "✅ **TrendBot Status**\n\n" +
		"🤖 **Bot**: Online and running\n" +
		"📊 **Database**: Connected\n" +
		fmt.Sprintf("💾 **Offers Loaded**: %d\n", offersCount) +
		fmt.Sprintf("🔄 **Auto-posting**: Every %s\n", formatInterval(common.POST_INTERVAL_SECONDS)) +
		fmt.Sprintf("📢 **Channel**: %s\n", common.CHANNEL_ID) +
		fmt.Sprintf("⏰ **Uptime**: %s\n\n", uptime) +
		"**Performance:**\n" +
		fmt.Sprintf("• Posts sent: %d\n", postsSent) +
		fmt.Sprintf("• Offers generated: %d\n\n", offersGenerated) +
		fmt.Sprintf("**Last Update**: %s\n\n", time.Now().Format("2006-01-02 15:04:05")) +
		"🎯 *Everything is working perfectly!*"
}

// BuildStatsText собирает текст команды /stats по статистике каталога
func BuildStatsText(stats *common.OfferStatistics) string {
	if stats.TotalOffers == 0 {
		return "📊 No statistics available yet. Generating offers..."
	}

	var text strings.Builder
	text.WriteString("📊 **TrendBot Statistics**\n\n")
	fmt.Fprintf(&text, "💰 **Total Offers**: %d\n", stats.TotalOffers)
	fmt.Fprintf(&text, "💵 **Average Commission**: $%.2f\n\n", stats.AverageCommission)

	text.WriteString("**Platform Breakdown:**\n")
	for _, platform := range sortedKeys(stats.PlatformCounts) {
		fmt.Fprintf(&text, "• %s: %d offers\n", platform, stats.PlatformCounts[platform])
	}

	text.WriteString("\n**Category Breakdown:**\n")
	for _, category := range sortedKeys(stats.CategoryCounts) {
		fmt.Fprintf(&text, "• %s: %d offers\n", categoryTitle(category), stats.CategoryCounts[category])
	}

	fmt.Fprintf(&text, "\n**Revenue Potential**: $%.2f", stats.RevenuePotential)
	fmt.Fprintf(&text, "\n**Monthly Projection**: $%.2f (1 conversion/day)", stats.MonthlyProjection)

	return text.String()
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

// formatInterval переводит интервал в человекочитаемый вид
func formatInterval(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d%time.Hour == 0 {
		return fmt.Sprintf("%d hours", int(d.Hours()))
	}
	return d.String()
}
