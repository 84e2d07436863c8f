package menus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendbot/common"
)

// TestBuildStatsText проверяет разбивку статистики по площадкам и категориям
func TestBuildStatsText(t *testing.T) {
	stats := &common.OfferStatistics{
		TotalOffers:       20,
		AverageCommission: 45.5,
		PlatformCounts:    map[string]int{"ClickBank": 8, "beehiiv": 12},
		CategoryCounts:    map[string]int{"make_money": 11, "ai_tools": 9},
		RevenuePotential:  910,
		MonthlyProjection: 1365,
	}

	text := BuildStatsText(stats)

	assert.Contains(t, text, "**Total Offers**: 20")
	assert.Contains(t, text, "**Average Commission**: $45.50")
	assert.Contains(t, text, "• ClickBank: 8 offers")
	assert.Contains(t, text, "• beehiiv: 12 offers")
	assert.Contains(t, text, "• Make Money: 11 offers")
	assert.Contains(t, text, "• Ai Tools: 9 offers")
	assert.Contains(t, text, "**Revenue Potential**: $910.00")
	assert.Contains(t, text, "**Monthly Projection**: $1365.00")
}

// TestBuildStatsText_Empty проверяет текст для пустого каталога
func TestBuildStatsText_Empty(t *testing.T) {
	stats := &common.OfferStatistics{
		PlatformCounts: map[string]int{},
		CategoryCounts: map[string]int{},
	}

	text := BuildStatsText(stats)
	assert.Equal(t, "📊 No statistics available yet. Generating offers...", text)
}

// TestBuildStatusText проверяет сводку /status
func TestBuildStatusText(t *testing.T) {
	common.POST_INTERVAL_SECONDS = 14400
	common.CHANNEL_ID = "@luxury_trends"

	text := BuildStatusText(20, 90*time.Minute, 3, 40)

	assert.Contains(t, text, "**Offers Loaded**: 20")
	assert.Contains(t, text, "**Auto-posting**: Every 4 hours")
	assert.Contains(t, text, "**Channel**: @luxury_trends")
	assert.Contains(t, text, "Posts sent: 3")
	assert.Contains(t, text, "Offers generated: 40")
}

// TestFormatInterval проверяет форматирование интервала публикаций
func TestFormatInterval(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{14400, "4 hours"},
		{3600, "1 hours"},
		{90, "1m30s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatInterval(tt.seconds))
	}
}
