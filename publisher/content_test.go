package publisher

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"trendbot/common"
)

func testOffer() *common.Offer {
	return &common.Offer{
		ID:            1,
		Title:         "AI Content Creator Pro",
		Description:   "Revolutionary AI tool that creates viral content in seconds.",
		Category:      common.CategoryAITools,
		Commission:    47.5,
		Gravity:       62,
		AffiliateLink: "https://trendbot.link/clickbank/1?ref=trendbot",
		Platform:      "ClickBank",
	}
}

// TestGeneratePost_ContainsOfferFields проверяет, что пост содержит
// заголовок, описание, ссылку и площадку оффера
func TestGeneratePost_ContainsOfferFields(t *testing.T) {
	generator := NewContentGenerator(rand.New(rand.NewSource(1)))
	offer := testOffer()

	post := generator.GeneratePost(offer)

	assert.Contains(t, post, offer.Title)
	assert.Contains(t, post, offer.Description)
	assert.Contains(t, post, offer.AffiliateLink)
	assert.Contains(t, post, "**Platform**: ClickBank")
	assert.Contains(t, post, "**Category**: Ai Tools")
	assert.Contains(t, post, "**Commission**: $47.50")
	assert.Contains(t, post, "**Popularity**: 62/100")
}

// TestGeneratePost_PerSubscriberPhrasing проверяет формулировку комиссии
// для newsletter-площадок
func TestGeneratePost_PerSubscriberPhrasing(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		want     string
	}{
		{"SparkLoop - за подписчика", "SparkLoop", "per subscriber"},
		{"beehiiv - за подписчика", "beehiiv", "per subscriber"},
		{"ClickBank - обычная комиссия", "ClickBank", "**Commission**"},
		{"Digistore24 - обычная комиссия", "Digistore24", "**Commission**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewContentGenerator(rand.New(rand.NewSource(1)))
			offer := testOffer()
			offer.Platform = tt.platform

			post := generator.GeneratePost(offer)
			assert.Contains(t, post, tt.want)
		})
	}
}

// TestGeneratePost_NoPopularityWhenAbsent проверяет, что нулевая популярность
// не выводится в пост
func TestGeneratePost_NoPopularityWhenAbsent(t *testing.T) {
	generator := NewContentGenerator(rand.New(rand.NewSource(1)))
	offer := testOffer()
	offer.Gravity = 0

	post := generator.GeneratePost(offer)
	assert.NotContains(t, post, "Popularity")
}

// TestGeneratePost_AllCategories проверяет генерацию для всех категорий,
// включая неизвестную
func TestGeneratePost_AllCategories(t *testing.T) {
	generator := NewContentGenerator(rand.New(rand.NewSource(1)))

	categories := append([]string{}, common.Categories...)
	categories = append(categories, "unknown_category")

	for _, category := range categories {
		offer := testOffer()
		offer.Category = category

		post := generator.GeneratePost(offer)
		assert.NotEmpty(t, post)
		assert.True(t, strings.Contains(post, offer.Title), "категория %s", category)
	}
}

// TestCategoryTitle проверяет преобразование категории в заголовок
func TestCategoryTitle(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"make_money", "Make Money"},
		{"ai_tools", "Ai Tools"},
		{"crypto_airdrops", "Crypto Airdrops"},
		{"newsletters", "Newsletters"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, categoryTitle(tt.category))
	}
}
