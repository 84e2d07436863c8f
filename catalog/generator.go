package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"trendbot/common"
)

// OfferTemplate шаблон для генерации офферов одной площадки
type OfferTemplate struct {
	Title           string
	Description     string
	Category        string
	CommissionRange [2]float64 // Диапазон комиссии в долларах
	GravityRange    [2]float64 // Диапазон популярности 0-100
	Platform        string
}

// offerTemplates фиксированный набор шаблонов по всем площадкам
var offerTemplates = []OfferTemplate{
	// ClickBank
	{
		Title:           "AI Content Creator Pro",
		Description:     "Revolutionary AI tool that creates viral content in seconds. Perfect for social media managers and content creators looking to scale their output.",
		Category:        common.CategoryAITools,
		CommissionRange: [2]float64{25, 97},
		GravityRange:    [2]float64{15, 85},
		Platform:        "ClickBank",
	},
	{
		Title:           "Passive Income Blueprint 2025",
		Description:     "Step-by-step system to build multiple passive income streams. Over 10,000 success stories from ordinary people making extraordinary money.",
		Category:        common.CategoryMakeMoney,
		CommissionRange: [2]float64{47, 197},
		GravityRange:    [2]float64{20, 75},
		Platform:        "ClickBank",
	},
	{
		Title:           "Crypto Trading Mastery",
		Description:     "Professional crypto trading course that turned beginners into profitable traders. Includes live trading sessions and private Discord.",
		Category:        common.CategoryCryptoAirdrops,
		CommissionRange: [2]float64{97, 297},
		GravityRange:    [2]float64{25, 90},
		Platform:        "ClickBank",
	},
	// Digistore24
	{
		Title:           "Smart Home Revolution Kit",
		Description:     "Complete smart home automation system with AI-powered controls. Transform your home into a futuristic living space.",
		Category:        common.CategoryGadgets,
		CommissionRange: [2]float64{15, 45},
		GravityRange:    [2]float64{10, 60},
		Platform:        "Digistore24",
	},
	{
		Title:           "AI Business Automation Suite",
		Description:     "All-in-one AI toolkit for automating your business operations. Includes chatbots, email automation, and customer service AI.",
		Category:        common.CategoryAITools,
		CommissionRange: [2]float64{67, 167},
		GravityRange:    [2]float64{30, 80},
		Platform:        "Digistore24",
	},
	{
		Title:           "Digital Nomad Lifestyle Guide",
		Description:     "Complete guide to building a location-independent business. Includes templates, tools, and step-by-step action plans.",
		Category:        common.CategoryMakeMoney,
		CommissionRange: [2]float64{27, 87},
		GravityRange:    [2]float64{15, 70},
		Platform:        "Digistore24",
	},
	// SparkLoop
	{
		Title:           "Crypto Millionaire Newsletter",
		Description:     "Exclusive newsletter revealing crypto secrets that made ordinary people millionaires. Limited time access to insider strategies.",
		Category:        common.CategoryCryptoAirdrops,
		CommissionRange: [2]float64{3, 7},
		GravityRange:    [2]float64{40, 95},
		Platform:        "SparkLoop",
	},
	{
		Title:           "AI Weekly Insider",
		Description:     "Weekly newsletter covering the latest AI tools, trends, and money-making opportunities. Join 50,000+ subscribers.",
		Category:        common.CategoryAITools,
		CommissionRange: [2]float64{2, 6},
		GravityRange:    [2]float64{35, 85},
		Platform:        "SparkLoop",
	},
	{
		Title:           "Side Hustle Success Stories",
		Description:     "Weekly newsletter featuring real people making $1,000-$10,000+ monthly from side hustles. Includes actionable tips and strategies.",
		Category:        common.CategoryMakeMoney,
		CommissionRange: [2]float64{4, 8},
		GravityRange:    [2]float64{45, 90},
		Platform:        "SparkLoop",
	},
	// beehiiv
	{
		Title:           "The Entrepreneur's Edge",
		Description:     "Daily newsletter with business insights from top entrepreneurs. Join 75,000+ subscribers getting exclusive content.",
		Category:        common.CategoryNewsletters,
		CommissionRange: [2]float64{2, 5},
		GravityRange:    [2]float64{50, 95},
		Platform:        "beehiiv",
	},
	{
		Title:           "Tech Trends Weekly",
		Description:     "Weekly roundup of the hottest tech trends, gadgets, and innovations. Perfect for tech enthusiasts and early adopters.",
		Category:        common.CategoryGadgets,
		CommissionRange: [2]float64{1.5, 4},
		GravityRange:    [2]float64{30, 80},
		Platform:        "beehiiv",
	},
	{
		Title:           "Morning Crypto Brief",
		Description:     "Daily crypto market analysis and opportunities. Get the edge with insider insights and market predictions.",
		Category:        common.CategoryCryptoAirdrops,
		CommissionRange: [2]float64{3, 6},
		GravityRange:    [2]float64{40, 85},
		Platform:        "beehiiv",
	},
}

// OfferGenerator генерирует офферы из фиксированных шаблонов.
// Источник случайности инжектируется для воспроизводимости в тестах
type OfferGenerator struct {
	rng *rand.Rand
}

// NewOfferGenerator создает генератор офферов с заданным источником случайности
func NewOfferGenerator(rng *rand.Rand) *OfferGenerator {
	return &OfferGenerator{rng: rng}
}

// Generate генерирует count офферов: шаблон выбирается случайно, комиссия и
// популярность берутся равномерно из диапазонов шаблона
func (g *OfferGenerator) Generate(count int) []common.Offer {
	offers := make([]common.Offer, 0, count)

	for i := 0; i < count; i++ {
		template := offerTemplates[g.rng.Intn(len(offerTemplates))]

		titleVariations := []string{
			template.Title,
			template.Title + " - Limited Time",
			"🔥 " + template.Title,
			template.Title + " 2025 Edition",
		}

		offer := common.Offer{
			Title:       titleVariations[g.rng.Intn(len(titleVariations))],
			Description: template.Description,
			Category:    template.Category,
			Commission:  g.uniform(template.CommissionRange),
			Gravity:     g.uniform(template.GravityRange),
			AffiliateLink: fmt.Sprintf("https://trendbot.link/%s/%d?ref=trendbot",
				strings.ToLower(template.Platform), i+1),
			Platform: template.Platform,
		}
		offers = append(offers, offer)
	}

	return offers
}

// uniform возвращает равномерно распределенное значение из диапазона
func (g *OfferGenerator) uniform(r [2]float64) float64 {
	return r[0] + g.rng.Float64()*(r[1]-r[0])
}
