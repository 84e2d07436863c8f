package common

import "time"

// Категории офферов
const (
	CategoryMakeMoney      = "make_money"
	CategoryAITools        = "ai_tools"
	CategoryCryptoAirdrops = "crypto_airdrops"
	CategoryNewsletters    = "newsletters"
	CategoryGadgets        = "gadgets"
)

// Categories список всех допустимых категорий офферов
var Categories = []string{
	CategoryMakeMoney,
	CategoryAITools,
	CategoryCryptoAirdrops,
	CategoryNewsletters,
	CategoryGadgets,
}

// Статусы реферала. Переходы только вперед: pending -> confirmed -> paid
const (
	ReferralStatusPending   = "pending"
	ReferralStatusConfirmed = "confirmed"
	ReferralStatusPaid      = "paid"
)

// Offer представляет оффер из каталога для публикации
type Offer struct {
	ID            int       `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	Category      string    `db:"category" json:"category"`
	Commission    float64   `db:"commission" json:"commission"`
	Gravity       float64   `db:"gravity" json:"gravity"` // Популярность 0-100, 0 = не задана
	AffiliateLink string    `db:"affiliate_link" json:"affiliate_link"`
	Platform      string    `db:"platform" json:"platform"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// User представляет пользователя бота с реферальной статистикой
type User struct {
	ID            int       `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"` // Telegram ID пользователя
	Username      string    `db:"username" json:"username"`
	FirstName     string    `db:"first_name" json:"first_name"`
	ReferralCode  string    `db:"referral_code" json:"referral_code"`
	ReferredBy    string    `db:"referred_by" json:"referred_by"` // Код пригласившего, задается только при создании
	ReferralCount int       `db:"referral_count" json:"referral_count"`
	TotalEarnings float64   `db:"total_earnings" json:"total_earnings"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	LastActive    time.Time `db:"last_active" json:"last_active"`
}

// Referral представляет начисление награды за приглашенного пользователя
type Referral struct {
	ID             int       `db:"id" json:"id"`
	ReferrerCode   string    `db:"referrer_code" json:"referrer_code"`
	ReferredUserID int64     `db:"referred_user_id" json:"referred_user_id"`
	RewardAmount   float64   `db:"reward_amount" json:"reward_amount"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Post представляет запись журнала публикаций. Только добавление, никогда не изменяется
type Post struct {
	ID        int       `db:"id" json:"id"`
	OfferID   int       `db:"offer_id" json:"offer_id"`
	ChannelID string    `db:"channel_id" json:"channel_id"`
	MessageID int       `db:"message_id" json:"message_id"`
	PostedAt  time.Time `db:"posted_at" json:"posted_at"`
}

// OfferStatistics агрегированная статистика по каталогу офферов
type OfferStatistics struct {
	TotalOffers       int            `json:"total_offers"`
	AverageCommission float64        `json:"average_commission"`
	PlatformCounts    map[string]int `json:"platform_counts"`
	CategoryCounts    map[string]int `json:"category_counts"`
	RevenuePotential  float64        `json:"revenue_potential"`  // Средняя комиссия * количество офферов
	MonthlyProjection float64        `json:"monthly_projection"` // Средняя комиссия * 30 (одна конверсия в день)
}
