package common

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Database обертка над подключением к PostgreSQL со всеми операциями хранилища
type Database struct {
	db *sql.DB
}

// DB глобальный экземпляр базы данных
var DB *Database

// NewDatabase создает экземпляр базы данных поверх готового подключения
func NewDatabase(conn *sql.DB) *Database {
	return &Database{db: conn}
}

// Константы для PostgreSQL
const (
	PG_HOST     = "localhost" // Хост PostgreSQL сервера
	PG_PORT     = "5432"      // Порт PostgreSQL
	PG_USER     = "trendbot"  // Имя пользователя БД
	PG_PASSWORD = "trendbot"  // Пароль пользователя БД
	PG_DBNAME   = "trendbot"  // Название базы данных
)

// InitPostgreSQL инициализирует подключение к PostgreSQL и создает схему
func InitPostgreSQL() error {
	host := getEnvOrDefault("PG_HOST", PG_HOST)
	port := getEnvOrDefault("PG_PORT", PG_PORT)
	user := getEnvOrDefault("PG_USER", PG_USER)
	password := getEnvOrDefault("PG_PASSWORD", PG_PASSWORD)
	dbname := getEnvOrDefault("PG_DBNAME", PG_DBNAME)

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	conn, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return fmt.Errorf("ошибка подключения к PostgreSQL: %v", err)
	}

	if err = conn.Ping(); err != nil {
		return fmt.Errorf("ошибка проверки соединения с PostgreSQL: %v", err)
	}

	// Настройки пула соединений
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := createTables(conn); err != nil {
		return fmt.Errorf("ошибка создания таблиц: %v", err)
	}

	DB = NewDatabase(conn)
	log.Println("POSTGRES: PostgreSQL подключен успешно")

	if count, err := DB.CountOffers(); err == nil {
		log.Printf("POSTGRES: Офферов в каталоге: %d", count)
	}

	return nil
}

// DisconnectPostgreSQL отключается от PostgreSQL
func DisconnectPostgreSQL() {
	if DB != nil && DB.db != nil {
		DB.db.Close()
		log.Println("POSTGRES: PostgreSQL отключен")
	}
}

// createTables создает необходимые таблицы и индексы
func createTables(db *sql.DB) error {
	offersTableSQL := `
	CREATE TABLE IF NOT EXISTS offers (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT,
		commission DOUBLE PRECISION NOT NULL DEFAULT 0,
		gravity DOUBLE PRECISION,
		affiliate_link TEXT,
		platform TEXT,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);`

	usersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		user_id BIGINT UNIQUE NOT NULL,
		username TEXT,
		first_name TEXT,
		referral_code TEXT UNIQUE NOT NULL,
		referred_by TEXT,
		referral_count INTEGER NOT NULL DEFAULT 0,
		total_earnings DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		last_active TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);`

	// Пара (referrer_code, referred_user_id) уникальна: одна награда за
	// одного приглашенного, повторное начисление невозможно на уровне БД
	referralsTableSQL := `
	CREATE TABLE IF NOT EXISTS referrals (
		id SERIAL PRIMARY KEY,
		referrer_code TEXT NOT NULL,
		referred_user_id BIGINT NOT NULL,
		reward_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE (referrer_code, referred_user_id)
	);`

	postsTableSQL := `
	CREATE TABLE IF NOT EXISTS posts (
		id SERIAL PRIMARY KEY,
		offer_id INTEGER NOT NULL REFERENCES offers(id),
		channel_id TEXT,
		message_id BIGINT,
		posted_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);`

	indexSQL := `
	CREATE INDEX IF NOT EXISTS idx_offers_created_at ON offers(created_at);
	CREATE INDEX IF NOT EXISTS idx_offers_category ON offers(category);
	CREATE INDEX IF NOT EXISTS idx_users_referral_code ON users(referral_code);
	CREATE INDEX IF NOT EXISTS idx_referrals_referrer_code ON referrals(referrer_code);
	CREATE INDEX IF NOT EXISTS idx_posts_offer_id ON posts(offer_id);`

	for name, query := range map[string]string{
		"offers":    offersTableSQL,
		"users":     usersTableSQL,
		"referrals": referralsTableSQL,
		"posts":     postsTableSQL,
	} {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("ошибка создания таблицы %s: %v", name, err)
		}
	}

	if _, err := db.Exec(indexSQL); err != nil {
		return fmt.Errorf("ошибка создания индексов: %v", err)
	}

	return nil
}

// GenerateReferralCode генерирует новый реферальный код вида LUX1A2B3C4D
func GenerateReferralCode() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "LUX" + strings.ToUpper(hex[:8])
}

// SaveOffer сохраняет оффер и возвращает присвоенный id
func (d *Database) SaveOffer(offer *Offer) (int, error) {
	query := `
		INSERT INTO offers (title, description, category, commission, gravity, affiliate_link, platform, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id`

	var id int
	err := d.db.QueryRow(query,
		offer.Title, offer.Description, offer.Category, offer.Commission,
		nullIfZero(offer.Gravity), offer.AffiliateLink, offer.Platform,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка сохранения оффера: %v", err)
	}

	offer.ID = id
	return id, nil
}

// GetOffers получает последние офферы, сначала самые новые.
// category пустая строка - без фильтра по категории
func (d *Database) GetOffers(limit int, category string) ([]Offer, error) {
	var rows *sql.Rows
	var err error

	if category != "" {
		query := `
			SELECT id, title, description, category, commission, gravity, affiliate_link, platform, created_at, updated_at
			FROM offers WHERE category = $1 ORDER BY created_at DESC, id DESC LIMIT $2`
		rows, err = d.db.Query(query, category, limit)
	} else {
		query := `
			SELECT id, title, description, category, commission, gravity, affiliate_link, platform, created_at, updated_at
			FROM offers ORDER BY created_at DESC, id DESC LIMIT $1`
		rows, err = d.db.Query(query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения офферов: %v", err)
	}
	defer rows.Close()

	var offers []Offer
	for rows.Next() {
		var offer Offer
		var description, category, affiliateLink, platform sql.NullString
		var gravity sql.NullFloat64

		err := rows.Scan(
			&offer.ID, &offer.Title, &description, &category, &offer.Commission,
			&gravity, &affiliateLink, &platform, &offer.CreatedAt, &offer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования оффера: %v", err)
		}

		// Обработка NULL значений
		offer.Description = description.String
		offer.Category = category.String
		offer.AffiliateLink = affiliateLink.String
		offer.Platform = platform.String
		if gravity.Valid {
			offer.Gravity = gravity.Float64
		}

		offers = append(offers, offer)
	}

	return offers, rows.Err()
}

// CountOffers возвращает количество офферов в каталоге
func (d *Database) CountOffers() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM offers").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета офферов: %v", err)
	}
	return count, nil
}

// LogPost добавляет запись в журнал публикаций
func (d *Database) LogPost(offerID int, channelID string, messageID int) error {
	query := `
		INSERT INTO posts (offer_id, channel_id, message_id, posted_at)
		VALUES ($1, $2, $3, NOW())`

	_, err := d.db.Exec(query, offerID, channelID, messageID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return fmt.Errorf("ошибка записи в журнал публикаций: оффер %d не существует", offerID)
		}
		return fmt.Errorf("ошибка записи в журнал публикаций: %v", err)
	}

	return nil
}

// UpsertUser создает или обновляет пользователя (thread-safe через UPSERT).
// Для существующего пользователя обновляются только username, first_name и
// last_active: реферальный код и referred_by никогда не перезаписываются
func (d *Database) UpsertUser(user *User) (int, error) {
	if user.ReferralCode == "" {
		user.ReferralCode = GenerateReferralCode()
	}

	query := `
		INSERT INTO users (user_id, username, first_name, referral_code, referred_by, created_at, last_active)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_active = NOW()
		RETURNING id`

	var id int
	err := d.db.QueryRow(query,
		user.UserID, user.Username, user.FirstName,
		user.ReferralCode, nullIfEmpty(user.ReferredBy),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка UPSERT пользователя: %v", err)
	}

	user.ID = id
	return id, nil
}

// GetUser получает пользователя по Telegram ID. Отсутствие - не ошибка: (nil, nil)
func (d *Database) GetUser(userID int64) (*User, error) {
	query := selectUserSQL + " WHERE user_id = $1"
	return d.scanUser(d.db.QueryRow(query, userID))
}

// GetUserByReferralCode получает пользователя по реферальному коду
func (d *Database) GetUserByReferralCode(code string) (*User, error) {
	query := selectUserSQL + " WHERE referral_code = $1"
	return d.scanUser(d.db.QueryRow(query, code))
}

const selectUserSQL = `
		SELECT id, user_id, username, first_name, referral_code, referred_by,
		       referral_count, total_earnings, created_at, last_active
		FROM users`

// scanUser сканирует одну строку пользователя с обработкой NULL значений
func (d *Database) scanUser(row *sql.Row) (*User, error) {
	var user User
	var username, firstName, referredBy sql.NullString

	err := row.Scan(
		&user.ID, &user.UserID, &username, &firstName,
		&user.ReferralCode, &referredBy,
		&user.ReferralCount, &user.TotalEarnings,
		&user.CreatedAt, &user.LastActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения пользователя: %v", err)
	}

	user.Username = username.String
	user.FirstName = firstName.String
	user.ReferredBy = referredBy.String

	return &user, nil
}

// SaveReferral атомарно сохраняет реферал и обновляет счетчики пригласившего.
// Вставка строки и инкремент referral_count/total_earnings выполняются в одной
// транзакции: наблюдать одно без другого невозможно, конкурентные начисления
// одному пригласившему не теряют инкременты
func (d *Database) SaveReferral(referral *Referral) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия транзакции: %v", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO referrals (referrer_code, referred_user_id, reward_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id`

	var id int
	err = tx.QueryRow(insertQuery,
		referral.ReferrerCode, referral.ReferredUserID,
		referral.RewardAmount, referral.Status,
	).Scan(&id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return 0, ErrDuplicateReferral
		}
		return 0, fmt.Errorf("ошибка сохранения реферала: %v", err)
	}

	updateQuery := `
		UPDATE users SET
			referral_count = referral_count + 1,
			total_earnings = total_earnings + $2
		WHERE referral_code = $1`

	result, err := tx.Exec(updateQuery, referral.ReferrerCode, referral.RewardAmount)
	if err != nil {
		return 0, fmt.Errorf("ошибка обновления счетчиков пригласившего: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка проверки обновления счетчиков: %v", err)
	}
	if affected == 0 {
		// Реферал без существующего пригласившего - нарушение консистентности,
		// транзакция откатывается целиком
		return 0, ErrReferrerNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка фиксации транзакции: %v", err)
	}

	referral.ID = id
	return id, nil
}

// GetReferrals получает рефералы по коду пригласившего, сначала самые новые
func (d *Database) GetReferrals(referrerCode string) ([]Referral, error) {
	query := `
		SELECT id, referrer_code, referred_user_id, reward_amount, status, created_at, updated_at
		FROM referrals WHERE referrer_code = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := d.db.Query(query, referrerCode)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения рефералов: %v", err)
	}
	defer rows.Close()

	var referrals []Referral
	for rows.Next() {
		var referral Referral
		err := rows.Scan(
			&referral.ID, &referral.ReferrerCode, &referral.ReferredUserID,
			&referral.RewardAmount, &referral.Status,
			&referral.CreatedAt, &referral.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования реферала: %v", err)
		}
		referrals = append(referrals, referral)
	}

	return referrals, rows.Err()
}

// GetLeaderboard получает топ пригласивших: только пользователи хотя бы с одним
// рефералом, сортировка по количеству рефералов, при равенстве - по заработку
func (d *Database) GetLeaderboard(limit int) ([]User, error) {
	query := selectUserSQL + `
		WHERE referral_count > 0
		ORDER BY referral_count DESC, total_earnings DESC
		LIMIT $1`

	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения таблицы лидеров: %v", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		var username, firstName, referredBy sql.NullString

		err := rows.Scan(
			&user.ID, &user.UserID, &username, &firstName,
			&user.ReferralCode, &referredBy,
			&user.ReferralCount, &user.TotalEarnings,
			&user.CreatedAt, &user.LastActive,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования пользователя: %v", err)
		}

		user.Username = username.String
		user.FirstName = firstName.String
		user.ReferredBy = referredBy.String

		users = append(users, user)
	}

	return users, rows.Err()
}

// GetOfferStatistics получает агрегированную статистику по каталогу офферов
func (d *Database) GetOfferStatistics() (*OfferStatistics, error) {
	stats := &OfferStatistics{
		PlatformCounts: make(map[string]int),
		CategoryCounts: make(map[string]int),
	}

	err := d.db.QueryRow(`SELECT COUNT(*), COALESCE(AVG(commission), 0) FROM offers`).
		Scan(&stats.TotalOffers, &stats.AverageCommission)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения статистики офферов: %v", err)
	}

	if err := d.countGroups("platform", stats.PlatformCounts); err != nil {
		return nil, err
	}
	if err := d.countGroups("category", stats.CategoryCounts); err != nil {
		return nil, err
	}

	stats.RevenuePotential = stats.AverageCommission * float64(stats.TotalOffers)
	stats.MonthlyProjection = stats.AverageCommission * 30

	return stats, nil
}

// countGroups подсчитывает офферы по значению колонки column
func (d *Database) countGroups(column string, counts map[string]int) error {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM offers GROUP BY %s`, column, column)

	rows, err := d.db.Query(query)
	if err != nil {
		return fmt.Errorf("ошибка группировки офферов по %s: %v", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var value sql.NullString
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return fmt.Errorf("ошибка сканирования группировки: %v", err)
		}
		if value.Valid {
			counts[value.String] = count
		}
	}

	return rows.Err()
}

// Вспомогательные функции

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}
