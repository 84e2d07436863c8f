package common

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockDatabase создает хранилище поверх sqlmock
func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewDatabase(conn), mock
}

// TestGenerateReferralCode проверяет формат и уникальность реферальных кодов
func TestGenerateReferralCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateReferralCode()
		assert.True(t, strings.HasPrefix(code, "LUX"), "код должен начинаться с LUX: %s", code)
		assert.Len(t, code, 11, "код должен состоять из LUX и 8 hex символов")
		assert.Equal(t, strings.ToUpper(code), code, "код должен быть в верхнем регистре")
		assert.False(t, seen[code], "коды не должны повторяться: %s", code)
		seen[code] = true
	}
}

// TestSaveReferral_Atomic проверяет, что вставка реферала и обновление
// счетчиков пригласившего выполняются в одной транзакции
func TestSaveReferral_Atomic(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO referrals")).
		WithArgs("LUXAB12CD34", int64(2), 5.0, ReferralStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WithArgs("LUXAB12CD34", 5.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	referral := &Referral{
		ReferrerCode:   "LUXAB12CD34",
		ReferredUserID: 2,
		RewardAmount:   5.0,
		Status:         ReferralStatusConfirmed,
	}

	id, err := db.SaveReferral(referral)
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, 7, referral.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSaveReferral_ReferrerNotFound проверяет откат транзакции, когда код
// пригласившего не разрешился ни в одного пользователя
func TestSaveReferral_ReferrerNotFound(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO referrals")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	referral := &Referral{
		ReferrerCode:   "LUXDEADBEEF",
		ReferredUserID: 2,
		RewardAmount:   5.0,
		Status:         ReferralStatusConfirmed,
	}

	_, err := db.SaveReferral(referral)
	assert.ErrorIs(t, err, ErrReferrerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSaveReferral_Duplicate проверяет, что нарушение уникальности пары
// (referrer_code, referred_user_id) превращается в ErrDuplicateReferral
func TestSaveReferral_Duplicate(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO referrals")).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	referral := &Referral{
		ReferrerCode:   "LUXAB12CD34",
		ReferredUserID: 2,
		RewardAmount:   5.0,
		Status:         ReferralStatusConfirmed,
	}

	_, err := db.SaveReferral(referral)
	assert.ErrorIs(t, err, ErrDuplicateReferral)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUpsertUser_GeneratesCode проверяет генерацию кода для нового пользователя
func TestUpsertUser_GeneratesCode(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(int64(1), "alice", "Alice", sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	user := &User{UserID: 1, Username: "alice", FirstName: "Alice"}
	_, err := db.UpsertUser(user)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.ReferralCode, "LUX"),
		"новому пользователю должен быть присвоен код")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUpsertUser_KeepsExistingCode проверяет, что заданный код не перегенерируется
func TestUpsertUser_KeepsExistingCode(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(int64(1), "alice2", "Alice", "LUXAB12CD34", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	user := &User{UserID: 1, Username: "alice2", FirstName: "Alice", ReferralCode: "LUXAB12CD34"}
	_, err := db.UpsertUser(user)
	require.NoError(t, err)
	assert.Equal(t, "LUXAB12CD34", user.ReferralCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGetUser_NotFound проверяет, что отсутствие пользователя - не ошибка
func TestGetUser_NotFound(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := db.GetUser(99)
	require.NoError(t, err)
	assert.Nil(t, user)
}

// TestGetUser_NullFields проверяет обработку NULL значений
func TestGetUser_NullFields(t *testing.T) {
	db, mock := newMockDatabase(t)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, int64(5), nil, nil, "LUXAB12CD34", nil, 0, 0.0, now, now)
	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	user, err := db.GetUser(5)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "", user.Username)
	assert.Equal(t, "", user.ReferredBy)
	assert.Equal(t, "LUXAB12CD34", user.ReferralCode)
}

// TestGetLeaderboard проверяет запрос таблицы лидеров: фильтр по числу
// рефералов и порядок сортировки
func TestGetLeaderboard(t *testing.T) {
	db, mock := newMockDatabase(t)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, int64(1), "alice", "Alice", "LUXA", nil, 5, 25.0, now, now).
		AddRow(2, int64(2), "bob", "Bob", "LUXB", nil, 5, 10.0, now, now).
		AddRow(3, int64(3), "carol", "Carol", "LUXC", nil, 1, 5.0, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE referral_count > 0") + ".*" +
		regexp.QuoteMeta("ORDER BY referral_count DESC, total_earnings DESC")).
		WithArgs(10).
		WillReturnRows(rows)

	leaders, err := db.GetLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, leaders, 3)
	assert.Equal(t, "alice", leaders[0].Username)
	assert.Equal(t, "bob", leaders[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestLogPost_MissingOffer проверяет ошибку журнала для несуществующего оффера
func TestLogPost_MissingOffer(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs(42, "@channel", 100).
		WillReturnError(&pq.Error{Code: "23503"})

	err := db.LogPost(42, "@channel", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "не существует")
}

// TestGetOffers_CategoryFilter проверяет фильтрацию по категории
func TestGetOffers_CategoryFilter(t *testing.T) {
	db, mock := newMockDatabase(t)

	now := time.Now()
	columns := []string{"id", "title", "description", "category", "commission",
		"gravity", "affiliate_link", "platform", "created_at", "updated_at"}
	rows := sqlmock.NewRows(columns).
		AddRow(2, "AI Weekly Insider", "desc", CategoryAITools, 4.5, nil, "https://example.com", "SparkLoop", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE category = $1")).
		WithArgs(CategoryAITools, 5).
		WillReturnRows(rows)

	offers, err := db.GetOffers(5, CategoryAITools)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, CategoryAITools, offers[0].Category)
	assert.Zero(t, offers[0].Gravity, "NULL gravity должна остаться нулевой")
}

func userColumns() []string {
	return []string{"id", "user_id", "username", "first_name", "referral_code",
		"referred_by", "referral_count", "total_earnings", "created_at", "last_active"}
}
