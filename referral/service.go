package referral

import (
	"errors"
	"fmt"
	"log"

	"trendbot/common"
)

// Service реферальная система: онбординг, начисление наград,
// личный кабинет и таблица лидеров
type Service struct {
	store        Store
	rewardAmount float64 // Награда за одного приглашенного
}

// NewService создает сервис реферальной системы
func NewService(store Store, rewardAmount float64) *Service {
	return &Service{store: store, rewardAmount: rewardAmount}
}

// Onboard регистрирует пользователя по команде /start. Для существующего
// пользователя обновляется только активность. Для нового пользователя с
// валидным чужим кодом начисляется награда пригласившему. Невалидный код
// молча игнорируется: коды приходят из deep link свободным текстом
func (s *Service) Onboard(userID int64, username, firstName, claimedCode string) (*OnboardResult, error) {
	existing, err := s.store.GetUser(userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска пользователя: %v", err)
	}

	if existing != nil {
		// Повторный /start: обновляем только username, имя и активность
		if _, err := s.store.UpsertUser(existing); err != nil {
			return nil, fmt.Errorf("ошибка обновления пользователя: %v", err)
		}
		return &OnboardResult{User: existing, IsNew: false}, nil
	}

	user := &common.User{
		UserID:     userID,
		Username:   username,
		FirstName:  firstName,
		ReferredBy: claimedCode,
	}
	if _, err := s.store.UpsertUser(user); err != nil {
		return nil, fmt.Errorf("ошибка создания пользователя: %v", err)
	}
	log.Printf("REFERRAL_SERVICE: Создан пользователь %d с кодом %s", userID, user.ReferralCode)

	result := &OnboardResult{User: user, IsNew: true}

	// Награда только для действительно новых пользователей с разрешимым кодом
	if claimedCode != "" {
		referrer, rewarded := s.processReferral(user, claimedCode)
		if rewarded {
			result.Referrer = referrer
			result.RewardAmount = s.rewardAmount
		}
	}

	// Перечитываем пользователя, чтобы вернуть присвоенные хранилищем поля
	created, err := s.store.GetUser(userID)
	if err == nil && created != nil {
		result.User = created
	}

	return result, nil
}

// processReferral начисляет награду пригласившему. Возвращает пригласившего
// с обновленными счетчиками и признак успешного начисления
func (s *Service) processReferral(user *common.User, claimedCode string) (*common.User, bool) {
	referrer, err := s.store.GetUserByReferralCode(claimedCode)
	if err != nil {
		log.Printf("REFERRAL_SERVICE: Ошибка поиска пригласившего по коду '%s': %v", claimedCode, err)
		return nil, false
	}
	if referrer == nil {
		// Опечатка или выдуманный код - не ошибка
		log.Printf("REFERRAL_SERVICE: Код '%s' не найден, онбординг без награды", claimedCode)
		return nil, false
	}
	if referrer.UserID == user.UserID {
		log.Printf("REFERRAL_SERVICE: Самореферал пользователя %d отклонен", user.UserID)
		return nil, false
	}

	referral := &common.Referral{
		ReferrerCode:   claimedCode,
		ReferredUserID: user.UserID,
		RewardAmount:   s.rewardAmount,
		Status:         common.ReferralStatusConfirmed,
	}

	if _, err := s.store.SaveReferral(referral); err != nil {
		if errors.Is(err, common.ErrDuplicateReferral) {
			log.Printf("REFERRAL_SERVICE: Повторная награда за пару (%s, %d) отклонена", claimedCode, user.UserID)
			return nil, false
		}
		// Начисление не прошло, но онбординг пользователя уже состоялся
		log.Printf("REFERRAL_SERVICE: Ошибка начисления награды по коду '%s': %v", claimedCode, err)
		return nil, false
	}

	// Перечитываем пригласившего: в уведомлении нужны обновленные счетчики
	updated, err := s.store.GetUserByReferralCode(claimedCode)
	if err != nil || updated == nil {
		updated = referrer
	}

	log.Printf("REFERRAL_SERVICE: Начислено %.2f$ пользователю %d за приглашение %d",
		s.rewardAmount, updated.UserID, user.UserID)
	return updated, true
}

// Dashboard возвращает пользователя и его рефералы для личного кабинета.
// Пользователь создается при первом обращении
func (s *Service) Dashboard(userID int64, username, firstName string) (*common.User, []common.Referral, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка поиска пользователя: %v", err)
	}

	if user == nil {
		user = &common.User{UserID: userID, Username: username, FirstName: firstName}
		if _, err := s.store.UpsertUser(user); err != nil {
			return nil, nil, fmt.Errorf("ошибка создания пользователя: %v", err)
		}
		if created, err := s.store.GetUser(userID); err == nil && created != nil {
			user = created
		}
	}

	referrals, err := s.store.GetReferrals(user.ReferralCode)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка получения рефералов: %v", err)
	}

	return user, referrals, nil
}

// Leaderboard возвращает топ пригласивших. Медали и форматирование - забота вызывающего
func (s *Service) Leaderboard(limit int) ([]common.User, error) {
	return s.store.GetLeaderboard(limit)
}

// ReferralLink собирает реферальную ссылку пользователя
func (s *Service) ReferralLink(user *common.User) string {
	return common.BOT_LINK_BASE + user.ReferralCode
}
