package referral

import "trendbot/common"

// Store операции хранилища, нужные реферальной системе
type Store interface {
	UpsertUser(user *common.User) (int, error)
	GetUser(userID int64) (*common.User, error)
	GetUserByReferralCode(code string) (*common.User, error)
	SaveReferral(referral *common.Referral) (int, error)
	GetReferrals(referrerCode string) ([]common.Referral, error)
	GetLeaderboard(limit int) ([]common.User, error)
}

// OnboardResult итог онбординга пользователя
type OnboardResult struct {
	User         *common.User // Пользователь после онбординга
	IsNew        bool         // Создан ли пользователь этим вызовом
	Referrer     *common.User // Пригласивший, если награда начислена (для уведомления)
	RewardAmount float64      // Начисленная награда
}
