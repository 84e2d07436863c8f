package catalog

import (
	"fmt"
	"log"
	"math/rand"

	"trendbot/common"
)

// Store операции хранилища, нужные менеджеру каталога
type Store interface {
	SaveOffer(offer *common.Offer) (int, error)
	GetOffers(limit int, category string) ([]common.Offer, error)
	CountOffers() (int, error)
}

// Manager поддерживает непустой каталог офферов и выбирает оффер для публикации
type Manager struct {
	store         Store
	generator     *OfferGenerator
	rng           *rand.Rand
	poolSize      int // Из скольких последних офферов выбирать
	generateCount int // Сколько офферов генерировать за один проход
}

// NewManager создает менеджер каталога
func NewManager(store Store, generator *OfferGenerator, rng *rand.Rand, poolSize, generateCount int) *Manager {
	return &Manager{
		store:         store,
		generator:     generator,
		rng:           rng,
		poolSize:      poolSize,
		generateCount: generateCount,
	}
}

// EnsureCatalog пополняет каталог, если в нем меньше minimumSize офферов
func (m *Manager) EnsureCatalog(minimumSize int) error {
	count, err := m.store.CountOffers()
	if err != nil {
		return fmt.Errorf("ошибка проверки размера каталога: %v", err)
	}

	if count >= minimumSize {
		return nil
	}

	log.Printf("CATALOG: В каталоге %d офферов (минимум %d), генерируем новые", count, minimumSize)

	generated := m.generator.Generate(m.generateCount)
	saved := 0
	for i := range generated {
		if _, err := m.store.SaveOffer(&generated[i]); err != nil {
			return fmt.Errorf("ошибка сохранения сгенерированного оффера: %v", err)
		}
		saved++
		common.Stats.OffersGenerated.Add(1)
	}

	log.Printf("CATALOG: Сгенерировано и сохранено %d офферов", saved)
	return nil
}

// PickOffer выбирает случайный оффер из последних poolSize.
// Возвращает ErrEmptyCatalog, если каталог пуст
func (m *Manager) PickOffer() (*common.Offer, error) {
	offers, err := m.store.GetOffers(m.poolSize, "")
	if err != nil {
		return nil, fmt.Errorf("ошибка получения офферов для публикации: %v", err)
	}

	if len(offers) == 0 {
		return nil, common.ErrEmptyCatalog
	}

	offer := offers[m.rng.Intn(len(offers))]
	log.Printf("CATALOG: Выбран оффер #%d '%s' (комиссия %.2f$)", offer.ID, offer.Title, offer.Commission)
	return &offer, nil
}
