package publisher

import (
	"fmt"
	"log"

	"trendbot/common"
)

// State состояние цикла публикации
type State int

// Состояния цикла публикации. После SELECTING любой сбой ведет в FAILED
const (
	StateIdle State = iota
	StateSelecting
	StateRendering
	StatePublishing
	StateLogged
	StateFailed
)

// String возвращает имя состояния
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateSelecting:
		return "SELECTING"
	case StateRendering:
		return "RENDERING"
	case StatePublishing:
		return "PUBLISHING"
	case StateLogged:
		return "LOGGED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Catalog операции каталога, нужные координатору
type Catalog interface {
	EnsureCatalog(minimumSize int) error
	PickOffer() (*common.Offer, error)
}

// Sender транспорт публикации в канал
type Sender interface {
	SendToChannel(channelID string, text string) (messageID int, err error)
}

// PostLogger журнал публикаций
type PostLogger interface {
	LogPost(offerID int, channelID string, messageID int) error
}

// Result итог одного цикла публикации
type Result struct {
	State     State
	Offer     *common.Offer
	MessageID int
}

// Coordinator прогоняет один цикл публикации: выбор оффера, рендер,
// отправка в канал, запись в журнал. Без повторных попыток: сбой
// завершает цикл, следующий запуск - забота планировщика
type Coordinator struct {
	catalog   Catalog
	content   *ContentGenerator
	sender    Sender
	postLog   PostLogger
	channelID string
	minSize   int
}

// NewCoordinator создает координатор публикаций
func NewCoordinator(catalog Catalog, content *ContentGenerator, sender Sender, postLog PostLogger, channelID string, minSize int) *Coordinator {
	return &Coordinator{
		catalog:   catalog,
		content:   content,
		sender:    sender,
		postLog:   postLog,
		channelID: channelID,
		minSize:   minSize,
	}
}

// Publish выполняет один цикл публикации строго последовательно
func (c *Coordinator) Publish() (*Result, error) {
	result := &Result{State: StateSelecting}

	// SELECTING: пополняем каталог при необходимости и выбираем оффер
	if err := c.catalog.EnsureCatalog(c.minSize); err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("ошибка пополнения каталога: %v", err)
	}

	offer, err := c.catalog.PickOffer()
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	result.Offer = offer

	// RENDERING: чистая функция, не падает для валидного оффера
	result.State = StateRendering
	text := c.content.GeneratePost(offer)

	// PUBLISHING: сбой транспорта завершает цикл, без повторной отправки
	result.State = StatePublishing
	messageID, err := c.sender.SendToChannel(c.channelID, text)
	if err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("ошибка публикации в канал: %v", err)
	}
	result.MessageID = messageID
	common.Stats.PostsSent.Add(1)

	// LOGGED: запись в журнал только после подтвержденной отправки.
	// Сбой здесь оставляет пост опубликованным, но неучтенным - отправка
	// не повторяется
	if err := c.postLog.LogPost(offer.ID, c.channelID, messageID); err != nil {
		result.State = StateFailed
		log.Printf("PUBLISHER: Пост #%d опубликован (message_id=%d), но не записан в журнал: %v",
			offer.ID, messageID, err)
		return result, err
	}

	result.State = StateLogged
	log.Printf("PUBLISHER: Оффер #%d '%s' опубликован в %s, message_id=%d",
		offer.ID, offer.Title, c.channelID, messageID)
	return result, nil
}
