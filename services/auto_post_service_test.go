package services

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendbot/common"
	"trendbot/publisher"
)

// stubCatalog каталог с одним оффером
type stubCatalog struct{}

func (stubCatalog) EnsureCatalog(minimumSize int) error { return nil }

func (stubCatalog) PickOffer() (*common.Offer, error) {
	return &common.Offer{ID: 1, Title: "AI Content Creator Pro", Platform: "ClickBank"}, nil
}

// slowSender транспорт, фиксирующий максимальную одновременность отправок
type slowSender struct {
	active    atomic.Int64
	maxActive atomic.Int64
	sent      atomic.Int64
}

func (s *slowSender) SendToChannel(channelID, text string) (int, error) {
	current := s.active.Add(1)
	defer s.active.Add(-1)

	for {
		observed := s.maxActive.Load()
		if current <= observed || s.maxActive.CompareAndSwap(observed, current) {
			break
		}
	}

	time.Sleep(5 * time.Millisecond)
	return int(s.sent.Add(1)), nil
}

type stubPostLog struct{ logged atomic.Int64 }

func (s *stubPostLog) LogPost(offerID int, channelID string, messageID int) error {
	s.logged.Add(1)
	return nil
}

// TestPublishNow_Serialized проверяет, что конкурентные вызовы PublishNow
// выполняются строго по одному: перекрывающихся публикаций не бывает
func TestPublishNow_Serialized(t *testing.T) {
	sender := &slowSender{}
	postLog := &stubPostLog{}
	coordinator := publisher.NewCoordinator(
		stubCatalog{},
		publisher.NewContentGenerator(rand.New(rand.NewSource(1))),
		sender, postLog, "@test_channel", 10,
	)
	service := NewAutoPostService(coordinator)

	const calls = 10
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := service.PublishNow()
			assert.NoError(t, err)
			assert.Equal(t, publisher.StateLogged, result.State)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), sender.maxActive.Load(), "публикации должны идти строго по одной")
	assert.Equal(t, int64(calls), sender.sent.Load())
	assert.Equal(t, int64(calls), postLog.logged.Load())
}

// TestPublishNow_ResultPropagated проверяет, что результат координатора
// возвращается вызывающему без изменений
func TestPublishNow_ResultPropagated(t *testing.T) {
	sender := &slowSender{}
	coordinator := publisher.NewCoordinator(
		stubCatalog{},
		publisher.NewContentGenerator(rand.New(rand.NewSource(1))),
		sender, &stubPostLog{}, "@test_channel", 10,
	)
	service := NewAutoPostService(coordinator)

	result, err := service.PublishNow()
	require.NoError(t, err)
	require.NotNil(t, result.Offer)
	assert.Equal(t, 1, result.Offer.ID)
	assert.Equal(t, 1, result.MessageID)
}
