package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"trendbot/common"
	"trendbot/publisher"

	"github.com/robfig/cron/v3"
)

// AutoPostService публикует офферы в канал по расписанию.
// Запланированные и принудительные публикации сериализуются одним мьютексом:
// координатор не дедуплицирует перекрывающиеся запуски
type AutoPostService struct {
	coordinator *publisher.Coordinator
	cron        *cron.Cron
	mu          sync.Mutex
}

// NewAutoPostService создает сервис автопубликации
func NewAutoPostService(coordinator *publisher.Coordinator) *AutoPostService {
	return &AutoPostService{
		coordinator: coordinator,
		cron:        cron.New(),
	}
}

// Start запускает расписание: первая публикация после начальной задержки,
// дальше каждые POST_INTERVAL_SECONDS
func (s *AutoPostService) Start() error {
	interval := time.Duration(common.POST_INTERVAL_SECONDS) * time.Second
	initialDelay := time.Duration(common.POST_INITIAL_DELAY_SECONDS) * time.Second

	log.Printf("AUTO_POST: Запуск сервиса автопубликации: первый пост через %v, далее каждые %v",
		initialDelay, interval)

	spec := fmt.Sprintf("@every %s", interval)
	if _, err := s.cron.AddFunc(spec, s.runScheduled); err != nil {
		return fmt.Errorf("ошибка настройки расписания публикаций: %v", err)
	}

	go func() {
		time.Sleep(initialDelay)
		s.runScheduled()
		s.cron.Start()
	}()

	return nil
}

// Stop останавливает расписание публикаций
func (s *AutoPostService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Printf("AUTO_POST: Сервис автопубликации остановлен")
}

// PublishNow выполняет один цикл публикации вне расписания (команда /post)
func (s *AutoPostService) PublishNow() (*publisher.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coordinator.Publish()
}

// runScheduled выполняет запланированную публикацию. Сбой логируется,
// следующая попытка произойдет на очередном интервале
func (s *AutoPostService) runScheduled() {
	result, err := s.PublishNow()
	if err != nil {
		log.Printf("AUTO_POST: Запланированная публикация не удалась (state=%s): %v", result.State, err)
		return
	}
	log.Printf("AUTO_POST: Запланированная публикация выполнена, message_id=%d", result.MessageID)
}
