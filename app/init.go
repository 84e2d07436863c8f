package app

import (
	"log"
	"math/rand"
	"time"

	"trendbot/catalog"
	"trendbot/common"
	"trendbot/handlers"
	"trendbot/publisher"
	"trendbot/referral"
	"trendbot/services"
	"trendbot/telegram_bot"
)

// Components собранные компоненты приложения
type Components struct {
	Catalog     *catalog.Manager
	Ledger      *referral.Service
	Coordinator *publisher.Coordinator
	AutoPost    *services.AutoPostService
}

// InitializeApp инициализирует базу данных и собирает компоненты приложения
func InitializeApp() (*Components, error) {
	log.Printf("APP: Инициализация приложения")

	log.Printf("APP: Инициализация базы данных")
	if err := common.InitPostgreSQL(); err != nil {
		return nil, err
	}
	log.Printf("APP: База данных успешно инициализирована")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	catalogManager := catalog.NewManager(
		common.DB,
		catalog.NewOfferGenerator(rng),
		rng,
		common.PICK_POOL_SIZE,
		common.CATALOG_GENERATE_COUNT,
	)

	// Наполняем каталог на старте, чтобы первая публикация не ждала генерации
	if err := catalogManager.EnsureCatalog(common.CATALOG_MIN_SIZE); err != nil {
		log.Printf("APP: Ошибка начального наполнения каталога: %v", err)
	}

	ledger := referral.NewService(common.DB, common.REFERRAL_REWARD_AMOUNT)

	log.Printf("APP: Инициализация приложения завершена")
	return &Components{
		Catalog: catalogManager,
		Ledger:  ledger,
	}, nil
}

// StartBot запускает Telegram бота и сервис автопубликации (блокирующая функция)
func StartBot(components *Components) error {
	log.Printf("APP: Запуск Telegram бота")

	bot, err := telegram_bot.NewBot(common.BOT_TOKEN)
	if err != nil {
		return err
	}

	if err := telegram_bot.SetBotCommands(bot.API); err != nil {
		log.Printf("APP: Ошибка настройки команд бота: %v", err)
	}

	// Сохраняем бот в глобальной переменной для уведомлений
	common.GlobalBot = bot.API

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	components.Coordinator = publisher.NewCoordinator(
		components.Catalog,
		publisher.NewContentGenerator(rng),
		telegram_bot.NewChannelSender(bot.API),
		common.DB,
		common.CHANNEL_ID,
		common.CATALOG_MIN_SIZE,
	)

	components.AutoPost = services.NewAutoPostService(components.Coordinator)
	if common.CHANNEL_ID != "" {
		if err := components.AutoPost.Start(); err != nil {
			log.Printf("APP: Ошибка запуска автопубликации: %v", err)
		}
	} else {
		log.Printf("APP: Канал не задан, автопубликация отключена")
	}

	handler := handlers.NewMessageHandler(bot.API, components.Ledger, components.AutoPost, common.DB)
	bot.Start(handler)
	return nil
}
