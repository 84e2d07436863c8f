package main

import (
	"log"

	"trendbot/app"
	"trendbot/common"

	"github.com/joho/godotenv"
)

func main() {
	// .env опционален: на сервере переменные задаются окружением
	if err := godotenv.Load(); err != nil {
		log.Printf("MAIN: .env не найден, используются переменные окружения")
	}

	common.LoadConfig()
	common.InitGlobals()

	components, err := app.InitializeApp()
	if err != nil {
		log.Fatal("MAIN: Ошибка инициализации приложения: ", err)
	}

	defer common.DisconnectPostgreSQL()

	// Запускаем Telegram бота (блокирующая функция)
	if err := app.StartBot(components); err != nil {
		log.Fatal("MAIN: Ошибка запуска бота: ", err)
	}
}
