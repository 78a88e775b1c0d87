package main

import (
	"log"

	"github.com/varvara1412/telegram-bot/config"
	"github.com/varvara1412/telegram-bot/internal/app"
)

func main() {
	config := config.CreateNewConfig()
	if config.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	server := app.App{
		Config: config,
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start the bot: %v", err)
	}
}
