package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/shreyanshTechz/attendance-backend/internal/app"
	"github.com/shreyanshTechz/attendance-backend/internal/config"
)

func main() {
	// .env is optional; environment always wins over file values.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
