package main

import (
	"log"

	"github.com/Peytose/mixer-app-sub003/internal/app"
	"github.com/Peytose/mixer-app-sub003/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment and config file still apply.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
