package main

import (
	"log"

	"fastreader/internal/bootstrap"
	"fastreader/internal/server"
	"fastreader/internal/shared/config"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Host, cfg.Port)
	log.Printf("Starting FastReader on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
