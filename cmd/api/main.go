package main

import (
	"context"
	"log"

	"github.com/Sridharsing7570/resume-analyser/internal/bootstrap"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/config"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
