package main

import (
	"fmt"
	"log"

	"clickscan/internal/config"
	"clickscan/internal/handler"
	"clickscan/internal/router"
	"clickscan/internal/service"
	"clickscan/internal/upstream"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize upstream client
	ocrClient := upstream.NewClient(&cfg.Upstream)

	// Initialize services
	ocrSvc := service.NewOCRService(ocrClient, &cfg.Upstream, &cfg.Upload)

	// Initialize handlers
	ocrH := handler.NewOCRHandler(ocrSvc, cfg.Upload.MaxBytes())
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, ocrH, healthH)

	log.Printf("Server starting on %s (upstream %s)", cfg.Server.Port, cfg.Upstream.BaseURL)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
