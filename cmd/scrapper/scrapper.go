package main

import (
	"log"
	"os"

	"github.com/aarebot/aare-scrapper/internal/api"
	"github.com/aarebot/aare-scrapper/internal/config"
	"github.com/aarebot/aare-scrapper/internal/integration"
	"github.com/aarebot/aare-scrapper/internal/usecases"
	"github.com/robfig/cron/v3"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting Aare Scrapper...")

	cfg := config.Load()

	// Initialize scraper and backend forwarder
	scraper := integration.NewWaterScraper(cfg.SourceURL)
	backend := integration.NewBackendClient(cfg)

	// Initialize use case and failure notifier
	useCase := usecases.NewPipelineUseCase(cfg, scraper, backend)
	notifier := api.NewNotifier(cfg.Token, cfg.Chatlist)

	runOnce := func() bool {
		outcome := useCase.Run()
		if !outcome.Success {
			log.Printf("Something went wrong (%s)", outcome.Message)
			if err := notifier.SendAlert(outcome.Message); err != nil {
				log.Printf("Error sending telegram alert: %v", err)
			}
		}
		return outcome.Success
	}

	// With a schedule the process stays up and reruns the pipeline itself;
	// without one it runs once and signals the result via its exit code.
	if cfg.Schedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.Schedule, func() { runOnce() }); err != nil {
			log.Fatalf("Failed to set up cron job: %v", err)
		}

		// Run once immediately on startup
		runOnce()

		log.Printf("Scrapper has been scheduled with %q", cfg.Schedule)
		c.Start()

		// Keep the program running
		select {}
	}

	if !runOnce() {
		os.Exit(1)
	}
}
