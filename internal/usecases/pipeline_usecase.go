// Package usecases contains the application's business logic
package usecases

import (
	"fmt"
	"log"

	"github.com/aarebot/aare-scrapper/internal/config"
	"github.com/aarebot/aare-scrapper/internal/entities"
	"github.com/aarebot/aare-scrapper/internal/integration"
)

// PipelineUseCase drives one scrape-and-forward run:
// check config -> fetch -> parse -> extract -> normalize -> forward.
// Every stage failure short-circuits into a failure outcome; no stage is
// retried.
type PipelineUseCase struct {
	cfg     *config.Config
	scraper *integration.WaterScraper
	backend *integration.BackendClient
}

// NewPipelineUseCase creates a new pipeline use case
func NewPipelineUseCase(cfg *config.Config, scraper *integration.WaterScraper, backend *integration.BackendClient) *PipelineUseCase {
	return &PipelineUseCase{
		cfg:     cfg,
		scraper: scraper,
		backend: backend,
	}
}

// Run executes the pipeline once and returns its terminal outcome
func (uc *PipelineUseCase) Run() entities.Outcome {
	log.Println("Starting water temperature pipeline run...")

	if err := uc.cfg.Validate(); err != nil {
		return uc.fail(err.Error())
	}

	content, err := uc.scraper.FetchPage()
	if err != nil {
		return uc.fail(fmt.Sprintf("couldn't retrieve website: %v", err))
	}

	doc, err := uc.scraper.ParsePage(content)
	if err != nil {
		return uc.fail(fmt.Sprintf("couldn't parse website content: %v", err))
	}

	pair, err := uc.scraper.ExtractReading(doc)
	if err != nil {
		return uc.fail(fmt.Sprintf("couldn't find water temperature data: %v", err))
	}

	reading, err := uc.scraper.NormalizeReading(pair)
	if err != nil {
		return uc.fail(fmt.Sprintf("couldn't normalize water information: %v", err))
	}

	if err := uc.backend.SendReading(reading); err != nil {
		return uc.fail(fmt.Sprintf("failed to put reading %+v to backend: %v", reading, err))
	}

	log.Println("Pipeline run completed successfully")
	return entities.Outcome{Success: true}
}

func (uc *PipelineUseCase) fail(message string) entities.Outcome {
	log.Printf("Pipeline failed: %s", message)
	return entities.Outcome{Success: false, Message: message}
}
