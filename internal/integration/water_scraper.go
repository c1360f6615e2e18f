// Package integration handles external service interactions
package integration

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/aarebot/aare-scrapper/internal/entities"
)

const (
	temperatureTag = "temp"
	timestampTag   = "temp-normal"

	timestampPrefix = "Last update: "
	timestampLayout = "2006-01-02 15:04:05"
	isoLayout       = "2006-01-02T15:04:05-07:00"
	sourceTimezone  = "Europe/Zurich"
)

var errMissingPrefix = errors.New("missing \"" + timestampPrefix + "\" prefix")

// WaterScraper provides functionality to scrape the Aare water temperature
// from the public source page
type WaterScraper struct {
	sourceURL string
}

// NewWaterScraper creates a new water temperature scraper
func NewWaterScraper(url string) *WaterScraper {
	if url == "" {
		// Default source URL
		url = "https://www.aare-bern.ch/wasserdaten-temperatur/"
	}
	return &WaterScraper{sourceURL: url}
}

// ExtractedPair holds the raw text of the two markup elements the source
// page must carry: the current temperature and the last-update line
type ExtractedPair struct {
	TemperatureText string
	TimestampText   string
}

// FetchPage retrieves the raw source page body. Any HTTP response counts as
// fetched content regardless of status; only transport-level failures
// (connection refused, DNS) are errors.
func (ws *WaterScraper) FetchPage() (string, error) {
	log.Printf("Requesting %s", ws.sourceURL)
	res, err := http.Get(ws.sourceURL)
	if err != nil {
		log.Printf("Error fetching source page: %v", err)
		return "", &TransportError{URL: ws.sourceURL, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Printf("Error reading source page body: %v", err)
		return "", &TransportError{URL: ws.sourceURL, Err: err}
	}

	content := string(body)
	log.Printf("Received response (%s): %s", res.Status, content)
	return content, nil
}

// ParsePage parses the raw page text into a navigable document. The parser
// is permissive: malformed input still yields a tree, it will simply lack
// the expected elements.
func (ws *WaterScraper) ParsePage(content string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(content))
}

// ExtractReading locates the temperature and last-update elements by tag
// name, first match. Each element is checked independently so the error
// names the one that is actually missing.
func (ws *WaterScraper) ExtractReading(doc *goquery.Document) (*ExtractedPair, error) {
	temperature := doc.Find(temperatureTag).First()
	if temperature.Length() == 0 || strings.TrimSpace(temperature.Text()) == "" {
		log.Printf("<%s> not found in document", temperatureTag)
		return nil, &ExtractionError{Tag: temperatureTag}
	}

	timestamp := doc.Find(timestampTag).First()
	if timestamp.Length() == 0 || strings.TrimSpace(timestamp.Text()) == "" {
		log.Printf("<%s> not found in document", timestampTag)
		return nil, &ExtractionError{Tag: timestampTag}
	}

	return &ExtractedPair{
		TemperatureText: strings.TrimSpace(temperature.Text()),
		TimestampText:   strings.TrimSpace(timestamp.Text()),
	}, nil
}

// NormalizeReading converts the extracted texts into a canonical reading:
// the source-local timestamp becomes an ISO-8601 UTC string and the
// temperature text becomes a float
func (ws *WaterScraper) NormalizeReading(pair *ExtractedPair) (entities.WaterReading, error) {
	isoTime, err := ws.normalizeTimestamp(pair.TimestampText)
	if err != nil {
		log.Printf("Error normalizing timestamp: %v", err)
		return entities.WaterReading{}, err
	}

	temperature, err := ws.normalizeTemperature(pair.TemperatureText)
	if err != nil {
		log.Printf("Error normalizing temperature: %v", err)
		return entities.WaterReading{}, err
	}

	reading := entities.WaterReading{Time: isoTime, Temperature: temperature}
	log.Printf("Normalized reading: %+v", reading)
	return reading, nil
}

// normalizeTimestamp parses "Last update: YYYY-MM-DD HH:MM:SS" as
// source-local time (DST-aware) and renders it as ISO-8601 in UTC
func (ws *WaterScraper) normalizeTimestamp(text string) (string, error) {
	if !strings.HasPrefix(text, timestampPrefix) {
		return "", &ParseValueError{Field: "timestamp", Text: text, Err: errMissingPrefix}
	}

	loc, err := time.LoadLocation(sourceTimezone)
	if err != nil {
		return "", err
	}

	local, err := time.ParseInLocation(timestampLayout, strings.TrimPrefix(text, timestampPrefix), loc)
	if err != nil {
		return "", &ParseValueError{Field: "timestamp", Text: text, Err: err}
	}

	return local.UTC().Format(isoLayout), nil
}

// normalizeTemperature strips everything from the degree marker onward and
// parses the remainder as a float
func (ws *WaterScraper) normalizeTemperature(text string) (float64, error) {
	number := strings.TrimSpace(strings.SplitN(text, "°", 2)[0])
	temperature, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, &ParseValueError{Field: "temperature", Text: text, Err: err}
	}
	return temperature, nil
}
