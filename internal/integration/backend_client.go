package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/aarebot/aare-scrapper/internal/config"
	"github.com/aarebot/aare-scrapper/internal/entities"
)

// HTTPDoer executes a single HTTP request. Satisfied by *http.Client and by
// test fakes that count calls instead of hitting the network.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BackendClient forwards normalized water readings to the internal backend API
type BackendClient struct {
	baseURL      string
	pathTemplate string
	uuid         string
	apiKey       string
	client       HTTPDoer
}

// readingPayload is the JSON body of the backend PUT
type readingPayload struct {
	Temperature float64 `json:"temperature"`
	Time        string  `json:"time"`
}

// NewBackendClient creates a backend forwarder from the loaded configuration
func NewBackendClient(cfg *config.Config) *BackendClient {
	return &BackendClient{
		baseURL:      cfg.BackendURL,
		pathTemplate: cfg.BackendPath,
		uuid:         cfg.UUID,
		apiKey:       cfg.APIKey,
		client:       http.DefaultClient,
	}
}

// destinationURL joins the base URL with the path template, filling the
// placeholder with the configured identifier
func (bc *BackendClient) destinationURL() string {
	path := strings.Replace(bc.pathTemplate, "{}", bc.uuid, 1)
	return strings.Join([]string{bc.baseURL, path}, "/")
}

// SendReading validates the reading and PUTs it to the backend. A reading
// with temperature <= 0 is held back before any network call: the value is
// plausible-looking but suspicious, so a human approves it instead.
func (bc *BackendClient) SendReading(reading entities.WaterReading) error {
	if reading.Temperature <= 0 {
		log.Printf("Reading %+v failed validation, not forwarding", reading)
		return &ValidationError{Temperature: reading.Temperature}
	}

	url := bc.destinationURL()
	payload, err := json.Marshal(readingPayload{Temperature: reading.Temperature, Time: reading.Time})
	if err != nil {
		return err
	}

	log.Printf("Send %s to %s", payload, url)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+bc.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := bc.client.Do(req)
	if err != nil {
		log.Printf("Error while connecting to backend (%s): %v", url, err)
		return &TransportError{URL: url, Err: err}
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	ok := res.StatusCode >= 200 && res.StatusCode < 300
	log.Printf("success: %v | content: %s", ok, body)

	if !ok {
		return &RejectionError{URL: url, Status: res.Status, Body: string(body)}
	}
	return nil
}
