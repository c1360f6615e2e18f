// Package entities contains the core domain objects for the aare-scrapper application
package entities

// WaterReading represents a single normalized water temperature observation
type WaterReading struct {
	Time        string  // Observation time as an ISO-8601 string in UTC
	Temperature float64 // Water temperature in the source's unit (°C)
}

// Outcome is the terminal result of one pipeline run
type Outcome struct {
	Success bool
	Message string // Human-readable failure description, empty on success
}
