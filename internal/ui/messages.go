package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chicagofoodaccess/pantry-terminal/internal/geocoding"
)

// Message types for async operations

// geocodeResultMsg is sent when a location search resolves. center is
// nil when the location could not be found; that is not a fatal state,
// the form shows an inline message and previous results are kept.
type geocodeResultMsg struct {
	query  string
	center *geocoding.LatLng
}

// errMsg is a message type for fatal errors
type errMsg struct {
	err error
}

// resolveLocation geocodes the query off the UI loop. One attempt per
// submission; the form disables re-submission while one is in flight.
func resolveLocation(geocoder *geocoding.Geocoder, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		center := geocoder.Resolve(ctx, query)
		return geocodeResultMsg{query: query, center: center}
	}
}
