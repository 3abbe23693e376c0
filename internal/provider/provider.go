package provider

import (
	"context"
	"fmt"
	"time"

	"trainctl/internal/journey"
)

// Query selects journeys between two navitia places.
type Query struct {
	From string
	To   string
	// At is the earliest departure; nil means now.
	At *time.Time
}

// Provider returns the raw journeys document for a query.
type Provider interface {
	FetchJourneys(ctx context.Context, q Query) (string, error)
}

// RequestJourneys fetches the document for q from p and parses it.
func RequestJourneys(ctx context.Context, p Provider, q Query) (journey.List, error) {
	document, err := p.FetchJourneys(ctx, q)
	if err != nil {
		return nil, err
	}

	journeys, err := journey.Parse(document)
	if err != nil {
		return nil, fmt.Errorf("parsing journeys from %s to %s: %w", q.From, q.To, err)
	}
	return journeys, nil
}

// FormatQueryTime renders t in the provider's datetime layout.
func FormatQueryTime(t time.Time) string {
	return t.Format(journey.TimestampLayout)
}

// ParseQueryTime is the inverse of FormatQueryTime.
func ParseQueryTime(s string) (time.Time, error) {
	return journey.ParseTimestamp(s)
}
