package journey

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MinimalDocument(t *testing.T) {
	doc := `{"journeys":[{"duration":120,"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080200"}]}`

	journeys, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, journeys, 1)

	j := journeys[0]
	assert.Equal(t, int64(120), j.Duration())

	departure, err := j.Departure()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 8, 0, 0, 0, time.Local), departure)

	arrival, err := j.Arrival()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 8, 2, 0, 0, time.Local), arrival)
}

func TestParse_EmptyJourneys(t *testing.T) {
	journeys, err := Parse(`{"journeys":[]}`)
	require.NoError(t, err)
	assert.NotNil(t, journeys)
	assert.Empty(t, journeys)
}

func TestParse_PreservesOrderAndLength(t *testing.T) {
	var elements []string
	for i := 0; i < 15; i++ {
		elements = append(elements, fmt.Sprintf(
			`{"duration":%d,"departure_date_time":"20230101T%02d0000","arrival_date_time":"20230101T%02d3000"}`,
			i*60, i+6, i+6))
	}
	// Duplicates must survive as-is.
	elements = append(elements, elements[0])
	doc := `{"journeys":[` + strings.Join(elements, ",") + `]}`

	journeys, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, journeys, 16)

	for i := 0; i < 15; i++ {
		assert.Equal(t, int64(i*60), journeys[i].Duration())
		assert.Equal(t, fmt.Sprintf("20230101T%02d0000", i+6), journeys[i].DepartureDateTime())
	}
	assert.Equal(t, journeys[0], journeys[15])
}

func TestParse_IgnoresUnknownKeys(t *testing.T) {
	doc := `{
		"links": [],
		"journeys": [
			{"type": "best", "duration": 1860, "sections": [],
			 "departure_date_time": "20231124T171500", "arrival_date_time": "20231124T174600"}
		]
	}`

	journeys, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, int64(1860), journeys[0].Duration())
	assert.Equal(t, "20231124T174600", journeys[0].ArrivalDateTime())
}

func TestParse_NegativeDurationIsKept(t *testing.T) {
	journeys, err := Parse(`{"journeys":[{"duration":-5,"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080000"}]}`)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, int64(-5), journeys[0].Duration())
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name     string
		document string
		contains string
	}{
		{
			name:     "not json",
			document: `journeys`,
			contains: "not a JSON object",
		},
		{
			name:     "top level array",
			document: `[{"journeys":[]}]`,
			contains: "not a JSON object",
		},
		{
			name:     "null document",
			document: `null`,
			contains: "null",
		},
		{
			name:     "missing journeys",
			document: `{"links":[]}`,
			contains: `missing "journeys"`,
		},
		{
			name:     "journeys null",
			document: `{"journeys":null}`,
			contains: `"journeys" is null`,
		},
		{
			name:     "journeys not an array",
			document: `{"journeys":{"duration":1}}`,
			contains: "not an array",
		},
		{
			name:     "element not an object",
			document: `{"journeys":[42]}`,
			contains: "journeys[0]: element is not an object",
		},
		{
			name:     "missing duration",
			document: `{"journeys":[{"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080200"}]}`,
			contains: `missing "duration"`,
		},
		{
			name:     "missing departure",
			document: `{"journeys":[{"duration":1,"arrival_date_time":"20230101T080200"}]}`,
			contains: `missing "departure_date_time"`,
		},
		{
			name:     "missing arrival in second element",
			document: `{"journeys":[{"duration":1,"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080200"},{"duration":1,"departure_date_time":"20230101T080000"}]}`,
			contains: `journeys[1]: missing "arrival_date_time"`,
		},
		{
			name:     "duration not an integer",
			document: `{"journeys":[{"duration":1.5,"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080200"}]}`,
			contains: `"duration" has the wrong type`,
		},
		{
			name:     "duration with a fraction part of zero",
			document: `{"journeys":[{"duration":120.0,"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080200"}]}`,
			contains: `"duration" has the wrong type`,
		},
		{
			name:     "duration in exponent form",
			document: `{"journeys":[{"duration":1e2,"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080200"}]}`,
			contains: `"duration" has the wrong type`,
		},
		{
			name:     "duration as string",
			document: `{"journeys":[{"duration":"120","departure_date_time":"20230101T080000","arrival_date_time":"20230101T080200"}]}`,
			contains: `"duration" has the wrong type`,
		},
		{
			name:     "timestamp with wrong pattern",
			document: `{"journeys":[{"duration":1,"departure_date_time":"2023-01-01T08:00:00","arrival_date_time":"20230101T080200"}]}`,
			contains: "departure_date_time",
		},
		{
			name:     "timestamp with fractional seconds",
			document: `{"journeys":[{"duration":120,"departure_date_time":"20230101T080000.5","arrival_date_time":"20230101T080200"}]}`,
			contains: "departure_date_time",
		},
		{
			name:     "arrival with nanoseconds",
			document: `{"journeys":[{"duration":120,"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080200.123456789"}]}`,
			contains: "arrival_date_time",
		},
		{
			name:     "timestamp not a string",
			document: `{"journeys":[{"duration":1,"departure_date_time":20230101,"arrival_date_time":"20230101T080200"}]}`,
			contains: `"departure_date_time" has the wrong type`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journeys, err := Parse(tt.document)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Nil(t, journeys)
		})
	}
}
