package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainctl/internal/config"
	"trainctl/internal/provider"
)

type routeProvider struct {
	calls atomic.Int32
	at    atomic.Pointer[time.Time]
}

func (r *routeProvider) FetchJourneys(ctx context.Context, q provider.Query) (string, error) {
	r.calls.Add(1)
	r.at.Store(q.At)
	switch q.From {
	case "down":
		return "", errors.New("upstream unavailable")
	case "broken":
		return `{"journeys":"nope"}`, nil
	}
	// Later plans answer first to shake out ordering.
	if q.From == "slow" {
		time.Sleep(20 * time.Millisecond)
	}
	return `{"journeys":[{"duration":600,"departure_date_time":"20231124T170000","arrival_date_time":"20231124T171000"}]}`, nil
}

func TestFetchPlans(t *testing.T) {
	p := &routeProvider{}
	plans := []config.Plan{
		{From: "slow", To: "x"},
		{From: "down", To: "x"},
		{From: "fast", To: "x"},
		{From: "broken", To: "x"},
		{From: "fast", To: "y"},
	}

	results := FetchPlans(context.Background(), p, plans, nil)

	require.Len(t, results, len(plans))
	assert.EqualValues(t, len(plans), p.calls.Load())
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, plans[i], r.Plan)
	}

	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Journeys, 1)
	assert.EqualError(t, results[1].Err, "upstream unavailable")
	assert.NoError(t, results[2].Err)
	assert.Error(t, results[3].Err)
	assert.Nil(t, results[3].Journeys)
	assert.Len(t, results[4].Journeys, 1)
}

func TestFetchPlan_PassesDatetime(t *testing.T) {
	p := &routeProvider{}
	at := time.Date(2023, 11, 24, 17, 0, 0, 0, time.Local)

	list, err := FetchPlan(context.Background(), p, config.Plan{From: "fast", To: "x"}, &at)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NotNil(t, p.at.Load())
	assert.Equal(t, at, *p.at.Load())
}
