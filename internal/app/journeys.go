package app

import (
	"context"
	"sort"
	"time"

	"trainctl/internal/config"
	"trainctl/internal/journey"
	"trainctl/internal/provider"

	"github.com/sourcegraph/conc/pool"
)

const maxConcurrentPlans = 4

// PlanResult is the outcome of fetching one plan.
type PlanResult struct {
	Index    int
	Plan     config.Plan
	Journeys journey.List
	Err      error
}

// FetchPlan requests and parses the journeys of a single plan.
func FetchPlan(ctx context.Context, p provider.Provider, plan config.Plan, at *time.Time) (journey.List, error) {
	return provider.RequestJourneys(ctx, p, provider.Query{From: plan.From, To: plan.To, At: at})
}

// FetchPlans fetches every plan concurrently. Results come back in plan
// order; a failing plan does not stop the others.
func FetchPlans(ctx context.Context, p provider.Provider, plans []config.Plan, at *time.Time) []PlanResult {
	workers := pool.NewWithResults[PlanResult]().WithMaxGoroutines(maxConcurrentPlans)

	for i, plan := range plans {
		workers.Go(func() PlanResult {
			list, err := FetchPlan(ctx, p, plan, at)
			return PlanResult{Index: i, Plan: plan, Journeys: list, Err: err}
		})
	}

	results := workers.Wait()
	sort.Slice(results, func(a, b int) bool {
		return results[a].Index < results[b].Index
	})
	return results
}
