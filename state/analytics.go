package state

import (
	"context"
	"sync"

	"github.com/swift-aid/admin-console/client"
	"github.com/swift-aid/admin-console/models"
)

// DefaultAnalyticsPeriod is the period selected when the view first loads
const DefaultAnalyticsPeriod = "30 days"

// AnalyticsStore owns the three analytics sub-domains. Each has its own
// container so one failing fetch never blocks the others; all three blank
// their payload on failure so charts never show figures from a failed load.
type AnalyticsStore struct {
	api *client.Client

	overview      *Container[models.Analytics]
	responseTimes *Container[models.ResponseTimes]
	utilization   *Container[models.ResponderUtilization]

	mu     sync.Mutex
	period string
}

// NewAnalyticsStore creates the store over the given API client
func NewAnalyticsStore(api *client.Client) *AnalyticsStore {
	return &AnalyticsStore{
		api:           api,
		overview:      NewContainer[models.Analytics](ClearOnFailure),
		responseTimes: NewContainer[models.ResponseTimes](ClearOnFailure),
		utilization:   NewContainer[models.ResponderUtilization](ClearOnFailure),
		period:        DefaultAnalyticsPeriod,
	}
}

// FanOutResult reports how a three-domain load settled
type FanOutResult struct {
	Errors []error
}

// PartialFailure reports some but not all fetches failing; the view degrades
// to a warning banner over whatever succeeded
func (r FanOutResult) PartialFailure() bool {
	return len(r.Errors) > 0 && len(r.Errors) < 3
}

// TotalFailure reports every fetch failing
func (r FanOutResult) TotalFailure() bool {
	return len(r.Errors) == 3
}

// FetchAll issues the three analytics fetches concurrently and waits for all
// of them to settle, each independently reflected in its own container
func (s *AnalyticsStore) FetchAll(ctx context.Context) FanOutResult {
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		errs[0] = s.overview.Fetch(ctx, func(ctx context.Context) (*models.Analytics, error) {
			return s.api.Analytics(ctx)
		})
	}()
	go func() {
		defer wg.Done()
		errs[1] = s.responseTimes.Fetch(ctx, func(ctx context.Context) (*models.ResponseTimes, error) {
			return s.api.ResponseTimes(ctx)
		})
	}()
	go func() {
		defer wg.Done()
		errs[2] = s.utilization.Fetch(ctx, func(ctx context.Context) (*models.ResponderUtilization, error) {
			return s.api.ResponderUtilization(ctx)
		})
	}()
	wg.Wait()

	var result FanOutResult
	for _, err := range errs {
		if err != nil {
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}

// SetPeriod records the selected reporting period. Callers re-issue FetchAll
// after changing it.
func (s *AnalyticsStore) SetPeriod(period string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.period = period
}

// Period returns the selected reporting period
func (s *AnalyticsStore) Period() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Overview returns the general analytics container view
func (s *AnalyticsStore) Overview() View[models.Analytics] {
	return s.overview.Snapshot()
}

// ResponseTimes returns the response-times container view
func (s *AnalyticsStore) ResponseTimes() View[models.ResponseTimes] {
	return s.responseTimes.Snapshot()
}

// Utilization returns the responder-utilization container view
func (s *AnalyticsStore) Utilization() View[models.ResponderUtilization] {
	return s.utilization.Snapshot()
}

// ClearErrors drops the error message on all three containers
func (s *AnalyticsStore) ClearErrors() {
	s.overview.ClearError()
	s.responseTimes.ClearError()
	s.utilization.ClearError()
}

// Reset clears all three containers and restores the default period
func (s *AnalyticsStore) Reset() {
	s.overview.Reset()
	s.responseTimes.Reset()
	s.utilization.Reset()
	s.mu.Lock()
	s.period = DefaultAnalyticsPeriod
	s.mu.Unlock()
}
