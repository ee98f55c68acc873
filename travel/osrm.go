package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

// osrmResponse mirrors the subset of an OSRM /route/v1 response the
// oracle consumes, grounded on the original router service's expectation
// of {code, routes:[{duration, distance}]}.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		DurationSec float64 `json:"duration"`
		DistanceM   float64 `json:"distance"`
	} `json:"routes"`
}

// OSRMProvider calls an OSRM-shaped HTTP routing service for single-leg
// driving times, retrying transient failures with exponential backoff
// plus jitter. No ecosystem retry library appears anywhere in the
// retrieval pack's dependency surface, so backoff is hand-rolled on
// stdlib time/math-rand rather than reaching for one (see DESIGN.md).
type OSRMProvider struct {
	BaseURL    string
	HTTPClient *http.Client
	MaxRetries int
	BaseDelay  time.Duration
	rng        *rand.Rand
}

// NewOSRMProvider constructs a provider against baseURL (e.g.
// "https://router.project-osrm.org/route/v1/driving"), defaulting
// MaxRetries to 3 and BaseDelay to 200ms when unset.
func NewOSRMProvider(baseURL string) *OSRMProvider {
	return &OSRMProvider{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		MaxRetries: 3,
		BaseDelay:  200 * time.Millisecond,
		rng:        rand.New(rand.NewSource(1)),
	}
}

// Minutes implements Provider by requesting a single route between from
// and to and converting OSRM's duration (seconds) to minutes.
func (p *OSRMProvider) Minutes(ctx context.Context, from, to geo.Point) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, ErrInvalidPoint
	}

	url := fmt.Sprintf("%s/%f,%f;%f,%f?overview=false", p.BaseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := p.sleepBackoff(ctx, attempt); err != nil {
				return 0, err
			}
		}

		minutes, err := p.doRequest(ctx, url)
		if err == nil {
			return minutes, nil
		}
		lastErr = err
	}

	return 0, fmt.Errorf("%w: %v", ErrProviderUnavailable, lastErr)
}

func (p *OSRMProvider) doRequest(ctx context.Context, url string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("travel: osrm returned status %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, err
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return 0, ErrNoRoute
	}

	return parsed.Routes[0].DurationSec / 60.0, nil
}

// sleepBackoff waits 2^(attempt-1) * BaseDelay plus up to 50% jitter,
// returning early if ctx is cancelled.
func (p *OSRMProvider) sleepBackoff(ctx context.Context, attempt int) error {
	delay := p.BaseDelay << uint(attempt-1)
	jitter := time.Duration(p.rng.Int63n(int64(delay) / 2 + 1))

	timer := time.NewTimer(delay + jitter)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
