package travel

import (
	"context"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

// Provider resolves a single-leg travel time between two points, in
// minutes. Implementations are expected to be safe for concurrent use.
type Provider interface {
	Minutes(ctx context.Context, from, to geo.Point) (float64, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context, from, to geo.Point) (float64, error)

// Minutes implements Provider.
func (f ProviderFunc) Minutes(ctx context.Context, from, to geo.Point) (float64, error) {
	return f(ctx, from, to)
}
