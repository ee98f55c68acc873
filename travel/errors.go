package travel

import "errors"

// ErrNoRoute indicates the upstream routing service responded but found
// no route between the two points.
var ErrNoRoute = errors.New("travel: no route between points")

// ErrProviderUnavailable indicates every retry against the HTTP provider
// failed; callers that want the haversine fallback should check
// errors.Is(err, ErrProviderUnavailable) before falling back themselves,
// though Oracle.Minutes already falls back internally.
var ErrProviderUnavailable = errors.New("travel: provider unavailable")

// ErrInvalidPoint indicates a coordinate pair failed geo.Point.Valid.
var ErrInvalidPoint = errors.New("travel: invalid coordinate")
