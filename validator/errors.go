package validator

import "errors"

// ErrDuplicateRouteInBus guards against a route ID appearing twice in
// the same bus's day, which would indicate a bug upstream (a chain
// splitter or merger cycle) rather than a legitimate schedule.
var ErrDuplicateRouteInBus = errors.New("validator: route id appears twice in one bus's schedule")
