// Package core holds the shared domain primitives: the error taxonomy
// and the closed set of UAE cities every lookup validates against.
package core

import "errors"

// Error kinds returned by the lookup functions. Callers discriminate with
// errors.Is; the assistant converts the recoverable ones into clarification
// messages at the router boundary.
var (
	// ErrDataLoad is fatal at startup: without the knowledge store no
	// request can be served.
	ErrDataLoad = errors.New("knowledge data load failed")

	// ErrUnknownCity marks a city outside the supported set.
	ErrUnknownCity = errors.New("unknown city")

	// ErrInvalidDate marks an unparseable date argument.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDuration marks a non-positive trip length.
	ErrInvalidDuration = errors.New("invalid trip duration")

	// ErrInvalidStyle marks a travel style outside budget/standard/luxury.
	ErrInvalidStyle = errors.New("invalid travel style")
)
