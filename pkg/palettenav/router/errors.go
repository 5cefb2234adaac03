package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for route table defects. They are reported by Start,
// wrapped in a *RouteError naming the offending pattern.
var (
	ErrBadPattern    = errors.New("invalid path pattern")
	ErrDuplicatePath = errors.New("duplicate path pattern")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrCatchAll      = errors.New("route table must declare exactly one catch-all route")
	ErrMissingView   = errors.New("route has neither a view nor a redirect")
	ErrBadRedirect   = errors.New("redirect target does not resolve to a view")
	ErrUnknownRoute  = errors.New("unknown route name")
	ErrMissingParam  = errors.New("missing route parameter")
)

// RouteError describes a defect in a single route declaration.
type RouteError struct {
	Op   string // Stage that found the defect (e.g., "register", "validate")
	Path string // Path pattern of the route
	Err  error  // Underlying error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("router: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// IsRouteError checks if an error, or any error joined into it, is a route table defect.
func IsRouteError(err error) bool {
	var routeErr *RouteError
	return errors.As(err, &routeErr)
}

// ErrNotStarted is returned by navigation methods called before Start.
var ErrNotStarted = errors.New("router: navigator not started")
