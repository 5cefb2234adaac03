package router

import (
	"fmt"
	"net/url"
)

// View is anything the rendering layer can mount for a route.
type View interface {
	Name() string
}

// Params holds the values bound to the named segments of a matched pattern.
type Params map[string]string

// Get returns the value bound to name, or "" if it is not bound.
func (p Params) Get(name string) string {
	return p[name]
}

// Props are the inputs handed to a view. They are only populated for routes
// that set Props.
type Props map[string]string

// Meta carries per-route metadata.
type Meta struct {
	Title   string // Title in the default language; empty means the app name alone
	TitleID string // Message ID used to localize Title; empty means Title is used as is
}

// Route maps a path pattern to a view.
//
// A route either has a view (View or Lazy) or a Redirect target. The catch-all
// route ("/:pathMatch(.*)*" or "/*") must redirect.
type Route struct {
	Path     string    // Path pattern, e.g. "/palette/:id"
	Name     string    // Symbolic name, optional for redirect routes
	View     View      // View mounted when the route is active
	Lazy     *LazyView // Deferred view, loaded on first navigation
	Meta     Meta      // Title and other metadata
	Props    bool      // Pass bound params to the view as props
	Redirect string    // Path navigated to instead of rendering

	pattern *pattern
}

// IsCatchAll reports whether this is the fallback route.
func (r *Route) IsCatchAll() bool {
	return r.pattern != nil && r.pattern.isCatchAll()
}

// HasView reports whether the route renders anything itself.
func (r *Route) HasView() bool {
	return r.View != nil || r.Lazy != nil
}

// load returns the route's view, running the lazy factory if needed.
func (r *Route) load() (View, error) {
	if r.View != nil {
		return r.View, nil
	}
	if r.Lazy != nil {
		view, err := r.Lazy.Load()
		if err != nil {
			return nil, fmt.Errorf("router: load view %q: %w", r.Name, err)
		}
		return view, nil
	}
	return nil, nil
}

// Resolution is the outcome of matching a path against the route table.
type Resolution struct {
	Route          *Route     // Matched route after redirects; never a redirect route once started
	Path           string     // Path that Route was matched against
	Params         Params     // Bound parameters
	Query          url.Values // Query of the requested path; dropped on redirect
	Hash           string     // Fragment of the requested path; dropped on redirect
	RedirectedFrom string     // Requested path when a redirect was followed
}

// Redirected reports whether resolution went through a redirect.
func (r Resolution) Redirected() bool {
	return r.RedirectedFrom != ""
}

// Props returns the bound params as view inputs, or nil when the route does not pass them.
func (r Resolution) Props() Props {
	if r.Route == nil || !r.Route.Props {
		return nil
	}
	props := make(Props, len(r.Params))
	for k, v := range r.Params {
		props[k] = v
	}
	return props
}

// Name is the matched route name, or "" when nothing matched.
func (r Resolution) Name() string {
	if r.Route == nil {
		return ""
	}
	return r.Route.Name
}
