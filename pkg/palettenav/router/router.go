package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/palettenav/pkg/palettenav/constants"
)

// maxRedirects bounds redirect chains so a cyclic table cannot hang resolution.
const maxRedirects = 8

// Hook runs before a navigation completes. It cannot cancel the navigation
// and must not navigate itself. from is nil for the initial navigation.
type Hook func(to Resolution, from *NavigationState)

// NavigationState is the record of the active route. A new value is created
// for every navigation; existing values are never modified.
type NavigationState struct {
	Resolution
	EntryID       string          // Key of the history entry
	View          View            // Mounted view, nil only for an unmatched table
	Title         string          // Title applied before the view mounted
	SavedPosition *ScrollPosition // Offset recorded for this entry, set on Back/Forward
	Position      ScrollPosition  // Offset the rendering layer should apply
	Seq           uint64          // Navigation counter, starting at 1
}

// Options configures a Navigator.
type Options struct {
	AppName        string         // Application name used in titles (default constants.DefaultAppName)
	AppNameID      string         // Message ID used to localize AppName
	Localizer      Localizer      // Title translation (default: titles used as declared)
	Title          TitleSetter    // Receives page titles (default: an in-memory Document)
	ScrollBehavior ScrollBehavior // Landing offset (default: DefaultScrollBehavior)
	Logger         *slog.Logger   // Navigation log (default: discarded)
}

// Navigator resolves paths to routes and tracks the active NavigationState.
// Routes are registered with Register, and Start freezes the table.
type Navigator struct {
	opts Options

	routes   []*Route
	catchAll *Route
	names    map[string]*Route
	keys     map[string]string
	hooks    []Hook
	errs     []error

	mu      sync.Mutex
	history *History
	started atomic.Bool
	current atomic.Pointer[NavigationState]
	seq     atomic.Uint64
}

// New creates a new Navigator.
func New(opts Options) *Navigator {
	if opts.AppName == "" {
		opts.AppName = constants.DefaultAppName
	}
	if opts.Localizer == nil {
		opts.Localizer = passthroughLocalizer{}
	}
	if opts.Title == nil {
		opts.Title = &Document{}
	}
	if opts.ScrollBehavior == nil {
		opts.ScrollBehavior = DefaultScrollBehavior
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Navigator{
		opts:    opts,
		names:   make(map[string]*Route),
		keys:    make(map[string]string),
		history: NewHistory(),
	}
}

// Register adds a route to the table. Declaration order is match order.
// Defects are collected and reported by Start. Register panics once the
// navigator has started.
func (n *Navigator) Register(route Route) *Navigator {
	if n.started.Load() {
		panic("router: Register called after Start")
	}

	r := route
	p, err := compilePattern(r.Path)
	if err != nil {
		n.errs = append(n.errs, &RouteError{Op: "register", Path: r.Path, Err: err})
		return n
	}
	r.pattern = p

	if prev, exists := n.keys[p.key()]; exists {
		n.errs = append(n.errs, &RouteError{
			Op:   "register",
			Path: r.Path,
			Err:  fmt.Errorf("%w: conflicts with %q", ErrDuplicatePath, prev),
		})
		return n
	}
	if r.Name != "" {
		if _, exists := n.names[r.Name]; exists {
			n.errs = append(n.errs, &RouteError{
				Op:   "register",
				Path: r.Path,
				Err:  fmt.Errorf("%w: %s", ErrDuplicateName, r.Name),
			})
			return n
		}
	}

	if !r.HasView() && r.Redirect == "" {
		n.errs = append(n.errs, &RouteError{Op: "register", Path: r.Path, Err: ErrMissingView})
	}

	n.keys[p.key()] = r.Path
	if r.Name != "" {
		n.names[r.Name] = &r
	}

	if p.isCatchAll() {
		if r.Redirect == "" {
			n.errs = append(n.errs, &RouteError{
				Op:   "register",
				Path: r.Path,
				Err:  fmt.Errorf("%w: catch-all route must redirect", ErrCatchAll),
			})
		}
		n.catchAll = &r
		return n
	}

	n.routes = append(n.routes, &r)
	return n
}

// BeforeEach adds a hook that runs after the title update and before the view
// mounts. Hooks run in registration order.
func (n *Navigator) BeforeEach(hook Hook) *Navigator {
	n.hooks = append(n.hooks, hook)
	return n
}

// Start validates the route table, freezes it, and navigates to path.
// All table defects are returned together.
func (n *Navigator) Start(path string) (*NavigationState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.started.Load() {
		return nil, errors.New("router: already started")
	}
	if err := n.validate(); err != nil {
		return nil, err
	}
	n.started.Store(true)

	n.opts.Logger.Debug("Route table frozen", "routes", len(n.routes)+1)

	return n.visitLocked(path, Top, false)
}

func (n *Navigator) validate() error {
	errs := append([]error(nil), n.errs...)

	if n.catchAll == nil {
		errs = append(errs, &RouteError{Op: "validate", Path: "", Err: ErrCatchAll})
	}

	for _, r := range n.allRoutes() {
		if r.Redirect == "" {
			continue
		}
		target := n.Resolve(r.Redirect)
		if target.Route == nil || !target.Route.HasView() {
			errs = append(errs, &RouteError{
				Op:   "validate",
				Path: r.Path,
				Err:  fmt.Errorf("%w: %s", ErrBadRedirect, r.Redirect),
			})
		}
	}

	return errors.Join(errs...)
}

// Resolve matches path against the table and follows redirects. Unmatched
// paths land on the catch-all and are redirected; nothing here fails.
func (n *Navigator) Resolve(path string) Resolution {
	res := n.match(path)

	for i := 0; res.Route != nil && res.Route.Redirect != ""; i++ {
		if i == maxRedirects {
			return Resolution{Path: res.Path, RedirectedFrom: path}
		}
		res = n.match(res.Route.Redirect)
		res.RedirectedFrom = path
	}

	return res
}

func (n *Navigator) match(raw string) Resolution {
	path, query, hash := splitLocation(raw)
	parts := splitPath(path)

	for _, r := range n.routes {
		if params, ok := r.pattern.match(parts); ok {
			return Resolution{Route: r, Path: path, Params: params, Query: query, Hash: hash}
		}
	}

	if n.catchAll != nil {
		params, _ := n.catchAll.pattern.match(parts)
		return Resolution{Route: n.catchAll, Path: path, Params: params, Query: query, Hash: hash}
	}

	return Resolution{Path: path, Query: query, Hash: hash}
}

// splitLocation separates the path, query and fragment of a location string.
// The path is normalized to a leading slash without a trailing one.
func splitLocation(raw string) (string, url.Values, string) {
	rest, hash, _ := strings.Cut(raw, "#")
	path, rawQuery, _ := strings.Cut(rest, "?")

	var query url.Values
	if rawQuery != "" {
		query, _ = url.ParseQuery(rawQuery)
	}

	return "/" + strings.Join(splitPath(path), "/"), query, hash
}

// OnBeforeNavigate applies the page title for to, then runs the BeforeEach
// hooks. It always lets the navigation proceed.
func (n *Navigator) OnBeforeNavigate(to Resolution, from *NavigationState) bool {
	n.beforeNavigate(to, from)
	return true
}

func (n *Navigator) beforeNavigate(to Resolution, from *NavigationState) string {
	title := n.Title(to)
	n.opts.Title.SetTitle(title)

	for _, hook := range n.hooks {
		hook(to, from)
	}

	return title
}

// Title computes the page title for a resolution.
func (n *Navigator) Title(to Resolution) string {
	appName := n.opts.Localizer.Localize(n.opts.AppNameID, n.opts.AppName)
	if appName == "" {
		appName = n.opts.AppName
	}

	var routeTitle string
	if to.Route != nil && (to.Route.Meta.Title != "" || to.Route.Meta.TitleID != "") {
		routeTitle = n.opts.Localizer.Localize(to.Route.Meta.TitleID, to.Route.Meta.Title)
	}

	return FormatTitle(routeTitle, appName)
}

// Push navigates to path as a new history entry. current is the scroll offset
// of the page being left; it is saved for Back.
func (n *Navigator) Push(path string, current ScrollPosition) (*NavigationState, error) {
	return n.visit(path, current, false)
}

// Replace navigates to path, overwriting the active history entry.
func (n *Navigator) Replace(path string, current ScrollPosition) (*NavigationState, error) {
	return n.visit(path, current, true)
}

func (n *Navigator) visit(path string, current ScrollPosition, replace bool) (*NavigationState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.started.Load() {
		return nil, ErrNotStarted
	}

	return n.visitLocked(path, current, replace)
}

// visitLocked performs a navigation. n.mu must be held.
func (n *Navigator) visitLocked(path string, current ScrollPosition, replace bool) (*NavigationState, error) {
	from := n.current.Load()
	to := n.Resolve(path)

	state, err := n.transition(to, from, nil)
	if err != nil {
		return nil, err
	}

	var entry HistoryEntry
	if replace {
		entry = n.history.Replace(to.FullPath())
	} else {
		n.history.SaveScroll(current)
		entry = n.history.Push(to.FullPath())
	}
	state.EntryID = entry.ID

	n.current.Store(state)
	return state, nil
}

// Back moves one entry back in history and restores its scroll offset.
// At the start of history it returns the current state unchanged.
func (n *Navigator) Back(current ScrollPosition) (*NavigationState, error) {
	return n.Go(-1, current)
}

// Forward moves one entry forward in history and restores its scroll offset.
// At the end of history it returns the current state unchanged.
func (n *Navigator) Forward(current ScrollPosition) (*NavigationState, error) {
	return n.Go(1, current)
}

// Go moves delta entries through history.
func (n *Navigator) Go(delta int, current ScrollPosition) (*NavigationState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.started.Load() {
		return nil, ErrNotStarted
	}

	from := n.current.Load()
	if delta == 0 {
		return from, nil
	}

	n.history.SaveScroll(current)
	entry := n.history.Go(delta)
	if entry == nil {
		return from, nil
	}

	to := n.Resolve(entry.Path)
	state, err := n.transition(to, from, entry.Scroll)
	if err != nil {
		n.history.Go(-delta)
		return nil, err
	}
	state.EntryID = entry.ID

	n.current.Store(state)
	return state, nil
}

// transition runs the before-navigate step, mounts the view and computes the
// landing offset. It does not touch history or the current state.
func (n *Navigator) transition(to Resolution, from *NavigationState, saved *ScrollPosition) (*NavigationState, error) {
	if to.Redirected() {
		n.opts.Logger.Warn("Unmatched path, redirecting",
			"path", to.RedirectedFrom,
			"redirect", to.Path,
			"suggestion", n.Suggest(to.RedirectedFrom))
	}

	title := n.beforeNavigate(to, from)

	var view View
	if to.Route != nil {
		var err error
		view, err = to.Route.load()
		if err != nil {
			n.opts.Logger.Error("Failed to load view", "route", to.Name(), "error", err)
			return nil, err
		}
	}

	position := n.opts.ScrollBehavior(to, from, saved)

	state := &NavigationState{
		Resolution:    to,
		View:          view,
		Title:         title,
		SavedPosition: saved,
		Position:      position,
		Seq:           n.seq.Inc(),
	}

	n.opts.Logger.Debug("Navigated",
		"route", to.Name(),
		"path", to.Path,
		"title", title,
		"scroll_top", position.Top)

	return state, nil
}

// Current returns the active state, nil before Start.
func (n *Navigator) Current() *NavigationState {
	return n.current.Load()
}

// CanGoBack reports whether Back would move.
func (n *Navigator) CanGoBack() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history.CanGoBack()
}

// CanGoForward reports whether Forward would move.
func (n *Navigator) CanGoForward() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history.CanGoForward()
}

// Routes returns a copy of the route table in match order, catch-all last.
func (n *Navigator) Routes() []Route {
	all := n.allRoutes()
	out := make([]Route, 0, len(all))
	for _, r := range all {
		out = append(out, *r)
	}
	return out
}

func (n *Navigator) allRoutes() []*Route {
	all := append([]*Route(nil), n.routes...)
	if n.catchAll != nil {
		all = append(all, n.catchAll)
	}
	return all
}

// PathFor builds the path of a named route.
func (n *Navigator) PathFor(name string, params Params) (string, error) {
	r, ok := n.names[name]
	if !ok {
		return "", fmt.Errorf("router: %w: %s", ErrUnknownRoute, name)
	}
	path, err := r.pattern.build(params)
	if err != nil {
		return "", fmt.Errorf("router: route %s: %w", name, err)
	}
	return path, nil
}

// FullPath is the resolved path with its query and fragment.
func (r Resolution) FullPath() string {
	var b strings.Builder
	b.WriteString(r.Path)
	if len(r.Query) > 0 {
		b.WriteByte('?')
		b.WriteString(r.Query.Encode())
	}
	if r.Hash != "" {
		b.WriteByte('#')
		b.WriteString(r.Hash)
	}
	return b.String()
}
