package router

import (
	"errors"
	"sync"

	"go.uber.org/atomic"
)

// ViewFactory produces a view on demand.
type ViewFactory func() (View, error)

// LazyView defers building a view until the first navigation that needs it.
// A successful result is kept for the lifetime of the process; a failed load
// is retried on the next navigation.
type LazyView struct {
	mu      sync.Mutex
	factory ViewFactory
	view    View
	loads   atomic.Int64
}

// Lazy wraps factory in a LazyView.
func Lazy(factory ViewFactory) *LazyView {
	return &LazyView{factory: factory}
}

// Load returns the cached view or runs the factory.
func (l *LazyView) Load() (View, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.view != nil {
		return l.view, nil
	}
	if l.factory == nil {
		return nil, errors.New("no view factory")
	}

	l.loads.Inc()
	view, err := l.factory()
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errors.New("view factory returned nil")
	}

	l.view = view
	return view, nil
}

// Loaded reports whether the view has been built.
func (l *LazyView) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view != nil
}

// Loads returns how many times the factory has been invoked.
func (l *LazyView) Loads() int64 {
	return l.loads.Load()
}
