package router

import "sync"

// TitleSeparator joins the route title and the application name.
const TitleSeparator = " • "

// TitleSetter receives the page title computed before each navigation.
type TitleSetter interface {
	SetTitle(title string)
}

// Localizer translates a message ID, falling back to the given text.
type Localizer interface {
	Localize(messageID, fallback string) string
}

// FormatTitle returns "{routeTitle} • {appName}", or appName alone when the
// route has no title.
func FormatTitle(routeTitle, appName string) string {
	if routeTitle == "" {
		return appName
	}
	return routeTitle + TitleSeparator + appName
}

// Document is an in-memory TitleSetter standing in for the page document.
type Document struct {
	mu    sync.RWMutex
	title string
}

func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	d.title = title
	d.mu.Unlock()
}

// Title returns the last title set.
func (d *Document) Title() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.title
}

type passthroughLocalizer struct{}

func (passthroughLocalizer) Localize(_, fallback string) string {
	return fallback
}
