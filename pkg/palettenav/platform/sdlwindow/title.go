// Package sdlwindow mirrors navigation titles onto an SDL window, for builds
// that host the views in a native window instead of a browser tab.
//
// Pass a TitleSink as palettenav.Options.Title and attach the window once it
// is created:
//
//	sink := sdlwindow.NewTitleSink(nil)
//	app, err := palettenav.New(palettenav.Options{Title: sink})
//	...
//	window, err := sdl.CreateWindow(...)
//	sink.Attach(window)
package sdlwindow

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/palettenav/pkg/palettenav/router"
)

// Window is the part of *sdl.Window the sink uses.
type Window interface {
	SetTitle(title string)
}

var _ Window = (*sdl.Window)(nil)

// TitleSink is a router.TitleSetter that keeps the last title and forwards
// it to the window when one is attached.
type TitleSink struct {
	router.Document
	window Window
}

// NewTitleSink creates a sink for window, which may be nil until the window exists.
func NewTitleSink(window *sdl.Window) *TitleSink {
	s := &TitleSink{}
	if window != nil {
		s.window = window
	}
	return s
}

// Attach sets the window titles are forwarded to and applies the current title.
func (s *TitleSink) Attach(window Window) {
	s.window = window
	if title := s.Title(); title != "" && window != nil {
		window.SetTitle(title)
	}
}

func (s *TitleSink) SetTitle(title string) {
	s.Document.SetTitle(title)
	if s.window != nil {
		s.window.SetTitle(title)
	}
}
