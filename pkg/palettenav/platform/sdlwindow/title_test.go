package sdlwindow

import (
	"testing"

	"github.com/BrandonKowalski/palettenav/pkg/palettenav/router"
)

type fakeWindow struct {
	titles []string
}

func (w *fakeWindow) SetTitle(title string) {
	w.titles = append(w.titles, title)
}

func TestTitleSinkForwardsToWindow(t *testing.T) {
	sink := NewTitleSink(nil)
	sink.SetTitle("Настройки • Генератор цветов")
	if sink.Title() != "Настройки • Генератор цветов" {
		t.Fatalf("title not kept without a window")
	}

	win := &fakeWindow{}
	sink.Attach(win)
	sink.SetTitle("Палитра • Генератор цветов")

	want := []string{"Настройки • Генератор цветов", "Палитра • Генератор цветов"}
	if len(win.titles) != 2 || win.titles[0] != want[0] || win.titles[1] != want[1] {
		t.Fatalf("unexpected window titles %q", win.titles)
	}
}

func TestTitleSinkAsNavigatorTarget(t *testing.T) {
	win := &fakeWindow{}
	sink := NewTitleSink(nil)
	sink.Attach(win)

	nav := router.New(router.Options{AppName: "Генератор цветов", Title: sink})
	nav.Register(router.Route{Path: "/", Name: "Home", View: homeView{}, Meta: router.Meta{Title: "Генератор палитр"}}).
		Register(router.Route{Path: "/*", Redirect: "/"})

	if _, err := nav.Start("/"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(win.titles) != 1 || win.titles[0] != "Генератор палитр • Генератор цветов" {
		t.Fatalf("unexpected window titles %q", win.titles)
	}
}

type homeView struct{}

func (homeView) Name() string { return "HomeView" }
