// Package views holds the views of the palette generator that the route
// table refers to by key.
package views

import (
	"errors"
	"fmt"
	"io"

	"github.com/BrandonKowalski/palettenav/pkg/palettenav/constants"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/router"
)

// Registry keys used by the route table.
const (
	KeyHome          = "home"
	KeyLibrary       = "library"
	KeyExport        = "export"
	KeySettings      = "settings"
	KeyPaletteDetail = "palette-detail"
)

// ErrMissingPalette is returned when the palette detail view has no id.
var ErrMissingPalette = errors.New("palette id missing")

// Localizer is what views need from the message catalog.
type Localizer interface {
	Localize(messageID, fallback string) string
	LocalizeWith(messageID, fallback string, data map[string]any) string
}

// Renderer is a view that can write itself as text.
type Renderer interface {
	router.View
	Render(w io.Writer, props router.Props) error
}

// Page is a view with a fixed localized heading.
type Page struct {
	name      string
	headingID string
	heading   string
	loc       Localizer
}

func (p *Page) Name() string { return p.name }

func (p *Page) Render(w io.Writer, _ router.Props) error {
	_, err := fmt.Fprintln(w, p.loc.Localize(p.headingID, p.heading))
	return err
}

// PaletteDetail shows a single palette, identified by the "id" prop.
type PaletteDetail struct {
	loc Localizer
}

func (v *PaletteDetail) Name() string { return "PaletteDetailView" }

func (v *PaletteDetail) Render(w io.Writer, props router.Props) error {
	id := props[constants.PaletteIDParam]
	if id == "" {
		return ErrMissingPalette
	}
	heading := v.loc.LocalizeWith("PaletteHeading", "Палитра {{.ID}}", map[string]any{"ID": id})
	_, err := fmt.Fprintln(w, heading)
	return err
}

// Registry returns a factory per view key.
func Registry(loc Localizer) map[string]router.ViewFactory {
	page := func(name, headingID, heading string) router.ViewFactory {
		return func() (router.View, error) {
			return &Page{name: name, headingID: headingID, heading: heading, loc: loc}, nil
		}
	}

	return map[string]router.ViewFactory{
		KeyHome:     page("HomeView", "RouteHomeTitle", "Генератор палитр"),
		KeyLibrary:  page("LibraryView", "RouteLibraryTitle", "Библиотека палитр"),
		KeyExport:   page("ExportView", "RouteExportTitle", "Экспорт палитр"),
		KeySettings: page("SettingsView", "RouteSettingsTitle", "Настройки"),
		KeyPaletteDetail: func() (router.View, error) {
			return &PaletteDetail{loc: loc}, nil
		},
	}
}

// Render writes the view of state, passing the resolved props.
func Render(w io.Writer, state *router.NavigationState) error {
	if state == nil || state.View == nil {
		return errors.New("views: nothing to render")
	}
	r, ok := state.View.(Renderer)
	if !ok {
		return fmt.Errorf("views: %s cannot render", state.View.Name())
	}
	return r.Render(w, state.Props())
}
