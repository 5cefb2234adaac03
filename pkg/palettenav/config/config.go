// Package config loads the application configuration and the route table,
// both written in TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/palettenav/pkg/palettenav/constants"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/router"
)

//go:embed routes.toml
var defaultRoutes string

// ErrUnknownView is returned when a route names a view that is not registered.
var ErrUnknownView = errors.New("unknown view")

// Config holds the application settings.
type Config struct {
	AppName      string `toml:"app_name"`      // Application name in page titles
	Locale       string `toml:"locale"`        // Language tag or Accept-Language value
	LogPath      string `toml:"log_path"`      // Log file, stdout only when empty
	LogLevel     string `toml:"log_level"`     // debug, info, warn or error
	RoutesFile   string `toml:"routes_file"`   // Route table, embedded default when empty
	MessagesFile string `toml:"messages_file"` // Extra translations, optional
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppName:  constants.DefaultAppName,
		Locale:   constants.DefaultLocale,
		LogLevel: constants.DefaultLogLevel,
	}
}

// Load reads a TOML config file over the defaults. An empty filename yields
// the defaults. Relative file references resolve against the config file's directory.
func Load(filename string) (Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(filename, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", filename, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: %s: unknown keys %v", filename, undecoded)
	}

	dir := filepath.Dir(filename)
	cfg.RoutesFile = resolveRelative(dir, cfg.RoutesFile)
	cfg.MessagesFile = resolveRelative(dir, cfg.MessagesFile)

	return cfg, nil
}

func resolveRelative(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// RouteSpec is one [[routes]] entry of the route table.
type RouteSpec struct {
	Path     string `toml:"path"`
	Name     string `toml:"name"`
	View     string `toml:"view"`     // Key into the view registry
	Title    string `toml:"title"`    // Title in the source language
	TitleID  string `toml:"title_id"` // Message ID of the localized title
	Props    bool   `toml:"props"`    // Pass params to the view
	Lazy     bool   `toml:"lazy"`     // Build the view on first navigation
	Redirect string `toml:"redirect"` // Redirect target instead of a view
}

// RouteTable is the ordered list of routes.
type RouteTable struct {
	Routes []RouteSpec `toml:"routes"`
}

// DefaultRoutes returns the embedded route table.
func DefaultRoutes() (RouteTable, error) {
	return ParseRoutes(defaultRoutes)
}

// LoadRoutes reads a route table file, or the embedded table when filename is empty.
func LoadRoutes(filename string) (RouteTable, error) {
	if filename == "" {
		return DefaultRoutes()
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return RouteTable{}, fmt.Errorf("config: read routes: %w", err)
	}
	return ParseRoutes(string(data))
}

// ParseRoutes decodes a route table from TOML text.
func ParseRoutes(data string) (RouteTable, error) {
	var table RouteTable
	meta, err := toml.Decode(data, &table)
	if err != nil {
		return RouteTable{}, fmt.Errorf("config: decode routes: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return RouteTable{}, fmt.Errorf("config: routes: unknown keys %v", undecoded)
	}
	if len(table.Routes) == 0 {
		return RouteTable{}, errors.New("config: routes: table is empty")
	}
	return table, nil
}

// Build turns the table into router routes, looking views up in the registry.
// Eager views are built immediately; lazy ones on first navigation.
func (t RouteTable) Build(views map[string]router.ViewFactory) ([]router.Route, error) {
	routes := make([]router.Route, 0, len(t.Routes))
	var errs []error

	for _, spec := range t.Routes {
		route := router.Route{
			Path:     spec.Path,
			Name:     spec.Name,
			Meta:     router.Meta{Title: spec.Title, TitleID: spec.TitleID},
			Props:    spec.Props,
			Redirect: spec.Redirect,
		}

		if spec.View != "" {
			factory, ok := views[spec.View]
			if !ok {
				errs = append(errs, fmt.Errorf("config: route %q: %w: %s", spec.Path, ErrUnknownView, spec.View))
				continue
			}

			if spec.Lazy {
				route.Lazy = router.Lazy(factory)
			} else {
				view, err := factory()
				if err != nil {
					errs = append(errs, fmt.Errorf("config: route %q: build view: %w", spec.Path, err))
					continue
				}
				route.View = view
			}
		}

		routes = append(routes, route)
	}

	return routes, errors.Join(errs...)
}
