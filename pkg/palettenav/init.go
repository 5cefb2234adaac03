// Package palettenav provides the navigation layer of the palette generator:
// it maps URL paths to views, keeps the page title in sync with the active
// route, and restores scroll position when moving through history.
//
// The package wires configuration, logging, the message catalog, the view
// registry and the router.Navigator together.
package palettenav

import (
	"log/slog"

	"github.com/BrandonKowalski/palettenav/pkg/palettenav/config"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/constants"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/i18n"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/internal"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/router"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/views"
)

// Options configures the navigation layer. Non-empty fields override the
// values read from the config file.
type Options struct {
	ConfigPath     string                // TOML config file, defaults only when empty
	Locale         string                // Language tag or Accept-Language value
	LogPath        string                // Full path for log file including filename (creates parent directories)
	LogLevel       string                // debug, info, warn or error
	Title          router.TitleSetter    // Receives page titles (default: an in-memory Document)
	ScrollBehavior router.ScrollBehavior // Custom landing offset (default: restore or top)
}

// App is the assembled navigation layer.
type App struct {
	Config    config.Config
	Catalog   *i18n.Catalog
	Navigator *router.Navigator
	Document  *router.Document // Set when Options.Title was nil
}

// New loads configuration, sets up logging and builds the navigator.
// The navigator is not started; call Start with the initial path.
func New(options Options) (*App, error) {
	cfg, err := config.Load(options.ConfigPath)
	if err != nil {
		return nil, NewConfigError("load_config", err)
	}
	if options.Locale != "" {
		cfg.Locale = options.Locale
	}
	if options.LogPath != "" {
		cfg.LogPath = options.LogPath
	}
	if options.LogLevel != "" {
		cfg.LogLevel = options.LogLevel
	}

	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	internal.SetRawLogLevel(cfg.LogLevel)
	logger := internal.GetLogger()

	catalog, err := i18n.New(cfg.Locale)
	if err != nil {
		return nil, NewConfigError("load_messages", err)
	}
	if cfg.MessagesFile != "" {
		if err := catalog.LoadFile(cfg.MessagesFile); err != nil {
			return nil, NewConfigError("load_messages", err)
		}
	}

	table, err := config.LoadRoutes(cfg.RoutesFile)
	if err != nil {
		return nil, NewConfigError("load_routes", err)
	}
	routes, err := table.Build(views.Registry(catalog))
	if err != nil {
		return nil, NewConfigError("build_routes", err)
	}

	app := &App{Config: cfg, Catalog: catalog}

	title := options.Title
	if title == nil {
		app.Document = &router.Document{}
		title = app.Document
	}

	// A renamed application keeps its configured name in every language.
	appNameID := ""
	if cfg.AppName == constants.DefaultAppName {
		appNameID = constants.AppNameMessageID
	}

	app.Navigator = router.New(router.Options{
		AppName:        cfg.AppName,
		AppNameID:      appNameID,
		Localizer:      catalog,
		Title:          title,
		ScrollBehavior: options.ScrollBehavior,
		Logger:         logger.With("component", "router"),
	})
	for _, route := range routes {
		app.Navigator.Register(route)
	}

	logger.Debug("Navigation configured",
		"routes", len(routes),
		"locale", catalog.Language().String(),
		"dev", constants.IsDevMode())

	return app, nil
}

// Start validates the route table and performs the initial navigation.
func (a *App) Start(path string) (*router.NavigationState, error) {
	state, err := a.Navigator.Start(path)
	if err != nil && router.IsRouteError(err) {
		return nil, NewConfigError("start", err)
	}
	return state, err
}

// Close releases the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
