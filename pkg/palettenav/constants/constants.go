// Package constants defines shared constants and environment switches used
// throughout palettenav.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	LocaleEnvVar      = "PALETTENAV_LOCALE"
	LogLevelEnvVar    = "PALETTENAV_LOG_LEVEL"
	LogPathEnvVar     = "PALETTENAV_LOG_PATH"
	ConfigEnvVar      = "PALETTENAV_CONFIG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Application defaults.
const (
	DefaultAppName  = "Генератор цветов" // Shown alone when a route has no title
	DefaultLocale   = "ru"
	DefaultLogLevel = "info"
)

// Message IDs for localized titles.
const (
	AppNameMessageID = "AppName"
)

// PaletteIDParam is the parameter bound by the palette detail route.
const PaletteIDParam = "id"
