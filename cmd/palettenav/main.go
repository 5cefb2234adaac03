package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BrandonKowalski/palettenav/pkg/palettenav"
	"github.com/BrandonKowalski/palettenav/pkg/palettenav/constants"
)

// settings merges flags with PALETTENAV_* environment variables.
var settings = viper.New()

func main() {
	os.Exit(run())
}

func run() int {
	defer palettenav.Close()

	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

// newRootCmd builds the command tree and rebinds settings to its flags.
// Unset flags are left empty so the config file and its defaults apply.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palettenav",
		Short: "Inspect and drive the palette generator's navigation",
		Long: `palettenav resolves paths against the palette generator's route table,
shows the page title each route produces, and replays navigation sequences
including back/forward scroll restoration.

Example:
  palettenav navigate / /library@300 /palette/42 back forward`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to TOML config file")
	flags.String("locale", "", "Title language, e.g. ru or en")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default from config)")
	flags.String("log-path", "", "Log file path (stdout only when empty)")

	settings = viper.New()
	for name, env := range map[string]string{
		"config":    constants.ConfigEnvVar,
		"locale":    constants.LocaleEnvVar,
		"log-level": constants.LogLevelEnvVar,
		"log-path":  constants.LogPathEnvVar,
	} {
		_ = settings.BindPFlag(name, flags.Lookup(name))
		_ = settings.BindEnv(name, env)
	}

	rootCmd.AddCommand(routesCmd(), resolveCmd(), navigateCmd())
	return rootCmd
}

// loadApp builds and starts the navigation layer at the root path.
func loadApp() (*palettenav.App, error) {
	app, err := palettenav.New(palettenav.Options{
		ConfigPath: settings.GetString("config"),
		Locale:     settings.GetString("locale"),
		LogLevel:   settings.GetString("log-level"),
		LogPath:    settings.GetString("log-path"),
	})
	if err != nil {
		return nil, err
	}
	if _, err := app.Start("/"); err != nil {
		return nil, err
	}
	return app, nil
}
