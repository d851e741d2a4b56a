package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dayspan/dayspan/internal/autostart"
	"github.com/dayspan/dayspan/internal/cli"
	"github.com/dayspan/dayspan/internal/cli/settings"
	"github.com/dayspan/dayspan/internal/cli/system"
	"github.com/dayspan/dayspan/internal/constants"
	"github.com/dayspan/dayspan/internal/keyring"
	"github.com/dayspan/dayspan/internal/logger"
	"github.com/dayspan/dayspan/internal/shell"
	"github.com/dayspan/dayspan/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging to stderr."`
	Config  string `help:"Config file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables, .pgpass, or the OS keyring instead." type:"string" default:"~/.config/dayspan/dayspan.db"`

	Init     system.InitCmd       `cmd:"" help:"Initialize dayspan storage."`
	Widget   system.WidgetCmd     `cmd:"" help:"Run the day-progress widget." default:"1"`
	Settings settings.SettingsCmd `cmd:"" help:"View and edit widget settings."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Upgrade persisted settings to the current schema."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Debugger system.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage the stored database connection string."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal day-progress widget driven by a weekly schedule"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := resolveConfig(CLI.Config)

	var store storage.Provider
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") || strings.Contains(config, "host=") {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Store the full connection string in the OS keyring ('dayspan keyring set'),")
			fmt.Fprintln(os.Stderr, "       or keep the password in the environment or a .pgpass file.")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(config)
	} else if strings.HasSuffix(config, ".json") {
		store = storage.NewJSONStore(expandHome(config))
	} else {
		store = storage.NewSQLiteStore(config)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:     store,
		Autostart: autostart.NewXDGManager(),
		Bus:       shell.NewBus(),
		Debug:     CLI.Debug,
	}

	// The init command opens the store itself.
	if selected := ctx.Selected(); selected != nil && selected.Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig prefers an explicit flag value, then a keyring-stored
// connection string, then the default path.
func resolveConfig(flag string) string {
	if flag != constants.DefaultConfigPath {
		return flag
	}
	if connStr, err := keyring.GetConnectionString(); err == nil {
		return connStr
	} else if !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return flag
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
