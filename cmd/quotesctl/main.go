// Package main is quotesctl, the operator CLI for the quotebook database:
// schema migration, account creation, source type seeding and catalog import.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotebook/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs one command line and always releases the database.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root, e := newRootCmd()
	defer func() { _ = e.close() }()

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

// env is what every subcommand runs against. It is filled in by the root
// command's PersistentPreRunE.
type env struct {
	profile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
	store  *storage.Store
}

func newRootCmd() (*cobra.Command, *env) {
	e := &env{}

	root := &cobra.Command{
		Use:          "quotesctl",
		Short:        "Manage the quotebook database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			return e.open(cmd.Context(), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return e.close()
		},
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	root.PersistentFlags().StringVar(&e.profile, "profile", profile, "config profile loaded from configs/<profile>.yaml")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newMigrateCmd(e),
		newUserCmd(e),
		newSourceTypeCmd(e),
		newImportCmd(e),
	)

	return root, e
}

func (e *env) open(ctx context.Context, stderr io.Writer) error {
	cfg, err := config.Load(e.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.Log.Level
	if e.verbose {
		level = "debug"
	}

	e.cfg = cfg
	e.logger = logging.NewWithWriter(&logging.Config{
		Level:   level,
		Format:  "pretty",
		Service: "quotesctl",
		Version: cfg.App.Version,
	}, stderr)

	e.store, err = storage.Open(ctx, storage.NewConfig(cfg.Database, e.logger))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	return nil
}

func (e *env) close() error {
	if e.store == nil {
		return nil
	}

	err := e.store.Close()
	e.store = nil

	return err
}

// migrated runs the schema migration unless the config turned it off.
// Commands that write call it so a fresh database works out of the box.
func (e *env) migrated(ctx context.Context) error {
	if !e.cfg.Database.AutoMigrate {
		return nil
	}

	return e.store.Migrate(ctx)
}
