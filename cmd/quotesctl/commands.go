package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
)

// operator is the actor recorded in audit logs for CLI changes.
var operator = domain.NewUser("quotesctl", "", true, true)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.store.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrating: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s database\n", e.cfg.Database.Driver)

			return nil
		},
	}
}

func newUserCmd(e *env) *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	var (
		username  string
		password  string
		staff     bool
		superuser bool
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.migrated(cmd.Context()); err != nil {
				return err
			}

			u, err := e.auth().CreateUser(cmd.Context(), username, password, staff, superuser)
			if err != nil {
				return fmt.Errorf("creating user %q: %w", username, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (staff=%t, superuser=%t)\n",
				u.Username, u.IsStaff, u.IsSuperuser)

			return nil
		},
	}

	create.Flags().StringVar(&username, "username", "", "login name")
	create.Flags().StringVar(&password, "password", "", "initial password")
	create.Flags().BoolVar(&staff, "staff", false, "allow access to the admin API")
	create.Flags().BoolVar(&superuser, "superuser", false, "allow every admin operation, counters included")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	passwd := &cobra.Command{
		Use:   "passwd",
		Short: "Replace the password of an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.auth().SetPassword(cmd.Context(), username, password); err != nil {
				return fmt.Errorf("setting password of %q: %w", username, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "password changed for %s\n", username)

			return nil
		},
	}

	passwd.Flags().StringVar(&username, "username", "", "login name")
	passwd.Flags().StringVar(&password, "password", "", "new password")
	_ = passwd.MarkFlagRequired("username")
	_ = passwd.MarkFlagRequired("password")

	user.AddCommand(create, passwd)

	return user
}

func newSourceTypeCmd(e *env) *cobra.Command {
	sourceType := &cobra.Command{
		Use:   "source-type",
		Short: "Manage source types",
	}

	add := &cobra.Command{
		Use:   "add NAME...",
		Short: "Add source types, skipping names that already exist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, names []string) error {
			if err := e.migrated(cmd.Context()); err != nil {
				return err
			}

			admin := e.admin()

			for _, name := range names {
				st, err := admin.CreateSourceType(cmd.Context(), operator, name)

				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "added %s %s\n", st.Name, st.ID)
				case domain.IsConflict(err):
					fmt.Fprintf(cmd.OutOrStdout(), "exists %s\n", name)
				default:
					return fmt.Errorf("adding source type %q: %w", name, err)
				}
			}

			return nil
		},
	}

	sourceType.AddCommand(add)

	return sourceType
}

func newImportCmd(e *env) *cobra.Command {
	var (
		count       int
		sourceType  string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import random quotes from the configured remote catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.migrated(cmd.Context()); err != nil {
				return err
			}

			quoteCfg := e.cfg.Services.Quote

			clientCfg := clients.NewConfig(quoteCfg.Name, quoteCfg.BaseURL, e.cfg.Client)
			clientCfg.Logger = e.logger

			httpClient, err := clients.New(clientCfg)
			if err != nil {
				return err
			}

			if sourceType == "" {
				sourceType = quoteCfg.SourceType
			}

			importer := app.NewImportService(app.ImportServiceConfig{
				Store:       e.store,
				Remote:      acl.NewQuoteClient(acl.QuoteClientConfig{Client: httpClient, Logger: e.logger}),
				SourceType:  sourceType,
				Concurrency: concurrency,
				Metrics:     telemetry.NewQuoteMetrics(prometheus.NewRegistry()),
				Logger:      e.logger,
			})

			runID := uuid.NewString()
			ctx := middleware.ContextWithCorrelationID(cmd.Context(), runID)
			e.logger.InfoContext(ctx, "import started", slog.String("run_id", runID), slog.Int("count", count))

			result, err := importer.Import(ctx, count)
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d, skipped %d, failed %d\n",
					result.Imported, result.Skipped, result.Failed)
			}

			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of remote quotes to fetch")
	cmd.Flags().StringVar(&sourceType, "source-type", "", "source type for imported authors (default from config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "parallel remote fetches")

	return cmd
}

// admin wires the admin service the same way the server does, minus
// metrics and the live feed.
func (e *env) admin() *app.AdminService {
	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  e.store,
		Random: app.NewRandomizer(),
		Logger: e.logger,
	})

	return app.NewAdminService(app.AdminServiceConfig{Store: e.store, Quotes: quotes, Logger: e.logger})
}

func (e *env) auth() *app.AuthService {
	return app.NewAuthService(app.AuthServiceConfig{
		Users:      e.store.Users(),
		Secret:     e.cfg.Auth.SessionSecret,
		TTL:        e.cfg.Auth.SessionTTL,
		BcryptCost: e.cfg.Auth.BcryptCost,
		Logger:     e.logger,
	})
}
