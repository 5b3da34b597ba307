// Command gewisctl runs maintenance tasks against the GEWIS web database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gewis/gewisweb-api/internal/application/auth"
	"github.com/gewis/gewisweb-api/internal/application/company"
	"github.com/gewis/gewisweb-api/internal/application/validation"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/infrastructure/postgres"
	"github.com/gewis/gewisweb-api/pkg/config"
	"github.com/gewis/gewisweb-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// env is what every subcommand needs; it is built lazily so --help works without a database.
type env struct {
	cfg  *config.Config
	log  zerolog.Logger
	pool *pgxpool.Pool
}

func (e *env) open(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	e.cfg = cfg
	e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Zerolog()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	e.pool = pool
	return nil
}

func (e *env) close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:          "gewisctl",
		Short:        "Maintenance tasks for the GEWIS web API",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(e), newSweepPackagesCmd(e), newHashPasswordCmd(e))
	return root
}

func newMigrateCmd(e *env) *cobra.Command {
	var skipRiver bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the application tables and apply the River queue migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := e.open(ctx); err != nil {
				return err
			}
			defer e.close()

			if err := postgres.Migrate(ctx, e.pool); err != nil {
				return err
			}
			e.log.Info().Msg("application schema up to date")
			if skipRiver {
				return nil
			}

			migrator, err := rivermigrate.New(riverpgxv5.New(e.pool), nil)
			if err != nil {
				return fmt.Errorf("river migrator: %w", err)
			}
			res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
			if err != nil {
				return fmt.Errorf("river migrate: %w", err)
			}
			for _, v := range res.Versions {
				e.log.Info().Int("version", v.Version).Msg("applied river migration")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipRiver, "skip-river", false, "only create the application tables")
	return cmd
}

func newSweepPackagesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-packages",
		Short: "Unpublish company packages whose expiry date has passed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := e.open(ctx); err != nil {
				return err
			}
			defer e.close()

			svc := company.NewService(
				acl.Default(),
				postgres.NewCompanyRepository(e.pool),
				postgres.NewPackageRepository(e.pool),
				postgres.NewJobCategoryRepository(e.pool),
				validation.New(),
				e.cfg.App.Location(),
				e.log,
				nil,
			)
			n, err := svc.SweepExpired(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unpublished %d package(s)\n", n)
			return nil
		},
	}
}

func newHashPasswordCmd(e *env) *cobra.Command {
	var lidnr int
	cmd := &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash, or store it for a member with --lidnr",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lidnr == 0 {
				hash, err := auth.HashPassword(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hash)
				return nil
			}

			ctx := cmd.Context()
			if err := e.open(ctx); err != nil {
				return err
			}
			defer e.close()

			uc := auth.NewAuthUseCase(postgres.NewMemberRepository(e.pool), auth.JWTConfig{})
			if err := uc.SetPassword(ctx, lidnr, args[0]); err != nil {
				return fmt.Errorf("member %d: %w", lidnr, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password updated for member %d\n", lidnr)
			return nil
		},
	}
	cmd.Flags().IntVar(&lidnr, "lidnr", 0, "membership number to store the hash for")
	return cmd
}
