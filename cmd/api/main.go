package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/activity"
	"github.com/gewis/gewisweb-api/internal/application/auth"
	"github.com/gewis/gewisweb-api/internal/application/company"
	"github.com/gewis/gewisweb-api/internal/application/organ"
	"github.com/gewis/gewisweb-api/internal/application/ports"
	"github.com/gewis/gewisweb-api/internal/application/validation"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/infrastructure/captcha"
	"github.com/gewis/gewisweb-api/internal/infrastructure/feed"
	"github.com/gewis/gewisweb-api/internal/infrastructure/jobs"
	"github.com/gewis/gewisweb-api/internal/infrastructure/mail"
	infrapdf "github.com/gewis/gewisweb-api/internal/infrastructure/pdf"
	"github.com/gewis/gewisweb-api/internal/infrastructure/postgres"
	httpRouter "github.com/gewis/gewisweb-api/internal/interfaces/http"
	"github.com/gewis/gewisweb-api/pkg/config"
	"github.com/gewis/gewisweb-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	var hooks []zerolog.Hook
	rollbarHook := logger.NewRollbarHook(logger.RollbarConfig{
		Token:   cfg.Rollbar.Token,
		Env:     cfg.App.Env,
		Version: cfg.App.Version,
	})
	if rollbarHook != nil {
		hooks = append(hooks, rollbarHook)
		defer logger.Flush()
	}
	appLog := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Hooks: hooks,
	})
	log := appLog.Zerolog()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, captchas will fail")
	}

	policy := acl.Default()
	validator := validation.New()
	loc := cfg.App.Location()

	memberRepo := postgres.NewMemberRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	signupRepo := postgres.NewSignupRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	categoryRepo := postgres.NewJobCategoryRepository(pool)
	decisionRepo := postgres.NewDecisionRepository(pool)

	var notifier ports.Notifier = mail.NewLogNotifier(log)
	if cfg.Mail.SendGridAPIKey != "" {
		notifier = mail.NewSendGridNotifier(cfg.Mail.SendGridAPIKey, cfg.Mail.From, cfg.Mail.ActivityCreatedTo, log)
	}

	activitySvc := activity.NewService(activity.Deps{
		ACL:        policy,
		Activities: activityRepo,
		Signups:    signupRepo,
		Members:    memberRepo,
		Tx:         postgres.NewTxRunner(pool),
		Validator:  validator,
		Notifier:   notifier,
		Captcha:    captcha.NewRedisStore(rdb, cfg.Captcha.TTL),
		Exporter:   infrapdf.NewSignupSheetGenerator(),
		Feed:       feed.NewAtomRenderer(),
		Location:   loc,
		Logger:     log,
	})
	companySvc := company.NewService(policy, companyRepo, packageRepo, categoryRepo, validator, loc, log, time.Now)
	organSvc := organ.NewService(decisionRepo, memberRepo, time.Now)
	authUC := auth.NewAuthUseCase(memberRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	riverClient, err := newRiverClient(pool, cfg.River, companySvc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create river client")
	}
	if err := riverClient.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start river client")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GEWIS web API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Activities:    httpRouter.NewActivityHandler(activitySvc, cfg.HTTP.BaseURL, log),
		Signups:       httpRouter.NewSignupHandler(activitySvc, log),
		Kiosk:         httpRouter.NewKioskHandler(activitySvc, cfg.Kiosk.CacheTTL, log),
		Companies:     httpRouter.NewCompanyHandler(companySvc, log),
		Organs:        httpRouter.NewOrganHandler(organSvc, log),
		Auth:          httpRouter.NewAuthHandler(authUC, validator, log),
		JWTSecret:     cfg.JWT.Secret,
		DefaultLocale: defaultLocale(cfg.App.DefaultLocale),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown HTTP server")
	}
	if err := riverClient.Stop(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error().Err(err).Msg("stop river client")
	}

	log.Info().Msg("stopped")
}

func newRiverClient(pool *pgxpool.Pool, cfg config.RiverConfig, sweeper jobs.PackageSweeper, log zerolog.Logger) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	jobs.Register(workers, sweeper, log)
	return river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: cfg.MaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: jobs.PeriodicJobs(cfg.PackageSweepInterval),
	})
}

func defaultLocale(s string) i18n.Locale {
	l, err := i18n.ParseLocale(s)
	if err != nil {
		return i18n.Dutch
	}
	return l
}
