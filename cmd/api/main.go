package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/piggyparcel/backend/modules/admin"
	"github.com/piggyparcel/backend/modules/delivery"
	"github.com/piggyparcel/backend/modules/rating"
	"github.com/piggyparcel/backend/modules/reward"
	"github.com/piggyparcel/backend/modules/travel"
	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/config"
	"github.com/piggyparcel/backend/pkg/email"
	"github.com/piggyparcel/backend/pkg/httpserver"
	"github.com/piggyparcel/backend/pkg/logger"
	"github.com/piggyparcel/backend/pkg/pg"
)

type appConfig struct {
	Log       logger.Config
	HTTP      httpserver.Config
	DB        pg.Config
	Email     email.Config
	Branding  email.Branding
	User      user.Config
	Delivery  delivery.Config
	Reward    reward.Config
	Bootstrap admin.BootstrapConfig

	ServiceName string   `env:"SERVICE_NAME" envDefault:"piggyparcel-api"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log, logger.WithService(cfg.ServiceName))
	slog.SetDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.DB, log); err != nil {
		return err
	}

	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		return err
	}
	mailer := email.NewService(email.NewRegistry(cfg.Branding), sender, log)

	userRepo := user.NewRepository(pool)
	adminRepo := admin.NewRepository(pool)
	deliveryRepo := delivery.NewRepository(pool)
	travelRepo := travel.NewRepository(pool)
	ratingRepo := rating.NewRepository(pool)
	rewardRepo := reward.NewRepository(pool)

	outcome, err := admin.Bootstrap(ctx, cfg.Bootstrap, adminRepo, mailer, log)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "super admin bootstrap finished", slog.String("outcome", string(outcome)))

	rewardSvc := reward.NewService(cfg.Reward, rewardRepo, log)
	app := application{
		cfg:      cfg,
		log:      log,
		user:     user.NewService(cfg.User, userRepo, mailer, log),
		admin:    admin.NewService(adminRepo, log),
		delivery: delivery.NewService(cfg.Delivery, deliveryRepo, userRepo, mailer, rewardSvc, log),
		travel:   travel.NewService(travelRepo, log),
		rating:   rating.NewService(ratingRepo, log),
		reward:   rewardSvc,
	}

	return httpserver.New(cfg.HTTP, log).Run(ctx, app.router())
}
