package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/varvara1412/telegram-bot/config"
	"github.com/varvara1412/telegram-bot/internal/controller"
	"github.com/varvara1412/telegram-bot/internal/dto"
	"github.com/varvara1412/telegram-bot/internal/infrastructure/tracing"
	"github.com/varvara1412/telegram-bot/internal/middleware"
	"github.com/varvara1412/telegram-bot/internal/repository"
	"github.com/varvara1412/telegram-bot/internal/service"
)

type App struct {
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(app.Config.TelegramBotToken)
	if err != nil {
		return fmt.Errorf("authenticating bot: %w", err)
	}
	cartRepo, err := app.buildCartRepository(ctx)
	if err != nil {
		return err
	}

	catalogRepo := repository.CreateCatalogRepository()
	svc := service.CreateShopService(catalogRepo, cartRepo)
	botController := controller.CreateBotController(bot, svc)

	dispatch := middleware.Logger(botController.Dispatch)
	if app.Config.TracingConfig.Enabled {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()
			dispatch = middleware.Tracing(traceProvider.Tracer("telegram-bot"), dispatch)
		}
	}

	app.startOpsServer()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := bot.GetUpdatesChan(updateConfig)

	logger.Info().Str("username", bot.Self.UserName).Msg("Bot started")

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			return app.StopServer()
		case update := <-updates:
			event, ok := dto.DecodeUpdate(update)
			if !ok {
				continue
			}
			if err := dispatch(ctx, event); err != nil {
				logger.Error().Err(err).Msg("Failed to handle update")
			}
		}
	}
}

func (app *App) buildCartRepository(ctx context.Context) (repository.CartRepository, error) {
	if app.Config.CartStore == "redis" {
		repo, err := repository.CreateRedisCartRepository(ctx, app.Config.RedisConfig.Addr)
		if err != nil {
			return nil, fmt.Errorf("connecting cart store: %w", err)
		}
		return repo, nil
	}
	return repository.CreateLocalCartRepository(), nil
}

func (app *App) startOpsServer() {
	e := echo.New()
	e.HideBanner = true

	e.Use(echoprometheus.NewMiddleware(""))
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api/v1/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	app.Server = e

	go func() {
		if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start ops server")
		}
	}()
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
