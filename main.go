package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/go-telegram/bot"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/dskvich/topic-relay-bot/pkg/auth"
	"github.com/dskvich/topic-relay-bot/pkg/domain"
	"github.com/dskvich/topic-relay-bot/pkg/logger"
	"github.com/dskvich/topic-relay-bot/pkg/session"
	"github.com/dskvich/topic-relay-bot/pkg/telegram"
	"github.com/dskvich/topic-relay-bot/pkg/telegram/middleware"
	"github.com/dskvich/topic-relay-bot/pkg/workers"
)

type Config struct {
	TelegramBotToken      string            `env:"TELEGRAM_BOT_TOKEN,required"`
	AuthorizedUserIDs     domain.UserIDList `env:"AUTHORIZED_USER_IDS"`
	Groups                domain.GroupList  `env:"GROUPS_CONFIG"`
	LogLevel              string            `env:"LOG_LEVEL" envDefault:"INFO"`
	SessionTimeoutSeconds int               `env:"SESSION_TIMEOUT" envDefault:"3600"`
	WelcomeMessage        string            `env:"WELCOME_MESSAGE" envDefault:"👋 Hi! Create a topic with /new <TOPIC_NAME>, then send me text, photos, videos or documents and I will post them there."`
	TopicCreatedMsg       string            `env:"TOPIC_CREATED_MSG" envDefault:"✅ Topic '{topic_name}' created (thread {thread_id})"`
}

func (c Config) validate() error {
	var result *multierror.Error

	if len(c.AuthorizedUserIDs) == 0 {
		result = multierror.Append(result, errors.New("AUTHORIZED_USER_IDS must list at least one user ID"))
	}
	if len(c.Groups) == 0 {
		result = multierror.Append(result, errors.New("GROUPS_CONFIG must list at least one id:label group"))
	}

	return result.ErrorOrNil()
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment")
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parsing env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, &logger.Options{
		Level:       logger.ParseLevel(cfg.LogLevel),
		TimeFormat:  logger.DefaultOptions.TimeFormat,
		ShowSrcFile: logger.DefaultOptions.ShowSrcFile,
	})))

	workerGroup, err := setupWorkers(cfg)
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers(cfg Config) (workers.Group, error) {
	defaultGroup, _ := cfg.Groups.Default()
	slog.Info("forwarding target configured",
		"groupID", defaultGroup.ID,
		"label", defaultGroup.Label,
		"sessionTimeoutSec", cfg.SessionTimeoutSeconds,
	)

	authenticator := auth.NewAuthenticator(cfg.AuthorizedUserIDs)
	sess := session.New()
	handler := telegram.NewHandler(authenticator, sess, defaultGroup.ID, cfg.WelcomeMessage, cfg.TopicCreatedMsg)

	b, err := bot.New(cfg.TelegramBotToken,
		bot.WithMiddlewares(middleware.RequestID),
		bot.WithDefaultHandler(handler.HandleUpdate),
	)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	var workerGroup workers.Group

	worker, err := workers.NewTelegramBot(b)
	if err != nil {
		return nil, err
	}
	workerGroup = append(workerGroup, worker)

	return workerGroup, nil
}
