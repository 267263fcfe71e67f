package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/itseyans/ruric/internal/ai"
	"github.com/itseyans/ruric/internal/cache"
	"github.com/itseyans/ruric/internal/config"
	"github.com/itseyans/ruric/internal/model"
	mysqlClient "github.com/itseyans/ruric/internal/platform/mysql"
	rabbitmqClient "github.com/itseyans/ruric/internal/platform/rabbitmq"
	redisClient "github.com/itseyans/ruric/internal/platform/redis"
	"github.com/itseyans/ruric/internal/responder"
	"github.com/itseyans/ruric/internal/worker"
)

type App struct {
	Config       *config.Config
	MySQL        *gorm.DB
	Redis        *redis.Client
	MQConn       *amqp.Connection
	Responder    *responder.Responder
	Notifier     *rabbitmqClient.NotifyPublisher
	Unread       *cache.UnreadCache
	NotifyWorker *worker.NotifyWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.User{},
		&model.ChatMessage{},
		&model.Assignment{},
		&model.Attendance{},
		&model.Product{},
		&model.Order{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL, cfg.RabbitMQ.NotifyQueue)
	if err != nil {
		return nil, err
	}

	autoResponder, err := buildResponder(cfg)
	if err != nil {
		return nil, err
	}

	notifier := rabbitmqClient.NewNotifyPublisher(mqConn, cfg.RabbitMQ.NotifyQueue)
	unread := cache.NewUnreadCache(redisCli)
	notifyWorker := worker.NewNotifyWorker(mqConn, unread, cfg.RabbitMQ.NotifyQueue)
	if err := notifyWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start notify worker failed: %w", err)
	}

	return &App{
		Config:       cfg,
		MySQL:        mysqlDB,
		Redis:        redisCli,
		MQConn:       mqConn,
		Responder:    autoResponder,
		Notifier:     notifier,
		Unread:       unread,
		NotifyWorker: notifyWorker,
		StartedAt:    time.Now(),
	}, nil
}

// buildResponder loads the canned table and, when an LLM endpoint is
// configured, attaches the generative fallback.
func buildResponder(cfg *config.Config) (*responder.Responder, error) {
	table, err := responder.LoadTable(cfg.Responder.FAQPath)
	if err != nil {
		return nil, fmt.Errorf("load faq table failed: %w", err)
	}
	log.Printf("faq table loaded: %d entries", table.Len())

	var generator responder.Generator
	if cfg.LLM.APIKey != "" && cfg.LLM.BaseURL != "" && cfg.LLM.Model != "" {
		generator = ai.NewFallbackGenerator(ai.NewOpenAICompatibleClient(), ai.ChatConfig{
			BaseURL:   cfg.LLM.BaseURL,
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			MaxTokens: cfg.LLM.MaxTokens,
		})
	}

	return responder.New(table, generator), nil
}

func (a *App) Close() error {
	var closeErr error
	if a.NotifyWorker != nil {
		a.NotifyWorker.Close()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
