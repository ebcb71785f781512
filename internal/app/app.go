package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"techblog/config"
	"techblog/internal/adapter/in/rest"
	"techblog/internal/adapter/out/cache"
	"techblog/internal/adapter/out/pubsub"
	pubsubmem "techblog/internal/adapter/out/pubsub/inmemory"
	kafkapub "techblog/internal/adapter/out/pubsub/kafka"
	memstore "techblog/internal/adapter/out/storage/inmemory"
	pgstore "techblog/internal/adapter/out/storage/postgres"
	"techblog/internal/service"
	"techblog/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg       config.Config
	srv       *http.Server
	pool      *pgxpool.Pool
	publisher *kafkapub.Publisher
}

type storages struct {
	tx       service.TxManager
	comments service.CommentStorage
	posts    service.PostStorage
	likes    service.LikeStorage
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	a := &App{cfg: cfg}

	st, err := a.initStorage(ctx)
	if err != nil {
		return nil, err
	}

	threads, err := cache.NewThreadCache(st.comments, cfg.Cache.ThreadSize)
	if err != nil {
		a.close()
		return nil, err
	}
	bus := pubsubmem.New(cfg.SSE.Buffer)

	var kafkaInv service.DisplayInvalidator
	if cfg.Kafka.Enabled() {
		a.publisher = kafkapub.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		kafkaInv = a.publisher
		log.Info("kafka display events enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		log.Warn("kafka is not configured, display events stay in-process")
	}

	// the cache goes first so that subscribers reacting to an event never read a stale thread
	invalidator := pubsub.NewFanout(threads, bus, kafkaInv)

	commentSvc := service.NewCommentService(st.tx, st.comments, st.posts, invalidator, bus).
		WithThreadReader(threads)
	likeSvc := service.NewLikeService(st.tx, st.posts, st.likes, invalidator)
	postSvc := service.NewPostService(st.tx, st.posts, invalidator)
	activitySvc := service.NewActivityService(st.posts, cfg.Calendar.WindowDays)

	api := rest.New(log, commentSvc, likeSvc, postSvc, activitySvc)

	addr := ":" + cfg.HTTP.Port
	a.srv = &http.Server{
		Addr:              addr,
		Handler:           api.Handler(cfg.HTTP.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.StorageType)
	return a, nil
}

func (a *App) initStorage(ctx context.Context) (storages, error) {
	log := logger.FromContext(ctx)

	switch a.cfg.StorageType {
	case config.StoragePostgres:
		dsn := a.cfg.Postgres.GetDSN()
		if a.cfg.Postgres.MigrationsEnabled {
			if err := pgstore.Migrate(dsn); err != nil {
				return storages{}, fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied")
		}

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return storages{}, fmt.Errorf("pgxpool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return storages{}, fmt.Errorf("ping postgres: %w", err)
		}
		a.pool = pool

		return storages{
			tx:       manager.Must(trmpgx.NewDefaultFactory(pool)),
			comments: pgstore.NewCommentStorage(pool, trmpgx.DefaultCtxGetter),
			posts:    pgstore.NewPostStorage(pool, trmpgx.DefaultCtxGetter),
			likes:    pgstore.NewLikeStorage(pool, trmpgx.DefaultCtxGetter),
		}, nil

	case config.StorageMemory, "":
		comments := memstore.NewCommentStorage()
		likes := memstore.NewLikeStorage()
		return storages{
			tx:       memstore.NewTransactor(),
			comments: comments,
			posts:    memstore.NewPostStorage(comments, likes),
			likes:    likes,
		}, nil

	default:
		return storages{}, fmt.Errorf("unknown storage type %q", a.cfg.StorageType)
	}
}

func (a *App) Handler() http.Handler {
	return a.srv.Handler
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	defer a.close()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.srv.Shutdown(shCtx); err != nil {
			log.Error("http shutdown", "error", err)
		}
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logger.FromContext(context.Background()).Warn("close kafka writer", "error", err)
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
