package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talx-hub/gopher-coins/internal/api/handlers"
	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/model/order"
	rdm "github.com/talx-hub/gopher-coins/internal/model/redemption"
	"github.com/talx-hub/gopher-coins/internal/model/wallet"
	"github.com/talx-hub/gopher-coins/internal/repo"
	"github.com/talx-hub/gopher-coins/internal/repo/memstore"
	"github.com/talx-hub/gopher-coins/internal/repo/pending"
	"github.com/talx-hub/gopher-coins/internal/router"
	"github.com/talx-hub/gopher-coins/internal/service/coinsconfig"
	"github.com/talx-hub/gopher-coins/internal/service/config"
	"github.com/talx-hub/gopher-coins/internal/service/dbmanager"
	"github.com/talx-hub/gopher-coins/internal/service/events"
	"github.com/talx-hub/gopher-coins/internal/service/history"
	"github.com/talx-hub/gopher-coins/internal/service/reconciler"
	"github.com/talx-hub/gopher-coins/internal/service/redemption"
	"github.com/talx-hub/gopher-coins/internal/utils/keylock"
	"github.com/talx-hub/gopher-coins/internal/utils/logger"
)

type coinStore interface {
	CreateEarning(ctx context.Context, ev *coin.Event, limit int) (bool, error)
	CountEvents(ctx context.Context, userID string, kind coin.EventKind) (int, error)
	CountEventsByKind(ctx context.Context, userID string) (map[coin.EventKind]int, error)
	ListEvents(ctx context.Context, userID string) ([]coin.Event, error)
	ListActiveEvents(ctx context.Context, userID string) ([]coin.Event, error)
	Spend(ctx context.Context, s *coin.Spending) error
	ExpireEvents(ctx context.Context, userID string, ids []int64) (int64, error)
	GetWallet(ctx context.Context, userID string) (wallet.Wallet, error)
	ListWalletUsers(ctx context.Context) ([]string, error)
}

type orderStore interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	FindUserIDByOrderID(ctx context.Context, orderID string) (string, error)
	ListRedeemedOrders(ctx context.Context, userID string) ([]order.Order, error)
}

type pendingStore interface {
	Get(ctx context.Context, sessionID string) (rdm.Pending, bool, error)
	Set(ctx context.Context, sessionID string, p rdm.Pending) error
	Delete(ctx context.Context, sessionID string) error
}

// storage is the set of stores the service runs on: Postgres and Redis when
// configured, memory otherwise.
type storage struct {
	coins   coinStore
	users   handlers.UserRepository
	orders  orderStore
	pending pendingStore
	db      *dbmanager.DBManager
	redis   redis.UniversalClient
}

func (s *storage) CheckHealth(ctx context.Context) error {
	var dbErr, redisErr error
	if s.db != nil {
		dbErr = s.db.CheckHealth(ctx)
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisErr = fmt.Errorf("redis is unreachable: %w", err)
		}
	}
	return errors.Join(dbErr, redisErr)
}

func (s *storage) Close(ctx context.Context, log *slog.Logger) {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.LogAttrs(ctx, slog.LevelWarn, "failed to close redis client",
				slog.Any(model.KeyLoggerError, err))
		}
	}
	if s.db != nil {
		s.db.Close()
	}
}

func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*storage, error) {
	s := &storage{}
	if cfg.DatabaseURI == "" {
		log.LogAttrs(ctx, slog.LevelWarn, "DATABASE_URI is empty, records are kept in memory")
		mem := memstore.New()
		s.coins, s.users, s.orders = mem, mem, mem
	} else {
		const connectTO = 5 * time.Second
		connCtx, cancel := context.WithTimeout(ctx, connectTO)
		defer cancel()

		s.db = dbmanager.New(cfg.DatabaseURI, log).
			Connect(connCtx).
			ApplyMigrations(connCtx).
			Ping(connCtx)
		if err := s.db.Error(); err != nil {
			s.db.Close()
			return nil, fmt.Errorf("db connection error: %w", err)
		}
		pool, err := s.db.GetPool(connCtx)
		if err != nil {
			s.db.Close()
			return nil, fmt.Errorf("failed to get DB pool: %w", err)
		}
		s.coins = repo.NewCoinRepository(pool, log)
		s.users = repo.NewUserRepository(pool, log)
		s.orders = repo.NewOrderRepository(pool, log)
	}

	if cfg.RedisAddr == "" {
		s.pending = pending.NewMemoryStore(time.Now)
		return s, nil
	}
	s.redis = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{cfg.RedisAddr}})
	if err := s.redis.Ping(ctx).Err(); err != nil {
		s.Close(ctx, log)
		return nil, fmt.Errorf("redis connection error: %w", err)
	}
	s.pending = pending.NewRedisStore(s.redis, cfg.PendingTTL)
	return s, nil
}

type app struct {
	server     *http.Server
	reconciler *reconciler.Reconciler
	storage    *storage
}

func initService(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	rewards, err := coinsconfig.Load(cfg.CoinsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load coins config: %w", err)
	}

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	locks := keylock.New()
	eventEngine := events.New(st.coins, rewards, locks)
	redemptionEngine := redemption.New(st.coins, st.pending, st.orders, rewards, locks, cfg.PendingTTL)
	projector := history.New(st.coins, st.orders)

	rr := router.New(cfg, log)
	rr.SetRouter(&struct {
		*handlers.AuthHandler
		*handlers.CoinsHandler
		*handlers.CartHandler
		*handlers.OrderHandler
		*handlers.HealthHandler
	}{
		AuthHandler: handlers.NewAuthHandler(st.users, eventEngine, log, cfg.SecretKey),
		CoinsHandler: handlers.NewCoinsHandler(st.users, eventEngine, redemptionEngine,
			st.coins, projector, log),
		CartHandler:   handlers.NewCartHandler(redemptionEngine, log),
		OrderHandler:  handlers.NewOrderHandler(st.orders, redemptionEngine, eventEngine, log),
		HealthHandler: handlers.NewHealthHandler(st, log),
	})

	return &app{
		server: &http.Server{
			Addr:              cfg.RunAddr,
			Handler:           rr.GetRouter(),
			ReadHeaderTimeout: 5 * time.Second,
			BaseContext:       func(_ net.Listener) context.Context { return context.WithoutCancel(ctx) },
		},
		reconciler: reconciler.New(st.coins, redemptionEngine, locks,
			cfg.ReconcileInterval, cfg.ReconcileConcurrency),
		storage: st,
	}, nil
}

func RunServer() {
	cfg := config.NewBuilder(slog.Default()).
		FromEnv().
		FromFlags().
		GetConfig()
	log := logger.New(cfg.SlogLevel())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx, log)

	a, err := initService(ctx, cfg, log)
	if err != nil {
		log.LogAttrs(ctx,
			slog.LevelError,
			"failed to init service",
			slog.Any(model.KeyLoggerError, err),
		)
		return
	}
	defer a.storage.Close(context.Background(), log)

	go a.reconciler.Run(ctx)

	serveErr := make(chan error, 1)
	go func() {
		log.LogAttrs(ctx, slog.LevelInfo, "server started", slog.String("addr", cfg.RunAddr))
		serveErr <- a.server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.LogAttrs(ctx,
				slog.LevelError,
				"listen and serve error",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	case <-ctx.Done():
		const shutdownTO = 10 * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTO)
		defer cancel()
		if err = a.server.Shutdown(shutdownCtx); err != nil {
			log.LogAttrs(shutdownCtx,
				slog.LevelError,
				"graceful shutdown failed",
				slog.Any(model.KeyLoggerError, err),
			)
		}
		log.LogAttrs(shutdownCtx, slog.LevelInfo, "server stopped")
	}
}
