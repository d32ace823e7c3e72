package config

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/talx-hub/gopher-coins/internal/model"
)

type Config struct {
	RunAddr              string        `env:"RUN_ADDRESS"           envDefault:"localhost:8080"`
	DatabaseURI          string        `env:"DATABASE_URI"          envDefault:""`
	RedisAddr            string        `env:"REDIS_ADDR"            envDefault:""`
	SecretKey            string        `env:"SECRET_KEY"            envDefault:""`
	LogLevel             string        `env:"LOG_LEVEL"             envDefault:"info"`
	CoinsConfigPath      string        `env:"COINS_CONFIG"          envDefault:""`
	PendingTTL           time.Duration `env:"PENDING_TTL"           envDefault:"87600h"`
	ReconcileInterval    time.Duration `env:"RECONCILE_INTERVAL"    envDefault:"10m"`
	ReconcileConcurrency int           `env:"RECONCILE_CONCURRENCY" envDefault:"8"`
}

type Builder struct {
	cfg *Config
	log *slog.Logger
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{
			RunAddr:              "",
			DatabaseURI:          "",
			RedisAddr:            "",
			SecretKey:            "",
			LogLevel:             "",
			CoinsConfigPath:      "",
			PendingTTL:           model.DefaultPendingTTL,
			ReconcileInterval:    0,
			ReconcileConcurrency: model.DefaultReconcileConcurrency,
		},
		log: log,
	}
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse config", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) FromFlags() *Builder {
	return b.FromFlagSet(flag.CommandLine, nil)
}

// FromFlagSet parses args (os.Args[1:] when nil) into the config.
func (b *Builder) FromFlagSet(fs *flag.FlagSet, args []string) *Builder {
	fs.StringVar(&b.cfg.RunAddr, "a", b.cfg.RunAddr, "Run address")
	fs.StringVar(&b.cfg.DatabaseURI, "d", b.cfg.DatabaseURI, "Database URI")
	fs.StringVar(&b.cfg.RedisAddr, "r", b.cfg.RedisAddr, "Redis address")
	fs.StringVar(&b.cfg.SecretKey, "k", b.cfg.SecretKey, "Secret key")
	fs.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	fs.StringVar(&b.cfg.CoinsConfigPath, "c", b.cfg.CoinsConfigPath, "Coins config YAML")
	fs.DurationVar(&b.cfg.PendingTTL, "pending-ttl", b.cfg.PendingTTL, "Pending redemption lifetime")
	fs.DurationVar(&b.cfg.ReconcileInterval, "reconcile", b.cfg.ReconcileInterval,
		"Wallet reconciliation interval, 0 disables")
	fs.IntVar(&b.cfg.ReconcileConcurrency, "reconcile-workers", b.cfg.ReconcileConcurrency,
		"Concurrent wallet checks")

	if args == nil {
		args = os.Args[1:]
	}
	if err := fs.Parse(args); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse flags", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) GetConfig() *Config {
	return b.cfg
}

func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
