package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kasuganosora/pkmnsim/cache"
	"github.com/kasuganosora/pkmnsim/config"
	dbadapter "github.com/kasuganosora/pkmnsim/db"
	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/kasuganosora/pkmnsim/model"
	"github.com/kasuganosora/pkmnsim/plugin/hook"
	"github.com/kasuganosora/pkmnsim/replay"
	"github.com/kasuganosora/pkmnsim/scheduler"
	"github.com/kasuganosora/pkmnsim/session"
	"go.uber.org/zap"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Log.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	opts, err := cfg.Engine.Options()
	if err != nil {
		logger.Fatal("engine options", zap.Error(err))
	}
	if cfg.Engine.Log {
		opts.Sink = battle.ZapSink{Logger: logger.Named("battle")}
	}

	teams, err := config.LoadTeams(cfg.Runner.TeamFile)
	if err != nil {
		logger.Fatal("teams", zap.Error(err))
	}

	// ---- Database ----
	db, err := dbadapter.Open(cfg.Database)
	if err != nil {
		logger.Fatal("db", zap.Error(err))
	}
	if err := model.AutoMigrate(db); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}
	logger.Info("DB initialized", zap.String("mode", cfg.Database.Mode))

	archive := replay.New(db, logger)

	// ---- Cache / PubSub ----
	cacheConfig := cache.CacheConfig{
		RedisAddr:       cfg.Cache.RedisAddr,
		RedisPassword:   cfg.Cache.RedisPassword,
		RedisDB:         cfg.Cache.RedisDB,
		LocalGCInterval: cfg.Cache.LocalGCInterval,
		LocalPubSubBuf:  cfg.Cache.LocalPubSubBuf,
	}
	c, err := cache.NewCache(cacheConfig)
	if err != nil {
		logger.Fatal("cache", zap.Error(err))
	}
	defer c.Close()
	pubsub, err := cache.NewPubSub(cacheConfig)
	if err != nil {
		logger.Fatal("pubsub", zap.Error(err))
	}
	defer pubsub.Close()
	logger.Info("Cache initialized")

	// ---- Scheduler / Hooks ----
	sched := scheduler.New(logger)
	defer sched.Stop()

	hooks := hook.NewHookCenter()
	hooks.Register(hook.OnSessionExpired, 0, "runner", func(_ context.Context, _ string, data interface{}) (interface{}, error) {
		logger.Warn("battle session expired", zap.Any("id", data))
		return data, nil
	})

	mgr := session.NewManager(session.Deps{
		Cache:     c,
		PubSub:    pubsub,
		Hooks:     hooks,
		Archive:   archive,
		Scheduler: sched,
	}, session.Config{
		IdleTTL:       cfg.Session.IdleTTL,
		SweepInterval: cfg.Session.SweepInterval,
		EventTail:     cfg.Session.EventTail,
		Logger:        logger,
	})
	mgr.Start()
	defer mgr.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner{mgr: mgr, teams: teams, opts: opts, seed: cfg.Runner.Seed, maxSteps: cfg.Session.MaxSteps, logger: logger}
	played := r.run(ctx, cfg.Runner.Battles)

	tally, err := mgr.Tally(context.Background())
	if err != nil {
		logger.Warn("tally", zap.Error(err))
	}
	logger.Info("battles finished", zap.Int("played", played), zap.Any("tally", tally))

	// Stop flushes every queued replay before verification reads them back.
	archive.Stop(context.Background())
	if cfg.Runner.Verify {
		n, err := archive.VerifyAll(context.Background(), played)
		if err != nil {
			logger.Error("replay verification failed", zap.Int("verified", n), zap.Error(err))
			return
		}
		logger.Info("replays verified", zap.Int("verified", n))
	}
}
