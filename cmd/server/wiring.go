package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/uzochukwuV/massacombat/internal/config"
	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/engine/rpgtoolkit"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/metrics"
	battleorch "github.com/uzochukwuV/massacombat/internal/orchestrators/battle"
	characterorch "github.com/uzochukwuV/massacombat/internal/orchestrators/character"
	"github.com/uzochukwuV/massacombat/internal/pkg/clock"
	"github.com/uzochukwuV/massacombat/internal/pkg/guard"
	"github.com/uzochukwuV/massacombat/internal/pkg/idgen"
	redisclient "github.com/uzochukwuV/massacombat/internal/redis"
	battlerepo "github.com/uzochukwuV/massacombat/internal/repositories/battle"
	characterrepo "github.com/uzochukwuV/massacombat/internal/repositories/character"
	equipmentrepo "github.com/uzochukwuV/massacombat/internal/repositories/equipment"
	"github.com/uzochukwuV/massacombat/internal/repositories/eventlog"
	"github.com/uzochukwuV/massacombat/internal/repositories/leaderboard"
)

// stores are the repositories for one storage backend
type stores struct {
	battles    battlerepo.Repository
	characters characterrepo.Repository
	equipment  equipmentrepo.Repository
	eventLog   eventlog.Repository
	guard      guard.Guard
	client     redisclient.Client
	closers    []func() error
}

// services is everything the transport and the simulator need
type services struct {
	battles    *battleorch.Orchestrator
	characters *characterorch.Orchestrator
	equipment  equipmentrepo.Repository
	registry   *prometheus.Registry
	bus        events.EventBus
	closers    []func() error
}

// Close releases storage connections in reverse order
func (s *services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
}

// appOptions override parts of the wiring; the zero value is production
type appOptions struct {
	clock       clock.Clock
	battleIDs   idgen.Generator
	characterID idgen.Generator
	newSource   engine.SourceFactory
	db          *gorm.DB
}

func newStores(cfg *config.Config) (*stores, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return &stores{
			battles:    battlerepo.NewInMemory(),
			characters: characterrepo.NewInMemory(),
			equipment:  equipmentrepo.NewInMemory(),
			eventLog:   eventlog.NewInMemory(),
			guard:      guard.NewLocal(),
		}, nil
	case config.StorageRedis:
		return newRedisStores(cfg)
	default:
		return nil, errors.InvalidArgumentf("unknown storage backend %q", cfg.Storage)
	}
}

func newRedisStores(cfg *config.Config) (*stores, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password:        cfg.RedisPassword,
		DB:              cfg.RedisDB,
		PoolSize:        cfg.RedisPoolSize,
		MinIdleConns:    cfg.RedisMinIdleConns,
		ConnMaxIdleTime: cfg.RedisConnIdleLimit,
		MaxRetries:      cfg.RedisMaxRetries,
		UseTLS:          cfg.RedisTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	s := &stores{client: client, closers: []func() error{client.Close}}
	if s.battles, err = battlerepo.NewRedis(&battlerepo.RedisConfig{Client: client}); err != nil {
		return nil, err
	}
	if s.characters, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client}); err != nil {
		return nil, err
	}
	if s.equipment, err = equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{Client: client}); err != nil {
		return nil, err
	}
	if s.eventLog, err = eventlog.NewRedis(&eventlog.RedisConfig{Client: client}); err != nil {
		return nil, err
	}
	g, err := guard.NewRedis(&guard.RedisConfig{Client: client, TTL: cfg.GuardTTL})
	if err != nil {
		return nil, err
	}
	s.guard = g

	return s, nil
}

// newServices wires storage, the rules engine and both orchestrators
func newServices(ctx context.Context, cfg *config.Config, cat *config.Catalog, opts appOptions) (*services, error) {
	st, err := newStores(cfg)
	if err != nil {
		return nil, err
	}
	svc := &services{equipment: st.equipment, closers: st.closers}

	db := opts.db
	if db == nil {
		db, err = leaderboard.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			svc.Close()
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			svc.Close()
			return nil, errors.Wrap(err, "failed to access sqlite handle")
		}
		svc.closers = append(svc.closers, sqlDB.Close)
	}
	board, err := leaderboard.New(&leaderboard.Config{DB: db})
	if err != nil {
		svc.Close()
		return nil, err
	}

	if err := seedEquipment(ctx, st.equipment, cat.Equipment); err != nil {
		svc.Close()
		return nil, err
	}

	eng, err := engine.New(&engine.Config{
		WildcardChance: cfg.WildcardChance,
		WildcardWindow: cfg.WildcardWindow,
		MaxTurns:       cfg.MaxTurns,
		NewSource:      opts.newSource,
	})
	if err != nil {
		svc.Close()
		return nil, errors.Wrap(err, "failed to create engine")
	}

	svc.bus = events.NewBus()
	subscribeLifecycleLogs(svc.bus)
	publisher, err := rpgtoolkit.NewPublisher(&rpgtoolkit.PublisherConfig{EventBus: svc.bus})
	if err != nil {
		svc.Close()
		return nil, err
	}

	svc.registry = prometheus.NewRegistry()
	m := metrics.NewMetrics(svc.registry)

	battleIDs := opts.battleIDs
	if battleIDs == nil {
		battleIDs = idgen.NewUUID("battle")
	}
	characterIDs := opts.characterID
	if characterIDs == nil {
		characterIDs = idgen.NewUUID("char")
	}

	svc.battles, err = battleorch.New(&battleorch.Config{
		Engine:          eng,
		BattleRepo:      st.battles,
		CharacterRepo:   st.characters,
		Stats:           battleorch.NewStatsProvider(st.characters, st.equipment),
		EventLog:        st.eventLog,
		Leaderboard:     board,
		Guard:           st.guard,
		IDGenerator:     battleIDs,
		Clock:           opts.clock,
		Publisher:       publisher,
		Metrics:         m,
		AllowSelfBattle: cfg.AllowSelfBattle,
	})
	if err != nil {
		svc.Close()
		return nil, errors.Wrap(err, "failed to create battle orchestrator")
	}

	svc.characters, err = characterorch.New(&characterorch.Config{
		CharacterRepo: st.characters,
		EquipmentRepo: st.equipment,
		Classes:       cat.Classes,
		Guard:         st.guard,
		IDGenerator:   characterIDs,
		Clock:         opts.clock,
	})
	if err != nil {
		svc.Close()
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}

	return svc, nil
}

// seedEquipment loads the catalog items, keeping any already stored
func seedEquipment(ctx context.Context, repo equipmentrepo.Repository, items []*entities.Equipment) error {
	for _, item := range items {
		_, err := repo.Create(ctx, equipmentrepo.CreateInput{Equipment: item})
		if err != nil && !errors.IsAlreadyExists(err) {
			return errors.Wrapf(err, "failed to seed equipment %s", item.ID)
		}
	}
	slog.Debug("equipment catalog seeded", "items", len(items))
	return nil
}

func subscribeLifecycleLogs(bus events.EventBus) {
	for _, eventType := range []string{rpgtoolkit.EventBattleCompleted, rpgtoolkit.EventBattleFinalized} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			slog.Info("battle lifecycle",
				"event", e.Type(),
				"battle_id", e.Source().GetID())
			return nil
		})
	}
}
