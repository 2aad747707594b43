package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/infrastructure/livefeed"
	cacherepo "github.com/riskibarqy/courtside/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/courtside/internal/infrastructure/scorebook"
	"github.com/riskibarqy/courtside/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/courtside/internal/platform/cache"
	idgen "github.com/riskibarqy/courtside/internal/platform/id"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/riskibarqy/courtside/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	teams   team.Repository
	players player.Repository
	games   game.Repository
	stats   stat.Repository
}

// CloseFunc releases the resources opened for the server. It is safe to call once.
type CloseFunc func(context.Context) error

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, CloseFunc, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var closers []func() error
	closeAll := func(context.Context) error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	repos, closeStore, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if closeStore != nil {
		closers = append(closers, closeStore)
	}

	if cfg.CacheEnabled && cfg.StoreDriver != config.StoreMemory {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.games = cacherepo.NewGameRepository(repos.games, store)
	}

	statSvc := usecase.NewStatService(repos.games, repos.players, repos.stats, logger)
	scheduleSvc := usecase.NewScheduleService(repos.teams, repos.players, repos.games, repos.stats, idgen.NewUUIDGenerator("game-"), logger)
	boxScoreSvc := usecase.NewBoxScoreService(repos.games, repos.players, repos.stats, cfg.BoxScoreWorkers, logger)
	scorekeepingSvc := usecase.NewScorekeepingService(
		repos.games,
		repos.players,
		statSvc,
		basecache.NewStore(cfg.SessionTTL),
		idgen.NewUUIDGenerator("ses-"),
		usecase.ScorekeepingConfig{StartersPerTeam: cfg.LineupStartersPerTeam},
		logger,
	)
	closers = append(closers, startSessionJanitor(scorekeepingSvc, sessionJanitorInterval(cfg.SessionTTL), logger))

	if cfg.RedisEnabled {
		client, err := openRedis(ctx, cfg)
		if err != nil {
			_ = closeAll(ctx)
			return nil, nil, err
		}
		closers = append(closers, client.Close)

		boxScores := livefeed.NewBoxScoreCache(client, cfg.BoxScoreCacheTTL)
		statSvc.SetPublisher(livefeed.NewPublisher(client, cfg.RedisStreamMaxLen))
		statSvc.SetBoxScoreCache(boxScores)
		scheduleSvc.SetBoxScoreCache(boxScores)
		boxScoreSvc.SetCache(boxScores)
		logger.Info("live feed enabled", "redis_addr", cfg.RedisAddr, "stream_max_len", cfg.RedisStreamMaxLen)
	}

	handler := httpapi.NewHandler(scheduleSvc, statSvc, boxScoreSvc, scorekeepingSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	logger.Info("app composed",
		"store_driver", cfg.StoreDriver,
		"cache_enabled", cfg.CacheEnabled,
		"redis_enabled", cfg.RedisEnabled,
	)
	return server, closeAll, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openPostgres(ctx, cfg.DBURL)
		if err != nil {
			return repositories{}, nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		return repositories{
			teams:   postgres.NewTeamRepository(db),
			players: postgres.NewPlayerRepository(db),
			games:   postgres.NewGameRepository(db),
			stats:   postgres.NewStatRepository(db),
		}, db.Close, nil

	case config.StoreScorebook:
		client, err := scorebook.NewClient(scorebook.ClientConfig{
			BaseURL:      cfg.ScorebookBaseURL,
			ReadTimeout:  cfg.ScorebookReadTimeout,
			WriteTimeout: cfg.ScorebookWriteTimeout,
			MaxRetries:   cfg.ScorebookMaxRetries,
			Logger:       logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ScorebookCircuitEnabled,
				FailureThreshold: cfg.ScorebookCircuitFailureCount,
				OpenTimeout:      cfg.ScorebookCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ScorebookCircuitHalfOpenMax,
			},
		})
		if err != nil {
			return repositories{}, nil, fmt.Errorf("build scorebook client: %w", err)
		}
		teams := scorebook.NewTeamRepository(client)
		return repositories{
			teams:   teams,
			players: scorebook.NewPlayerRepository(client),
			games:   scorebook.NewGameRepository(client, teams),
			stats:   scorebook.NewStatRepository(client),
		}, nil, nil

	default:
		teams := memory.NewTeamRepository(memory.SeedTeams())
		return repositories{
			teams:   teams,
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			games:   memory.NewGameRepository(memory.SeedGames(), teams),
			stats:   memory.NewStatRepository(),
		}, nil, nil
	}
}

func openPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func openRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
