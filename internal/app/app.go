package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/humanbelnik/wordchain/internal/config"
	http_auth "github.com/humanbelnik/wordchain/internal/delivery/http/auth"
	http_channel "github.com/humanbelnik/wordchain/internal/delivery/http/channel"
	http_init "github.com/humanbelnik/wordchain/internal/delivery/http/init"
	http_lobby "github.com/humanbelnik/wordchain/internal/delivery/http/lobby"
	http_match "github.com/humanbelnik/wordchain/internal/delivery/http/match"
	http_access_middleware "github.com/humanbelnik/wordchain/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/humanbelnik/wordchain/internal/delivery/http/middleware/auth"
	http_swagger "github.com/humanbelnik/wordchain/internal/delivery/http/swagger"
	ws_channel "github.com/humanbelnik/wordchain/internal/delivery/ws/channel"
	infra_corpus "github.com/humanbelnik/wordchain/internal/infra/corpus"
	infra_dictionary "github.com/humanbelnik/wordchain/internal/infra/dictionary"
	infra_inbox "github.com/humanbelnik/wordchain/internal/infra/inbox"
	infra_memory_history "github.com/humanbelnik/wordchain/internal/infra/memory/history"
	infra_memory_verdict_cache "github.com/humanbelnik/wordchain/internal/infra/memory/verdict_cache"
	infra_pg_init "github.com/humanbelnik/wordchain/internal/infra/postgres/init"
	infra_postgres_match "github.com/humanbelnik/wordchain/internal/infra/postgres/match"
	infra_redis_ban_set "github.com/humanbelnik/wordchain/internal/infra/redis/ban_set"
	infra_redis_init "github.com/humanbelnik/wordchain/internal/infra/redis/init"
	infra_session_cache "github.com/humanbelnik/wordchain/internal/infra/redis/session"
	infra_redis_verdict_cache "github.com/humanbelnik/wordchain/internal/infra/redis/verdict_cache"
	servie_simple_auth "github.com/humanbelnik/wordchain/internal/service/auth/simple"
	service_chat "github.com/humanbelnik/wordchain/internal/service/chat"
	service_word "github.com/humanbelnik/wordchain/internal/service/word"
	usecase_lobby "github.com/humanbelnik/wordchain/internal/usecase/lobby"
	usecase_match "github.com/humanbelnik/wordchain/internal/usecase/match"
)

const cacheBackendRedis = "redis"

func Go(cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)

	var history usecase_match.HistoryRepository
	if cfg.History.Enabled {
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		pgHistory := infra_postgres_match.New(pgConn)
		if err := pgHistory.Migrate(ctx); err != nil {
			logger.Error("history migration failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		history = pgHistory
	} else {
		history = infra_memory_history.New()
	}

	var verdictCache service_word.VerdictCache
	if cfg.Words.CacheBackend == cacheBackendRedis {
		verdictCache = infra_redis_verdict_cache.New(redisConn, "verdicts:"+cfg.Words.Locale)
	} else {
		verdictCache = infra_memory_verdict_cache.New()
	}

	corpus := service_word.BuildCorpus(infra_corpus.New(cfg.Words.CorpusURL).Fetch(ctx, cfg.Words.Locale))
	wordOpts := []service_word.ServiceOption{}
	if cfg.Words.DictionaryEnabled {
		wordOpts = append(wordOpts, service_word.WithDictionary(infra_dictionary.New(cfg.Words.DictionaryURL)))
	}
	validator := service_word.New(verdictCache, corpus, wordOpts...)

	hub := ws_channel.NewHub()
	go hub.Run()
	defer hub.Stop()

	inbox := infra_inbox.New()

	matchUC := usecase_match.New(inbox, validator, hub, history,
		usecase_match.WithTiers(usecase_match.Tiers{
			LowThreshold:  cfg.Game.LowThreshold,
			HighThreshold: cfg.Game.HighThreshold,
			Normal:        cfg.Game.NormalLimit,
			Reduced:       cfg.Game.ReducedLimit,
			SuddenDeath:   cfg.Game.SuddenDeathLimit,
		}),
		usecase_match.WithCountdown(cfg.Game.Countdown),
		usecase_match.WithMaxConsecutiveErrors(cfg.Game.MaxConsecutiveErrors),
	)
	defer matchUC.Shutdown()

	lobbyUC := usecase_lobby.New(matchUC, hub,
		usecase_lobby.WithWindow(cfg.Game.LobbyWindow),
		usecase_lobby.WithBanChecker(infra_redis_ban_set.New(redisConn, "banned_players")),
		usecase_lobby.WithCleanupPeriod(20 /* terminal lobby cleanups on every _ opens */),
	)

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	authService := servie_simple_auth.New(nil, sessionCache, &cfg.Session.TTL)
	authMiddleware := http_auth_middleware.New(authService)

	chat := service_chat.New(hub, inbox)

	controllerPool := http_init.NewControllerPool(http_access_middleware.ReadOnly(cfg.HTTP.Mode))
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_auth.New(authService))
	controllerPool.Add(http_lobby.New(lobbyUC, authMiddleware))
	controllerPool.Add(http_channel.New(chat, authMiddleware))
	controllerPool.Add(http_match.New(matchUC, authMiddleware))
	controllerPool.Add(ws_channel.NewController(hub, authService, chat))

	controllerPool.Register()
	controllerPool.RunAll(ctx, cfg.HTTP.Host, cfg.HTTP.Port)
}
