package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/humanbelnik/wordchain/internal/config"
	http_auth "github.com/humanbelnik/wordchain/internal/delivery/http/auth"
	http_init "github.com/humanbelnik/wordchain/internal/delivery/http/init"
	infra_redis_init "github.com/humanbelnik/wordchain/internal/infra/redis/init"
	infra_session_cache "github.com/humanbelnik/wordchain/internal/infra/redis/session"
	servie_simple_auth "github.com/humanbelnik/wordchain/internal/service/auth/simple"
)

// Standalone session gateway. Shares the session cache with the game server.
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	authService := servie_simple_auth.New(nil, sessionCache, &cfg.Session.TTL)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(authService))
	controllerPool.Register()
	controllerPool.RunAll(ctx, cfg.HTTP.Host, cfg.HTTP.Port)
}
