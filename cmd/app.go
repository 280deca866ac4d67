package cmd

import (
	"blockvault/internal/config"
	"blockvault/internal/core"
	"blockvault/internal/db"
	"blockvault/internal/ethereum"
	"blockvault/internal/http/handler"
	"blockvault/internal/http/handler/middleware"
	"blockvault/internal/http/payload"
	"blockvault/internal/http/server"
	"blockvault/internal/metrics"
	"blockvault/internal/repository"
	"blockvault/pkg/jwt"
	"context"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// app holds the wired components shared by the server and the menu.
type app struct {
	logs     *zap.SugaredLogger
	cfg      config.App
	explorer *core.Explorer
	metrics  *metrics.Metrics
	closers  []func() error
}

func newApp(ctx context.Context, logger *zap.SugaredLogger, cfg config.App) (*app, error) {
	a := &app{
		logs:    logger,
		cfg:     cfg,
		metrics: metrics.New(),
	}

	dbConn, err := db.Connect(ctx, logger, cfg.DBConnectionURL, cfg.DBConnectMaxWait)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	a.closers = append(a.closers, dbConn.Close)

	blockRepo := repository.NewBlockRepository(dbConn)
	if err := blockRepo.Migrate(); err != nil {
		a.Close()
		return nil, fmt.Errorf("migrate tables: %w", err)
	}

	var repo core.Repository = blockRepo
	if cfg.RedisAddr != "" {
		redisClient, err := repository.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.closers = append(a.closers, redisClient.Close)
		repo = repository.NewCachedBlockRepository(logger, blockRepo, redisClient, cfg.RedisCacheTTL)
		logger.Infow("block cache enabled",
			"redis_addr", cfg.RedisAddr,
			"ttl", cfg.RedisCacheTTL)
	}

	client, err := ethclient.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("dial ethereum node: %w", err)
	}
	a.closers = append(a.closers, func() error {
		client.Close()
		return nil
	})

	ethService, err := ethereum.NewEthService(client, client.Client(), cfg.Oracle())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create ethereum service: %w", err)
	}

	crawler := core.NewCrawler(logger, repo, ethService, a.metrics, core.CrawlerConfig{
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
		ProgressEvery: cfg.ProgressEvery,
	})

	a.explorer = core.NewExplorer(logger, repo, jwt.NewJWTService([]byte(cfg.JWTSecret)), ethService, crawler, core.ExplorerConfig{
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		HistoryFromBlock:  cfg.HistoryFromBlock,
		HistoryWindow:     cfg.HistoryWindow,
	})

	return a, nil
}

func (a *app) httpServer() *server.HTTPServer {
	explorerHlr := handler.NewExplorerHandler(
		a.logs,
		payload.DecodeValidator{},
		a.explorer)

	mux := http.NewServeMux()
	explorerHlr.Register(mux, middleware.NewAuthMiddleware(a.logs, a.explorer))
	mux.Handle("GET /metrics", a.metrics.Handler())

	// middleware, innermost first so the metrics middleware sees the matched pattern
	hdlr := middleware.NewMetricsMiddleware(a.metrics).Instrument(mux)
	hdlr = middleware.NewLoggingMiddleware(a.logs).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware(a.cfg.CORSOrigins).CORS(hdlr)

	return server.NewHTTP(a.logs, hdlr, a.cfg.Port)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logs.Warnw("failed to release resource", "error", err)
		}
	}
}
