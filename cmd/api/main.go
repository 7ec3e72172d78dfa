package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/admin"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/config"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/ledger"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/logger"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/metrics"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/offerings"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/relay"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/router"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	rel := relay.New(log)

	var broadcaster relay.Broadcaster
	if cfg.Redis.URL != "" {
		rb, err := relay.NewRedisBroadcaster(cfg.Redis.URL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("redis broadcaster")
		}
		defer rb.Close()
		broadcaster = rb
		log.Info().Msg("cross-module signals on redis pub/sub")
	} else {
		broadcaster = relay.NewInProcessBroadcaster()
		log.Info().Msg("cross-module signals in-process")
	}

	var recorder transactions.Recorder
	var ledgerHandler *ledger.Handler
	if cfg.Database.URL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating pgx pool")
		}
		defer pool.Close()

		rec := ledger.NewRecorder(pool, log)
		recorder = rec
		ledgerHandler = ledger.NewHandler(rec)
		log.Info().Msg("durable status ledger enabled")
	} else {
		log.Warn().Msg("DATABASE_URL not set, status ledger disabled")
	}

	store := transactions.NewStore(rel, recorder, log)
	agg := offerings.NewAggregator(store, log)

	signaler := relay.NewSignaler(store, broadcaster, log)
	signaler.Attach(rel)

	rel.SubscribePendingCount(func(n int) {
		metrics.PendingApprovals.Set(float64(n))
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORS))
	app.Use(requestLogger(log))
	app.Use(apiKeyMiddleware(cfg.APIKey))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	r := &router.Router{
		TxHandler:        transactions.NewHandler(store),
		OfferingsHandler: offerings.NewHandler(agg),
		LedgerHandler:    ledgerHandler,
		AdminHandler:     admin.NewHandler(store),
		AdminMW:          admin.RequireAdminKey(cfg.AdminKey),
		WriteLimiter:     router.RateLimitWrite(cfg.RateLimit.WriteMax, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second),
	}
	r.RegisterRoutes(app)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := ":" + cfg.Metrics.Port
		log.Info().Str("addr", addr).Msg("metrics listening")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

// apiKeyMiddleware gates /api routes behind X-API-Key when API_KEY is
// configured; health endpoints stay open. Caller identity and sessions
// are handled upstream of this service.
func apiKeyMiddleware(expected string) fiber.Handler {
	expected = strings.TrimSpace(expected)

	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		if expected == "" {
			return c.Next()
		}

		path := strings.ToLower(strings.TrimSuffix(c.Path(), "/"))
		if path == "" || path == "/" || path == "/health" || path == "/healthz" {
			return c.Next()
		}

		key := strings.TrimSpace(c.Get("X-API-Key"))
		if key == "" || key != expected {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing_api_key"})
		}
		return c.Next()
	}
}
