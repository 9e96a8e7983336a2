package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/browser"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"osuapi/docs"
	"osuapi/internal/config"
	handlers "osuapi/internal/http/handler"
	"osuapi/internal/http/middleware"
	"osuapi/internal/otel"
	"osuapi/internal/service"
	"osuapi/internal/upstream"
	"osuapi/pkg/osuapi"
)

// @title osu! API Gateway
// @version 1.0
// @description Shares one osu! API v1 key behind a small JSON gateway.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if cfg.OsuAPI.Key == "" {
		log.Fatal("OSU_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, time.Local)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	upstreamMetrics, err := upstream.NewMetrics(reg)
	if err != nil {
		log.Fatalf("failed to register upstream metrics: %v", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	// Initialize the osu! API client on an instrumented transport
	client, err := osuapi.New(cfg.OsuAPI.Key, newConnector(cfg.OsuAPI, upstream.NewTransport(nil, upstreamMetrics)))
	if err != nil {
		log.Fatalf("failed to initialize osu! API client: %v", err)
	}
	defer client.Close()

	lookupSvc := service.NewLookupService(client)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	// RequestID middleware adds/propagates X-Request-ID and forwards it upstream
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(httpMetrics.Handler())
	app.Use(middleware.NoStore())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, lookupSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if cfg.OpenDocs {
		url := "http://" + cfg.AppHost + "/swagger/index.html"
		log.Printf("serving docs on %s", url)
		if err := browser.OpenURL(url); err != nil {
			log.Printf("open docs: %v", err)
		}
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (connector %s)", addr, cfg.OsuAPI.Connector)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newConnector builds the connector selected by OSU_API_CONNECTOR.
func newConnector(cfg config.OsuAPIConfig, rt http.RoundTripper) osuapi.Connector {
	opts := []osuapi.Option{
		osuapi.WithBaseURL(cfg.BaseURL),
		osuapi.WithTransport(rt),
		osuapi.WithTimeout(time.Duration(cfg.TimeoutSec) * time.Second),
		osuapi.WithUserAgent(cfg.UserAgent),
		osuapi.WithMaxInFlight(cfg.MaxInFlight),
	}
	if cfg.Connector == config.ConnectorSync {
		return osuapi.NewSyncConnector(opts...)
	}
	return osuapi.NewConcurrentConnector(opts...)
}
