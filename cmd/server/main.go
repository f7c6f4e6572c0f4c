package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/config"
	"github.com/iliyamo/cinetrack-web/internal/handler"
	"github.com/iliyamo/cinetrack-web/internal/middleware"
	"github.com/iliyamo/cinetrack-web/internal/queue"
	"github.com/iliyamo/cinetrack-web/internal/repository"
	"github.com/iliyamo/cinetrack-web/internal/router"
	"github.com/iliyamo/cinetrack-web/internal/session"
	"github.com/iliyamo/cinetrack-web/web"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	addr := pflag.String("addr", "", "listen address (default :APP_PORT)")
	pflag.Parse()

	config.LoadEnvFile(*envFile)
	cfg := config.Load()

	// Redis is optional: without it the catalog is not cached and rate
	// limiting stays in process.
	rdb, err := config.NewRedisClient(config.LoadRedisConfig())
	if err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	sessions := session.NewStore(cfg.SessionSecret, cfg.SecureCookies)
	movies := repository.NewMovieRepo(client, rdb, config.LoadCacheConfig())

	var events queue.Publisher = queue.Nop{}
	if cfg.QueueEnabled {
		events = queue.NewAMQPPublisher(cfg.RabbitURL)
	}

	renderer, err := handler.NewRenderer(web.Templates)
	if err != nil {
		log.Fatal(err)
	}
	h := handler.New(client, sessions, movies, events)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	router.RegisterRoutes(e, h, sessions, cfg.CSRFEnabled)
	router.RegisterAuth(e, h, limit)
	router.RegisterCustomer(e, h, limit)

	listen := *addr
	if listen == "" {
		listen = ":" + cfg.Port
	}
	log.Printf("listening on %s (env=%s, backend=%s)", listen, cfg.Env, client.BaseURL())

	if err := e.Start(listen); err != nil {
		log.Fatal(err)
	}
}
