package main // Entry point package

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/dragon-align/internal/config"
	"github.com/iliyamo/dragon-align/internal/database"
	"github.com/iliyamo/dragon-align/internal/handler"
	"github.com/iliyamo/dragon-align/internal/queue"
	"github.com/iliyamo/dragon-align/internal/repository"
	"github.com/iliyamo/dragon-align/internal/router"
	"github.com/iliyamo/dragon-align/internal/service"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.NeedsMySQL() {
		var err error
		db, err = database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql: %v", err)
		}
		defer db.Close()
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("mysql: %v", err)
		}
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	store, err := stateStore(cfg, db, rdb)
	if err != nil {
		log.Fatal(err)
	}

	var events service.Events = service.NopEvents{}
	if cfg.EventsEnabled {
		events = queue.NewPublisher(cfg.RabbitURL)
		go func() {
			if err := queue.NewConsumer(cfg.RabbitURL).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("lineup-consumer: stopped: %v", err)
			}
		}()
	}

	var coaches handler.Coaches = repository.NewMemoryCoachRepo()
	if db != nil {
		coaches = repository.NewCoachRepo(db)
	}
	svc := service.NewTeamService(repository.NewTeamRepo(store), events)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	router.RegisterRoutes(e, cfg.StoreBackend)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, coaches), cfg.JWTSecret)
	router.RegisterTeams(e, handler.NewTeamHandler(svc), router.TeamOptions{
		JWTSecret: cfg.JWTSecret,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
		Redis:     rdb,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s, events=%t)", addr, cfg.Env, cfg.StoreBackend, cfg.EventsEnabled)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func stateStore(cfg config.Config, db *sql.DB, rdb *redis.Client) (repository.StateStore, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		if rdb == nil {
			return nil, errors.New("STORE_BACKEND=redis but redis is unavailable")
		}
		return repository.NewRedisStateStore(rdb, cfg.StatePrefix), nil
	case config.StoreMemory:
		log.Printf("store: using in-memory team state, data is lost on restart")
		return repository.NewMemoryStateStore(), nil
	default:
		return repository.NewMySQLStateStore(db), nil
	}
}
