package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/pickline/consensus/internal/archive"
	"github.com/pickline/consensus/internal/feeds"
	"github.com/pickline/consensus/internal/handlers"
	"github.com/pickline/consensus/internal/pipeline"
	"github.com/pickline/consensus/internal/schedule"
	"github.com/pickline/consensus/internal/ws"
	"github.com/pickline/consensus/pkg/contracts"
)

func main() {
	fmt.Println("=== Pickline Consensus API ===")

	config := loadConfig()
	engineCfg := config.Engine

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Feed sources
	// Sources are wired in name order so the combined batch is deterministic
	sources := []contracts.FeedSource{}
	names := make([]string, 0, len(config.FeedURLs))
	for name := range config.FeedURLs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sources = append(sources, feeds.NewHTTPSource(name, config.FeedURLs[name]))
		fmt.Printf("✓ Feed source configured: %s\n", name)
	}
	if config.FeedStoreDSN != "" {
		pgSource, err := feeds.NewPostgresSource("feed-store", config.FeedStoreDSN, config.FeedLookback)
		if err != nil {
			fmt.Printf("❌ Failed to connect to feed store: %v\n", err)
			os.Exit(1)
		}
		defer pgSource.Close()
		sources = append(sources, pgSource)
		fmt.Println("✓ Connected to feed store")
	}
	if len(sources) == 0 {
		fmt.Println("❌ No feed sources configured (set FEED_URLS or FEED_STORE_DSN)")
		os.Exit(1)
	}

	// Schedule provider, optionally cached in Redis
	var provider contracts.ScheduleProvider = schedule.NewESPNProvider()
	if config.RedisURL != "" {
		redisOpts, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			fmt.Printf("❌ Failed to parse Redis URL: %v\n", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Connected to Redis")

		loc, _ := time.LoadLocation(engineCfg.ReportingTimezone)
		provider = schedule.NewCachedProvider(provider, redisClient, config.ScheduleCacheTTL, loc)
	}

	filter := schedule.NewFilter(provider, engineCfg)

	// Live-update hub
	hub := ws.NewHub()
	go hub.Run(ctx)

	// Pipeline
	p := pipeline.New(sources, filter, engineCfg, nil).WithBroadcaster(hub)

	if config.ArchiveDSN != "" {
		writer, err := archive.NewSnapshotWriter(config.ArchiveDSN)
		if err != nil {
			fmt.Printf("❌ Failed to connect to archive: %v\n", err)
			os.Exit(1)
		}
		defer writer.Close()
		p.WithArchiver(writer)
		fmt.Println("✓ Connected to archive")
	}

	handler := handlers.NewHandler(p, engineCfg, hub)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handler.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(30 * time.Second))

			r.Get("/consensus", handler.GetConsensus)
			r.Get("/consensus/top", handler.GetTopConsensus)
			r.Get("/consensus/by-sport", handler.GetConsensusBySport)
			r.Get("/consensus/fade", handler.GetFadeThePublic)
			r.Get("/daily-bets", handler.GetDailyBets)
			r.Get("/picks", handler.GetPicks)
			r.Get("/picks/rejected", handler.GetRejected)
		})

		// Long-lived subscription; the request timeout would sever it
		r.Get("/consensus/live", handler.LiveConsensus)
	})

	srv := &http.Server{
		Addr:         config.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ Consensus API listening on %s\n", config.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		fmt.Printf("❌ Server error: %v\n", err)
		os.Exit(1)

	case sig := <-shutdown:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("⚠️  Graceful shutdown failed: %v\n", err)
			if err := srv.Close(); err != nil {
				fmt.Printf("❌ Could not stop server: %v\n", err)
			}
		}
	}

	fmt.Println("✓ Shutdown complete")
}

// Config holds application configuration
type Config struct {
	Port             string
	FeedURLs         map[string]string
	FeedStoreDSN     string
	FeedLookback     time.Duration
	RedisURL         string
	ArchiveDSN       string
	ScheduleCacheTTL time.Duration
	CORSOrigins      []string
	Engine           contracts.EngineConfig
}

// loadConfig loads configuration from environment variables
func loadConfig() Config {
	engine := contracts.DefaultEngineConfig()
	engine.MinCappers = getEnvInt("MIN_CAPPERS", engine.MinCappers)
	engine.TopLimit = getEnvInt("TOP_LIMIT", engine.TopLimit)
	engine.LineTolerance = getEnvFloat("LINE_TOLERANCE", engine.LineTolerance)
	engine.ReportingTimezone = getEnv("REPORTING_TZ", engine.ReportingTimezone)
	if getEnv("SCHEDULE_POLICY", "fail-open") == "fail-closed" {
		engine.SchedulePolicy = contracts.FailClosed
	}

	return Config{
		Port:             getEnv("CONSENSUS_API_PORT", ":8090"),
		FeedURLs:         parseFeedURLs(getEnv("FEED_URLS", "")),
		FeedStoreDSN:     getEnv("FEED_STORE_DSN", ""),
		FeedLookback:     getEnvDuration("FEED_LOOKBACK", 24*time.Hour),
		RedisURL:         getEnv("REDIS_URL", ""),
		ArchiveDSN:       getEnv("ARCHIVE_DSN", ""),
		ScheduleCacheTTL: getEnvDuration("SCHEDULE_CACHE_TTL", 5*time.Minute),
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://localhost:3001",
		},
		Engine: engine,
	}
}

// parseFeedURLs parses "name1=url1,name2=url2"
func parseFeedURLs(raw string) map[string]string {
	urls := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			urls[parts[0]] = parts[1]
		}
	}
	return urls
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
