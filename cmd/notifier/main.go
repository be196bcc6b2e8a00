package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"photomarket/configs"
	"photomarket/internal/notification"
	"photomarket/pkg/jwt"
	"photomarket/pkg/kafka"
	"photomarket/pkg/middleware"
	"photomarket/pkg/redis"
	"photomarket/pkg/res"
	"photomarket/pkg/tracing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// The notifier consumes moderation notification events and fans them out
// to the Redis recent-cache and live WebSocket subscribers. The durable
// rows were already written by the API before the events were published.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing := tracing.Init(ctx, "photomarket-notifier")
	defer func() {
		c, cc := context.WithTimeout(context.Background(), 5*time.Second)
		defer cc()
		_ = shutdownTracing(c)
	}()

	cfg := configs.LoadConfig()
	rdb := redis.New(cfg.RedisAddr())
	tokens := jwt.NewJWT(cfg.JWTSecret)

	cache := notification.NewCache(rdb)
	hub := notification.NewHub()

	consumer := kafka.NewConsumer(
		cfg.KafkaBrokers,
		cfg.KafkaGroupID,
		cfg.KafkaTopic,
		notification.ConsumerHandler(cache, hub),
	)
	defer func() { _ = consumer.Close() }()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/notifications/stream", hub.Handler(tokens))
	auth := middleware.Auth(tokens)
	mux.Handle("/notifications/recent", auth(recentHandler(cache)))

	srv := &http.Server{
		Addr:              cfg.NotifierPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		log.Printf("notifier listening on %s", cfg.NotifierPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	go func() {
		if err := consumer.Run(ctx); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Print("shutting down...")

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
	cancel()
}

// recentHandler serves the caller's cached recent notifications without
// touching Postgres.
func recentHandler(cache *notification.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		actor, err := middleware.ActorFromCtx(r)
		if err != nil {
			res.Error(w, "auth required", http.StatusUnauthorized)
			return
		}
		limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
		items, err := cache.Recent(r.Context(), actor.UserID, limit)
		if err != nil {
			res.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Json(w, map[string]any{"notifications": items}, http.StatusOK)
	}
}
