package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photomarket/configs"
	"photomarket/internal/admin"
	"photomarket/internal/gallery"
	"photomarket/internal/homepage"
	"photomarket/internal/idem"
	"photomarket/internal/migrate"
	"photomarket/internal/moderation"
	"photomarket/internal/notification"
	"photomarket/internal/photographer"
	"photomarket/internal/story"
	"photomarket/internal/taxonomy"
	"photomarket/pkg/db"
	"photomarket/pkg/jwt"
	"photomarket/pkg/kafka"
	"photomarket/pkg/middleware"
	"photomarket/pkg/redis"
	"photomarket/pkg/tracing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func App(cfg *configs.Config) (http.Handler, func()) {
	store := db.Open(cfg.DSN())
	if err := migrate.AutoMigrateAll(store.DB); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	rdb := redis.New(cfg.RedisAddr())
	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	tokens := jwt.NewJWT(cfg.JWTSecret)

	notifRepo := notification.NewRepository(store.DB)
	notifService := notification.NewService(notifRepo)
	notifier := moderation.NewNotifier(notifService, writer, idem.New(rdb))
	engine := moderation.NewEngine(notifier)

	galleryRepo := gallery.NewRepository(store.DB)
	storyRepo := story.NewRepository(store.DB)
	catSuggestions := taxonomy.NewSuggestionRepository(store.DB, taxonomy.SuggestCategory)
	citySuggestions := taxonomy.NewSuggestionRepository(store.DB, taxonomy.SuggestCity)
	engine.Register(moderation.KindGallery, galleryRepo)
	engine.Register(moderation.KindStory, storyRepo)
	engine.Register(moderation.KindCategorySuggestion, catSuggestions)
	engine.Register(moderation.KindCitySuggestion, citySuggestions)

	taxonomyService := taxonomy.NewService(engine,
		taxonomy.NewCategoryRepository(store.DB),
		taxonomy.NewCityRepository(store.DB),
	)
	photographerService := photographer.NewService(photographer.NewRepository(store.DB))
	homepageService := homepage.NewService(galleryRepo, storyRepo, rdb)

	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	photographer.NewHandler(router, photographer.HandlerDeps{
		Config:  cfg,
		Service: photographerService,
		JWT:     tokens,
	})
	gallery.NewHandler(router, gallery.HandlerDeps{
		Config: cfg,
		Engine: engine,
		Repo:   galleryRepo,
		JWT:    tokens,
	})
	story.NewHandler(router, story.HandlerDeps{
		Config: cfg,
		Engine: engine,
		Repo:   storyRepo,
		JWT:    tokens,
	})
	taxonomy.NewHandler(router, taxonomy.HandlerDeps{
		Config:  cfg,
		Service: taxonomyService,
		JWT:     tokens,
	})
	notification.NewHandler(router, notification.HandlerDeps{
		Config:  cfg,
		Service: notifService,
		JWT:     tokens,
	})
	homepage.NewHandler(router, homepage.HandlerDeps{
		Config:  cfg,
		Service: homepageService,
	})
	admin.NewHandler(router, admin.HandlerDeps{
		Config:        cfg,
		Engine:        engine,
		Notifications: notifService,
		Homepage:      homepageService,
		JWT:           tokens,
	})

	stack := middleware.Chain(
		middleware.CORS,
		middleware.Logging,
	)
	cleanup := func() { _ = writer.Close() }
	return otelhttp.NewHandler(stack(router), "http.server"), cleanup
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing := tracing.Init(ctx, "photomarket-api")
	defer func() {
		c, cc := context.WithTimeout(context.Background(), 5*time.Second)
		defer cc()
		_ = shutdownTracing(c)
	}()

	cfg := configs.LoadConfig()
	handler, cleanup := App(cfg)
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		log.Printf("photomarket api listening on %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Print("shutting down...")

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
