package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketecho/config"
	"marketecho/gemini"
	"marketecho/handlers"
	"marketecho/metrics"
	"marketecho/middleware"
	"marketecho/services"

	"github.com/apex/log"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	EndPointRoot        = "/"
	EndPointHealth      = "/health"
	EndPointVersion     = "/version"
	EndPointMetrics     = "/metrics"
	EndPointBrands      = "/api/brands"
	EndPointSuggestions = "/api/suggestions"
	EndPointOverview    = "/api/dashboard/overview"
)

type app struct {
	cfg         *config.Config
	dataset     *services.DatasetService
	suggestions *services.SuggestionService
	overview    *services.OverviewService
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	cfg := config.Load()

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}
	switch {
	case cfg.GinMode != "":
		gin.SetMode(cfg.GinMode)
	case cfg.LogLevel == "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register()

	a := newApp(cfg)
	if cfg.DatasetPreload {
		a.preload()
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: setupRouter(a),
	}

	go func() {
		log.Infof("Starting MarketEcho API on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

func newApp(cfg *config.Config) *app {
	dataset := services.NewDatasetService(cfg.DatasetPath)
	client := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	if client.Enabled() {
		log.Infof("Suggestions generated with Gemini model %s", client.Model())
	} else {
		log.Info("GEMINI_API_KEY not set, suggestions will use the static fallback")
	}

	return &app{
		cfg:         cfg,
		dataset:     dataset,
		suggestions: services.NewSuggestionService(client, cfg.FallbackDelay),
		overview:    services.NewOverviewService(dataset),
	}
}

// preload loads the dataset before serving so the load cost and any failure
// show up at startup instead of on the first request.
func (a *app) preload() {
	if err := a.dataset.Preload(); err != nil {
		log.Warnf("Serving without brand data: %v", err)
	}
}

func setupRouter(a *app) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{EndPointMetrics})))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(a.cfg.AllowedOrigins))

	serviceHandler := handlers.NewServiceHandler(a.dataset)
	brandHandler := handlers.NewBrandHandler(a.dataset, a.cfg.LookupSampleSize)
	suggestionHandler := handlers.NewSuggestionHandler(a.suggestions)
	dashboardHandler := handlers.NewDashboardHandler(a.overview)

	router.GET(EndPointRoot, serviceHandler.RootHandler)
	router.GET(EndPointHealth, serviceHandler.HealthHandler)
	router.GET(EndPointVersion, serviceHandler.VersionHandler)
	router.GET(EndPointMetrics, gin.WrapH(promhttp.Handler()))

	router.GET(EndPointBrands, brandHandler.GetBrand)
	router.GET(EndPointOverview, dashboardHandler.OverviewHandler)
	router.POST(EndPointSuggestions,
		middleware.RateLimitMiddleware(a.cfg.SuggestionsRateLimitPerMinute, time.Minute),
		suggestionHandler.CreateSuggestions,
	)

	return router
}
