package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	bookSlotHandler "prenota/internal/api/handlers/book_slot"
	getNamesHandler "prenota/internal/api/handlers/get_names"
	getSlotsHandler "prenota/internal/api/handlers/get_slots"
	"prenota/internal/api/middleware"
	"prenota/internal/config"
	"prenota/internal/infra/cache"
	"prenota/internal/infra/ledger"
	bookSlotUC "prenota/internal/usecase/book_slot"
	getNamesUC "prenota/internal/usecase/get_names"
	getSlotsUC "prenota/internal/usecase/get_slots"
	"prenota/pkg/logger"
	"prenota/pkg/metrics"
	"prenota/pkg/ratelim"
)

func main() {
	// .env wins only where the config reads the environment
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting prenota...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к Google Sheets: credentials из окружения приоритетнее файла
	ctx := context.Background()
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if creds := os.Getenv("GOOGLE_CREDENTIALS"); creds != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
		log.Info("Using Google credentials from GOOGLE_CREDENTIALS")
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
		log.Info("Using Google credentials file %s", cfg.Sheets.CredentialsFile)
	}

	sheetsService, err := sheets.NewService(ctx, opts...)
	if err != nil {
		log.Fatal("Failed to initialize Google Sheets client: %v", err)
	}

	ledgerClient := ledger.NewClient(sheetsService, ledger.Options{
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		SlotSheet:     cfg.Sheets.SlotSheet,
		SlotRange:     cfg.Sheets.SlotRange,
		NamesRange:    cfg.Sheets.NamesRange,
		BookingsRange: cfg.Sheets.BookingsRange,
	}, ledgerMetrics(metricsCollector), log)
	log.Info("Ledger client initialized (spreadsheet=%s)", cfg.Sheets.SpreadsheetID)

	slotCache := cache.New(ledgerClient, log)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(slotCache, ledgerClient, bookingMetrics(metricsCollector), log)
	getSlotsUseCase := getSlotsUC.NewUseCase(slotCache, log)
	getNamesUseCase := getNamesUC.NewUseCase(ledgerClient, log)

	// Инициализируем handlers
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	getNames := getNamesHandler.NewHandler(getNamesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := ratelim.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		api.Use(limiter.Limit)
		log.Info("API rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/reload", getSlots.HandleReload).Methods(http.MethodPost)
	api.HandleFunc("/names", getNames.Handle).Methods(http.MethodGet)
	api.HandleFunc("/book", bookSlot.Handle).Methods(http.MethodPost)

	// Статика фронтенда
	if cfg.Server.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir)))
		log.Info("Serving static files from %s", cfg.Server.StaticDir)
	}

	corsOptions := cors.Options{AllowedMethods: []string{http.MethodGet, http.MethodPost}}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.CORS.AllowedOrigins
	}
	handler := cors.New(corsOptions).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Прогреваем кэш слотов в фоне; при неудаче сработает ленивая загрузка
	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := slotCache.Load(warmCtx); err != nil {
			log.Warn("Slot cache warm-up failed, will retry lazily: %v", err)
		}
	}()

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// ledgerMetrics adapts the optional collector for the ledger client;
// a typed nil inside a non-nil interface would defeat its nil checks
func ledgerMetrics(m *metrics.Metrics) ledger.MetricsCollector {
	if m == nil {
		return nil
	}
	return m
}

func bookingMetrics(m *metrics.Metrics) bookSlotUC.BookingMetrics {
	if m == nil {
		return nil
	}
	return m
}
