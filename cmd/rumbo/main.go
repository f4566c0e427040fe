package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/viamex/rumbo/internal/bot"
	"github.com/viamex/rumbo/internal/config"
	"github.com/viamex/rumbo/internal/logging"
	"github.com/viamex/rumbo/internal/metrics"
	"github.com/viamex/rumbo/internal/phone"
	"github.com/viamex/rumbo/internal/session"
	"github.com/viamex/rumbo/internal/store"
	"github.com/viamex/rumbo/internal/whatsapp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("info", "console")
		fallback.Fatal().Err(err).Msg("config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	phone.SetLogger(log)
	metrics.MustRegister()

	var states store.Store
	if cfg.StateBackend == config.BackendBolt {
		boltStore, err := store.NewBolt(cfg.DataDir+"/rumbo.db", log)
		if err != nil {
			log.Fatal().Err(err).Msg("store")
		}
		defer boltStore.Close()
		states = boltStore
	} else {
		states = store.NewMemory()
	}

	waClient := whatsapp.NewClient(cfg.WAPhoneNumberID, cfg.WAAccessToken, log)
	locks := session.NewLocks()

	// Periodic cleanup of stale per-user locks to prevent memory leaks
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			locks.Sweep(1 * time.Hour)
		}
	}()

	botHandler := bot.NewHandler(waClient, states, locks, log)
	diagHandler := bot.NewDiagHandler(botHandler, waClient, log)
	webhookHandler := whatsapp.NewWebhookHandler(cfg.WAVerifyToken, botHandler.HandleMessage, log)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/webhook", webhookHandler.HandleVerify)
	r.Post("/webhook", webhookHandler.HandleIncoming)
	r.Post("/test-webhook", webhookHandler.HandleTest)

	r.Get("/send-test/{phoneNumber}", diagHandler.HandleSendTest)
	r.Get("/verify/{phoneNumber}", diagHandler.HandleVerify)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("rumbo: listening")
		log.Info().Str("verify_token", cfg.WAVerifyToken).Msg("rumbo: webhook verify token")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("rumbo: shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("shutdown")
	}
	log.Info().Msg("rumbo: stopped")
}
