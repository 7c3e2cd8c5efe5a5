package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	apphttp "contact_phone_backend/internal/http"
	"contact_phone_backend/internal/http/router"
	"contact_phone_backend/internal/phoneformat"
	"contact_phone_backend/platform/config"
	"contact_phone_backend/platform/logger"
	"contact_phone_backend/platform/phone"
	"contact_phone_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if !isDevelopment(cfg.Env) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules := cfg.GetPhoneRules()
	callingCodes := make([]string, 0, len(rules.Groups))
	for code := range rules.Groups {
		callingCodes = append(callingCodes, code)
	}
	slices.Sort(callingCodes)
	log.RulesLoaded(cfg.GetPhoneRulesSource(), callingCodes, rules.Separator, rules.MinDigits, rules.MaxDigits)

	// Shared validator instance; its "phone" tag follows the configured rules
	val := validator.New(phone.New(rules))

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			phoneformat.NewModule(cfg, val, log),
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func isDevelopment(env string) bool {
	return env == "" || env == "development"
}
