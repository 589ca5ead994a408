package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/config"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/database"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/router"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/pkg/logger"
)

func main() {
	cfg := config.Load()
	l := logger.New(cfg.Env)
	l.Info().Str("env", cfg.Env).Msg("starting reclamos api")

	pool, err := database.Open(context.Background(), cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect")
	}
	defer pool.Close()

	r, sched := router.New(l, pool, cfg)

	// Warm the schedule so the first back-office read is served from cache.
	// A failed fetch degrades inside Refresh; nothing fatal here.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 15*time.Second)
	sched.Refresh(warmCtx)
	warmCancel()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		l.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
