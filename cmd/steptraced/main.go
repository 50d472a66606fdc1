// Command steptraced serves the steptrace HTTP API: grid sessions, search
// runs over them, the stateless search endpoint and WebSocket trace replay.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/algowalk/steptrace/internal/api"
	"github.com/algowalk/steptrace/internal/config"
	"github.com/algowalk/steptrace/internal/session"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	gin.SetMode(cfg.GinMode)

	store := session.NewStore(cfg.SessionTTL, cfg.SessionLimit, cfg.RunLimit, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: api.NewRouter(ctx, &api.RouterDeps{
			Log:         log,
			Store:       store,
			CORSOrigins: cfg.CORSOrigins,
			Version:     version,
		}),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": srv.Addr, "version": version}).Info("starting http server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		store.Janitor(gctx, cfg.JanitorInterval)

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server exited")
	}

	log.Info("server stopped")
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
