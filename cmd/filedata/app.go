package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ATenderholt/rainbow-filedata/internal/settings"
	"github.com/go-chi/chi/v5"
)

type App struct {
	cfg    *settings.Config
	server *http.Server
}

func NewApp(cfg *settings.Config, mux *chi.Mux) App {
	return App{
		cfg: cfg,
		server: &http.Server{
			Addr:    cfg.Address(),
			Handler: mux,
		},
	}
}

// Start serves the invoke API for local use.
func (app App) Start() (err error) {
	logger.Infof("Serving function %s on %s", app.cfg.FunctionName, app.server.Addr)

	go func() {
		err := app.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Invoke server stopped: %v", err)
		}
	}()

	return nil
}

func (app App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return app.server.Shutdown(ctx)
}
