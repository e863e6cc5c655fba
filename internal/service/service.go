package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alex-emery/frontdoor/internal/config"
	"github.com/alex-emery/frontdoor/internal/website"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
	"moul.io/chizap"
)

type Service struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func New(logger *zap.Logger, cfg config.Config) *Service {
	return &Service{
		httpServer: &http.Server{
			Addr:    cfg.Addr(),
			Handler: NewRouter(logger, cfg),
		},
		logger: logger,
	}
}

// NewRouter serves the index page on / and the static assets below /static/.
// Anything else is left to chi's default not found and method not allowed handling.
func NewRouter(logger *zap.Logger, cfg config.Config) chi.Router {
	ws := website.New(logger, cfg.TemplatesDir)

	r := chi.NewRouter()
	r.Use(chizap.New(logger, &chizap.Opts{
		WithReferer:   true,
		WithUserAgent: true,
	}))
	r.Use(recoverer(logger))

	r.Get("/", ws.Index)
	r.Get("/static/*", website.Static("/static/", cfg.StaticDir).ServeHTTP)

	return r
}

func (svc *Service) Handler() http.Handler {
	return svc.httpServer.Handler
}

func (svc *Service) Start() error {
	svc.logger.Info("Server listening", zap.String("addr", svc.httpServer.Addr))
	if err := svc.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	return nil
}

func (svc *Service) Stop(ctx context.Context) error {
	return svc.httpServer.Shutdown(ctx)
}
