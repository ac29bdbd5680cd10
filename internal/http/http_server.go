package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/services/review"
	"gitlab.com/code-review-relay.net/internal/core/services/run"
	"gitlab.com/code-review-relay.net/internal/handlers"
	"gitlab.com/code-review-relay.net/internal/handlers/code"
)

type ServiceProvider struct {
	runService    run.IRunService
	reviewService review.IReviewService
}

func NewServiceProvider(
	runService run.IRunService,
	reviewService review.IReviewService,
) *ServiceProvider {
	return &ServiceProvider{
		runService:    runService,
		reviewService: reviewService,
	}
}

type Server struct {
	handler         http.Handler
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	if s.ServiceProvider.runService == nil || s.ServiceProvider.reviewService == nil {
		return errors.New("http server: run and review services are required")
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.ResponseWithJson(w, http.StatusOK, map[string]string{"status": "ok", "service": s.ServiceName})
	}).Methods("GET")
	code.
		NewCodeHandler(s.ServiceProvider.runService, s.ServiceProvider.reviewService, s.logger).
		RegisterRoutes(r)

	// Wrapped outside the router so preflight requests reach CORS before
	// method matching rejects them.
	mw := handlers.New(s.logger)
	s.handler = mw.RequestIDMiddleware(mw.CORSMiddleware(mw.LoggingMiddleware(r)))
	return nil
}

// Handler returns the fully wrapped router. Init must be called first.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start(errCh chan<- error) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			errCh <- err
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
