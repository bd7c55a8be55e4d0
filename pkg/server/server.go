/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server is a fake pet store reproducing the public service's wire
// contract, so the acceptance suites can run without network access.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nscaledev/petstore-acceptance/pkg/server/handler"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store/memory"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store/postgres"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type Server struct {
	// options control the server.
	options *Options

	// router serves the API.
	router *chi.Mux
}

// New creates a server backed by the given store.
func New(options *Options, s store.Store) (*Server, error) {
	if options == nil {
		options = DefaultOptions()
	}

	h, err := handler.New(s, &options.Handler)
	if err != nil {
		return nil, err
	}

	server := &Server{
		options: options,
		router:  chi.NewRouter(),
	}

	server.setupMiddleware()
	server.registerRoutes(h)

	return server, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(Logger(log.Log.WithName("http")))
	s.router.Use(middleware.Recoverer)
	s.router.Use(RateLimit(s.options.RateLimit, s.options.RateLimitBurst))

	if s.options.MaxBodySize > 0 {
		s.router.Use(middleware.RequestSize(s.options.MaxBodySize))
	}
}

func (s *Server) registerRoutes(h *handler.Handler) {
	s.router.NotFound(handler.NotFound)
	s.router.MethodNotAllowed(handler.MethodNotAllowed)

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	basePath := strings.TrimSuffix(s.options.BasePath, "/")
	if basePath == "" {
		h.Register(s.router)
		return
	}

	s.router.Route(basePath, h.Register)
}

// Handler returns the HTTP handler, for embedding in a test server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves until the context is
// cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.options.ListenAddress)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.options.ListenAddress, err)
	}

	return s.Serve(ctx, listener)
}

// Serve serves on the listener until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	logger := log.FromContext(ctx)

	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.options.ReadTimeout,
		WriteTimeout: s.options.WriteTimeout,
		IdleTimeout:  s.options.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("service listening", "address", listener.Addr().String(), "basePath", s.options.BasePath)

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("serving: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

// OpenStore returns the store selected by the options and a function that
// releases it.
func OpenStore(ctx context.Context, options *Options) (store.Store, func(), error) {
	if options.DatabaseURL == "" {
		return memory.New(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, options.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return postgres.New(pool), pool.Close, nil
}
