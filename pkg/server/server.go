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

// Package server runs an in-memory stand in for the reservation service so the
// client and the API suites can be exercised without the real deployment.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/nscaledev/wcg-reservation/pkg/registry"
	"github.com/nscaledev/wcg-reservation/pkg/server/handler"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type Server struct {
	// options control listening and the served revision.
	options *Options

	// registry is the service state, exposed so tests can reset it.
	registry *registry.Registry

	// gatherer is private to the server so several can coexist in one process.
	gatherer *prometheus.Registry

	// handler is the fully wired router.
	handler http.Handler
}

func New(options *Options) *Server {
	s := &Server{
		options:  options,
		registry: registry.New(),
		gatherer: prometheus.NewRegistry(),
	}

	metrics := newMetrics(s.gatherer)

	router := chi.NewRouter()
	router.Use(requestLogger)
	router.Use(metrics.middleware)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	handler.New(s.registry, options.Revision).Routes(router)

	s.handler = router

	return s
}

// Registry returns the backing state.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}

// Handler returns the router, suitable for httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until the context is cancelled, then drains in flight requests.
func (s *Server) Run(ctx context.Context) error {
	log := log.FromContext(ctx)

	server := &http.Server{
		Addr:              s.options.ListenAddress,
		ReadTimeout:       s.options.ReadTimeout,
		ReadHeaderTimeout: s.options.ReadHeaderTimeout,
		WriteTimeout:      s.options.WriteTimeout,
		Handler:           s.handler,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("listening", "address", s.options.ListenAddress, "revision", s.options.Revision)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down")

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}

		return nil
	})

	return group.Wait()
}
