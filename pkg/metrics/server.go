// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	cerror "github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/errors"
	"github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the feed metrics on /metrics.
type Server struct {
	listener net.Listener
	server   *http.Server
}

// NewServer listens on addr and registers the feed metrics into a fresh
// registry. Listening happens here so an unusable address fails fast.
func NewServer(addr string) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	InitFeedMetrics(registry)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, cerror.WrapError(cerror.ErrMetricsServer, err, addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &Server{
		listener: listener,
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve blocks until the server is shut down.
func (s *Server) Serve() error {
	log.Info("metrics server started", zap.String("addr", s.Addr()))
	if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		return cerror.WrapError(cerror.ErrMetricsServer, err, s.Addr())
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		log.Warn("shutdown metrics server failed", zap.Error(err))
	}
}
