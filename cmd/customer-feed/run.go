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

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/config"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/feed"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/logutil"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/metrics"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/sink"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func run(parent context.Context, cfg *config.FeedConfig) error {
	if err := logutil.InitLogger(&logutil.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		return errors.Trace(err)
	}
	log.Info("customer feed config",
		zap.String("outputDir", cfg.OutputDir),
		zap.Int("recordCount", cfg.RecordCount),
		zap.Duration("interval", cfg.Interval.Duration()),
		zap.String("compression", cfg.Compression),
		zap.Bool("mysqlMirror", cfg.MySQL.Enable),
		zap.String("metricsAddr", cfg.MetricsAddr))

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	// restore the default handlers once the first signal arrives, so a
	// second one kills the process
	go func() {
		<-ctx.Done()
		stop()
	}()

	return runWithContext(ctx, cfg, os.Stdout)
}

func runWithContext(ctx context.Context, cfg *config.FeedConfig, out io.Writer) error {
	sinks, err := sink.New(ctx, cfg)
	if err != nil {
		return errors.Trace(err)
	}
	defer sink.CloseAll(sinks)

	var server *metrics.Server
	if cfg.MetricsAddr != "" {
		server, err = metrics.NewServer(cfg.MetricsAddr)
		if err != nil {
			return errors.Trace(err)
		}
	}

	loop := feed.NewLoop(cfg, sinks, feed.WithOutput(out))
	defer loop.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if server != nil {
			defer server.Shutdown()
		}
		return loop.Run(gctx)
	})
	if server != nil {
		g.Go(server.Serve)
	}
	return g.Wait()
}
