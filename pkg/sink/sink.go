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

package sink

import (
	"context"

	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/config"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/customer"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/sink/csvfile"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/sink/mysqlmirror"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Sink persists generated batches.
type Sink interface {
	// SinkType returns the metric and log label of the sink.
	SinkType() string
	// WriteBatch persists the batch and returns the number of bytes written.
	WriteBatch(ctx context.Context, batch *customer.Batch) (int64, error)
	Close() error
}

var (
	_ Sink = (*csvfile.Sink)(nil)
	_ Sink = (*mysqlmirror.Sink)(nil)
)

// New builds the sinks described by cfg. The batch file sink is always the
// first one; the MySQL mirror follows when enabled.
func New(ctx context.Context, cfg *config.FeedConfig) ([]Sink, error) {
	fileSink, err := csvfile.New(cfg.OutputDir, cfg.Compression)
	if err != nil {
		return nil, errors.Trace(err)
	}
	sinks := []Sink{fileSink}

	if cfg.MySQL.Enable {
		mirror, err := mysqlmirror.New(ctx, cfg.MySQL)
		if err != nil {
			CloseAll(sinks)
			return nil, errors.Trace(err)
		}
		sinks = append(sinks, mirror)
	}
	return sinks, nil
}

// CloseAll closes every sink and logs the failures.
func CloseAll(sinks []Sink) {
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			log.Warn("close sink failed", zap.String("sink", s.SinkType()), zap.Error(err))
		}
	}
}
