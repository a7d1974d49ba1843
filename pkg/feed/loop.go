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

package feed

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/config"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/customer"
	cerror "github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/errors"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/metrics"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/sink"
	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const noBatchKey = "none"

// Summary describes what a loop has produced so far.
type Summary struct {
	RunID   string
	Batches uint64
	// LastKey is the timestamp key of the most recent completed batch.
	LastKey string
}

// Loop generates a batch, persists it to every sink, idles, and repeats
// until its context is cancelled or a sink fails.
type Loop struct {
	runID       uuid.UUID
	recordCount int
	interval    time.Duration

	generator *customer.Generator
	sinks     []sink.Sink
	stats     *metrics.Statistics

	out   io.Writer
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	batches atomic.Uint64
	lastKey atomic.String

	finishOnce sync.Once
}

// Option customizes a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock used for batch keys.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

// WithSleeper replaces the idle wait between two batches.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(l *Loop) { l.sleep = sleep }
}

// WithOutput replaces the writer receiving progress and summary lines.
func WithOutput(out io.Writer) Option {
	return func(l *Loop) { l.out = out }
}

// NewLoop creates a loop writing to the given sinks. The first sink is
// expected to be the batch file sink.
func NewLoop(cfg *config.FeedConfig, sinks []sink.Sink, opts ...Option) *Loop {
	l := &Loop{
		runID:       uuid.New(),
		recordCount: cfg.RecordCount,
		interval:    cfg.Interval.Duration(),
		generator:   customer.NewGenerator(cfg.Seed),
		sinks:       sinks,
		stats:       metrics.NewStatistics(cfg.OutputDir),
		out:         os.Stdout,
		now:         time.Now,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run drives the loop. Cancellation of ctx is a normal stop and yields a
// nil error, unless ctx was cancelled with another cause, which is then
// returned. Any other error stops the loop and is returned. The final
// summary is printed exactly once, whatever the exit path.
func (l *Loop) Run(ctx context.Context) (err error) {
	log.Info("customer feed started",
		zap.Stringer("runID", l.runID),
		zap.Int("recordCount", l.recordCount),
		zap.Duration("interval", l.interval),
		zap.Int("sinkCount", len(l.sinks)))

	defer func() {
		if r := recover(); r != nil {
			l.finish(errors.Errorf("customer feed panicked: %v", r))
			panic(r)
		}
		// a context cancelled with a non-cancel cause is a fault elsewhere,
		// not an operator stop
		if cerror.IsCancelled(err) {
			if cause := context.Cause(ctx); cause != nil && !cerror.IsCancelled(cause) {
				err = cause
			}
		}
		l.finish(err)
		if cerror.IsCancelled(err) {
			err = nil
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.RunOnce(ctx); err != nil {
			return err
		}
		if err := l.sleep(ctx, l.interval); err != nil {
			return err
		}
	}
}

// RunOnce generates and persists a single batch.
func (l *Loop) RunOnce(ctx context.Context) error {
	createdAt := l.now()
	key := customer.BatchKey(createdAt)
	seq := l.batches.Load() + 1

	fmt.Fprintf(l.out, "Generating fake data, Batch #: %d at %s.\n", seq, key)

	var records []customer.Record
	err := l.stats.RecordGenerate(func() error {
		var err error
		records, err = l.generator.Generate(ctx, l.recordCount)
		return err
	})
	if err != nil {
		return errors.Trace(err)
	}

	batch := &customer.Batch{
		Seq:       seq,
		Key:       key,
		CreatedAt: createdAt,
		Records:   records,
	}
	if err := l.stats.RecordPersist(func() error {
		return l.persist(ctx, batch)
	}); err != nil {
		return errors.Trace(err)
	}

	l.batches.Inc()
	l.lastKey.Store(key)
	l.stats.RecordBatch(batch.Len(), createdAt)
	log.Info("batch generated",
		zap.Stringer("runID", l.runID),
		zap.Uint64("batch", seq),
		zap.String("key", key),
		zap.Int("rows", batch.Len()))
	return nil
}

// persist writes the batch to every sink in order. A write in progress is
// not cancelled by ctx.
func (l *Loop) persist(ctx context.Context, batch *customer.Batch) error {
	writeCtx := context.WithoutCancel(ctx)
	for _, s := range l.sinks {
		err := l.stats.RecordSinkWrite(s.SinkType(), func() (int64, error) {
			return s.WriteBatch(writeCtx, batch)
		})
		if err != nil {
			log.Error("write batch failed",
				zap.Stringer("runID", l.runID),
				zap.String("sink", s.SinkType()),
				zap.String("key", batch.Key),
				zap.Error(err))
			return errors.Trace(err)
		}
	}
	return nil
}

// Summary returns the current progress of the loop. It is safe to call
// while the loop runs.
func (l *Loop) Summary() Summary {
	return Summary{
		RunID:   l.runID.String(),
		Batches: l.batches.Load(),
		LastKey: l.lastKey.Load(),
	}
}

func (l *Loop) finish(err error) {
	l.finishOnce.Do(func() {
		summary := l.Summary()
		lastKey := summary.LastKey
		if lastKey == "" {
			lastKey = noBatchKey
		}
		if cerror.IsCancelled(err) {
			fmt.Fprintln(l.out, "Generation stopped manually.")
		}
		fmt.Fprintf(l.out, "%d batches generated, final file time: %s.\n", summary.Batches, lastKey)

		fields := []zap.Field{
			zap.Stringer("runID", l.runID),
			zap.Uint64("batches", summary.Batches),
			zap.String("lastKey", lastKey),
		}
		if err != nil && !cerror.IsCancelled(err) {
			log.Error("customer feed stopped", append(fields, zap.Error(err))...)
			return
		}
		log.Info("customer feed stopped", fields...)
	})
}

// Close releases the metrics owned by the loop.
func (l *Loop) Close() {
	l.stats.Close()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
