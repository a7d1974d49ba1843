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
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NewStatistics creates a statistics bound to one output directory.
func NewStatistics(output string) *Statistics {
	return &Statistics{
		output: output,

		metricBatchCnt:     BatchCounter.WithLabelValues(output),
		metricRowCnt:       RowCounter.WithLabelValues(output),
		metricLastBatchTs:  LastBatchTimestampGauge.WithLabelValues(output),
		metricGenerateHis:  BatchDurationHistogram.WithLabelValues(output, StageGenerate),
		metricPersistHis:   BatchDurationHistogram.WithLabelValues(output, StagePersist),
		registeredSinkName: make(map[string]struct{}),
	}
}

// Statistics maintains the metrics of one feed loop.
// Note: All methods of Statistics should be thread-safe.
type Statistics struct {
	output string

	metricBatchCnt    prometheus.Counter
	metricRowCnt      prometheus.Counter
	metricLastBatchTs prometheus.Gauge
	metricGenerateHis prometheus.Observer
	metricPersistHis  prometheus.Observer

	mu                 sync.Mutex
	registeredSinkName map[string]struct{}
}

// RecordGenerate records the duration of a generate stage.
func (s *Statistics) RecordGenerate(executor func() error) error {
	start := time.Now()
	if err := executor(); err != nil {
		return err
	}
	s.metricGenerateHis.Observe(time.Since(start).Seconds())
	return nil
}

// RecordPersist records the duration of a persist stage.
func (s *Statistics) RecordPersist(executor func() error) error {
	start := time.Now()
	if err := executor(); err != nil {
		return err
	}
	s.metricPersistHis.Observe(time.Since(start).Seconds())
	return nil
}

// RecordSinkWrite stats sink writers which return (writtenBytes, error).
func (s *Statistics) RecordSinkWrite(sink string, executor func() (int64, error)) error {
	s.mu.Lock()
	s.registeredSinkName[sink] = struct{}{}
	s.mu.Unlock()

	written, err := executor()
	if err != nil {
		SinkErrorCounter.WithLabelValues(s.output, sink).Inc()
		return err
	}
	BytesWrittenCounter.WithLabelValues(s.output, sink).Add(float64(written))
	return nil
}

// RecordBatch records a completed batch.
func (s *Statistics) RecordBatch(rows int, createdAt time.Time) {
	s.metricBatchCnt.Inc()
	s.metricRowCnt.Add(float64(rows))
	s.metricLastBatchTs.Set(float64(createdAt.Unix()))
}

// Close release the label values owned by this statistics.
func (s *Statistics) Close() {
	BatchCounter.DeleteLabelValues(s.output)
	RowCounter.DeleteLabelValues(s.output)
	LastBatchTimestampGauge.DeleteLabelValues(s.output)
	BatchDurationHistogram.DeleteLabelValues(s.output, StageGenerate)
	BatchDurationHistogram.DeleteLabelValues(s.output, StagePersist)

	s.mu.Lock()
	defer s.mu.Unlock()
	for sink := range s.registeredSinkName {
		BytesWrittenCounter.DeleteLabelValues(s.output, sink)
		SinkErrorCounter.DeleteLabelValues(s.output, sink)
	}
}
