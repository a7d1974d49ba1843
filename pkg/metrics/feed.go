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
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "customer_feed"

	// StageGenerate labels the time spent synthesizing records.
	StageGenerate = "generate"
	// StagePersist labels the time spent writing a batch to every sink.
	StagePersist = "persist"
)

var (
	// BatchCounter counts completed batches.
	BatchCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Total number of completed batches",
		}, []string{"output"})

	// RowCounter counts rows in completed batches.
	RowCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_total",
			Help:      "Total number of customer rows in completed batches",
		}, []string{"output"})

	// BytesWrittenCounter counts bytes written by each sink.
	BytesWrittenCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_written_total",
			Help:      "Total bytes written per sink",
		}, []string{"output", "sink"})

	// SinkErrorCounter counts failed batch writes per sink.
	SinkErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_errors_total",
			Help:      "Total number of failed batch writes per sink",
		}, []string{"output", "sink"})

	// BatchDurationHistogram records the duration of every batch stage.
	BatchDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Bucketed histogram of batch stage duration",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 18), // 1ms~131s
		}, []string{"output", "stage"})

	// LastBatchTimestampGauge is the unix time of the last completed batch.
	LastBatchTimestampGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_batch_timestamp_seconds",
			Help:      "Unix time of the most recent completed batch",
		}, []string{"output"})
)

// InitFeedMetrics registers all feed metrics.
func InitFeedMetrics(registry *prometheus.Registry) {
	registry.MustRegister(BatchCounter)
	registry.MustRegister(RowCounter)
	registry.MustRegister(BytesWrittenCounter)
	registry.MustRegister(SinkErrorCounter)
	registry.MustRegister(BatchDurationHistogram)
	registry.MustRegister(LastBatchTimestampGauge)
}
