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
	"time"

	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/config"
	"github.com/spf13/cobra"
)

const (
	flagConfig      = "config"
	flagOutputDir   = "output-dir"
	flagRecordCount = "record-count"
	flagInterval    = "interval"
	flagSeed        = "seed"
	flagCompression = "compression"
	flagLogLevel    = "log-level"
	flagLogFile     = "log-file"
	flagMetricsAddr = "metrics-addr"
)

type options struct {
	configPath  string
	outputDir   string
	recordCount int
	interval    time.Duration
	seed        uint64
	compression string
	logLevel    string
	logFile     string
	metricsAddr string
}

func newOptions() *options {
	return &options{}
}

func (o *options) addFlags(cmd *cobra.Command) {
	defaults := config.NewDefaultFeedConfig()
	flags := cmd.Flags()
	flags.StringVarP(&o.configPath, flagConfig, "c", "", "configuration file path (optional)")
	flags.StringVar(&o.outputDir, flagOutputDir, defaults.OutputDir, "existing directory batch files are written to")
	flags.IntVar(&o.recordCount, flagRecordCount, defaults.RecordCount, "number of customer records per batch")
	flags.DurationVar(&o.interval, flagInterval, defaults.Interval.Duration(), "idle time after each batch")
	flags.Uint64Var(&o.seed, flagSeed, 0, "fake data seed, 0 picks a random seed")
	flags.StringVar(&o.compression, flagCompression, defaults.Compression, "batch file compression: none, gzip or zstd")
	flags.StringVar(&o.logLevel, flagLogLevel, defaults.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&o.logFile, flagLogFile, "", "log file path, logs go to stderr when empty")
	flags.StringVar(&o.metricsAddr, flagMetricsAddr, "", "address serving prometheus metrics on /metrics, disabled when empty")
}

// complete loads the configuration file, if any, and applies the flags that
// were explicitly set on top of it. It returns the exit code to use on error.
func (o *options) complete(cmd *cobra.Command) (*config.FeedConfig, int, error) {
	cfg := config.NewDefaultFeedConfig()
	if o.configPath != "" {
		loaded, err := config.LoadFeedConfig(o.configPath)
		if err != nil {
			return nil, ExitCodeDecodeConfigFailed, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed(flagOutputDir) {
		cfg.OutputDir = o.outputDir
	}
	if flags.Changed(flagRecordCount) {
		cfg.RecordCount = o.recordCount
	}
	if flags.Changed(flagInterval) {
		cfg.Interval = config.TomlDuration(o.interval)
	}
	if flags.Changed(flagSeed) {
		cfg.Seed = o.seed
	}
	if flags.Changed(flagCompression) {
		cfg.Compression = o.compression
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed(flagLogFile) {
		cfg.LogFile = o.logFile
	}
	if flags.Changed(flagMetricsAddr) {
		cfg.MetricsAddr = o.metricsAddr
	}

	if err := cfg.ValidateAndAdjust(); err != nil {
		return nil, ExitCodeInvalidConfig, err
	}
	return cfg, 0, nil
}
