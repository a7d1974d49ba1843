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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	cerror "github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/errors"
	"github.com/pingcap/errors"
)

const (
	// DefaultOutputDir is the directory shared with the downstream NiFi flow.
	DefaultOutputDir = "nifi/nifi_shared_data"
	// DefaultRecordCount is the number of customer rows in every batch file.
	DefaultRecordCount = 10000
	// DefaultInterval is the idle time between two batches.
	DefaultInterval = 150 * time.Second
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

// Compression codecs supported by the batch file sink.
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// FeedConfig represents the configuration of the customer feed generator.
type FeedConfig struct {
	// OutputDir is where batch files are written. It must already exist.
	OutputDir string `toml:"output-dir" json:"output-dir"`
	// RecordCount is the number of records per batch.
	RecordCount int `toml:"record-count" json:"record-count"`
	// Interval is the idle time after a batch has been written.
	Interval TomlDuration `toml:"interval" json:"interval"`
	// Seed makes generated values reproducible. 0 picks a random seed.
	Seed uint64 `toml:"seed" json:"seed"`
	// Compression is one of none, gzip or zstd.
	Compression string `toml:"compression" json:"compression"`

	LogLevel string `toml:"log-level" json:"log-level"`
	LogFile  string `toml:"log-file" json:"log-file"`

	// MetricsAddr enables the prometheus endpoint when not empty.
	MetricsAddr string `toml:"metrics-addr" json:"metrics-addr"`

	MySQL *MySQLConfig `toml:"mysql" json:"mysql"`
}

// NewDefaultFeedConfig returns the configuration used when no file is given.
func NewDefaultFeedConfig() *FeedConfig {
	return &FeedConfig{
		OutputDir:   DefaultOutputDir,
		RecordCount: DefaultRecordCount,
		Interval:    TomlDuration(DefaultInterval),
		Compression: CompressionNone,
		LogLevel:    DefaultLogLevel,
		MySQL:       NewDefaultMySQLConfig(),
	}
}

// LoadFeedConfig loads the configuration from a TOML file on top of the defaults.
func LoadFeedConfig(path string) (*FeedConfig, error) {
	if strings.TrimSpace(path) == "" {
		return nil, cerror.ErrLoadConfig.GenWithStackByArgs(path)
	}
	if filepath.Ext(path) != ".toml" {
		return nil, cerror.ErrInvalidConfig.GenWithStackByArgs("config must be a .toml file: " + path)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, cerror.WrapError(cerror.ErrLoadConfig, err, path)
	}

	cfg := NewDefaultFeedConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, cerror.WrapError(cerror.ErrLoadConfig, err, path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, cerror.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("unknown keys %v", undecoded))
	}

	if err := cfg.ValidateAndAdjust(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// ValidateAndAdjust fills defaults and validates the configuration.
func (c *FeedConfig) ValidateAndAdjust() error {
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	c.Compression = strings.ToLower(strings.TrimSpace(c.Compression))
	if c.Compression == "" {
		c.Compression = CompressionNone
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MySQL == nil {
		c.MySQL = NewDefaultMySQLConfig()
	}

	if c.RecordCount <= 0 {
		return cerror.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("record-count must be > 0, got %d", c.RecordCount))
	}
	if c.Interval.Duration() < 0 {
		return cerror.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("interval must be >= 0, got %s", c.Interval.Duration()))
	}
	switch c.Compression {
	case CompressionNone, CompressionGzip, CompressionZstd:
	default:
		return cerror.ErrCompressionUnsupported.GenWithStackByArgs(c.Compression)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return cerror.ErrInvalidConfig.GenWithStackByArgs("unsupported log-level: " + c.LogLevel)
	}
	return errors.Trace(c.MySQL.ValidateAndAdjust())
}
