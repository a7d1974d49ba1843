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

package logutil

import (
	"os"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogMaxSize    = 300 // MB
	defaultLogMaxDays    = 0
	defaultLogMaxBackups = 0
)

// Config is the logging configuration of the feed process.
type Config struct {
	Level string
	// File is the log file path. Logs go to stderr when empty, which keeps
	// stdout for progress lines.
	File string
}

// InitLogger initializes the global pingcap logger.
func InitLogger(cfg *Config) error {
	pclogConfig := &log.Config{
		Level: cfg.Level,
		File: log.FileLogConfig{
			Filename:   cfg.File,
			MaxSize:    defaultLogMaxSize,
			MaxDays:    defaultLogMaxDays,
			MaxBackups: defaultLogMaxBackups,
		},
	}

	var (
		lg    *zap.Logger
		props *log.ZapProperties
		err   error
	)
	if cfg.File != "" {
		lg, props, err = log.InitLogger(pclogConfig)
	} else {
		stderr := zapcore.Lock(os.Stderr)
		lg, props, err = log.InitLoggerWithWriteSyncer(pclogConfig, stderr, stderr)
	}
	if err != nil {
		return errors.Annotate(err, "init logger failed")
	}
	log.ReplaceGlobals(lg, props)
	return nil
}
