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
	"testing"
	"time"

	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/config"
	cerror "github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/errors"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/sink/csvfile"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultSinks(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultFeedConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, cfg.ValidateAndAdjust())

	sinks, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer CloseAll(sinks)
	require.Len(t, sinks, 1)
	require.Equal(t, csvfile.SinkType, sinks[0].SinkType())
}

func TestNewMySQLMirrorUnreachable(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultFeedConfig()
	cfg.OutputDir = t.TempDir()
	cfg.MySQL.Enable = true
	cfg.MySQL.Host = "127.0.0.1"
	// nothing listens on port 1
	cfg.MySQL.Port = 1
	require.NoError(t, cfg.ValidateAndAdjust())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	_, err := New(ctx, cfg)
	require.Error(t, err)
	code, ok := cerror.RFCCode(err)
	require.True(t, ok)
	require.Contains(t, code, "ErrMySQLConnection")
}
