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

package customer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateSequentialIDs(t *testing.T) {
	t.Parallel()

	g := NewGenerator(1)
	records, err := g.Generate(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, records, 25)
	for i, r := range records {
		require.Equal(t, i, r.CustomerID)
		row := r.Row()
		require.Len(t, row, len(Header))
		for col, v := range row {
			require.NotEmpty(t, v, "record %d column %s", i, Header[col])
		}
	}
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	t.Parallel()

	a, err := NewGenerator(7).Generate(context.Background(), 10)
	require.NoError(t, err)
	b, err := NewGenerator(7).Generate(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerateCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	records, err := NewGenerator(1).Generate(ctx, 10)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, records)
}

func TestGenerateZero(t *testing.T) {
	t.Parallel()

	records, err := NewGenerator(1).Generate(context.Background(), 0)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestHeader(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		"customer_id", "first_name", "last_name", "email",
		"street", "city", "state", "country",
	}, Header)
	require.Len(t, Record{}.Values(), len(Header))
}

func TestFileName(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.March, 4, 5, 6, 7, 0, time.Local)
	key := BatchKey(ts)
	require.Equal(t, "20260304050607", key)
	require.Equal(t, "customer_20260304050607.csv", FileName(key, ""))
	require.Equal(t, "customer_20260304050607.csv.gz", FileName(key, ".gz"))
}
