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

package mysqlmirror

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/config"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/customer"
	cerror "github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newMirrorConfig(batchSize int) *config.MySQLConfig {
	cfg := config.NewDefaultMySQLConfig()
	cfg.Enable = true
	cfg.BatchSize = batchSize
	return cfg
}

func newBatch(t *testing.T, n int) *customer.Batch {
	t.Helper()
	records, err := customer.NewGenerator(5).Generate(context.Background(), n)
	require.NoError(t, err)
	createdAt := time.Date(2026, time.May, 6, 7, 8, 9, 0, time.Local)
	return &customer.Batch{Seq: 1, Key: customer.BatchKey(createdAt), CreatedAt: createdAt, Records: records}
}

func expectCreateTable(mock sqlmock.Sqlmock) {
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS `customer`")).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestFormatDSN(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultMySQLConfig()
	cfg.User = "feed"
	cfg.Password = "secret"
	cfg.Host = "db.local"
	cfg.Port = 4000
	cfg.Database = "crm"

	dsn := FormatDSN(cfg)
	require.True(t, strings.HasPrefix(dsn, "feed:secret@tcp(db.local:4000)/crm?"), dsn)
	require.Contains(t, dsn, "parseTime=true")
	require.Contains(t, dsn, "charset=utf8mb4")
	require.Contains(t, dsn, "readTimeout=30s")
	require.Contains(t, dsn, "writeTimeout=30s")
}

func TestWriteBatch(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	expectCreateTable(mock)
	s, err := NewWithDB(context.Background(), db, newMirrorConfig(2))
	require.NoError(t, err)

	batch := newBatch(t, 3)
	insert := regexp.QuoteMeta("INSERT INTO `customer` (batch_key,customer_id,first_name,last_name,email,street,city,state,country) VALUES ")
	mock.ExpectBegin()
	firstArgs := append([]interface{}{batch.Key}, batch.Records[0].Values()...)
	firstArgs = append(firstArgs, batch.Key)
	firstArgs = append(firstArgs, batch.Records[1].Values()...)
	mock.ExpectExec(insert + `\(\?(,\?){8}\),\(\?(,\?){8}\)$`).
		WithArgs(toDriverArgs(firstArgs)...).
		WillReturnResult(sqlmock.NewResult(0, 2))
	secondArgs := append([]interface{}{batch.Key}, batch.Records[2].Values()...)
	mock.ExpectExec(insert + `\(\?(,\?){8}\)$`).
		WithArgs(toDriverArgs(secondArgs)...).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	written, err := s.WriteBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Greater(t, written, int64(0))

	mock.ExpectClose()
	require.NoError(t, s.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteBatchRollback(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectCreateTable(mock)
	s, err := NewWithDB(context.Background(), db, newMirrorConfig(10))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `customer`")).
		WillReturnError(errors.New("connection failed"))
	mock.ExpectRollback()

	_, err = s.WriteBatch(context.Background(), newBatch(t, 3))
	require.Error(t, err)
	code, ok := cerror.RFCCode(err)
	require.True(t, ok)
	require.Contains(t, code, "ErrMySQLMirror")
	require.Contains(t, err.Error(), "connection failed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteBatchStalledServer(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectCreateTable(mock)
	cfg := newMirrorConfig(10)
	cfg.WriteTimeout = config.TomlDuration(100 * time.Millisecond)
	s, err := NewWithDB(context.Background(), db, cfg)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `customer`")).
		WillDelayFor(time.Hour).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectRollback()

	start := time.Now()
	_, err = s.WriteBatch(context.Background(), newBatch(t, 3))
	require.Error(t, err)
	require.Less(t, time.Since(start), 10*time.Second)
	code, ok := cerror.RFCCode(err)
	require.True(t, ok)
	require.Contains(t, code, "ErrMySQLMirror")
	require.Contains(t, err.Error(), "insert batch 20260506070809 rows [0, 3)")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteEmptyBatch(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectCreateTable(mock)
	s, err := NewWithDB(context.Background(), db, newMirrorConfig(10))
	require.NoError(t, err)

	written, err := s.WriteBatch(context.Background(), &customer.Batch{Key: "20260101000000"})
	require.NoError(t, err)
	require.Zero(t, written)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewWithDBCreateTableFailed(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS `customer`")).
		WillReturnError(errors.New("access denied"))
	_, err = NewWithDB(context.Background(), db, newMirrorConfig(10))
	require.Error(t, err)
	require.Contains(t, err.Error(), "create table customer")
	require.NoError(t, mock.ExpectationsWereMet())
}

func toDriverArgs(args []interface{}) []driver.Value {
	res := make([]driver.Value, 0, len(args))
	for _, arg := range args {
		res = append(res, valueArg{v: arg})
	}
	return res
}

// valueArg matches a driver value against the original Go value; ints are
// converted to int64 by database/sql.
type valueArg struct {
	v interface{}
}

func (a valueArg) Match(actual driver.Value) bool {
	if i, ok := a.v.(int); ok {
		return actual == int64(i)
	}
	return actual == a.v
}
