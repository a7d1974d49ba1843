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
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/config"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/customer"
	cerror "github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/errors"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/util"
	dmysql "github.com/go-sql-driver/mysql"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// SinkType is the label of the MySQL mirror sink.
const SinkType = "mysql"

const defaultWriteTimeout = 30 * time.Second

const createTable = "CREATE TABLE IF NOT EXISTS `%s` (" +
	"batch_key char(14) NOT NULL," +
	"customer_id int NOT NULL," +
	"first_name varchar(128) NOT NULL DEFAULT ''," +
	"last_name varchar(128) NOT NULL DEFAULT ''," +
	"email varchar(255) NOT NULL DEFAULT ''," +
	"street varchar(255) NOT NULL DEFAULT ''," +
	"city varchar(128) NOT NULL DEFAULT ''," +
	"state varchar(128) NOT NULL DEFAULT ''," +
	"country varchar(128) NOT NULL DEFAULT ''," +
	"PRIMARY KEY (batch_key, customer_id)" +
	") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin"

// columnCount is the number of placeholders of one row: batch_key plus the
// customer columns.
var columnCount = 1 + len(customer.Header)

// Sink mirrors every batch into a MySQL table, one transaction per batch.
type Sink struct {
	db           *sql.DB
	table        string
	batchSize    int
	writeTimeout time.Duration
}

func writeTimeout(cfg *config.MySQLConfig) time.Duration {
	if d := cfg.WriteTimeout.Duration(); d > 0 {
		return d
	}
	return defaultWriteTimeout
}

// FormatDSN builds the go-sql-driver DSN of cfg.
func FormatDSN(cfg *config.MySQLConfig) string {
	dsnCfg := dmysql.NewConfig()
	dsnCfg.User = cfg.User
	dsnCfg.Passwd = cfg.Password
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dsnCfg.DBName = cfg.Database
	dsnCfg.ParseTime = true
	dsnCfg.Timeout = 10 * time.Second
	dsnCfg.ReadTimeout = writeTimeout(cfg)
	dsnCfg.WriteTimeout = writeTimeout(cfg)
	dsnCfg.Params = map[string]string{"charset": "utf8mb4"}
	return dsnCfg.FormatDSN()
}

// New connects to MySQL and prepares the mirror table.
func New(ctx context.Context, cfg *config.MySQLConfig) (*Sink, error) {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dsn := FormatDSN(cfg)
	log.Info("create mysql mirror connection",
		zap.String("dsn", util.RedactDSN(dsn)),
		zap.String("table", cfg.Table))

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, cerror.WrapError(cerror.ErrMySQLConnection, err, addr)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, cerror.WrapError(cerror.ErrMySQLConnection, err, addr)
	}
	s, err := NewWithDB(ctx, db, cfg)
	if err != nil {
		_ = db.Close()
		return nil, errors.Trace(err)
	}
	return s, nil
}

// NewWithDB creates the mirror on an opened database handle.
func NewWithDB(ctx context.Context, db *sql.DB, cfg *config.MySQLConfig) (*Sink, error) {
	timeout := writeTimeout(cfg)
	createCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if _, err := db.ExecContext(createCtx, fmt.Sprintf(createTable, cfg.Table)); err != nil {
		return nil, cerror.WrapError(cerror.ErrMySQLMirror, err, "create table "+cfg.Table)
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Sink{
		db:           db,
		table:        cfg.Table,
		batchSize:    batchSize,
		writeTimeout: timeout,
	}, nil
}

// SinkType implements sink.Sink.
func (s *Sink) SinkType() string {
	return SinkType
}

// WriteBatch inserts the batch inside one transaction. Every statement is
// bounded by the write timeout. The returned size is the payload size of the
// inserted values.
func (s *Sink) WriteBatch(ctx context.Context, batch *customer.Batch) (int64, error) {
	if batch.Len() == 0 {
		return 0, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, cerror.WrapError(cerror.ErrMySQLMirror, err, "begin transaction")
	}

	var written int64
	for start := 0; start < batch.Len(); start += s.batchSize {
		end := start + s.batchSize
		if end > batch.Len() {
			end = batch.Len()
		}
		query, args, size := s.buildInsert(batch.Key, batch.Records[start:end])
		execCtx, cancel := context.WithTimeout(ctx, s.writeTimeout)
		_, err := tx.ExecContext(execCtx, query, args...)
		cancel()
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Warn("rollback mysql mirror transaction failed", zap.Error(rbErr))
			}
			return 0, cerror.WrapError(cerror.ErrMySQLMirror, err,
				fmt.Sprintf("insert batch %s rows [%d, %d)", batch.Key, start, end))
		}
		written += size
	}
	if err := tx.Commit(); err != nil {
		return 0, cerror.WrapError(cerror.ErrMySQLMirror, err, "commit batch "+batch.Key)
	}
	return written, nil
}

func (s *Sink) buildInsert(key string, records []customer.Record) (string, []interface{}, int64) {
	var buf strings.Builder
	buf.WriteString("INSERT INTO `")
	buf.WriteString(s.table)
	buf.WriteString("` (batch_key,")
	buf.WriteString(strings.Join(customer.Header, ","))
	buf.WriteString(") VALUES ")

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", columnCount), ",") + ")"
	args := make([]interface{}, 0, len(records)*columnCount)
	var size int64
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(placeholder)
		args = append(args, key)
		args = append(args, r.Values()...)
		size += int64(len(key))
		for _, field := range r.Row() {
			size += int64(len(field))
		}
	}
	return buf.String(), args, size
}

// Close implements sink.Sink.
func (s *Sink) Close() error {
	return s.db.Close()
}
