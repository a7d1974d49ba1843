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
	"strings"
	"time"

	cerror "github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/errors"
)

const (
	defaultMySQLHost      = "127.0.0.1"
	defaultMySQLPort      = 3306
	defaultMySQLUser      = "root"
	defaultMySQLDatabase  = "test"
	defaultMySQLTable     = "customer"
	defaultMySQLBatchSize = 500

	defaultMySQLWriteTimeout = 30 * time.Second
)

// MySQLConfig configures the optional MySQL mirror of every batch.
type MySQLConfig struct {
	Enable   bool   `toml:"enable" json:"enable"`
	Host     string `toml:"host" json:"host"`
	Port     int    `toml:"port" json:"port"`
	User     string `toml:"user" json:"user"`
	Password string `toml:"password" json:"-"`
	Database string `toml:"database" json:"database"`
	Table    string `toml:"table" json:"table"`
	// BatchSize is the number of rows carried by one INSERT statement.
	BatchSize int `toml:"batch-size" json:"batch-size"`
	// WriteTimeout bounds every statement of a batch and the network reads
	// and writes of the connection.
	WriteTimeout TomlDuration `toml:"write-timeout" json:"write-timeout"`
}

// NewDefaultMySQLConfig returns a disabled mirror configuration.
func NewDefaultMySQLConfig() *MySQLConfig {
	return &MySQLConfig{
		Enable:    false,
		Host:      defaultMySQLHost,
		Port:      defaultMySQLPort,
		User:      defaultMySQLUser,
		Database:  defaultMySQLDatabase,
		Table:     defaultMySQLTable,
		BatchSize: defaultMySQLBatchSize,

		WriteTimeout: TomlDuration(defaultMySQLWriteTimeout),
	}
}

// ValidateAndAdjust validates the mirror configuration. Nothing is checked
// when the mirror is disabled.
func (c *MySQLConfig) ValidateAndAdjust() error {
	if !c.Enable {
		return nil
	}
	c.Host = strings.TrimSpace(c.Host)
	c.Database = strings.TrimSpace(c.Database)
	c.Table = strings.TrimSpace(c.Table)
	if c.Host == "" {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("mysql.host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("mysql.port is out of range")
	}
	if c.Database == "" {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("mysql.database is required")
	}
	if c.Table == "" || strings.ContainsAny(c.Table, "`.") {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("mysql.table must be a plain table name")
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultMySQLBatchSize
	}
	if c.WriteTimeout < 0 {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("mysql.write-timeout must not be negative")
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = TomlDuration(defaultMySQLWriteTimeout)
	}
	return nil
}
