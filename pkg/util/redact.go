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

package util

import (
	dmysql "github.com/go-sql-driver/mysql"
)

const redactedPassword = "xxxxx"

// RedactDSN hides the password of a MySQL DSN so it can be logged. An
// unparsable DSN is fully hidden.
func RedactDSN(dsn string) string {
	cfg, err := dmysql.ParseDSN(dsn)
	if err != nil {
		return "?"
	}
	if cfg.Passwd != "" {
		cfg.Passwd = redactedPassword
	}
	return cfg.FormatDSN()
}
