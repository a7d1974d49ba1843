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
	"fmt"
	"time"
)

const (
	// KeyLayout formats a clock reading as YYYYMMDDHHMMSS.
	KeyLayout = "20060102150405"

	fileNamePrefix = "customer_"
	fileNameExt    = ".csv"
)

// BatchKey returns the timestamp key of a batch created at t.
func BatchKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// FileName returns the batch file name for key, e.g. customer_20260101093000.csv.
// suffix is appended after the .csv extension and is empty for plain files.
func FileName(key string, suffix string) string {
	return fmt.Sprintf("%s%s%s%s", fileNamePrefix, key, fileNameExt, suffix)
}
