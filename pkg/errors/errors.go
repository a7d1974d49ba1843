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

package errors

import (
	"github.com/pingcap/errors"
)

// errors
var (
	// config related errors
	ErrLoadConfig = errors.Normalize(
		"load config file %s failed",
		errors.RFCCodeText("CFEED:ErrLoadConfig"),
	)
	ErrInvalidConfig = errors.Normalize(
		"invalid config: %s",
		errors.RFCCodeText("CFEED:ErrInvalidConfig"),
	)

	// batch file related errors
	ErrOutputDirNotExist = errors.Normalize(
		"output directory %s does not exist",
		errors.RFCCodeText("CFEED:ErrOutputDirNotExist"),
	)
	ErrWriteBatchFile = errors.Normalize(
		"write batch file %s failed",
		errors.RFCCodeText("CFEED:ErrWriteBatchFile"),
	)
	ErrCompressionUnsupported = errors.Normalize(
		"unsupported compression: %s",
		errors.RFCCodeText("CFEED:ErrCompressionUnsupported"),
	)

	// mysql mirror related errors
	ErrMySQLMirror = errors.Normalize(
		"mysql mirror failed: %s",
		errors.RFCCodeText("CFEED:ErrMySQLMirror"),
	)
	ErrMySQLConnection = errors.Normalize(
		"connect to mysql %s failed",
		errors.RFCCodeText("CFEED:ErrMySQLConnection"),
	)

	// metrics server related errors
	ErrMetricsServer = errors.Normalize(
		"metrics server on %s failed",
		errors.RFCCodeText("CFEED:ErrMetricsServer"),
	)
)
