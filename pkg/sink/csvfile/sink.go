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

package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/config"
	"github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/customer"
	cerror "github.com/SaadNasir92/CustomerTrack-Real-time-SCD-Pipeline/pkg/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

const (
	// SinkType is the label of the batch file sink.
	SinkType = "csv"

	writeBufferSize = 64 * 1024
)

// Sink writes every batch into its own CSV file under a fixed directory.
type Sink struct {
	dir         string
	compression string
}

// New creates a batch file sink. The directory is not created; a missing
// directory is reported when the first batch is written.
func New(dir string, compression string) (*Sink, error) {
	switch compression {
	case "", config.CompressionNone, config.CompressionGzip, config.CompressionZstd:
	default:
		return nil, cerror.ErrCompressionUnsupported.GenWithStackByArgs(compression)
	}
	if compression == "" {
		compression = config.CompressionNone
	}
	return &Sink{dir: dir, compression: compression}, nil
}

// SinkType implements sink.Sink.
func (s *Sink) SinkType() string {
	return SinkType
}

// Path returns the file path a batch with the given key is written to.
func (s *Sink) Path(key string) string {
	return filepath.Join(s.dir, customer.FileName(key, s.suffix()))
}

func (s *Sink) suffix() string {
	switch s.compression {
	case config.CompressionGzip:
		return ".gz"
	case config.CompressionZstd:
		return ".zst"
	default:
		return ""
	}
}

// WriteBatch creates the batch file and writes the header followed by one
// row per record. The write is not interrupted by ctx: once started, the
// file is completed or the error is returned.
func (s *Sink) WriteBatch(_ context.Context, batch *customer.Batch) (int64, error) {
	path := s.Path(batch.Key)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, cerror.WrapError(cerror.ErrOutputDirNotExist, err, s.dir)
		}
		return 0, cerror.WrapError(cerror.ErrWriteBatchFile, err, path)
	}

	counter := &countingWriter{w: f}
	if err := s.encode(counter, batch); err != nil {
		_ = f.Close()
		return counter.n, cerror.WrapError(cerror.ErrWriteBatchFile, err, path)
	}
	if err := f.Close(); err != nil {
		return counter.n, cerror.WrapError(cerror.ErrWriteBatchFile, err, path)
	}

	log.Debug("batch file written",
		zap.String("path", path),
		zap.Int("rows", batch.Len()),
		zap.Int64("bytes", counter.n))
	return counter.n, nil
}

func (s *Sink) encode(w io.Writer, batch *customer.Batch) error {
	switch s.compression {
	case config.CompressionGzip:
		zw := gzip.NewWriter(w)
		if err := writeCSV(zw, batch); err != nil {
			return err
		}
		return zw.Close()
	case config.CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err := writeCSV(zw, batch); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	default:
		return writeCSV(w, batch)
	}
}

func writeCSV(w io.Writer, batch *customer.Batch) error {
	bw := bufio.NewWriterSize(w, writeBufferSize)
	cw := csv.NewWriter(bw)
	// RFC 4180 line endings
	cw.UseCRLF = true
	if err := cw.Write(customer.Header); err != nil {
		return err
	}
	for _, r := range batch.Records {
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

// Close implements sink.Sink.
func (s *Sink) Close() error {
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
