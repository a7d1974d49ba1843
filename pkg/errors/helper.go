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
	"context"
	stderrors "errors"

	"github.com/pingcap/errors"
)

// WrapError generates a new error based on given `*errors.Error`, wraps the err
// as cause error.
// A nil `err` yields a nil error, unlike `Wrap` in pingcap/errors.
func WrapError(rfcError *errors.Error, err error, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return rfcError.Wrap(err).GenWithStackByArgs(args...)
}

// RFCCode returns a RFCCode for an error, or false if the error chain
// carries no normalized error.
func RFCCode(err error) (errors.RFCErrorCode, bool) {
	type rfcCoder interface {
		RFCCode() errors.RFCErrorCode
	}
	if terr, ok := err.(rfcCoder); ok {
		return terr.RFCCode(), true
	}
	if terr, ok := errors.Cause(err).(rfcCoder); ok {
		return terr.RFCCode(), true
	}
	for e := err; e != nil; {
		if terr, ok := e.(rfcCoder); ok {
			return terr.RFCCode(), true
		}
		switch u := e.(type) {
		case interface{ Unwrap() error }:
			e = u.Unwrap()
		case interface{ Cause() error }:
			e = u.Cause()
		default:
			e = nil
		}
	}
	return errors.RFCErrorCode(""), false
}

// IsCancelled reports whether err is caused by context cancellation, which
// marks a normal, operator requested stop.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Cause(err) == context.Canceled || stderrors.Is(err, context.Canceled)
}
