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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"with password", "feed:secret@tcp(db:3306)/crm", "feed:xxxxx@tcp(db:3306)/crm"},
		{"without password", "feed@tcp(db:3306)/crm", "feed@tcp(db:3306)/crm"},
		{"invalid", "feed:secret@tcp(db:3306", "?"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RedactDSN(tt.dsn), tt.name)
	}
}
