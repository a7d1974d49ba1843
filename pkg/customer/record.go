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
	"strconv"
	"time"
)

// Header is the CSV header of every batch file, in column order.
var Header = []string{
	"customer_id",
	"first_name",
	"last_name",
	"email",
	"street",
	"city",
	"state",
	"country",
}

// Record is one synthetic customer row.
type Record struct {
	CustomerID int
	FirstName  string
	LastName   string
	Email      string
	Street     string
	City       string
	State      string
	Country    string
}

// Row returns the record as CSV fields, aligned with Header.
func (r Record) Row() []string {
	return []string{
		strconv.Itoa(r.CustomerID),
		r.FirstName,
		r.LastName,
		r.Email,
		r.Street,
		r.City,
		r.State,
		r.Country,
	}
}

// Values returns the record as SQL arguments, aligned with Header.
func (r Record) Values() []interface{} {
	return []interface{}{
		r.CustomerID,
		r.FirstName,
		r.LastName,
		r.Email,
		r.Street,
		r.City,
		r.State,
		r.Country,
	}
}

// Batch is the set of records generated in one loop iteration.
type Batch struct {
	// Seq is the 1-based batch number within the current run.
	Seq uint64
	// Key is the second resolution timestamp naming the batch.
	Key string
	// CreatedAt is the clock reading Key was derived from.
	CreatedAt time.Time
	Records   []Record
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int {
	return len(b.Records)
}
