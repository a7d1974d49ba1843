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
	"context"

	"github.com/brianvoe/gofakeit/v7"
)

// cancelCheckInterval is how many records are generated between two
// cancellation checks.
const cancelCheckInterval = 1024

// Generator synthesizes customer records. It is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a generator. A zero seed picks a random one.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Record returns one record with the given id.
func (g *Generator) Record(id int) Record {
	return Record{
		CustomerID: id,
		FirstName:  g.faker.FirstName(),
		LastName:   g.faker.LastName(),
		Email:      g.faker.Email(),
		Street:     g.faker.Street(),
		City:       g.faker.City(),
		State:      g.faker.State(),
		Country:    g.faker.Country(),
	}
}

// Generate returns n records with customer ids 0..n-1. It returns early with
// ctx.Err() when ctx is cancelled.
func (g *Generator) Generate(ctx context.Context, n int) ([]Record, error) {
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		records = append(records, g.Record(i))
	}
	return records, nil
}
