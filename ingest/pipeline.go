// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ingest provides a concurrent pipeline for loading batches of
// string values into a repository. Analysis is CPU-bound and insertion is
// serialized by the repository, so the pipeline fans analysis out over a
// bounded worker pool and tallies the outcome per value.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/storage"
)

// Report tallies the outcome of one Ingest call.
type Report struct {
	Submitted  int
	Inserted   int
	Duplicates int
	Invalid    int
	Failed     int
}

// Pipeline ingests string values concurrently through a fixed-size worker
// pool. A Pipeline may serve multiple Ingest calls; Release it when done.
type Pipeline struct {
	repository storage.StringRepository
	pool       *ants.Pool
	logger     *slog.Logger
	poolSize   int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPoolSize sets the number of concurrent workers. Values below one are
// ignored.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) {
		if size > 0 {
			p.poolSize = size
		}
	}
}

// WithLogger sets the logger used for per-value failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates a pipeline backed by the given repository.
func NewPipeline(repository storage.StringRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	p := &Pipeline{
		repository: repository,
		logger:     slog.Default(),
		poolSize:   defaultPoolSize(),
	}
	for _, opt := range opts {
		opt(p)
	}

	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, err
	}
	p.pool = pool

	return p, nil
}

func defaultPoolSize() int {
	size := runtime.NumCPU() / 2
	if size < 1 {
		size = 1
	}
	return size
}

// Ingest analyzes and inserts every value, returning a tally of the
// outcomes. Individual failures do not abort the batch: invalid values and
// duplicates are counted, logged, and skipped. Ingest blocks until every
// submitted value has been processed or the context is cancelled.
func (p *Pipeline) Ingest(ctx context.Context, values []string) (*Report, error) {
	report := &Report{Submitted: len(values)}

	var (
		inserted   atomic.Int64
		duplicates atomic.Int64
		invalid    atomic.Int64
		failed     atomic.Int64
	)

	var wg sync.WaitGroup
	for _, value := range values {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return report, err
		}

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			record, err := core.NewStringRecord(value)
			if err != nil {
				invalid.Add(1)
				p.logger.Warn("skipping invalid value", "error", err)
				return
			}

			_, err = p.repository.Insert(ctx, record)
			switch {
			case err == nil:
				inserted.Add(1)
			case errors.Is(err, storage.ErrDuplicateKey):
				duplicates.Add(1)
			default:
				failed.Add(1)
				p.logger.Error("insert failed", "id", record.Id, "error", err)
			}
		})
		if err != nil {
			wg.Done()
			failed.Add(1)
			p.logger.Error("submit failed", "error", err)
		}
	}
	wg.Wait()

	report.Inserted = int(inserted.Load())
	report.Duplicates = int(duplicates.Load())
	report.Invalid = int(invalid.Load())
	report.Failed = int(failed.Load())

	return report, nil
}

// PoolSize reports the configured worker count.
func (p *Pipeline) PoolSize() int {
	return p.poolSize
}

// Release shuts the worker pool down. The pipeline must not be used after
// Release.
func (p *Pipeline) Release() {
	p.pool.Release()
}
