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


// Package strand analyzes strings and stores them under content-derived
// identifiers. The Service ties the analyzer, the record store, the filter
// engine, and the natural-language translator together behind one API.
package strand

import (
	"context"
	"log/slog"

	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/filter"
	"github.com/poiesic/strand/ingest"
	"github.com/poiesic/strand/nlquery"
	"github.com/poiesic/strand/storage"
	"github.com/poiesic/strand/storage/badger"
)

type Service struct {
	backend    *badger.Backend
	repository storage.StringRepository
	logger     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	storagePath string
	logger      *slog.Logger
}

// WithStoragePath stores records on disk at the given path instead of the
// default in-memory backend.
func WithStoragePath(path string) ServiceOption {
	return func(o *serviceOptions) {
		o.storagePath = path
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func New(opts ...ServiceOption) (*Service, error) {
	// Apply options
	options := &serviceOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend: in-memory unless a storage path was given
	backend, err := badger.OpenBackend(options.storagePath, options.storagePath == "")
	if err != nil {
		return nil, err
	}

	// Create string repository
	repository, err := badger.NewStringRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:    backend,
		repository: repository,
		logger:     options.logger,
	}, nil
}

// CreateString analyzes the value and stores the resulting record.
// Returns storage.ErrDuplicateKey if the value is already stored, and
// core.ErrInvalidInput if the value is not valid UTF-8.
func (s *Service) CreateString(ctx context.Context, value string) (*core.StringRecord, error) {
	record, err := core.NewStringRecord(value)
	if err != nil {
		return nil, err
	}
	return s.repository.Insert(ctx, record)
}

// GetString retrieves the record for a previously stored value.
func (s *Service) GetString(ctx context.Context, value string) (*core.StringRecord, error) {
	return s.repository.Get(ctx, core.IDFromContent(value))
}

// DeleteString removes a stored value.
func (s *Service) DeleteString(ctx context.Context, value string) error {
	return s.repository.Delete(ctx, core.IDFromContent(value))
}

// ListStrings returns stored records in insertion order, narrowed by the
// criteria. A zero Criteria returns everything.
func (s *Service) ListStrings(ctx context.Context, criteria filter.Criteria) ([]*core.StringRecord, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(records, criteria)
}

// FilterByNaturalLanguage translates a free-text query into criteria and
// returns the matching records along with the interpretation.
func (s *Service) FilterByNaturalLanguage(ctx context.Context, query string) ([]*core.StringRecord, nlquery.Interpretation, error) {
	interpretation, err := nlquery.Translate(query)
	if err != nil {
		return nil, nlquery.Interpretation{}, err
	}

	records, err := s.ListStrings(ctx, interpretation.Criteria)
	if err != nil {
		return nil, nlquery.Interpretation{}, err
	}
	return records, interpretation, nil
}

// NewIngestPipeline creates a concurrent ingest pipeline over the service's
// repository.
func (s *Service) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	opts = append([]ingest.Option{ingest.WithLogger(s.logger)}, opts...)
	return ingest.NewPipeline(s.repository, opts...)
}

func (s *Service) Repository() storage.StringRepository {
	return s.repository
}

func (s *Service) Close() error {
	// Close repository before the backend it writes through
	if err := s.repository.Close(); err != nil {
		s.logger.Error("error closing string repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
