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


// Package storage provides the storage abstraction layer for strand.
//
// This package defines the repository interface that decouples the record
// store implementation from business logic, allowing different backends
// (in-memory BadgerDB, disk-backed BadgerDB) to be used interchangeably.
//
// Records are keyed by their content-derived id. The repository treats ids
// as opaque, pre-computed keys: it never derives or recomputes them from
// the stored value. Insertion order is tracked with a sequence number so
// List can return records in the order they were added.
//
// Public constructors in backend packages return the storage.StringRepository
// interface rather than concrete types, so consumers never couple to a
// specific backend.
package storage
