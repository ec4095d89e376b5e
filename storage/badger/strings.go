package badger

import (
	"context"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/storage"
)

// StringRepository implements storage.StringRepository for BadgerDB.
//
// A single mutex serializes Insert and Delete so duplicate checks and index
// maintenance never race; reads run in snapshot transactions and take no lock.
type StringRepository struct {
	backend *Backend
	seq     *badger.Sequence
	mu      sync.Mutex
}

var _ storage.StringRepository = (*StringRepository)(nil)

// NewStringRepository creates a new StringRepository.
func NewStringRepository(backend *Backend) (storage.StringRepository, error) {
	seq, err := backend.GetSequence(stringSeqName)
	if err != nil {
		return nil, err
	}

	return &StringRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the insertion sequence.
func (r *StringRepository) Close() error {
	return r.seq.Release()
}

// Insert stores a new record under its content-derived id, stamping
// CreatedAt and the insertion sequence number. The record and its order
// index entry are committed atomically, so readers never observe a partial
// insert.
func (r *StringRepository) Insert(ctx context.Context, record *core.StringRecord) (*core.StringRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeStringRecordKey(record.Id)
		_, err := tx.Get(key)
		if err == nil {
			return storage.ErrDuplicateKey
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		next, err := r.seq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if next == 0 {
			next, err = r.seq.Next()
			if err != nil {
				return err
			}
		}
		record.Seq = next
		// The encoding stores microseconds, so stamp no finer: the returned
		// record must match every later read byte for byte.
		record.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

		if err := tx.Set(key, storage.MarshalStringRecord(record)); err != nil {
			return err
		}
		if err := tx.Set(makeOrderKey(record.Seq), storage.MarshalID(record.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// Get retrieves a record by its content-derived id.
func (r *StringRepository) Get(ctx context.Context, id core.ID) (*core.StringRecord, error) {
	var result *core.StringRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		record, err := readStringRecord(tx, makeStringRecordKey(id))
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}
		result = record
		return nil
	}, false)
	return result, err
}

// Delete removes a record and its order index entry by id.
func (r *StringRepository) Delete(ctx context.Context, id core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeStringRecordKey(id)

		// Read the record first to learn its sequence number for index cleanup.
		record, err := readStringRecord(tx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(makeOrderKey(record.Seq)); err != nil {
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// List returns all records in insertion order by walking the order index.
func (r *StringRepository) List(ctx context.Context) ([]*core.StringRecord, error) {
	var results []*core.StringRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(stringOrderPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := readStringRecord(tx, makeStringRecordKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// Count returns the number of stored records.
func (r *StringRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(stringOrderPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Helper methods

// readStringRecord reads a record from the transaction, returning nil
// without error when the key is absent.
func readStringRecord(tx *badger.Txn, key []byte) (*core.StringRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.StringRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalStringRecord(val)
		return unmarshalErr
	})
	return record, err
}
