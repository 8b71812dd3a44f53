package dataset

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
)

type badgerStore struct {
	db  *badger.DB
	run string
}

func openBadger(dir, run string) (*badgerStore, error) {
	opts := badger.DefaultOptions(filepath.Join(dir, "badger")).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	return &badgerStore{db: db, run: run}, nil
}

func (s *badgerStore) Put(trial int, data []int) error {
	prefix := trialPrefix(s.run, trial)
	if err := s.dropTrial(prefix); err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	if err := wb.Set(prefix, encodeLength(len(data))); err != nil {
		wb.Cancel()
		return errors.Wrapf(err, "badger put trial %d", trial)
	}
	err := forEachChunk(data, func(chunk int, vals []int) error {
		return wb.Set(chunkKey(prefix, chunk), encodeChunk(vals))
	})
	if err != nil {
		wb.Cancel()
		return errors.Wrapf(err, "badger put trial %d", trial)
	}
	return errors.Wrapf(wb.Flush(), "badger flush trial %d", trial)
}

// dropTrial 같은 trial 의 이전 청크 삭제
func (s *badgerStore) dropTrial(prefix []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "badger drop trial")
}

func (s *badgerStore) Load(trial int) ([]int, error) {
	prefix := trialPrefix(s.run, trial)
	var data []int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(prefix)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(ErrNotFound, "trial %d", trial)
		}
		if err != nil {
			return err
		}
		meta, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		r, err := newReader(meta)
		if err != nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(chunkKey(prefix, 0)); it.Valid(); it.Next() {
			if err := it.Item().Value(r.add); err != nil {
				return err
			}
		}
		data, err = r.done()
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *badgerStore) Close() error {
	return errors.Wrap(s.db.Close(), "close badger")
}
