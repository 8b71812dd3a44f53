package dataset

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db  *pebble.DB
	run string
}

func openPebble(dir, run string) (*pebbleStore, error) {
	db, err := pebble.Open(filepath.Join(dir, "pebble"), &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open pebble")
	}
	return &pebbleStore{db: db, run: run}, nil
}

func (s *pebbleStore) Put(trial int, data []int) error {
	prefix := trialPrefix(s.run, trial)
	batch := s.db.NewBatch()
	defer batch.Close()

	// 이전 청크 삭제 후 다시 쓴다
	if err := batch.DeleteRange(prefix, prefixEnd(prefix), nil); err != nil {
		return errors.Wrapf(err, "pebble put trial %d", trial)
	}
	if err := batch.Set(prefix, encodeLength(len(data)), nil); err != nil {
		return errors.Wrapf(err, "pebble put trial %d", trial)
	}
	err := forEachChunk(data, func(chunk int, vals []int) error {
		return batch.Set(chunkKey(prefix, chunk), encodeChunk(vals), nil)
	})
	if err != nil {
		return errors.Wrapf(err, "pebble put trial %d", trial)
	}
	return errors.Wrapf(batch.Commit(pebble.NoSync), "pebble commit trial %d", trial)
}

func (s *pebbleStore) Load(trial int) ([]int, error) {
	prefix := trialPrefix(s.run, trial)
	meta, closer, err := s.db.Get(prefix)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "trial %d", trial)
	}
	if err != nil {
		return nil, errors.Wrap(err, "pebble get")
	}
	r, err := newReader(meta)
	closer.Close()
	if err != nil {
		return nil, err
	}

	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: chunkKey(prefix, 0),
		UpperBound: prefixEnd(prefix),
	})
	if err != nil {
		return nil, errors.Wrap(err, "pebble iterator")
	}
	for it.First(); it.Valid(); it.Next() {
		if err := r.add(it.Value()); err != nil {
			it.Close()
			return nil, err
		}
	}
	if err := it.Close(); err != nil {
		return nil, errors.Wrap(err, "pebble iterator")
	}
	return r.done()
}

func (s *pebbleStore) Close() error {
	return errors.Wrap(s.db.Close(), "close pebble")
}
