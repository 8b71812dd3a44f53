package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

const boltFile = "datasets.bolt"

// boltStore 실행(run)마다 버킷 하나
type boltStore struct {
	db     *bbolt.DB
	run    string
	bucket []byte
}

func openBolt(dir, run string) (*boltStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create dataset dir %s", dir)
	}
	db, err := bbolt.Open(filepath.Join(dir, boltFile), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bbolt")
	}
	s := &boltStore{db: db, run: run, bucket: []byte(run)}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bbolt bucket")
	}
	return s, nil
}

func (s *boltStore) Put(trial int, data []int) error {
	prefix := trialPrefix(s.run, trial)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if err := deletePrefix(b, prefix); err != nil {
			return err
		}
		if err := b.Put(prefix, encodeLength(len(data))); err != nil {
			return err
		}
		return forEachChunk(data, func(chunk int, vals []int) error {
			return b.Put(chunkKey(prefix, chunk), encodeChunk(vals))
		})
	})
	return errors.Wrapf(err, "bbolt put trial %d", trial)
}

// deletePrefix 이전에 같은 trial 로 저장된 청크를 지운다
func deletePrefix(b *bbolt.Bucket, prefix []byte) error {
	c := b.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Seek(prefix) {
		if err := c.Delete(); err != nil {
			return err
		}
	}
	return nil
}

func (s *boltStore) Load(trial int) ([]int, error) {
	prefix := trialPrefix(s.run, trial)
	var data []int
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		k, v := c.Seek(prefix)
		if k == nil || !bytes.Equal(k, prefix) {
			return errors.Wrapf(ErrNotFound, "trial %d", trial)
		}
		r, err := newReader(v)
		if err != nil {
			return err
		}
		for k, v = c.Next(); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if err := r.add(v); err != nil {
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

func (s *boltStore) Close() error {
	return errors.Wrap(s.db.Close(), "close bbolt")
}
