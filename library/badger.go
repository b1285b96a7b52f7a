package library

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
)

var songPrefix = []byte("song:")

func songKey(name string) []byte {
	return append(append([]byte{}, songPrefix...), name...)
}

// Badger is a Store on a local BadgerDB directory.
type Badger struct {
	db *badger.DB
}

type BadgerOptions struct {
	// Dir is required unless InMemory is set.
	Dir string

	InMemory bool
}

func NewBadger(opts BadgerOptions) (*Badger, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("library: BadgerOptions.Dir is required for on-disk mode")
	}
	dbOpts := badger.DefaultOptions(opts.Dir).WithLogger(badgerLogger{})
	if opts.InMemory {
		dbOpts = dbOpts.WithInMemory(true)
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "could not open library at %s", opts.Dir)
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Put(_ context.Context, e Entry) error {
	if err := validateName(e.Name); err != nil {
		return err
	}
	val, err := msgpack.Marshal(e)
	if err != nil {
		return pkgerrors.Wrap(err, "could not encode song")
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(songKey(e.Name), val)
	})
}

func (b *Badger) Get(_ context.Context, name string) (Entry, error) {
	var e Entry
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(songKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &e)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

func (b *Badger) List(_ context.Context) ([]Entry, error) {
	var res []Entry
	err := b.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = songPrefix
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		for it.Seek(songPrefix); it.ValidForPrefix(songPrefix); it.Next() {
			var e Entry
			err := it.Item().Value(func(val []byte) error {
				return msgpack.Unmarshal(val, &e)
			})
			if err != nil {
				return pkgerrors.Wrapf(err, "could not decode %s", it.Item().Key())
			}
			res = append(res, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByName(res)
	return res, nil
}

func (b *Badger) Delete(_ context.Context, name string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(songKey(name))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (b *Badger) Close() error {
	return b.db.Close()
}

// badgerLogger routes badger warnings and errors through logrus.
type badgerLogger struct{}

func (badgerLogger) Errorf(f string, v ...interface{})   { logrus.Errorf("[badger] "+f, v...) }
func (badgerLogger) Warningf(f string, v ...interface{}) { logrus.Warnf("[badger] "+f, v...) }
func (badgerLogger) Infof(f string, v ...interface{})    { logrus.Debugf("[badger] "+f, v...) }
func (badgerLogger) Debugf(string, ...interface{})       {}
