// Package library stores named macro streams so songs can be recalled and
// merged later.
package library

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/mid2text/config"
	pkgerrors "github.com/pkg/errors"
)

// ErrNotFound is returned when no song has the requested name.
var ErrNotFound = errors.New("library: not found")

// Entry is one saved stream.
type Entry struct {
	ID          string    `msgpack:"id" json:"id" yaml:"id"`
	Name        string    `msgpack:"name" json:"name" yaml:"name"`
	Macro       string    `msgpack:"macro" json:"macro" yaml:"macro"`
	Instruments []string  `msgpack:"instruments,omitempty" json:"instruments,omitempty" yaml:"instruments,omitempty"`
	CreatedAt   time.Time `msgpack:"created_at" json:"created_at" yaml:"created_at"`
}

func NewEntry(name, macro string, instruments ...string) Entry {
	return Entry{
		ID:          uuid.New().String(),
		Name:        name,
		Macro:       macro,
		Instruments: instruments,
		CreatedAt:   time.Now().UTC(),
	}
}

type Store interface {
	// Put saves e under e.Name, replacing any previous song of that name.
	Put(ctx context.Context, e Entry) error

	// Get returns ErrNotFound if name was never saved.
	Get(ctx context.Context, name string) (Entry, error)

	// List returns every entry ordered by name.
	List(ctx context.Context) ([]Entry, error)

	// Delete is a no-op for unknown names.
	Delete(ctx context.Context, name string) error

	Close() error
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("library: empty song name")
	}
	return nil
}

func sortByName(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// Open builds the backend selected in cfg.
func Open(cfg config.Library) (Store, error) {
	switch cfg.Backend {
	case config.BackendBadger, "":
		return NewBadger(BadgerOptions{Dir: cfg.Dir})
	case config.BackendDynamo:
		return NewDynamo(cfg)
	}
	return nil, pkgerrors.Errorf("unknown library backend %q", cfg.Backend)
}
