// Package instrument tags tracks with an instrument kind and renders them
// into per-instrument macro streams.
package instrument

import (
	"strings"

	"github.com/jsphweid/mid2text/macro"
	"github.com/jsphweid/mid2text/model"
)

// Instrument is a track bound to one kind. The kind never changes.
type Instrument struct {
	kind  Kind
	track model.Track
}

func New(kind Kind, track model.Track) *Instrument {
	return &Instrument{kind: kind, track: track}
}

func (i *Instrument) Kind() Kind {
	return i.kind
}

func (i *Instrument) Track() model.Track {
	return i.track.Clone()
}

// Merge folds other's notes into i. Kinds must match, and on mismatch
// neither side is touched.
func (i *Instrument) Merge(other *Instrument) error {
	if i.kind != other.kind {
		return ErrInstrumentMismatch
	}
	i.track.Merge(other.track)
	return nil
}

// Encode renders the track as a stream: each note is preceded by the gap
// since the previous note.
func (i *Instrument) Encode(fold bool) (string, error) {
	var sb strings.Builder
	var current uint32
	for _, n := range i.track.Notes() {
		sb.WriteString(macro.EncodeDelta(n.StartTick - current))
		current = n.StartTick

		text, err := i.renderNote(n.Key, fold)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func (i *Instrument) renderNote(key uint8, fold bool) (string, error) {
	prefix := i.kind.Prefix()
	if i.kind == Pling {
		prefix, key = plingShift(key, fold)
	}
	c, err := ToChar(key, fold)
	if err != nil {
		return "", err
	}
	return prefix + string(c), nil
}
