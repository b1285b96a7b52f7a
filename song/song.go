// Package song combines instrument streams into one macro.
package song

import (
	"github.com/jsphweid/mid2text/instrument"
	"github.com/jsphweid/mid2text/macro"
	"github.com/jsphweid/mid2text/util"
)

type Song struct {
	instruments []*instrument.Instrument
}

func New() *Song {
	return &Song{}
}

func (s *Song) Add(i *instrument.Instrument) {
	s.instruments = append(s.instruments, i)
}

// AddOrMerge merges i into the first instrument of the same kind, or adds
// it when there is none.
func (s *Song) AddOrMerge(i *instrument.Instrument) {
	for _, existing := range s.instruments {
		if existing.Kind() == i.Kind() {
			// kinds are equal, Merge cannot fail
			_ = existing.Merge(i)
			return
		}
	}
	s.Add(i)
}

func (s *Song) Instruments() []*instrument.Instrument {
	return s.instruments
}

// Streams encodes every instrument in insertion order.
func (s *Song) Streams(fold bool) ([]string, error) {
	streams := make([]string, 0, len(s.instruments))
	for _, i := range s.instruments {
		text, err := i.Encode(fold)
		if err != nil {
			return nil, err
		}
		streams = append(streams, text)
	}
	return streams, nil
}

// ToText encodes all instruments and merges them into one stream.
func (s *Song) ToText(fold bool) (string, error) {
	streams, err := s.Streams(fold)
	if err != nil {
		return "", err
	}
	return macro.Merge(streams), nil
}

type Stats struct {
	Instruments int    `json:"instruments" yaml:"instruments"`
	Notes       uint64 `json:"notes" yaml:"notes"`
	LastTick    uint32 `json:"last_tick" yaml:"last_tick"`
}

func (s *Song) Stats() Stats {
	counts := make([]int, 0, len(s.instruments))
	ends := make([]uint32, 0, len(s.instruments))
	for _, i := range s.instruments {
		notes := i.Track().Notes()
		counts = append(counts, len(notes))
		if len(notes) > 0 {
			ends = append(ends, notes[len(notes)-1].StartTick)
		}
	}
	return Stats{
		Instruments: len(s.instruments),
		Notes:       util.Sum(counts),
		LastTick:    util.Max(ends...),
	}
}
