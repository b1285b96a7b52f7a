package midi

import (
	"fmt"

	"github.com/jsphweid/mid2text/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// KeyEvent is a key down or key up with the ticks elapsed since the
// previous KeyEvent of the same sub-track.
type KeyEvent struct {
	Delta uint32
	Key   uint8
	Down  bool
}

func (e KeyEvent) String() string {
	if e.Down {
		return fmt.Sprintf("down(%d)+%d", e.Key, e.Delta)
	}
	return fmt.Sprintf("up(%d)+%d", e.Key, e.Delta)
}

// KeyEvents keeps only the key events of every track in s. The deltas of
// dropped events are carried into the next kept event so absolute time is
// unchanged.
func KeyEvents(s *smf.SMF) [][]KeyEvent {
	var res [][]KeyEvent
	for _, track := range s.Tracks {
		var events []KeyEvent
		var carry uint32
		for _, event := range track {
			carry += event.Delta
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				events = append(events, KeyEvent{Delta: carry, Key: key, Down: true})
			case event.Message.GetNoteEnd(&channel, &key):
				events = append(events, KeyEvent{Delta: carry, Key: key})
			default:
				continue
			}
			carry = 0
		}
		res = append(res, events)
	}
	return res
}

// Extract collects the notes of every track in s into one Track.
func Extract(s *smf.SMF) model.Track {
	return ExtractSubTracks(KeyEvents(s))
}

// ExtractSubTracks pairs key downs with key ups per sub-track and merges
// the resulting notes in sub-track order.
//
// A key down takes the first key up of the same key still left in the
// sub-track's pool, searching by position and not by time. With repeated
// downs of one key before their ups this may pair a down with a later up
// than the nearest one. Key downs with no match emit nothing.
func ExtractSubTracks(subTracks [][]KeyEvent) model.Track {
	var notes model.Track
	for _, events := range subTracks {
		if len(events) == 0 {
			continue
		}
		t := extractSubTrack(events)
		if !t.IsEmpty() {
			notes.Merge(t)
		}
	}
	return notes
}

func extractSubTrack(events []KeyEvent) model.Track {
	pool := make([]KeyEvent, len(events))
	copy(pool, events)

	var notes []model.Note
	var absTicks uint32
	for _, event := range events {
		absTicks += event.Delta
		if !event.Down {
			continue
		}
		index := findKeyUp(pool, event.Key)
		if index < 0 {
			continue
		}
		pool = append(pool[:index], pool[index+1:]...)
		notes = append(notes, model.NewNote(event.Key, model.Quantize(absTicks)))
	}
	return model.NewTrack(notes...)
}

func findKeyUp(pool []KeyEvent, key uint8) int {
	for i, e := range pool {
		if !e.Down && e.Key == key {
			return i
		}
	}
	return -1
}
