package model

import "sort"

// Track is an ordered list of notes with non-decreasing StartTick.
type Track struct {
	notes []Note
}

func NewTrack(notes ...Note) Track {
	var t Track
	t.notes = append(t.notes, notes...)
	t.sort()
	return t
}

// Push appends n and restores ordering. Notes sharing a tick keep
// insertion order. The notes are copied so copies of t never see the push;
// build large tracks with NewTrack instead.
func (t *Track) Push(n Note) {
	t.notes = append(t.notes[:len(t.notes):len(t.notes)], n)
	if len(t.notes) > 1 && t.notes[len(t.notes)-2].StartTick > n.StartTick {
		t.sort()
	}
}

// Merge appends every note of other then stably re-sorts. other is not
// modified.
func (t *Track) Merge(other Track) {
	merged := make([]Note, 0, len(t.notes)+len(other.notes))
	merged = append(merged, t.notes...)
	merged = append(merged, other.notes...)
	t.notes = merged
	t.sort()
}

func (t *Track) sort() {
	sort.SliceStable(t.notes, func(i, j int) bool {
		return t.notes[i].StartTick < t.notes[j].StartTick
	})
}

func (t Track) Len() int {
	return len(t.notes)
}

func (t Track) IsEmpty() bool {
	return len(t.notes) == 0
}

// Notes returns a copy of the notes in order.
func (t Track) Notes() []Note {
	res := make([]Note, len(t.notes))
	copy(res, t.notes)
	return res
}

func (t Track) Clone() Track {
	return Track{notes: t.Notes()}
}
