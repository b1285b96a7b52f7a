// Package macro implements the text macro wire format: the run-length tick
// codec and the merging of independently encoded streams.
//
// A stream is scanned left to right with an implicit tick counter. A digit
// n advances it by 2n ticks, '.' by one tick, and every other character is a
// payload event fired at the current tick.
package macro

import (
	"strings"

	"github.com/jsphweid/mid2text/constants"
	"github.com/jsphweid/mid2text/model"
)

const (
	nine   = '9'
	period = '.'
)

// EncodeDelta returns the shortest token run covering ticks. Zero ticks
// encode to the empty string.
func EncodeDelta(ticks uint32) string {
	if ticks == 0 {
		return ""
	}

	var sb strings.Builder
	remaining := ticks
	for remaining >= constants.TicksPerNine {
		sb.WriteByte(nine)
		remaining -= constants.TicksPerNine
	}
	if remaining >= constants.TicksPerDigit {
		digit := remaining / constants.TicksPerDigit
		sb.WriteByte(byte('0' + digit))
		remaining -= digit * constants.TicksPerDigit
	}
	if remaining == 1 {
		sb.WriteByte(period)
	}

	if sb.Len() == 0 {
		sb.WriteByte(period)
	}
	return sb.String()
}

// tokenTicks reports how far c advances the counter, and whether c is a
// time token at all.
func tokenTicks(c rune) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c-'0') * constants.TicksPerDigit, true
	case c == period:
		return 1, true
	}
	return 0, false
}

// Decode scans a stream into payload events at their absolute ticks.
// Unknown characters are payload; nothing is rejected. Streams are UTF-8:
// each invalid byte decodes to utf8.RuneError, so Merge writes it back as
// U+FFFD.
func Decode(stream string) []model.Event {
	var events []model.Event
	var current uint32
	for _, c := range stream {
		if ticks, ok := tokenTicks(c); ok {
			current += ticks
			continue
		}
		events = append(events, model.Event{Tick: current, Char: c})
	}
	return events
}

// decodeDelta sums the ticks of the time tokens in gap. Payload characters
// are ignored.
func decodeDelta(gap string) uint32 {
	var total uint32
	for _, c := range gap {
		if ticks, ok := tokenTicks(c); ok {
			total += ticks
		}
	}
	return total
}

// Duration is the number of ticks stream spans, trailing gaps included.
func Duration(stream string) uint32 {
	return decodeDelta(stream)
}
