package model

import "github.com/jsphweid/mid2text/constants"

// Note is a single pitched event. StartTick is already quantized.
type Note struct {
	Key       uint8
	StartTick uint32
}

func NewNote(key uint8, startTick uint32) Note {
	return Note{Key: key, StartTick: startTick}
}

// Quantize converts an absolute raw MIDI tick into an output tick.
func Quantize(absTicks uint32) uint32 {
	return absTicks / constants.TicksPerUnit
}
