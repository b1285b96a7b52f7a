package constants

import "os"

const AppName = "mid2text"

// 12 raw MIDI ticks make one output tick
const TicksPerUnit = 12

// Display band of the note-placement alphabet. MinKey maps to 'A'.
const (
	MinKey     = 54
	MaxKey     = 78
	CharOffset = 11
	Octave     = 12
)

// The Pling octave shift notation moves by two octaves.
const ShiftInterval = 24

// One '9' token covers 18 ticks, a digit n covers 2n ticks and '.' covers 1.
const (
	TicksPerNine  = 18
	TicksPerDigit = 2
)

func GetConfigPath() string {
	return os.Getenv("MID2TEXT_CONFIG")
}

func GetLibraryDir() string {
	path := os.Getenv("MID2TEXT_LIBRARY_PATH")
	if path != "" {
		return path
	}
	return "./library"
}

func GetAddr() string {
	addr := os.Getenv("MID2TEXT_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetLogLevel() string {
	return os.Getenv("MID2TEXT_LOG_LEVEL")
}
