package instrument

import "github.com/jsphweid/mid2text/constants"

// ToChar maps a MIDI key in the display band [54, 78] onto 'A'..'Y'. With
// fold set, keys outside the band are moved by octaves until they fit.
func ToChar(key uint8, fold bool) (rune, error) {
	k := int(key)
	if fold {
		k = Fold(k)
	} else if !InBand(k) {
		return 0, &InvalidKeyError{Key: key}
	}
	return rune(k + constants.CharOffset), nil
}

func InBand(key int) bool {
	return key >= constants.MinKey && key <= constants.MaxKey
}

// Fold moves key by whole octaves into the display band.
func Fold(key int) int {
	for key > constants.MaxKey {
		key -= constants.Octave
	}
	for key < constants.MinKey {
		key += constants.Octave
	}
	return key
}

// plingShift picks the octave prefix for a Pling note and the key the
// character is taken from.
func plingShift(key uint8, fold bool) (string, uint8) {
	k := int(key)
	up := k >= constants.MaxKey
	down := k <= constants.MinKey
	if !fold {
		up = up && k <= constants.MaxKey+constants.ShiftInterval
		down = down && k >= constants.MinKey-constants.ShiftInterval
	}
	switch {
	case up:
		return "+", uint8(k - constants.ShiftInterval)
	case down:
		return "-", uint8(k + constants.ShiftInterval)
	}
	return "", key
}
