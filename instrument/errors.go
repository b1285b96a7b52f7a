package instrument

import (
	"errors"
	"fmt"
)

// ErrInstrumentMismatch is returned when merging instruments of different
// kinds.
var ErrInstrumentMismatch = errors.New("merge different instrument types")

// InvalidKeyError reports a key outside the display band while folding is
// off.
type InvalidKeyError struct {
	Key uint8
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key: %d", e.Key)
}
