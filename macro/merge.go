package macro

import (
	"sort"
	"strings"

	"github.com/jsphweid/mid2text/model"
)

// Merge combines streams into one time ordered stream. Events that land on
// the same tick keep their input order, earlier streams first.
//
// The result is re-encoded from absolute ticks rather than spliced, so
// token boundaries of the inputs are not preserved.
func Merge(streams []string) string {
	var all []model.Event
	for _, s := range streams {
		all = append(all, Decode(s)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Tick < all[j].Tick
	})

	return Encode(all)
}

// Encode serializes events that are already sorted by tick.
func Encode(events []model.Event) string {
	if len(events) == 0 {
		return ""
	}

	var sb strings.Builder
	var last uint32
	i := 0
	for i < len(events) {
		current := events[i].Tick
		if current > last {
			sb.WriteString(EncodeDelta(current - last))
		}
		for i < len(events) && events[i].Tick == current {
			sb.WriteRune(events[i].Char)
			i++
		}
		last = current
	}
	return sb.String()
}

// Renormalize re-encodes a single stream canonically. Trailing time tokens
// with no event after them are dropped.
func Renormalize(stream string) string {
	return Merge([]string{stream})
}
