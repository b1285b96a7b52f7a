package model

// Event is a payload character fired at an absolute tick of a decoded
// stream.
type Event struct {
	Tick uint32
	Char rune
}

// EventView is the printable form of an Event.
type EventView struct {
	Tick uint32 `json:"tick" yaml:"tick"`
	Char string `json:"char" yaml:"char"`
}

func (e Event) View() EventView {
	return EventView{Tick: e.Tick, Char: string(e.Char)}
}
