package model

type MergeRequestBody struct {
	Streams []string `json:"streams"`
}

type DecodeRequestBody struct {
	Stream string `json:"stream"`
}

type SongRequestBody struct {
	Macro       string   `json:"macro"`
	Instruments []string `json:"instruments,omitempty"`
}

type InstrumentStream struct {
	Instrument string `json:"instrument" yaml:"instrument"`
	Source     string `json:"source,omitempty" yaml:"source,omitempty"`
	Stream     string `json:"stream" yaml:"stream"`
}

type MacroResponse struct {
	Macro   string             `json:"macro" yaml:"macro"`
	Streams []InstrumentStream `json:"streams,omitempty" yaml:"streams,omitempty"`
	Notes   uint64             `json:"notes" yaml:"notes"`
}

type DecodeResponse struct {
	Events   []EventView `json:"events" yaml:"events"`
	Duration uint32      `json:"duration" yaml:"duration"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
