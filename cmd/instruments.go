package cmd

import (
	"github.com/jsphweid/mid2text/instrument"
	"github.com/jsphweid/mid2text/macro"
	"github.com/jsphweid/mid2text/midi"
	"github.com/jsphweid/mid2text/model"
	"github.com/jsphweid/mid2text/song"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var shorthands = map[instrument.Kind]string{
	instrument.Pling:     "p",
	instrument.Hat:       "h",
	instrument.Snare:     "s",
	instrument.BassDrum:  "b",
	instrument.Flute:     "f",
	instrument.Guitar:    "g",
	instrument.Xylophone: "x",
}

// instrumentFlags holds the midi files given for every instrument.
type instrumentFlags map[instrument.Kind]*[]string

func newInstrumentFlags(fs *pflag.FlagSet) instrumentFlags {
	flags := make(instrumentFlags)
	for _, kind := range instrument.AllKinds {
		paths := new([]string)
		name := kind.String()
		fs.StringSliceVarP(paths, name, shorthands[kind], nil, "midi files to convert to "+name)
		flags[kind] = paths
	}
	return flags
}

func (f instrumentFlags) paths() []string {
	var res []string
	for _, kind := range instrument.AllKinds {
		res = append(res, *f[kind]...)
	}
	return res
}

// buildSong extracts every file into its own instrument, in instrument
// order and then file order. The returned paths line up with the song's
// instruments.
func buildSong(f instrumentFlags) (*song.Song, []string, error) {
	s := song.New()
	var sources []string
	for _, kind := range instrument.AllKinds {
		for _, path := range *f[kind] {
			track, err := midi.ExtractFile(path)
			if err != nil {
				return nil, nil, err
			}
			logrus.Debugf("extracted %d notes from %s as %s", track.Len(), path, kind)
			s.Add(instrument.New(kind, track))
			sources = append(sources, path)
		}
	}
	return s, sources, nil
}

func renderSong(s *song.Song, sources []string, fold bool) (model.MacroResponse, error) {
	var res model.MacroResponse
	streams, err := s.Streams(fold)
	if err != nil {
		return res, err
	}
	for i, inst := range s.Instruments() {
		is := model.InstrumentStream{Instrument: inst.Kind().String(), Stream: streams[i]}
		if i < len(sources) {
			is.Source = sources[i]
		}
		res.Streams = append(res.Streams, is)
	}
	res.Macro = macro.Merge(streams)
	res.Notes = s.Stats().Notes
	return res, nil
}
