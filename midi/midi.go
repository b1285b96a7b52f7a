package midi

import (
	"bytes"
	"os"

	"github.com/jsphweid/mid2text/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Parse decodes raw SMF bytes.
func Parse(data []byte) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	res, err := Parse(dat)
	if err != nil {
		return nil, errors.WithMessage(err, filepath)
	}
	return res, nil
}

// ExtractFile reads the file at path and extracts its notes.
func ExtractFile(path string) (model.Track, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return model.Track{}, err
	}
	return Extract(s), nil
}

// ExtractBytes is ExtractFile for data already in memory.
func ExtractBytes(data []byte) (model.Track, error) {
	s, err := Parse(data)
	if err != nil {
		return model.Track{}, err
	}
	return Extract(s), nil
}
