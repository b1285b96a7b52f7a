package instrument

import (
	"errors"
	"testing"

	"github.com/jsphweid/mid2text/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func track(notes ...model.Note) model.Track {
	return model.NewTrack(notes...)
}

func n(key uint8, tick uint32) model.Note {
	return model.NewNote(key, tick)
}

func TestPlingEncode(t *testing.T) {
	i := New(Pling, track(n(60, 0), n(62, 1), n(127, 2)))
	text, err := i.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, "G.I.+N", text)
}

func TestPlingShiftWithFold(t *testing.T) {
	cases := map[uint8]string{
		78:  "+A",
		79:  "+B",
		102: "+Y",
		113: "+X",
		127: "+N",
		54:  "-Y",
		53:  "-X",
		30:  "-A",
		0:   "-G",
		55:  "B",
		77:  "X",
	}
	for key, want := range cases {
		text, err := New(Pling, track(n(key, 0))).Encode(true)
		require.NoError(t, err)
		assert.Equal(t, want, text, "key %d", key)
	}
}

func TestPlingShiftWithoutFold(t *testing.T) {
	cases := map[uint8]string{
		78:  "+A",
		102: "+Y",
		54:  "-Y",
		30:  "-A",
		60:  "G",
	}
	for key, want := range cases {
		text, err := New(Pling, track(n(key, 0))).Encode(false)
		require.NoError(t, err)
		assert.Equal(t, want, text, "key %d", key)
	}

	for _, key := range []uint8{103, 127, 29, 0} {
		_, err := New(Pling, track(n(key, 0))).Encode(false)
		var invalid *InvalidKeyError
		assert.True(t, errors.As(err, &invalid), "key %d", key)
	}
}

func TestPrefixes(t *testing.T) {
	want := map[Kind]string{
		Pling:     "G",
		Hat:       "!G",
		Snare:     "?G",
		BassDrum:  "=G",
		Bass:      `\G`,
		Bell:      "/G",
		Chime:     "_G",
		Flute:     "@G",
		Guitar:    ":G",
		Harp:      ";G",
		Xylophone: ",G",
	}
	assert.Len(t, AllKinds, 11)
	for _, kind := range AllKinds {
		text, err := New(kind, track(n(60, 0))).Encode(false)
		require.NoError(t, err)
		assert.Equal(t, want[kind], text, kind.String())
	}
}

func TestFixedPrefixInstrumentsNeverShift(t *testing.T) {
	i := New(Hat, track(n(79, 0), n(54, 2), n(30, 3)))

	text, err := i.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, "!N1!A.!A", text)

	_, err = i.Encode(false)
	var invalid *InvalidKeyError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, uint8(79), invalid.Key)
}

func TestEncodeGaps(t *testing.T) {
	i := New(Flute, track(n(60, 0), n(60, 0), n(62, 38), n(64, 39)))
	text, err := i.Encode(false)
	require.NoError(t, err)
	assert.Equal(t, "@G@G991@I.@K", text)
}

func TestEncodeEmpty(t *testing.T) {
	text, err := New(Pling, model.Track{}).Encode(false)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestMergeInstruments(t *testing.T) {
	a := New(Pling, track(n(60, 0), n(62, 1)))
	b := New(Pling, track(n(64, 2), n(113, 3)))
	require.NoError(t, a.Merge(b))

	text, err := a.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, "G.I.K.+X", text)

	a = New(Pling, track(n(60, 0), n(62, 1)))
	b = New(Pling, track(n(112, 2), n(125, 3)))
	require.NoError(t, a.Merge(b))

	text, err = a.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, "G.I.+W.+X", text)
}

func TestMergeInterleavedInstruments(t *testing.T) {
	a := New(Snare, track(n(60, 0), n(60, 4), n(60, 8)))
	b := New(Snare, track(n(62, 2), n(62, 4), n(62, 10)))
	require.NoError(t, a.Merge(b))

	notes := a.Track().Notes()
	assert.Len(t, notes, 6)
	for i := 1; i < len(notes); i++ {
		assert.LessOrEqual(t, notes[i-1].StartTick, notes[i].StartTick)
	}
	assert.Equal(t, 3, b.Track().Len())
}

func TestMergeDifferentInstruments(t *testing.T) {
	a := New(Pling, track(n(60, 0), n(62, 1)))
	b := New(Hat, track(n(64, 2), n(65, 3)))

	err := a.Merge(b)

	assert := assert.New(t)
	assert.True(errors.Is(err, ErrInstrumentMismatch))
	assert.Equal(Pling, a.Kind())
	assert.Equal(Hat, b.Kind())
	assert.Equal(track(n(60, 0), n(62, 1)), a.Track())
	assert.Equal(track(n(64, 2), n(65, 3)), b.Track())
}

func TestParseKind(t *testing.T) {
	for _, kind := range AllKinds {
		parsed, err := ParseKind(kind.String())
		assert.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	k, err := ParseKind(" BassDrum ")
	assert.NoError(t, err)
	assert.Equal(t, BassDrum, k)

	_, err = ParseKind("kazoo")
	assert.Error(t, err)
}

func TestKindText(t *testing.T) {
	var k Kind
	assert.NoError(t, k.UnmarshalText([]byte("xylophone")))
	assert.Equal(t, Xylophone, k)

	text, err := Harp.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "harp", string(text))
	assert.Equal(t, "", Pling.Prefix())
}
