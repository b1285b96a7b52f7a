package instrument

import (
	"fmt"
	"strings"
)

// Kind is one of the eleven instrument tags.
type Kind uint8

const (
	Pling Kind = iota
	Hat
	Snare
	BassDrum
	Bass
	Bell
	Chime
	Flute
	Guitar
	Harp
	Xylophone
)

var AllKinds = []Kind{Pling, Hat, Snare, BassDrum, Bass, Bell, Chime, Flute, Guitar, Harp, Xylophone}

var kindNames = map[Kind]string{
	Pling:     "pling",
	Hat:       "hat",
	Snare:     "snare",
	BassDrum:  "bassdrum",
	Bass:      "bass",
	Bell:      "bell",
	Chime:     "chime",
	Flute:     "flute",
	Guitar:    "guitar",
	Harp:      "harp",
	Xylophone: "xylophone",
}

// Pling has no fixed prefix, it uses '+' and '-' per note instead.
var prefixes = map[Kind]string{
	Hat:       "!",
	Snare:     "?",
	BassDrum:  "=",
	Bass:      `\`,
	Bell:      "/",
	Chime:     "_",
	Flute:     "@",
	Guitar:    ":",
	Harp:      ";",
	Xylophone: ",",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Prefix is the literal written before every pitch character.
func (k Kind) Prefix() string {
	return prefixes[k]
}

func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, v := range kindNames {
		if v == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown instrument %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
