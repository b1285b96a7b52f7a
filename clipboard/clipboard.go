// Package clipboard copies text to the system clipboard through the
// terminal, using OSC 52 escape sequences.
package clipboard

import (
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/pkg/errors"
)

// Copy writes an OSC 52 sequence carrying text to w. Inside tmux or screen
// the sequence is wrapped so it reaches the outer terminal.
func Copy(w io.Writer, text string) error {
	seq := osc52.New(text)
	term := os.Getenv("TERM")
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write to clipboard")
	}
	return nil
}

// CopyToTerminal is Copy on stderr, leaving stdout free for the result.
func CopyToTerminal(text string) error {
	return Copy(os.Stderr, text)
}
