// Package clipboard copies the report text using the first copy mechanism
// that works on the current machine.
package clipboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// ErrUnavailable is returned when every mechanism failed.
var ErrUnavailable = errors.New("clipboard: no copy mechanism available")

// Mechanism is one way of placing text on the user's clipboard.
type Mechanism interface {
	Name() string
	Copy(text string) error
}

// Copy tries each mechanism in order and returns the name of the first one
// that succeeded. The text is copied exactly, without transformation.
func Copy(text string, mechanisms ...Mechanism) (string, error) {
	var lastErr error
	for _, m := range mechanisms {
		if err := m.Copy(text); err != nil {
			lastErr = fmt.Errorf("%s: %w", m.Name(), err)
			continue
		}
		return m.Name(), nil
	}
	if lastErr == nil {
		return "", ErrUnavailable
	}
	return "", fmt.Errorf("%w (last error: %v)", ErrUnavailable, lastErr)
}

// Default returns the system clipboard followed by the OSC 52 terminal
// escape on stderr.
func Default() []Mechanism {
	return []Mechanism{System{}, NewOSC52(os.Stderr)}
}

// System uses the platform clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API).
type System struct{}

func (System) Name() string { return "system" }

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal emulator to set the clipboard. It works over SSH
// but only when the output is a terminal.
type OSC52 struct {
	Out io.Writer
	// IsTerminal reports whether Out is attached to a terminal.
	IsTerminal func() bool
}

// NewOSC52 returns an OSC52 mechanism writing to f.
func NewOSC52(f *os.File) OSC52 {
	return OSC52{
		Out: f,
		IsTerminal: func() bool {
			fd := f.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

func (OSC52) Name() string { return "osc52" }

func (o OSC52) Copy(text string) error {
	if o.Out == nil || o.IsTerminal == nil || !o.IsTerminal() {
		return errors.New("not a terminal")
	}
	_, err := fmt.Fprintf(o.Out, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}
