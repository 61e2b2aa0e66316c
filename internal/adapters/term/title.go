package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/peon-ping-cli/internal/ports"
)

// TitleWriter emits the OSC 0 escape that retitles the terminal tab. It
// shares stdout with nothing else in hook mode, so no locking is needed.
type TitleWriter struct {
	out io.Writer
}

var _ ports.TitleWriter = (*TitleWriter)(nil)

func NewTitleWriter(out io.Writer) *TitleWriter {
	return &TitleWriter{out: out}
}

func (w *TitleWriter) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	_, err := fmt.Fprintf(w.out, "\x1b]0;%s\x07", title)
	return err
}
