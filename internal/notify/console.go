package notify

import (
	"fmt"
	"io"
)

// Console writes digests to a writer, typically stdout. It is the fallback
// when no Telegram credentials are configured.
type Console struct {
	Out io.Writer
}

// NewConsole creates a console notifier writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

// Send writes the digest text followed by a newline.
func (c *Console) Send(text string) error {
	_, err := fmt.Fprintln(c.Out, text)
	return err
}
