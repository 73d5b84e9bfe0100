// Package input contains the readers used to get player command input from
// the CLI or other sources.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader is a source of raw player input lines. A blank line is valid input;
// the engine answers it with a no-command message rather than re-prompting.
type Reader interface {
	// ReadLine returns the next line of input without its trailing newline.
	// It returns io.EOF when the source is exhausted.
	ReadLine() (string, error)

	// Close releases any resources held by the reader.
	Close() error
}

// DirectReader reads lines from any generic input stream. It does not
// sanitize control or escape sequences, so it is best suited to piped input
// and tests.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader opens a buffered reader on r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// ReadLine reads the next newline-terminated line. A final line without a
// newline is returned before io.EOF is reported.
func (dr *DirectReader) ReadLine() (string, error) {
	line, err := dr.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op; the underlying stream belongs to the caller.
func (dr *DirectReader) Close() error {
	return nil
}

// InteractiveReader reads from stdin through a readline implementation,
// keeping input clear of typing and editing escape sequences and enabling
// command history. Use it only when actually attached to a TTY.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader initializes readline. The returned reader must have
// Close called on it before disposal to properly tear down readline
// resources.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

// ReadLine reads the next line from the terminal. An interrupt at an empty
// prompt is treated as end of input.
func (ir *InteractiveReader) ReadLine() (string, error) {
	line, err := ir.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

// Close tears down readline resources.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}
