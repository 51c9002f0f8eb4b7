package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
)

const clearSequence = "\033[H\033[2J"

// Port is the line-oriented surface the workflows talk to.
type Port interface {
	// Prompt writes text and returns the next input line without surrounding whitespace.
	// It gives up with ctx.Err() when ctx is done before a line arrives.
	Prompt(ctx context.Context, text string) (string, error)
	// Password is Prompt that only strips the line terminator.
	Password(ctx context.Context, text string) (string, error)
	// ReadInt prompts until the line parses as an integer.
	ReadInt(ctx context.Context, text string) (int, error)
	Println(a ...any)
	Printf(format string, a ...any)
	Table(headers []string, rows [][]string)
	Clear()
}

// Terminal implements Port over a reader and a writer. Lines are read by a
// background goroutine so a pending prompt can be abandoned.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool

	start sync.Once
	lines chan line
	err   error
}

type line struct {
	text string
	err  error
}

type Option func(*Terminal)

// WithClearScreen toggles ANSI screen clearing between screens.
func WithClearScreen(enabled bool) Option {
	return func(t *Terminal) { t.clear = enabled }
}

func NewTerminal(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{in: bufio.NewReader(in), out: out}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) Prompt(ctx context.Context, text string) (string, error) {
	raw, err := t.readLine(ctx, text)
	return strings.TrimSpace(raw), err
}

func (t *Terminal) Password(ctx context.Context, text string) (string, error) {
	raw, err := t.readLine(ctx, text)
	return strings.TrimRight(raw, "\r\n"), err
}

func (t *Terminal) readLine(ctx context.Context, text string) (string, error) {
	fmt.Fprint(t.out, text)
	if t.err != nil {
		return "", t.err
	}
	t.start.Do(func() {
		t.lines = make(chan line)
		go t.readLoop()
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-t.lines:
		if l.err != nil {
			t.err = l.err
			return "", l.err
		}
		return l.text, nil
	}
}

// readLoop feeds t.lines until the reader fails. A final unterminated line is
// delivered before the error.
func (t *Terminal) readLoop() {
	for {
		s, err := t.in.ReadString('\n')
		if err != nil {
			if err == io.EOF && s != "" {
				t.lines <- line{text: s}
			}
			t.lines <- line{err: err}
			return
		}
		t.lines <- line{text: s}
	}
}

func (t *Terminal) ReadInt(ctx context.Context, text string) (int, error) {
	for {
		raw, err := t.Prompt(ctx, text)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(t.out, "Your input is invalid!")
	}
}

func (t *Terminal) Println(a ...any) { fmt.Fprintln(t.out, a...) }

func (t *Terminal) Printf(format string, a ...any) { fmt.Fprintf(t.out, format, a...) }

func (t *Terminal) Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(rule, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	if len(rows) == 0 {
		fmt.Fprintln(t.out, "(no rows)")
	}
}

func (t *Terminal) Clear() {
	if t.clear {
		fmt.Fprint(t.out, clearSequence)
	}
}
