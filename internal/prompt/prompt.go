package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrCancelled is returned when the user cancels a prompt, either by
// closing the input stream (EOF) or via an interrupt signal.
var ErrCancelled = errors.New("cancelled by user")

// Decision is the outcome of a confirmation step.
type Decision int

const (
	// Cancel means the user declined; the caller aborts cleanly.
	Cancel Decision = iota

	// Proceed means the user confirmed; the caller continues.
	Proceed
)

// Prompter reads interactive answers from an input stream and writes
// questions to an output stream. The streams are injected so tests can
// drive prompts with canned input.
type Prompter struct {
	out io.Writer

	startOnce sync.Once
	stopOnce  sync.Once
	in        io.Reader
	lines     chan string
	stop      chan struct{}
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, stop: make(chan struct{})}
}

// Confirm asks a yes/no question and loops until the user answers one of
// y/yes/n/no (case-insensitive). Returns Cancel with ErrCancelled when the
// context is done or the input stream ends.
func (p *Prompter) Confirm(ctx context.Context, question string) (Decision, error) {
	for {
		fmt.Fprintf(p.out, "%s [y/n]: ", question)

		line, err := p.readLine(ctx)
		if err != nil {
			return Cancel, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return Proceed, nil
		case "n", "no":
			return Cancel, nil
		}
	}
}

// SelectIndex asks for a 1-based selection out of n items and returns the
// chosen zero-based index. Invalid input (not a number, out of range)
// reprompts. Returns ErrCancelled when the context is done or the input
// stream ends.
func (p *Prompter) SelectIndex(ctx context.Context, question string, n int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", question)

		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		if choice < 1 || choice > n {
			fmt.Fprintln(p.out, "Invalid selection. Please enter a valid number.")
			continue
		}
		return choice - 1, nil
	}
}

// readLine returns the next input line, racing the read against ctx so a
// signal-driven cancellation interrupts a blocking prompt. The reader
// goroutine is started once and feeds a channel; it exits when the input
// stream ends or the prompter shuts down after a cancellation, so an
// undeliverable pending line never leaves it blocked on the send.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	p.startOnce.Do(func() {
		p.lines = make(chan string)
		go func() {
			defer close(p.lines)
			scanner := bufio.NewScanner(p.in)
			for scanner.Scan() {
				select {
				case p.lines <- scanner.Text():
				case <-p.stop:
					return
				}
			}
		}()
	})

	// An already-cancelled context never consumes input.
	if ctx.Err() != nil {
		p.shutdown()
		return "", ErrCancelled
	}

	select {
	case line, ok := <-p.lines:
		if !ok {
			return "", ErrCancelled
		}
		return line, nil
	case <-ctx.Done():
		p.shutdown()
		return "", ErrCancelled
	}
}

// shutdown releases the reader goroutine after a cancellation.
func (p *Prompter) shutdown() {
	p.stopOnce.Do(func() { close(p.stop) })
}
