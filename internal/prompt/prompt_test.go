package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfirm_Answers covers the accepted yes/no spellings.
func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Decision
	}{
		{"y", "y\n", Proceed},
		{"yes", "yes\n", Proceed},
		{"uppercase yes", "YES\n", Proceed},
		{"n", "n\n", Cancel},
		{"no", "no\n", Cancel},
		{"padded", "  y  \n", Proceed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			decision, err := p.Confirm(context.Background(), "Do you wish to proceed?")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)
		})
	}
}

// TestConfirm_RepromptsUntilValid checks that garbage answers loop until a
// recognizable one arrives.
func TestConfirm_RepromptsUntilValid(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("maybe\nok\nn\n"), out)

	decision, err := p.Confirm(context.Background(), "Do you wish to proceed?")
	require.NoError(t, err)
	assert.Equal(t, Cancel, decision)
	// The question is printed once per attempt.
	assert.Equal(t, 3, strings.Count(out.String(), "Do you wish to proceed?"))
}

// TestConfirm_EOFCancels treats a closed input stream as cancellation.
func TestConfirm_EOFCancels(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Confirm(context.Background(), "Do you wish to proceed?")
	assert.ErrorIs(t, err, ErrCancelled)
}

// TestConfirm_ContextCancelled verifies that an already-cancelled context
// interrupts the prompt instead of blocking.
func TestConfirm_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A reader that never produces a line; the context must win the race.
	p := New(newBlockedReader(t), &bytes.Buffer{})

	_, err := p.Confirm(ctx, "Do you wish to proceed?")
	assert.ErrorIs(t, err, ErrCancelled)
}

// TestSelectIndex_Valid returns the zero-based index for a 1-based answer.
func TestSelectIndex_Valid(t *testing.T) {
	p := New(strings.NewReader("2\n"), &bytes.Buffer{})

	idx, err := p.SelectIndex(context.Background(), "Select the branch number", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

// TestSelectIndex_RepromptsOnInvalid covers non-numeric and out-of-range
// answers before a valid one.
func TestSelectIndex_RepromptsOnInvalid(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("abc\n0\n9\n3\n"), out)

	idx, err := p.SelectIndex(context.Background(), "Select the branch number", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Contains(t, out.String(), "Invalid input. Please enter a number.")
	assert.Contains(t, out.String(), "Invalid selection. Please enter a valid number.")
}

// TestSelectIndex_EOFCancels treats a closed input stream as cancellation.
func TestSelectIndex_EOFCancels(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.SelectIndex(context.Background(), "Select the branch number", 3)
	assert.ErrorIs(t, err, ErrCancelled)
}

// TestConfirm_CancelReleasesPendingLine verifies that a cancellation with a
// line already read does not leave the reader goroutine blocked on the
// undeliverable send: the line is dropped and the channel is closed.
func TestConfirm_CancelReleasesPendingLine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	t.Cleanup(func() { close(done) })
	p := New(&lineThenBlockReader{data: []byte("y\n"), done: done}, &bytes.Buffer{})

	_, err := p.Confirm(ctx, "Do you wish to proceed?")
	require.ErrorIs(t, err, ErrCancelled)

	select {
	case _, ok := <-p.lines:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still blocked after cancellation")
	}
}

// lineThenBlockReader yields its data, then blocks until the test ends.
type lineThenBlockReader struct {
	data []byte
	done chan struct{}
}

func (r *lineThenBlockReader) Read(p []byte) (int, error) {
	if len(r.data) > 0 {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	<-r.done
	return 0, io.EOF
}

// newBlockedReader returns a reader whose Read blocks until the test ends.
func newBlockedReader(t *testing.T) *blockedReader {
	t.Helper()
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })
	return &blockedReader{done: done}
}

type blockedReader struct {
	done chan struct{}
}

func (r *blockedReader) Read(p []byte) (int, error) {
	<-r.done
	return 0, io.EOF
}
