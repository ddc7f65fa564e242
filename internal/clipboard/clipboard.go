package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copy writes text to the system clipboard. Callers treat a returned error
// as non-fatal. Declared as a variable so tests can replace it.
var Copy = func(text string) error {
	return clipboard.WriteAll(text)
}
