package password

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/mmr-tortoise/devkit/internal/model"
)

// Character classes available to the generator.
const (
	// Lowercase is the lowercase ASCII letter class.
	Lowercase = "abcdefghijklmnopqrstuvwxyz"

	// Uppercase is the uppercase ASCII letter class.
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Digits is the decimal digit class.
	Digits = "0123456789"

	// Symbols is the ASCII punctuation class.
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Generate produces a random password satisfying the given policy.
//
// The policy is validated first; a violated constraint returns an error and
// no password. Characters are drawn uniformly at random from the union of
// the enabled classes. One position is reserved per enabled class so every
// enabled class appears at least once, then the whole string is shuffled so
// the reserved characters are not predictable by position.
func Generate(policy model.PasswordPolicy) (string, error) {
	if err := policy.Validate(); err != nil {
		return "", err
	}

	classes := enabledClasses(policy)
	union := ""
	for _, class := range classes {
		union += class
	}

	out := make([]byte, 0, policy.Length)

	// One guaranteed character per enabled class.
	for _, class := range classes {
		ch, err := pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	// Remaining positions come uniformly from the class union.
	for len(out) < policy.Length {
		ch, err := pick(union)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// enabledClasses returns the character classes the policy enables,
// in a fixed order.
func enabledClasses(policy model.PasswordPolicy) []string {
	var classes []string
	if policy.Lower {
		classes = append(classes, Lowercase)
	}
	if policy.Upper {
		classes = append(classes, Uppercase)
	}
	if policy.Digits {
		classes = append(classes, Digits)
	}
	if policy.Symbols {
		classes = append(classes, Symbols)
	}
	return classes
}

// pick returns one uniformly random character from the given set.
func pick(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle performs a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// randInt returns a uniform random int in [0, n). crypto/rand.Int already
// rejection-samples, so there is no modulo bias.
func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return int(v.Int64()), nil
}
