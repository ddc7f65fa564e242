// Package password generates random passwords from configurable character
// classes.
//
// Randomness comes from crypto/rand with rejection-sampled uniform indices,
// so the output is suitable for real credentials. Every enabled character
// class is guaranteed to contribute at least one character.
package password
