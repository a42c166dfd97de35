package domain

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ShortCodeAlphabet is the character set short codes are drawn from. Visually
// ambiguous glyphs (0/O/o, 1/l/I) are excluded so codes survive being read
// aloud or copied by hand.
const ShortCodeAlphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// DefaultShortCodeLength is the generated code length used when a creation
// request does not specify one.
const DefaultShortCodeLength = 5

// ShortCodeGenerator produces random short codes of a fixed length. It makes
// no uniqueness guarantee on its own; collision detection against existing
// storage happens at insert time, where callers regenerate and retry.
type ShortCodeGenerator interface {
	// Generate returns a code of exactly length characters drawn from
	// ShortCodeAlphabet.
	Generate(length int) (string, error)
}

// NanoIDGenerator is the default ShortCodeGenerator, backed by a
// cryptographically secure nanoid source. It is stateless and safe for
// concurrent use.
type NanoIDGenerator struct{}

var _ ShortCodeGenerator = NanoIDGenerator{}

// Generate returns a fresh random code of the requested length.
func (NanoIDGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultShortCodeLength
	}

	code, err := gonanoid.Generate(ShortCodeAlphabet, length)
	if err != nil {
		return "", fmt.Errorf("could not generate short code: %w", err)
	}

	return code, nil
}
