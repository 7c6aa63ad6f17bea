// Package gameid generates deal identifiers: UUIDv7 values encoded as
// 26-character Crockford base32 strings, so ids sort by creation time.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generator creates deal ids from a source of random bytes
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator. A nil reader uses crypto/rand.
func NewGenerator(rand io.Reader) *Generator {
	return &Generator{rand: rand}
}

// Generate creates a new deal id using crypto/rand
func Generate() (string, error) {
	return NewGenerator(nil).Generate()
}

// Generate creates a new deal id
func (g *Generator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate deal id: %w", err)
	}
	return encodeBase32(id), nil
}

// Short returns the first eight characters of id, enough to tell deals apart
// on screen.
func Short(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// encodeBase32 encodes a 128-bit UUID as a 26-character base32 string,
// treating it as a 130-bit big-endian value with two leading zero bits.
func encodeBase32(data uuid.UUID) string {
	result := make([]byte, 26)

	// 130 bits: bit k of the output stream (k >= 2) is bit k-2 of data
	bit := func(k int) byte {
		k -= 2
		if k < 0 {
			return 0
		}
		return (data[k/8] >> (7 - uint(k%8))) & 1
	}

	for i := range result {
		var v byte
		for j := range 5 {
			v = v<<1 | bit(i*5+j)
		}
		result[i] = alphabet[v]
	}
	return string(result)
}

// Validate checks if a deal id is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("deal id must be exactly 26 characters, got %d", len(id))
	}

	// the two padding bits keep the first character within 0-7
	if id[0] > '7' {
		return fmt.Errorf("deal id first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
