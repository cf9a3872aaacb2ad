// Package gameid names games with 26-character, lowercase Crockford base32
// strings. Live games use UUIDv7 so ids sort by creation time; replayable
// games derive their id from the seed so peers agree on it.
package gameid

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, as used by TypeID.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the size of every encoded id.
const Length = 26

var seedNamespace = uuid.MustParse("9a4b7f0e-1c2d-4e8f-a6b5-3c7d9e0f1a2b")

// New returns a time-ordered id.
func New() string {
	return Encode(uuid.Must(uuid.NewV7()))
}

// FromSeed returns the id of the game played from seed. It is stable across
// runs and machines.
func FromSeed(seed int64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(seed))
	return Encode(uuid.NewSHA1(seedNamespace, b[:]))
}

// bit returns bit i of u counting from the most significant end.
func bit(u uuid.UUID, i int) byte {
	return (u[i/8] >> (7 - i%8)) & 1
}

// Encode renders u as 26 characters. The 128 bits are right-aligned in 130,
// so the first character is always 0-7.
func Encode(u uuid.UUID) string {
	out := make([]byte, Length)
	for i := range out {
		var v byte
		for b := 0; b < 5; b++ {
			pos := i*5 - 2 + b
			v <<= 1
			if pos >= 0 {
				v |= bit(u, pos)
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Parse decodes an id produced by Encode.
func Parse(id string) (uuid.UUID, error) {
	var u uuid.UUID
	if len(id) != Length {
		return u, fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i := 0; i < Length; i++ {
		v := strings.IndexByte(alphabet, id[i])
		if v < 0 {
			return uuid.Nil, fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
		for b := 0; b < 5; b++ {
			pos := i*5 - 2 + b
			set := byte(v>>(4-b)) & 1
			if pos < 0 {
				if set != 0 {
					return uuid.Nil, fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
				}
				continue
			}
			u[pos/8] |= set << (7 - pos%8)
		}
	}
	return u, nil
}

// Validate checks that id decodes.
func Validate(id string) error {
	_, err := Parse(id)
	return err
}
