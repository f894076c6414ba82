package sessionid

import (
	"bytes"
	"crypto/rand"
	"strings"
	"time"
)

const crockfordBase32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ" // Crockford's Base32 alphabet

const idSize = 16

// New generates a short session identifier: 48 bits of Unix milliseconds
// followed by 80 bits of cryptographic randomness, encoded with Crockford's
// Base32 alphabet in lowercase. Identifiers sort roughly by creation time.
func New() string {
	var id [idSize]byte

	now := time.Now().UnixMilli()

	// Fill the first 6 bytes with the timestamp (big-endian)
	id[0] = byte(now >> 40)
	id[1] = byte(now >> 32)
	id[2] = byte(now >> 24)
	id[3] = byte(now >> 16)
	id[4] = byte(now >> 8)
	id[5] = byte(now)

	if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate session id: " + err.Error())
	}

	return encodeCrockfordB32LC(id[:])
}

// encodeCrockfordB32LC encodes a byte slice using Crockford's Base32
// alphabet and returns the result in lowercase. The modified alphabet
// eliminates easily confused characters.
func encodeCrockfordB32LC(input []byte) string {
	var (
		result bytes.Buffer
		bits   = 0
		accum  = 0
	)

	for _, b := range input {
		accum = accum<<8 | int(b)
		bits += 8

		for bits >= 5 {
			bits -= 5
			result.WriteByte(crockfordBase32Alphabet[(accum>>(bits))&0x1F])
		}
	}

	if bits > 0 {
		result.WriteByte(crockfordBase32Alphabet[(accum<<uint(5-bits))&0x1F])
	}

	return strings.ToLower(result.String())
}
