package xps

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// StringLengthLimit splits a string length prefix into a low byte
// (value mod limit) and an optional high byte (multiples of limit).
const StringLengthLimit = 128

// PoseAlignment is the byte alignment of the embedded default pose.
const PoseAlignment = 4

// DefaultCharset maps every byte to the character with the same value.
var DefaultCharset = charmap.ISO8859_1

// PrefixedLength combines the one or two length bytes of a string prefix.
func PrefixedLength(b1, b2 byte) int {
	return int(b1)%StringLengthLimit + int(b2)*StringLengthLimit
}

// readPrefixedString reads a length-prefixed string. The second length byte
// is only present when the first one reaches StringLengthLimit.
func readPrefixedString(c *Cursor, cs *charmap.Charmap) string {
	b1 := c.Uint8()
	var b2 byte
	if int(b1) >= StringLengthLimit {
		b2 = c.Uint8()
	}
	return decodeBytes(cs, c.Bytes(PrefixedLength(b1, b2)))
}

// decodeBytes maps each byte to one character of the charset.
func decodeBytes(cs *charmap.Charmap, b []byte) string {
	if cs == nil {
		cs = DefaultCharset
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for _, x := range b {
		sb.WriteRune(cs.DecodeByte(x))
	}
	return sb.String()
}

// RoundToMultiple rounds n up to the next multiple of multiple.
func RoundToMultiple(n, multiple int) int {
	rem := n % multiple
	if rem == 0 {
		return n
	}
	return n + multiple - rem
}
