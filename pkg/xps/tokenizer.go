package xps

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// CommentMarker starts a trailing comment on a text model line.
const CommentMarker = "#"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Tokenizer reads a text model one line at a time.
type Tokenizer struct {
	r    *bufio.Reader
	cs   *charmap.Charmap
	eof  bool
	line int
}

// NewTokenizer returns a tokenizer over r. A leading UTF-8 byte order mark
// is skipped; line bytes are decoded through cs (DefaultCharset when nil).
func NewTokenizer(r io.Reader, cs *charmap.Charmap) *Tokenizer {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return &Tokenizer{r: br, cs: cs}
}

// Exhausted reports whether the end of input has been reached.
func (t *Tokenizer) Exhausted() bool {
	return t.eof
}

// LineNumber returns the number of lines read so far.
func (t *Tokenizer) LineNumber() int {
	return t.line
}

// Line reads the next line with surrounding whitespace removed.
func (t *Tokenizer) Line() string {
	raw, err := t.r.ReadBytes('\n')
	if err != nil {
		t.eof = true
	}
	if len(raw) > 0 {
		t.line++
	}
	return strings.TrimSpace(decodeBytes(t.cs, raw))
}

// Int reads a line holding one integer.
func (t *Tokenizer) Int() int32 {
	v, _ := ParseInt(IgnoreComment(t.Line()))
	return v
}

// String reads a free-form name line.
func (t *Tokenizer) String() string {
	return strings.TrimRight(IgnoreStringComment(t.Line()), " \t")
}

// Values reads a line of whitespace separated tokens.
func (t *Tokenizer) Values() []string {
	return SplitValues(t.Line())
}

// Floats reads a line of n floats. Missing or malformed tokens are NaN.
func (t *Tokenizer) Floats(n int) []float32 {
	values := t.Values()
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.NaN())
		if i < len(values) {
			out[i], _ = ParseFloat(values[i])
		}
	}
	return out
}

// Ints reads a line of n integers. Missing or malformed tokens are 0.
func (t *Tokenizer) Ints(n int) []int32 {
	values := PadValues(t.Values(), n, "0")
	out := make([]int32, n)
	for i := range out {
		out[i], _ = ParseInt(values[i])
	}
	return out
}

// XYZ reads a line holding a 3-component vector.
func (t *Tokenizer) XYZ() [3]float32 {
	v := t.Floats(3)
	return [3]float32{v[0], v[1], v[2]}
}

// SplitValues splits a line on whitespace, treating comment markers as
// whitespace.
func SplitValues(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, CommentMarker, " "))
}

// IgnoreComment returns the first token of a line, or "".
func IgnoreComment(line string) string {
	if fields := SplitValues(line); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// IgnoreStringComment returns everything before the first comment marker.
func IgnoreStringComment(line string) string {
	before, _, _ := strings.Cut(line, CommentMarker)
	return before
}

// PadValues right-pads values with fill up to n entries. Longer slices are
// returned unchanged.
func PadValues(values []string, n int, fill string) []string {
	for len(values) < n {
		values = append(values, fill)
	}
	return values
}

// ParseInt parses a decimal 32-bit integer. On failure it returns 0, false.
func ParseInt(tok string) (int32, bool) {
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// ParseFloat parses a 32-bit float. On failure it returns NaN, false so the
// malformed field stays visible in the decoded geometry.
func ParseFloat(tok string) (float32, bool) {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		// Out of range values still parse, as infinities.
		if errors.Is(err, strconv.ErrRange) {
			return float32(v), true
		}
		return float32(math.NaN()), false
	}
	return float32(v), true
}
