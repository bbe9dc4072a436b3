package xps

import (
	"encoding/binary"
	"io"
	"math"
)

// Cursor is a sequential, position-tracking reader over a binary model.
//
// Reads never fail: a read that runs past the end of the source yields the
// type's zero value, still advances Pos by the read width, and marks the
// cursor exhausted. Multi-byte values use the host byte order, matching the
// files written by the reference exporter on little-endian machines.
type Cursor struct {
	r   io.ReadSeeker
	pos int64
	eof bool
	buf [4]byte
}

// NewCursor returns a cursor positioned at the current offset of r,
// which is treated as offset 0.
func NewCursor(r io.ReadSeeker) *Cursor {
	return &Cursor{r: r}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int64 {
	return c.pos
}

// Exhausted reports whether a read has run past the end of the source.
func (c *Cursor) Exhausted() bool {
	return c.eof
}

// Rewind moves back to the start of the source.
func (c *Cursor) Rewind() error {
	if _, err := c.r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	c.pos = 0
	c.eof = false
	return nil
}

func (c *Cursor) fill(n int) bool {
	c.pos += int64(n)
	if _, err := io.ReadFull(c.r, c.buf[:n]); err != nil {
		c.eof = true
		return false
	}
	return true
}

// Uint8 reads one byte.
func (c *Cursor) Uint8() uint8 {
	if !c.fill(1) {
		return 0
	}
	return c.buf[0]
}

// Uint16 reads an unsigned 16-bit integer.
func (c *Cursor) Uint16() uint16 {
	if !c.fill(2) {
		return 0
	}
	return binary.NativeEndian.Uint16(c.buf[:2])
}

// Int16 reads a signed 16-bit integer.
func (c *Cursor) Int16() int16 {
	return int16(c.Uint16())
}

// Uint32 reads an unsigned 32-bit integer.
func (c *Cursor) Uint32() uint32 {
	if !c.fill(4) {
		return 0
	}
	return binary.NativeEndian.Uint32(c.buf[:4])
}

// Float32 reads a 32-bit IEEE 754 float.
func (c *Cursor) Float32() float32 {
	return math.Float32frombits(c.Uint32())
}

// Bytes reads exactly n bytes. On a short source it returns an empty slice.
func (c *Cursor) Bytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	c.pos += int64(n)
	b := make([]byte, n)
	if _, err := io.ReadFull(c.r, b); err != nil {
		c.eof = true
		return []byte{}
	}
	return b
}

// Skip discards n bytes without reading them.
func (c *Cursor) Skip(n int64) {
	if n <= 0 {
		return
	}
	c.pos += n
	if _, err := c.r.Seek(n, io.SeekCurrent); err != nil {
		c.eof = true
	}
}

// Line reads up to and including the next '\n'. At the end of the source it
// returns whatever was read.
func (c *Cursor) Line() []byte {
	var line []byte
	for {
		if _, err := io.ReadFull(c.r, c.buf[:1]); err != nil {
			c.eof = true
			return line
		}
		c.pos++
		line = append(line, c.buf[0])
		if c.buf[0] == '\n' {
			return line
		}
	}
}
