package xps

import (
	"bytes"
	"encoding/binary"
	"math"
)

// builder assembles binary model fixtures in host byte order.
type builder struct {
	bytes.Buffer
}

func (b *builder) u8(v uint8) *builder {
	b.WriteByte(v)
	return b
}

func (b *builder) u16(v uint16) *builder {
	binary.Write(&b.Buffer, binary.NativeEndian, v)
	return b
}

func (b *builder) i16(v int16) *builder {
	binary.Write(&b.Buffer, binary.NativeEndian, v)
	return b
}

func (b *builder) u32(v uint32) *builder {
	binary.Write(&b.Buffer, binary.NativeEndian, v)
	return b
}

func (b *builder) f32(v ...float32) *builder {
	for _, f := range v {
		binary.Write(&b.Buffer, binary.NativeEndian, f)
	}
	return b
}

// str writes a length-prefixed string.
func (b *builder) str(s string) *builder {
	n := len(s)
	if n >= StringLengthLimit {
		b.WriteByte(byte(n%StringLengthLimit + StringLengthLimit))
		b.WriteByte(byte(n / StringLengthLimit))
	} else {
		b.WriteByte(byte(n))
	}
	b.WriteString(s)
	return b
}

// header writes a header up to (not including) the settings body.
func (b *builder) header(major, minor uint16, settingsLen uint32) *builder {
	b.u32(MagicNumber).u16(major).u16(minor)
	b.str(DefaultToolName).u32(settingsLen)
	b.str("machine").str("user").str("model.xps")
	return b
}

// modernHeader writes a 2.15 header with an empty option list.
func (b *builder) modernHeader() *builder {
	b.header(2, 15, DefaultSettings)
	return b.u32(0).u32(0)
}

// legacyHeader writes a 1.12 header with a settings block of n words.
func (b *builder) legacyHeader(n uint32) *builder {
	b.header(1, 12, n)
	b.Write(make([]byte, n*4))
	return b
}

func (b *builder) bone(name string, parent int16, x, y, z float32) *builder {
	return b.str(name).i16(parent).f32(x, y, z)
}

// vertex writes a vertex record with UV layers (u, v) = (0.25*layer, 0.3).
func (b *builder) vertex(pos [3]float32, uvLayers int, tangents, skinned bool) *builder {
	b.f32(pos[0], pos[1], pos[2])
	b.f32(0, 1, 0)
	b.u8(10).u8(20).u8(30).u8(255)
	for layer := 0; layer < uvLayers; layer++ {
		b.f32(0.25*float32(layer), 0.3)
		if tangents {
			b.f32(9, 9, 9, 9)
		}
	}
	if skinned {
		b.i16(0).i16(1).i16(0).i16(0)
		b.f32(0.75, 0.25, 0, 0)
	}
	return b
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}
