package xps

import (
	"bytes"
	"errors"
	"testing"
)

func decodeHeader(t *testing.T, data []byte) (Header, *binaryDecoder) {
	t.Helper()
	d := &binaryDecoder{c: NewCursor(bytes.NewReader(data)), cs: DefaultCharset}
	h, err := d.readHeader()
	if err != nil {
		t.Fatalf("readHeader failed: %v", err)
	}
	return h, d
}

func TestReadHeader_BadMagic(t *testing.T) {
	b := &builder{}
	b.u32(12345).u16(2).u16(15)

	_, err := ParseBinary(b.Bytes(), DefaultOptions())
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("error = %v, want ErrInvalidHeader", err)
	}
	if KindOf(err) != KindInvalidHeader {
		t.Errorf("KindOf = %v, want InvalidHeader", KindOf(err))
	}
}

func TestReadHeader_EmptyInput(t *testing.T) {
	_, err := ParseBinary(nil, DefaultOptions())
	if KindOf(err) != KindInvalidHeader {
		t.Errorf("KindOf = %v, want InvalidHeader", KindOf(err))
	}
}

func TestReadHeader_Fields(t *testing.T) {
	b := &builder{}
	b.modernHeader()

	h, d := decodeHeader(t, b.Bytes())
	if h.Magic != MagicNumber {
		t.Errorf("Magic = %d", h.Magic)
	}
	if h.Version() != (Version{2, 15}) {
		t.Errorf("Version = %v, want 2.15", h.Version())
	}
	if h.ToolName != DefaultToolName || h.Machine != "machine" || h.User != "user" || h.File != "model.xps" {
		t.Errorf("provenance = %q %q %q %q", h.ToolName, h.Machine, h.User, h.File)
	}
	if h.SettingsLength != DefaultSettings {
		t.Errorf("SettingsLength = %d", h.SettingsLength)
	}
	if h.HasTangents() {
		t.Error("2.15 header should not carry tangents")
	}
	if d.c.Pos() != int64(b.Len()) {
		t.Errorf("Pos() = %d, want %d", d.c.Pos(), b.Len())
	}
}

func TestReadHeader_LegacySkipsSettings(t *testing.T) {
	for _, words := range []uint32{0, 1, 7, 275} {
		b := &builder{}
		b.legacyHeader(words)

		h, d := decodeHeader(t, b.Bytes())
		if !h.HasTangents() {
			t.Errorf("%d words: 1.12 header should carry tangents", words)
		}
		if d.c.Pos() != int64(b.Len()) {
			t.Errorf("%d words: Pos() = %d, want %d", words, d.c.Pos(), b.Len())
		}
	}
}

func TestReadHeader_Options(t *testing.T) {
	pose := "root:1 2 3\nhead:0 0 0 0 45 0\n"

	b := &builder{}
	b.header(2, 15, DefaultSettings)
	b.u32(0).u32(3)
	// none: 2 words of payload
	b.u32(optionNone).u32(2).u32(0)
	b.u32(0).u32(0)
	// flags: 1 pair of words
	b.u32(optionFlags).u32(1).u32(0)
	b.u32(4).u32(1)
	// pose text, then padding to a word boundary
	b.u32(optionPose).u32(uint32(len(pose))).u32(2)
	b.WriteString(pose)
	b.Write(make([]byte, RoundToMultiple(len(pose), PoseAlignment)-len(pose)))
	end := b.Len()
	b.u32(0xCAFE)

	h, d := decodeHeader(t, b.Bytes())
	if d.c.Pos() != int64(end) {
		t.Fatalf("Pos() = %d, want %d", d.c.Pos(), end)
	}
	if got := d.c.Uint32(); got != 0xCAFE {
		t.Errorf("value after settings = %#x, want 0xCAFE", got)
	}
	if h.PoseText != pose {
		t.Errorf("PoseText = %q, want %q", h.PoseText, pose)
	}
	if len(h.DefaultPose) != 2 {
		t.Fatalf("DefaultPose has %d entries, want 2", len(h.DefaultPose))
	}
	if got := h.DefaultPose["head"].RotationDelta; got != [3]float32{0, 45, 0} {
		t.Errorf("head rotation = %v", got)
	}
}

func TestReadHeader_UnknownOptionEndsBlock(t *testing.T) {
	const words = 10

	b := &builder{}
	b.header(2, 15, words)
	start := b.Len()
	b.u32(0).u32(2)
	b.u32(77).u32(0).u32(0)
	for b.Len() < start+words*4 {
		b.u32(0xFFFFFFFF)
	}
	b.u32(0xBEEF)

	_, d := decodeHeader(t, b.Bytes())
	if d.c.Pos() != int64(start+words*4) {
		t.Fatalf("Pos() = %d, want %d", d.c.Pos(), start+words*4)
	}
	if got := d.c.Uint32(); got != 0xBEEF {
		t.Errorf("value after settings = %#x, want 0xBEEF", got)
	}
}

func TestVersionLegacy(t *testing.T) {
	tests := []struct {
		v    Version
		want bool
	}{
		{Version{1, 12}, true},
		{Version{1, 0}, true},
		{Version{0, 12}, true},
		{Version{1, 13}, false},
		{Version{2, 12}, false},
		{Version{2, 15}, false},
		{Version{3, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			if got := tt.v.Legacy(); got != tt.want {
				t.Errorf("Legacy() = %v, want %v", got, tt.want)
			}
		})
	}
}
