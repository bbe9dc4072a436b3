package xps

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Format is an on-disk model encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatBinary
	FormatText
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatText:
		return "ascii"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// FormatForPath selects the decoder from the file name suffix.
func FormatForPath(path string) (Format, error) {
	switch {
	case strings.HasSuffix(path, ".ascii"):
		return FormatText, nil
	case strings.HasSuffix(path, ".mesh"), strings.HasSuffix(path, ".xps"):
		return FormatBinary, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %s", ErrFileNotLoaded, path)
	}
}

// Options configures a decode.
type Options struct {
	// FlipUV stores every V coordinate as 1 - v.
	FlipUV bool
	// ReverseWinding stores each triangle (a, b, c) as (a, c, b).
	ReverseWinding bool
	// Charset maps string bytes to characters. Nil selects DefaultCharset.
	Charset *charmap.Charmap
}

// DefaultOptions returns the options the reference importer uses.
func DefaultOptions() Options {
	return Options{FlipUV: true, ReverseWinding: true}
}

func (o Options) charset() *charmap.Charmap {
	if o.Charset == nil {
		return DefaultCharset
	}
	return o.Charset
}

func (o Options) flipV(v float32) float32 {
	if o.FlipUV {
		return 1 - v
	}
	return v
}

// Decode reads the model at path, choosing the decoder by file suffix.
func Decode(path string, opts Options) (*Model, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamNotOpened, err)
	}

	var model *Model
	switch format {
	case FormatText:
		model, err = DecodeText(bytes.NewReader(data), opts)
	default:
		model, err = DecodeBinary(bytes.NewReader(data), opts)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return model, nil
}
