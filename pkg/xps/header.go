package xps

import "fmt"

// Settings block option types.
const (
	optionPose  = 1
	optionFlags = 2
	optionNone  = 255
)

// readHeader probes the magic number, rewinds, and decodes the full header.
func (d *binaryDecoder) readHeader() (Header, error) {
	magic := d.c.Uint32()
	if err := d.c.Rewind(); err != nil {
		return Header{}, fmt.Errorf("rewinding after magic probe: %w", err)
	}
	if magic != MagicNumber {
		return Header{}, fmt.Errorf("%w, got %d", ErrInvalidHeader, magic)
	}

	h := Header{}
	h.Magic = d.c.Uint32()
	h.Major = d.c.Uint16()
	h.Minor = d.c.Uint16()
	h.ToolName = d.str()
	h.SettingsLength = d.c.Uint32()
	h.Machine = d.str()
	h.User = d.str()
	h.File = d.str()

	if h.Version().Legacy() {
		d.c.Skip(int64(h.SettingsLength) * 4)
	} else {
		d.readSettings(&h)
	}
	return h, nil
}

// readSettings decodes the typed option stream of a modern settings block.
func (d *binaryDecoder) readSettings(h *Header) {
	start := d.c.Pos()

	d.c.Uint32() // reserved
	items := d.c.Uint32()
	for i := uint32(0); i < items && !d.c.Exhausted(); i++ {
		optType := d.c.Uint32()
		optCount := d.c.Uint32()
		optInfo := d.c.Uint32()

		switch optType {
		case optionNone:
			d.c.Skip(int64(optCount) * 4)
		case optionFlags:
			d.c.Skip(int64(optCount) * 2 * 4)
		case optionPose:
			h.PoseText = d.readPoseText(int(optCount), int(optInfo))
			h.DefaultPose = ParsePose(h.PoseText)
		default:
			// An unknown option is taken to fill the rest of the block.
			word := (d.c.Pos() - start) / 4
			if rest := int64(h.SettingsLength) - word; rest > 0 {
				d.c.Skip(rest * 4)
			}
			return
		}
	}
}

// readPoseText reads lineCount pose lines followed by the padding that aligns
// the declared byte length.
func (d *binaryDecoder) readPoseText(length, lineCount int) string {
	if length <= 0 {
		return ""
	}
	var raw []byte
	for i := 0; i < lineCount && !d.c.Exhausted(); i++ {
		raw = append(raw, d.c.Line()...)
	}
	d.c.Skip(int64(RoundToMultiple(length, PoseAlignment) - length))
	return decodeBytes(d.cs, raw)
}
