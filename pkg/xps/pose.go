package xps

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// poseFields is the number of values in a pose line: coordinate delta,
// rotation delta and scale. Missing trailing values default to poseFill.
const (
	poseFields = 9
	poseFill   = "1"
)

// ParsePose decodes default pose text: one "bone name: v0 .. v8" entry per
// line. The last entry for a repeated bone name wins.
func ParsePose(text string) map[string]BonePose {
	poses := make(map[string]BonePose)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, tail, _ := strings.Cut(line, ":")
		values := PadValues(strings.Fields(tail), poseFields, poseFill)

		var f [poseFields]float32
		for i := range f {
			f[i], _ = ParseFloat(values[i])
		}
		poses[name] = BonePose{
			Name:            name,
			CoordinateDelta: [3]float32{f[0], f[1], f[2]},
			RotationDelta:   [3]float32{f[3], f[4], f[5]},
			Scale:           [3]float32{f[6], f[7], f[8]},
		}
	}
	return poses
}

// DecodePoseFile reads a standalone .pose file.
func DecodePoseFile(path string, cs *charmap.Charmap) (map[string]BonePose, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamNotOpened, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	return ParsePose(decodeBytes(cs, data)), nil
}
