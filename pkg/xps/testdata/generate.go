//go:build ignore

// This program generates the sample models used by the xps tests.
// Run with: go run generate.go
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

var order = binary.NativeEndian

func main() {
	if err := os.WriteFile("sample.xps", sampleBinary(), 0644); err != nil {
		panic(err)
	}
	if err := os.WriteFile("sample.ascii", []byte(sampleText()), 0644); err != nil {
		panic(err)
	}
	println("Generated sample.xps and sample.ascii")
	println("  - 2 bones (root ground, head neck)")
	println("  - 1 mesh (body_0_0.5_0.5, 1 texture, 3 vertices, 1 triangle)")
}

type bone struct {
	name   string
	parent int16
	pos    [3]float32
}

var bones = []bone{
	{"root ground", -1, [3]float32{0, 0, 0}},
	{"head neck", 0, [3]float32{0, 1.5, 0}},
}

var positions = [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

const pose = "root ground:0 0 0 0 0 0 1 1 1\nhead neck:0 0.1 0 0 15 0 1 1 1\n"

func writeString(buf *bytes.Buffer, s string) {
	if n := len(s); n >= 128 {
		buf.WriteByte(byte(n%128 + 128))
		buf.WriteByte(byte(n / 128))
	} else {
		buf.WriteByte(byte(n))
	}
	buf.WriteString(s)
}

func sampleBinary() []byte {
	var buf bytes.Buffer
	w := func(v any) { binary.Write(&buf, order, v) }

	// Header, version 2.15
	w(uint32(323232))
	w(uint16(2))
	w(uint16(15))
	writeString(&buf, "XNAaraL")
	w(uint32(275))
	writeString(&buf, "workstation")
	writeString(&buf, "modder")
	writeString(&buf, "sample.xps")

	// Settings: one pose option
	padded := (len(pose) + 3) / 4 * 4
	w(uint32(0))           // reserved
	w(uint32(1))           // items
	w(uint32(1))           // pose
	w(uint32(len(pose)))   // byte length
	w(uint32(2))           // line count
	buf.WriteString(pose)
	buf.Write(make([]byte, padded-len(pose)))

	w(uint32(len(bones)))
	for _, b := range bones {
		writeString(&buf, b.name)
		w(b.parent)
		w(b.pos)
	}

	w(uint32(1))
	writeString(&buf, "body_0_0.5_0.5")
	w(uint32(1)) // uv layers
	w(uint32(1)) // textures
	writeString(&buf, `C:\xps\sample\skin.png`)
	w(uint32(0))
	w(uint32(len(positions)))
	for i, p := range positions {
		w(p)
		w([3]float32{0, 0, 1})
		buf.Write([]byte{255, 255, 255, 255})
		w([2]float32{p[0], p[1]})
		w([4]int16{int16(i % 2), 0, 0, 0})
		w([4]float32{1, 0, 0, 0})
	}
	w(uint32(1))
	w([3]uint32{0, 1, 2})

	return buf.Bytes()
}

func sampleText() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d # bones\n", len(bones))
	for _, b := range bones {
		fmt.Fprintf(&buf, "%s\n%d # parent index\n%g %g %g\n", b.name, b.parent, b.pos[0], b.pos[1], b.pos[2])
	}
	buf.WriteString("1 # meshes\nbody_0_0.5_0.5\n1 # uv layers\n1 # textures\n")
	buf.WriteString("C:\\xps\\sample\\skin.png\n0\n")
	fmt.Fprintf(&buf, "%d # vertices\n", len(positions))
	for i, p := range positions {
		fmt.Fprintf(&buf, "%g %g %g\n0 0 1\n255 255 255 255\n%g %g\n%d 0 0 0\n1 0 0 0\n", p[0], p[1], p[2], p[0], p[1], i%2)
	}
	buf.WriteString("1 # faces\n0 1 2\n")
	return buf.String()
}
