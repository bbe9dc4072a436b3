package xps

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// maxPrealloc caps slice preallocation from counts read out of the file.
const maxPrealloc = 1 << 16

type binaryDecoder struct {
	c    *Cursor
	cs   *charmap.Charmap
	opts Options
}

// DecodeBinary decodes a binary (.xps / .mesh) model.
func DecodeBinary(r io.ReadSeeker, opts Options) (*Model, error) {
	d := &binaryDecoder{c: NewCursor(r), cs: opts.charset(), opts: opts}

	header, err := d.readHeader()
	if err != nil {
		return nil, err
	}
	bones := d.readBones()
	meshes, err := d.readMeshes(header.HasTangents(), len(bones) > 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMeshReadBin, err)
	}

	return &Model{
		Header: header,
		Bones:  bones,
		Meshes: meshes,
		Status: KindNone,
	}, nil
}

// ParseBinary decodes a binary model held in memory.
func ParseBinary(data []byte, opts Options) (*Model, error) {
	return DecodeBinary(bytes.NewReader(data), opts)
}

func (d *binaryDecoder) str() string {
	return readPrefixedString(d.c, d.cs)
}

func (d *binaryDecoder) xyz() [3]float32 {
	return [3]float32{d.c.Float32(), d.c.Float32(), d.c.Float32()}
}

func (d *binaryDecoder) readBones() []Bone {
	count := d.c.Uint32()
	bones := make([]Bone, 0, min(count, maxPrealloc))
	for i := uint32(0); i < count && !d.c.Exhausted(); i++ {
		name := d.str()
		parent := d.c.Int16()
		bones = append(bones, Bone{
			ID:       int16(i),
			Name:     name,
			ParentID: parent,
			Position: d.xyz(),
		})
	}
	return bones
}

func (d *binaryDecoder) readMeshes(hasTangents, hasBones bool) ([]Mesh, error) {
	count := d.c.Uint32()
	meshes := make([]Mesh, 0, min(count, maxPrealloc))
	for i := uint32(0); i < count && !d.c.Exhausted(); i++ {
		mesh, err := d.readMesh(hasTangents, hasBones)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

func (d *binaryDecoder) readMesh(hasTangents, hasBones bool) (Mesh, error) {
	mesh := Mesh{Name: d.str()}
	if mesh.Name == "" {
		mesh.Name = UnnamedMesh
	}
	uvLayers := d.c.Uint32()
	mesh.UVCount = uint16(uvLayers)

	texCount := d.c.Uint32()
	mesh.Textures = make([]Texture, 0, min(texCount, maxPrealloc))
	for i := uint32(0); i < texCount && !d.c.Exhausted(); i++ {
		file, err := TextureFileName(d.str())
		if err != nil {
			return Mesh{}, fmt.Errorf("texture %d: %w", i, err)
		}
		mesh.Textures = append(mesh.Textures, Texture{
			ID:      uint16(i),
			File:    file,
			UVLayer: uint16(d.c.Uint32()),
		})
	}

	vertexCount := d.c.Uint32()
	mesh.Vertices = make([]Vertex, 0, min(vertexCount, maxPrealloc))
	for i := uint32(0); i < vertexCount && !d.c.Exhausted(); i++ {
		mesh.Vertices = append(mesh.Vertices, d.readVertex(uvLayers, hasTangents, hasBones))
	}

	triCount := d.c.Uint32()
	mesh.Faces = make([]uint32, 0, 3*min(triCount, maxPrealloc))
	for i := uint32(0); i < triCount && !d.c.Exhausted(); i++ {
		a, b, c := d.c.Uint32(), d.c.Uint32(), d.c.Uint32()
		mesh.Faces = appendTriangle(mesh.Faces, a, b, c, d.opts.ReverseWinding)
	}
	return mesh, nil
}

// readVertex reads one vertex record. Its shape depends on the UV layer
// count, the legacy tangent era and whether the model has a skeleton.
func (d *binaryDecoder) readVertex(uvLayers uint32, hasTangents, hasBones bool) Vertex {
	v := Vertex{
		Position: d.xyz(),
		Normal:   d.xyz(),
		Color:    [4]uint8{d.c.Uint8(), d.c.Uint8(), d.c.Uint8(), d.c.Uint8()},
	}

	for layer := uint32(0); layer < uvLayers && !d.c.Exhausted(); layer++ {
		uv := [2]float32{d.c.Float32(), d.opts.flipV(d.c.Float32())}
		if layer < MaxUVLayers {
			v.UV[layer] = uv
		}
		if hasTangents {
			d.c.Skip(4 * 4)
		}
	}

	if hasBones {
		var ids [MaxBoneWeights]int16
		for i := range ids {
			ids[i] = d.c.Int16()
		}
		for i := range v.BoneWeights {
			v.BoneWeights[i] = BoneWeight{ID: ids[i], Weight: d.c.Float32()}
		}
	}
	return v
}

// appendTriangle appends one triangle, swapping the last two corners when
// the winding is reversed.
func appendTriangle(faces []uint32, a, b, c uint32, reverse bool) []uint32 {
	if reverse {
		return append(faces, a, c, b)
	}
	return append(faces, a, b, c)
}
