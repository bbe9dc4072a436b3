package xps

import (
	"bytes"
	"fmt"
	"io"
)

type textDecoder struct {
	t    *Tokenizer
	opts Options
}

// DecodeText decodes a text (.ascii) model. Text models have no header;
// the returned model carries DefaultHeader().
func DecodeText(r io.Reader, opts Options) (*Model, error) {
	d := &textDecoder{t: NewTokenizer(r, opts.charset()), opts: opts}

	bones := d.readBones()
	meshes, err := d.readMeshes(len(bones) > 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMeshReadASCII, err)
	}

	return &Model{
		Header: DefaultHeader(),
		Bones:  bones,
		Meshes: meshes,
		Status: KindNone,
	}, nil
}

// ParseText decodes a text model held in memory.
func ParseText(data []byte, opts Options) (*Model, error) {
	return DecodeText(bytes.NewReader(data), opts)
}

// readBones reads the skeleton. Each bone is stored as a name line, a parent
// index line and a position line.
func (d *textDecoder) readBones() []Bone {
	count := d.t.Int()
	var bones []Bone
	for i := int32(0); i < count && !d.t.Exhausted(); i++ {
		name := d.t.String()
		parent := d.t.Int()
		bones = append(bones, Bone{
			ID:       int16(i),
			Name:     name,
			ParentID: int16(parent),
			Position: d.t.XYZ(),
		})
	}
	return bones
}

func (d *textDecoder) readMeshes(hasBones bool) ([]Mesh, error) {
	count := d.t.Int()
	var meshes []Mesh
	for i := int32(0); i < count && !d.t.Exhausted(); i++ {
		mesh, err := d.readMesh(hasBones)
		if err != nil {
			return nil, fmt.Errorf("mesh %d (line %d): %w", i, d.t.LineNumber(), err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

func (d *textDecoder) readMesh(hasBones bool) (Mesh, error) {
	mesh := Mesh{Name: d.t.String()}
	if mesh.Name == "" {
		mesh.Name = UnnamedMesh
	}
	uvLayers := max(d.t.Int(), 0)
	mesh.UVCount = uint16(uvLayers)

	texCount := d.t.Int()
	for i := int32(0); i < texCount && !d.t.Exhausted(); i++ {
		file, err := TextureFileName(d.t.String())
		if err != nil {
			return Mesh{}, fmt.Errorf("texture %d: %w", i, err)
		}
		mesh.Textures = append(mesh.Textures, Texture{
			ID:      uint16(i),
			File:    file,
			UVLayer: uint16(d.t.Int()),
		})
	}

	vertexCount := d.t.Int()
	for i := int32(0); i < vertexCount && !d.t.Exhausted(); i++ {
		mesh.Vertices = append(mesh.Vertices, d.readVertex(int(uvLayers), hasBones))
	}

	triCount := d.t.Int()
	for i := int32(0); i < triCount && !d.t.Exhausted(); i++ {
		idx := d.t.Ints(3)
		mesh.Faces = appendTriangle(mesh.Faces, uint32(idx[0]), uint32(idx[1]), uint32(idx[2]), d.opts.ReverseWinding)
	}
	return mesh, nil
}

// readVertex reads one vertex: position, normal, color, one line per UV
// layer, then bone ids and weights when the model has a skeleton.
func (d *textDecoder) readVertex(uvLayers int, hasBones bool) Vertex {
	v := Vertex{
		Position: d.t.XYZ(),
		Normal:   d.t.XYZ(),
	}
	color := d.t.Ints(4)
	v.Color = [4]uint8{uint8(color[0]), uint8(color[1]), uint8(color[2]), uint8(color[3])}

	for layer := 0; layer < uvLayers && !d.t.Exhausted(); layer++ {
		uv := d.t.Floats(2)
		if layer < MaxUVLayers {
			v.UV[layer] = [2]float32{uv[0], d.opts.flipV(uv[1])}
		}
	}

	if hasBones {
		ids := d.t.Ints(MaxBoneWeights)
		weights := PadValues(d.t.Values(), MaxBoneWeights, "0")
		for i := range v.BoneWeights {
			w, _ := ParseFloat(weights[i])
			v.BoneWeights[i] = BoneWeight{ID: int16(ids[i]), Weight: w}
		}
	}
	return v
}
