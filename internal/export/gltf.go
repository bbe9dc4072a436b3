// Package export converts decoded models to glTF 2.0.
package export

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/xps-import/pkg/material"
	"github.com/Faultbox/xps-import/pkg/meshname"
	"github.com/Faultbox/xps-import/pkg/xps"
)

// Options configures document generation.
type Options struct {
	// DoubleSided disables back-face culling on every material.
	DoubleSided bool
}

var (
	identityMatrix   = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	identityRotation = [4]float32{0, 0, 0, 1}
	unitScale        = [3]float32{1, 1, 1}
)

// Document builds a glTF document with one node per bone, one skin covering
// the whole skeleton and one mesh per model mesh. Meshes without a valid
// triangle are left out.
func Document(model *xps.Model, opts Options) *gltf.Document {
	doc := gltf.NewDocument()
	b := &builder{doc: doc, model: model, opts: opts, images: make(map[string]uint32)}

	b.skeleton()
	for i := range model.Meshes {
		b.mesh(&model.Meshes[i])
	}
	return doc
}

type builder struct {
	doc   *gltf.Document
	model *xps.Model
	opts  Options

	skin   *uint32
	images map[string]uint32 // file name -> texture index
}

// parent returns the parent index of bone i, or -1 when the bone is a root:
// no parent, a parent out of range, or a parent chain that loops.
func (b *builder) parent(i int) int {
	bones := b.model.Bones
	p := int(bones[i].ParentID)
	if p < 0 || p >= len(bones) || p == i {
		return -1
	}
	for cur, steps := p, 0; cur >= 0; steps++ {
		if cur == i || steps > len(bones) {
			return -1
		}
		next := int(bones[cur].ParentID)
		if next < 0 || next >= len(bones) || next == cur {
			break
		}
		cur = next
	}
	return p
}

func (b *builder) skeleton() {
	bones := b.model.Bones
	if len(bones) == 0 {
		return
	}

	first := uint32(len(b.doc.Nodes))
	joints := make([]uint32, len(bones))
	inverseBind := make([][4][4]float32, len(bones))

	for i := range bones {
		pos := vec3(bones[i].Position)
		local := pos
		if p := b.parent(i); p >= 0 {
			local = pos.Sub(vec3(bones[p].Position))
		}

		b.doc.Nodes = append(b.doc.Nodes, &gltf.Node{
			Name:        bones[i].Name,
			Matrix:      identityMatrix,
			Rotation:    identityRotation,
			Scale:       unitScale,
			Translation: [3]float32(local),
		})
		joints[i] = first + uint32(i)
		inverseBind[i] = columns(mgl32.Translate3D(-pos.X(), -pos.Y(), -pos.Z()))
	}

	for i := range bones {
		if p := b.parent(i); p >= 0 {
			node := b.doc.Nodes[joints[p]]
			node.Children = append(node.Children, joints[i])
		} else {
			b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, joints[i])
		}
	}

	ibm := modeler.WriteAccessor(b.doc, gltf.TargetNone, inverseBind)
	b.doc.Skins = append(b.doc.Skins, &gltf.Skin{
		Name:                "skeleton",
		InverseBindMatrices: gltf.Index(ibm),
		Joints:              joints,
	})
	b.skin = gltf.Index(uint32(len(b.doc.Skins) - 1))
}

func (b *builder) mesh(mesh *xps.Mesh) {
	count := len(mesh.Vertices)
	indices := validTriangles(mesh.Faces, count)
	if len(indices) == 0 {
		return
	}

	positions := make([][3]float32, count)
	normals := make([][3]float32, count)
	colors := make([][4]uint8, count)
	for i, v := range mesh.Vertices {
		positions[i] = finite3(v.Position)
		normals[i] = normal(v.Normal)
		colors[i] = v.Color
	}

	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(b.doc, positions),
		"NORMAL":   modeler.WriteNormal(b.doc, normals),
		"COLOR_0":  modeler.WriteColor(b.doc, colors),
	}

	layers := min(int(mesh.UVCount), xps.MaxUVLayers)
	for layer := 0; layer < layers; layer++ {
		uvs := make([][2]float32, count)
		for i, v := range mesh.Vertices {
			uvs[i] = [2]float32{finite(v.UV[layer][0]), finite(v.UV[layer][1])}
		}
		attributes[fmt.Sprintf("TEXCOORD_%d", layer)] = modeler.WriteTextureCoord(b.doc, uvs)
	}

	if b.skin != nil {
		joints, weights := b.influences(mesh)
		attributes["JOINTS_0"] = modeler.WriteJoints(b.doc, joints)
		attributes["WEIGHTS_0"] = modeler.WriteWeights(b.doc, weights)
	}

	name := meshname.Parse(mesh.Name)
	group, _ := material.Lookup(name.RenderGroupNumber())

	b.doc.Materials = append(b.doc.Materials, b.material(mesh, group, layers))
	b.doc.Meshes = append(b.doc.Meshes, &gltf.Mesh{
		Name: mesh.Name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(modeler.WriteIndices(b.doc, indices)),
			Attributes: attributes,
			Material:   gltf.Index(uint32(len(b.doc.Materials) - 1)),
		}},
		Extras: meshExtras(mesh, name),
	})

	node := &gltf.Node{
		Name:     name.MeshName,
		Mesh:     gltf.Index(uint32(len(b.doc.Meshes) - 1)),
		Skin:     b.skin,
		Matrix:   identityMatrix,
		Rotation: identityRotation,
		Scale:    unitScale,
	}
	b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, uint32(len(b.doc.Nodes)))
	b.doc.Nodes = append(b.doc.Nodes, node)
}

// influences returns per-vertex joints and weights normalized to sum to 1.
// Weights on missing bones are dropped; an unweighted vertex follows joint 0.
func (b *builder) influences(mesh *xps.Mesh) ([][4]uint16, [][4]float32) {
	boneCount := len(b.model.Bones)
	joints := make([][4]uint16, len(mesh.Vertices))
	weights := make([][4]float32, len(mesh.Vertices))

	for i, v := range mesh.Vertices {
		var sum float32
		for k, w := range v.BoneWeights {
			if w.ID < 0 || int(w.ID) >= boneCount || !(w.Weight > 0) || math.IsInf(float64(w.Weight), 0) {
				continue
			}
			joints[i][k] = uint16(w.ID)
			weights[i][k] = w.Weight
			sum += w.Weight
		}
		if sum == 0 {
			weights[i] = [4]float32{1, 0, 0, 0}
			continue
		}
		for k := range weights[i] {
			weights[i][k] /= sum
		}
	}
	return joints, weights
}

func (b *builder) material(mesh *xps.Mesh, group material.RenderGroup, layers int) *gltf.Material {
	white := [4]float32{1, 1, 1, 1}
	metallic := float32(0)

	mat := &gltf.Material{
		Name:        mesh.Name,
		DoubleSided: b.opts.DoubleSided,
		AlphaMode:   gltf.AlphaOpaque,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &white,
			MetallicFactor:  &metallic,
		},
	}
	if group.Alpha {
		mat.AlphaMode = gltf.AlphaBlend
	}

	for i, tex := range mesh.Textures {
		if role, ok := group.TextureRole(i); !ok || role != material.Diffuse {
			continue
		}
		info := &gltf.TextureInfo{Index: b.texture(tex.File)}
		if int(tex.UVLayer) < layers {
			info.TexCoord = uint32(tex.UVLayer)
		}
		mat.PBRMetallicRoughness.BaseColorTexture = info
		break
	}
	return mat
}

// texture returns the index of a texture sourcing file, adding it on first
// use. Images are referenced by file name relative to the output.
func (b *builder) texture(file string) uint32 {
	if idx, ok := b.images[file]; ok {
		return idx
	}
	b.doc.Images = append(b.doc.Images, &gltf.Image{Name: file, URI: file})
	b.doc.Textures = append(b.doc.Textures, &gltf.Texture{
		Source: gltf.Index(uint32(len(b.doc.Images) - 1)),
	})
	idx := uint32(len(b.doc.Textures) - 1)
	b.images[file] = idx
	return idx
}

func meshExtras(mesh *xps.Mesh, name meshname.Name) map[string]any {
	textures := make([]string, len(mesh.Textures))
	for i, t := range mesh.Textures {
		textures[i] = t.File
	}
	return map[string]any{
		"renderGroup": name.RenderGroupNumber(),
		"normalized":  name.Normalized(),
		"visible":     name.VisibleByDefault,
		"textures":    textures,
	}
}

// validTriangles returns the triangles whose three indices are below count.
func validTriangles(faces []uint32, count int) []uint32 {
	out := make([]uint32, 0, len(faces))
	for i := 0; i+2 < len(faces); i += 3 {
		a, b, c := faces[i], faces[i+1], faces[i+2]
		if int(a) >= count || int(b) >= count || int(c) >= count {
			continue
		}
		out = append(out, a, b, c)
	}
	return out
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3(finite3(v))
}

// columns splits a column-major matrix into its four columns.
func columns(m mgl32.Mat4) [4][4]float32 {
	return [4][4]float32{
		{m[0], m[1], m[2], m[3]},
		{m[4], m[5], m[6], m[7]},
		{m[8], m[9], m[10], m[11]},
		{m[12], m[13], m[14], m[15]},
	}
}

func finite(f float32) float32 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return 0
	}
	return f
}

func finite3(v [3]float32) [3]float32 {
	return [3]float32{finite(v[0]), finite(v[1]), finite(v[2])}
}

// normal returns n normalized, or +Z when n has no usable direction.
func normal(n [3]float32) [3]float32 {
	v := mgl32.Vec3(finite3(n))
	if v.Len() < 1e-6 {
		return [3]float32{0, 0, 1}
	}
	return [3]float32(v.Normalize())
}

// Write encodes doc to w, as a .glb container when binary is set. JSON
// output embeds buffers as data URIs.
func Write(w io.Writer, doc *gltf.Document, binary bool) error {
	if !binary {
		for _, buf := range doc.Buffers {
			if buf.URI == "" {
				buf.URI = "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Data)
			}
		}
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	return enc.Encode(doc)
}

// WriteFile writes doc to path, as binary glTF when path ends in ".glb".
func WriteFile(path string, doc *gltf.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, doc, strings.EqualFold(filepath.Ext(path), ".glb"))
}

// modelSuffixes are stripped from input names, longest first.
var modelSuffixes = []string{".mesh.ascii", ".xps.ascii", ".ascii", ".mesh", ".xps"}

// OutputPath returns the glTF path for a model file: the input base name
// with its model suffix replaced, placed in dir (or next to the input when
// dir is empty).
func OutputPath(input, dir string, binary bool) string {
	base := filepath.Base(input)
	lower := strings.ToLower(base)
	for _, suffix := range modelSuffixes {
		if strings.HasSuffix(lower, suffix) {
			base = base[:len(base)-len(suffix)]
			break
		}
	}
	ext := ".gltf"
	if binary {
		ext = ".glb"
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base+ext)
}
