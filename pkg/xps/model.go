// Package xps decodes XNALara/XPS skinned character models from the binary
// (.xps, .mesh) and text (.ascii) encodings into one in-memory scene graph.
package xps

import "fmt"

// Header constants written by the reference exporter.
const (
	MagicNumber     = 323232
	DefaultMajor    = 2
	DefaultMinor    = 15
	DefaultToolName = "XNAaraL"
	DefaultSettings = 275

	// UnnamedMesh replaces an empty mesh name.
	UnnamedMesh = "unnamed"

	// MaxUVLayers is the number of UV layers a Vertex stores.
	MaxUVLayers = 3
	// MaxBoneWeights is the number of influence slots per Vertex.
	MaxBoneWeights = 4
)

// Version is the binary format version.
type Version struct {
	Major uint16
	Minor uint16
}

// String returns the version as "Major.Minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Legacy reports whether the version belongs to the old exporter era:
// raw settings block and per-layer tangent data in every vertex.
// Both fields are compared independently, as the exporter does.
func (v Version) Legacy() bool {
	return v.Major <= 1 && v.Minor <= 12
}

// Header holds binary file provenance. Text models carry DefaultHeader().
type Header struct {
	Magic          uint32
	Major          uint16
	Minor          uint16
	ToolName       string
	SettingsLength uint32 // in 32-bit words
	Machine        string
	User           string
	File           string

	// PoseText is the raw default pose embedded in the settings block.
	PoseText    string
	DefaultPose map[string]BonePose
}

// DefaultHeader returns the header synthesized for models without one.
func DefaultHeader() Header {
	return Header{
		Magic:          MagicNumber,
		Major:          DefaultMajor,
		Minor:          DefaultMinor,
		ToolName:       DefaultToolName,
		SettingsLength: DefaultSettings,
	}
}

// Version returns the header's format version.
func (h *Header) Version() Version {
	return Version{Major: h.Major, Minor: h.Minor}
}

// HasTangents reports whether vertices carry legacy tangent data.
func (h *Header) HasTangents() bool {
	return h.Version().Legacy()
}

// Bone is a skeleton joint. ParentID is stored exactly as read.
type Bone struct {
	ID       int16
	Name     string
	Position [3]float32
	ParentID int16
}

// BonePose is a per-bone delta from the rest pose.
type BonePose struct {
	Name            string
	CoordinateDelta [3]float32
	RotationDelta   [3]float32
	Scale           [3]float32
}

// Texture references an image by file name (directory stripped).
type Texture struct {
	ID      uint16
	File    string
	UVLayer uint16
}

// BoneWeight is a single skinning influence.
type BoneWeight struct {
	ID     int16
	Weight float32
}

// Vertex is one decoded vertex record.
type Vertex struct {
	Position    [3]float32
	Normal      [3]float32
	Color       [4]uint8
	UV          [MaxUVLayers][2]float32
	BoneWeights [MaxBoneWeights]BoneWeight
}

// Mesh is a textured triangle list.
type Mesh struct {
	Name     string
	Textures []Texture
	Vertices []Vertex
	Faces    []uint32 // 3 indices per triangle
	UVCount  uint16
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces) / 3
}

// Model is the decoded scene graph.
type Model struct {
	Header Header
	Bones  []Bone
	Meshes []Mesh
	Status ErrorKind
}

// HasSkeleton reports whether the model has at least one bone.
func (m *Model) HasSkeleton() bool {
	return len(m.Bones) > 0
}

// TotalVertexCount returns the number of vertices across all meshes.
func (m *Model) TotalVertexCount() int {
	total := 0
	for i := range m.Meshes {
		total += len(m.Meshes[i].Vertices)
	}
	return total
}

// TotalTriangleCount returns the number of triangles across all meshes.
func (m *Model) TotalTriangleCount() int {
	total := 0
	for i := range m.Meshes {
		total += m.Meshes[i].TriangleCount()
	}
	return total
}

// BoneByName returns the first bone with the given name, or nil.
func (m *Model) BoneByName(name string) *Bone {
	for i := range m.Bones {
		if m.Bones[i].Name == name {
			return &m.Bones[i]
		}
	}
	return nil
}

// Children returns the bones whose parent is id. A bone listing itself as
// parent is not its own child.
func (m *Model) Children(id int16) []*Bone {
	var children []*Bone
	for i := range m.Bones {
		if m.Bones[i].ParentID == id && m.Bones[i].ID != id {
			children = append(children, &m.Bones[i])
		}
	}
	return children
}
