// Package material describes the XNALara render groups: the numeric code at
// the start of a mesh name that selects shading, transparency and the role
// of each texture slot.
package material

import "fmt"

// TextureType is the role of one texture slot in a render group.
type TextureType int

const (
	Diffuse TextureType = iota
	Lightmap
	Bumpmap
	Mask
	Bump1
	Bump2
	Specular
	Environment
	Emission
	EmissionMiniMap
)

var textureTypeNames = []string{
	"diffuse", "lightmap", "bumpmap", "mask", "bump1",
	"bump2", "specular", "environment", "emission", "emission_mini_map",
}

func (t TextureType) String() string {
	if int(t) >= 0 && int(t) < len(textureTypeNames) {
		return textureTypeNames[t]
	}
	return fmt.Sprintf("TextureType(%d)", int(t))
}

// SpecularMode is how a render group applies specular lighting.
type SpecularMode int

const (
	SpecularNo SpecularMode = iota
	SpecularYes
	SpecularIntensity
)

func (s SpecularMode) String() string {
	switch s {
	case SpecularNo:
		return "No"
	case SpecularYes:
		return "Yes"
	case SpecularIntensity:
		return "Yes intensity"
	default:
		return fmt.Sprintf("SpecularMode(%d)", int(s))
	}
}

// RenderGroup is the material preset selected by a render group code.
type RenderGroup struct {
	Alpha    bool // alpha blended
	Posable  bool // deformed by the skeleton
	Specular SpecularMode
	Bump1Rep bool // bump1 texture tiled by the mesh name's bump1 scale
	Bump2Rep bool
	Spec1Rep bool
	Textures []TextureType
}

// TexCount returns the number of texture slots the group expects.
func (g RenderGroup) TexCount() int {
	return len(g.Textures)
}

// TextureRole returns the role of texture slot i, or false when the group
// has no such slot.
func (g RenderGroup) TextureRole(i int) (TextureType, bool) {
	if i < 0 || i >= len(g.Textures) {
		return 0, false
	}
	return g.Textures[i], true
}

// Default is the preset used for unknown codes, and for 34 and 35.
var Default = RenderGroup{
	Posable:  true,
	Specular: SpecularYes,
	Bump1Rep: true,
	Bump2Rep: true,
	Textures: []TextureType{Diffuse, Mask, Mask, Mask, Mask, Mask},
}

var groups = map[int]RenderGroup{
	1: {Posable: true, Specular: SpecularYes, Bump1Rep: true, Bump2Rep: true, Textures: []TextureType{Diffuse, Lightmap, Bumpmap, Mask, Bump1, Bump2}},
	2: {Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse, Lightmap, Bumpmap}},
	3: {Posable: true, Specular: SpecularNo, Textures: []TextureType{Diffuse, Lightmap}},
	4: {Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse, Bumpmap}},
	5: {Posable: true, Specular: SpecularNo, Textures: []TextureType{Diffuse}},
	6: {Alpha: true, Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse, Bumpmap}},
	7: {Alpha: true, Posable: true, Specular: SpecularNo, Textures: []TextureType{Diffuse}},
	8: {Alpha: true, Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse, Lightmap, Bumpmap}},
	9: {Alpha: true, Posable: true, Specular: SpecularNo, Textures: []TextureType{Diffuse, Lightmap}},
	10: {Posable: true, Specular: SpecularNo, Textures: []TextureType{Diffuse}},
	11: {Posable: false, Specular: SpecularYes, Textures: []TextureType{Diffuse, Bumpmap}},
	12: {Alpha: true, Posable: false, Specular: SpecularYes, Textures: []TextureType{Diffuse, Bumpmap}},
	13: {Posable: false, Specular: SpecularNo, Textures: []TextureType{Diffuse}},
	14: {Posable: false, Specular: SpecularYes, Textures: []TextureType{Diffuse, Bumpmap}},
	15: {Alpha: true, Posable: false, Specular: SpecularYes, Textures: []TextureType{Diffuse, Bumpmap}},
	16: {Posable: false, Specular: SpecularNo, Textures: []TextureType{Diffuse}},
	17: {Posable: false, Specular: SpecularNo, Textures: []TextureType{Diffuse, Lightmap}},
	18: {Alpha: true, Posable: false, Specular: SpecularNo, Textures: []TextureType{Diffuse}},
	19: {Alpha: true, Posable: false, Specular: SpecularNo, Textures: []TextureType{Diffuse, Lightmap}},
	20: {Alpha: true, Posable: true, Specular: SpecularYes, Bump1Rep: true, Bump2Rep: true, Textures: []TextureType{Diffuse, Lightmap, Bumpmap, Mask, Bump1, Bump2}},
	21: {Alpha: true, Posable: true, Specular: SpecularNo, Textures: []TextureType{Diffuse}},
	22: {Posable: true, Specular: SpecularYes, Bump1Rep: true, Bump2Rep: true, Textures: []TextureType{Diffuse, Lightmap, Bumpmap, Mask, Bump1, Bump2, Specular}},
	23: {Alpha: true, Posable: true, Specular: SpecularYes, Bump1Rep: true, Bump2Rep: true, Textures: []TextureType{Diffuse, Lightmap, Bumpmap, Mask, Bump1, Bump2, Specular}},
	24: {Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse, Lightmap, Bumpmap, Specular}},
	25: {Alpha: true, Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse, Lightmap, Bumpmap, Specular}},
	26: {Posable: true, Specular: SpecularIntensity, Textures: []TextureType{Diffuse, Bumpmap, Environment, Mask}},
	27: {Alpha: true, Posable: true, Specular: SpecularIntensity, Textures: []TextureType{Diffuse, Bumpmap, Environment, Mask}},
	28: {Posable: true, Specular: SpecularIntensity, Bump1Rep: true, Bump2Rep: true, Textures: []TextureType{Diffuse, Bumpmap, Mask, Bump1, Bump2, Environment}},
	29: {Alpha: true, Posable: true, Specular: SpecularIntensity, Bump1Rep: true, Bump2Rep: true, Textures: []TextureType{Diffuse, Bumpmap, Mask, Bump1, Bump2, Environment}},
	30: {Posable: true, Specular: SpecularIntensity, Textures: []TextureType{Diffuse, Bumpmap, Emission}},
	31: {Alpha: true, Posable: true, Specular: SpecularIntensity, Textures: []TextureType{Diffuse, Bumpmap, Emission}},
	32: {Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse}},
	33: {Alpha: true, Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse}},
	34: Default,
	35: Default,
	36: {Posable: true, Specular: SpecularIntensity, Bump1Rep: true, Textures: []TextureType{Diffuse, Bumpmap, EmissionMiniMap}},
	37: {Alpha: true, Posable: true, Specular: SpecularIntensity, Bump1Rep: true, Textures: []TextureType{Diffuse, Bumpmap, EmissionMiniMap}},
	38: {Posable: true, Specular: SpecularIntensity, Bump1Rep: true, Textures: []TextureType{Diffuse, Bumpmap, Specular, Emission}},
	39: {Alpha: true, Posable: true, Specular: SpecularIntensity, Bump1Rep: true, Textures: []TextureType{Diffuse, Bumpmap, Specular, Emission}},
	40: {Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse, Bumpmap, Specular}},
	41: {Alpha: true, Posable: true, Specular: SpecularYes, Textures: []TextureType{Diffuse, Bumpmap, Specular}},
	42: {Posable: true, Specular: SpecularYes, Spec1Rep: true, Textures: []TextureType{Diffuse, Bumpmap, Specular}},
	43: {Alpha: true, Posable: true, Specular: SpecularYes, Spec1Rep: true, Textures: []TextureType{Diffuse, Bumpmap, Specular}},
}

// Lookup returns the preset for a render group code and whether the code
// is a known group. Unknown codes get Default.
func Lookup(code int) (RenderGroup, bool) {
	g, ok := groups[code]
	if !ok {
		g = Default
	}
	g.Textures = append([]TextureType(nil), g.Textures...)
	return g, ok
}
