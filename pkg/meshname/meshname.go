// Package meshname parses the XNALara mesh name convention:
//
//	renderGroup_meshName_specular_bump1Scale_bump2Scale_camera_target...
//
// A mesh name starting with '+' or '-' is an optional item, visible or hidden
// by default, written as "+item.part".
package meshname

import (
	"strconv"
	"strings"
)

const (
	separator = "_"

	defaultSpecular = 0.1
	// emptyName stands in for an empty mesh name.
	emptyName = "null"
	// defaultCameraTarget is used when a camera is named without targets.
	defaultCameraTarget = "root"
)

// Name is a parsed mesh name.
type Name struct {
	Full   string
	Tokens []string

	RenderGroup string
	MeshName    string
	ItemName    string
	ItemPart    string

	Specular   float32
	Bump1Scale float32
	Bump2Scale float32

	CameraName    string
	CameraTargets []string

	HasRenderGroup   bool
	HasSpecular      bool
	HasBump1Scale    bool
	HasBump2Scale    bool
	HasCameraTargets bool
	HasOptionalItems bool
	VisibleByDefault bool
}

// Parse splits a mesh name into its convention fields. Any string parses;
// missing or malformed fields take their defaults.
func Parse(name string) Name {
	if name == "" {
		name = emptyName
	}
	n := Name{
		Full:             name,
		Tokens:           strings.Split(name, separator),
		RenderGroup:      "0",
		Specular:         defaultSpecular,
		VisibleByDefault: true,
	}

	if len(n.Tokens) < 2 {
		n.MeshName = name
		n.ItemName = name
		n.ItemPart = name
		n.VisibleByDefault = false
	} else {
		n.HasRenderGroup = true
		n.RenderGroup = n.Tokens[0]
		n.MeshName = n.Tokens[1]
		n.ItemName = n.Tokens[1]
		n.ItemPart = n.Tokens[1]
		n.VisibleByDefault = n.Tokens[0] != "0"
	}

	if len(n.Tokens) > 2 {
		n.Specular, n.HasSpecular = n.param(2, defaultSpecular)
		n.Bump1Scale, n.HasBump1Scale = n.param(3, 0)
		n.Bump2Scale, n.HasBump2Scale = n.param(4, 0)
	}

	if len(n.Tokens) > 5 {
		n.HasCameraTargets = true
		n.CameraName = n.Tokens[5]
		if len(n.Tokens) == 6 {
			n.CameraTargets = []string{defaultCameraTarget}
		} else {
			n.CameraTargets = append([]string(nil), n.Tokens[6:]...)
		}
	}

	if strings.HasPrefix(n.MeshName, "+") || strings.HasPrefix(n.MeshName, "-") {
		n.parseOptionalItem()
	}
	return n
}

// param parses token i as a float, returning fallback and false when the
// token is missing or malformed.
func (n *Name) param(i int, fallback float32) (float32, bool) {
	if i >= len(n.Tokens) {
		return fallback, false
	}
	v, err := strconv.ParseFloat(n.Tokens[i], 32)
	if err != nil {
		return fallback, false
	}
	return float32(v), true
}

// parseOptionalItem splits "+item.part" into its item and part names.
func (n *Name) parseOptionalItem() {
	n.HasOptionalItems = true
	n.VisibleByDefault = strings.HasPrefix(n.MeshName, "+")

	body := n.MeshName[1:]
	item, part, found := strings.Cut(body, ".")
	n.ItemName = item
	if found {
		n.ItemPart = part
	} else {
		n.ItemPart = item
	}
}

// RenderGroupNumber returns the numeric render group, or 0 when it is not a
// number.
func (n Name) RenderGroupNumber() int {
	v, err := strconv.Atoi(n.RenderGroup)
	if err != nil {
		return 0
	}
	return v
}

// RenderParameters returns the specular and bump scale fields joined as
// they appear in a normalized name.
func (n Name) RenderParameters() string {
	return strings.Join([]string{
		formatFloat(n.Specular),
		formatFloat(n.Bump1Scale),
		formatFloat(n.Bump2Scale),
	}, separator)
}

// Normalized returns the name rebuilt with every field present:
// group_mesh_specular_bump1_bump2[_camera_target...].
func (n Name) Normalized() string {
	mesh := n.MeshName
	if n.HasOptionalItems {
		sign := "-"
		if n.VisibleByDefault {
			sign = "+"
		}
		mesh = sign + n.ItemName + "." + n.ItemPart
	}

	parts := []string{n.RenderGroup, mesh, n.RenderParameters()}
	if n.HasCameraTargets {
		parts = append(parts, n.CameraName)
		parts = append(parts, n.CameraTargets...)
	}
	return strings.Join(parts, separator)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
