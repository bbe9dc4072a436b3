package xps

import (
	"errors"
	"testing"
)

func TestParseBinary_MinimalModel(t *testing.T) {
	b := &builder{}
	b.modernHeader()
	b.u32(1).bone("root", -1, 0, 0, 0)
	b.u32(1).str("body").u32(0).u32(0)
	b.u32(1).vertex([3]float32{1, 2, 3}, 0, false, true)
	b.u32(0)

	model, err := ParseBinary(b.Bytes(), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseBinary failed: %v", err)
	}
	if model.Status != KindNone {
		t.Errorf("Status = %v, want None", model.Status)
	}
	if len(model.Bones) != 1 {
		t.Fatalf("got %d bones, want 1", len(model.Bones))
	}
	root := model.Bones[0]
	if root.ID != 0 || root.Name != "root" || root.ParentID != -1 || root.Position != [3]float32{} {
		t.Errorf("root = %+v", root)
	}

	if len(model.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(model.Meshes))
	}
	mesh := model.Meshes[0]
	if mesh.Name != "body" || mesh.UVCount != 0 || len(mesh.Textures) != 0 || len(mesh.Faces) != 0 {
		t.Errorf("mesh = %+v", mesh)
	}
	if len(mesh.Vertices) != 1 {
		t.Fatalf("got %d vertices, want 1", len(mesh.Vertices))
	}
	v := mesh.Vertices[0]
	if v.Position != [3]float32{1, 2, 3} || v.Normal != [3]float32{0, 1, 0} {
		t.Errorf("vertex position/normal = %v / %v", v.Position, v.Normal)
	}
	if v.Color != [4]uint8{10, 20, 30, 255} {
		t.Errorf("Color = %v", v.Color)
	}
	want := [MaxBoneWeights]BoneWeight{{0, 0.75}, {1, 0.25}, {0, 0}, {0, 0}}
	if v.BoneWeights != want {
		t.Errorf("BoneWeights = %v, want %v", v.BoneWeights, want)
	}
}

func TestParseBinary_NoSkeletonOmitsWeights(t *testing.T) {
	b := &builder{}
	b.modernHeader()
	b.u32(0)
	b.u32(1).str("prop").u32(1).u32(0)
	b.u32(2)
	b.vertex([3]float32{0, 0, 0}, 1, false, false)
	b.vertex([3]float32{1, 0, 0}, 1, false, false)
	b.u32(0)

	model, err := ParseBinary(b.Bytes(), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseBinary failed: %v", err)
	}
	if model.HasSkeleton() {
		t.Error("model should have no skeleton")
	}
	verts := model.Meshes[0].Vertices
	if len(verts) != 2 || verts[1].Position != [3]float32{1, 0, 0} {
		t.Fatalf("vertices = %+v", verts)
	}
	if verts[1].BoneWeights != [MaxBoneWeights]BoneWeight{} {
		t.Errorf("BoneWeights = %v, want zero", verts[1].BoneWeights)
	}
}

func TestParseBinary_LegacyTangents(t *testing.T) {
	b := &builder{}
	b.legacyHeader(3)
	b.u32(1).bone("root", -1, 0, 0, 0)
	b.u32(1).str("body").u32(2).u32(0)
	b.u32(2)
	b.vertex([3]float32{1, 1, 1}, 2, true, true)
	b.vertex([3]float32{2, 2, 2}, 2, true, true)
	b.u32(1).u32(0).u32(1).u32(0)

	model, err := ParseBinary(b.Bytes(), Options{})
	if err != nil {
		t.Fatalf("ParseBinary failed: %v", err)
	}
	mesh := model.Meshes[0]
	if len(mesh.Vertices) != 2 {
		t.Fatalf("got %d vertices, want 2", len(mesh.Vertices))
	}
	second := mesh.Vertices[1]
	if second.Position != [3]float32{2, 2, 2} {
		t.Errorf("second vertex misaligned: %v", second.Position)
	}
	if !approx(second.UV[1][0], 0.25) || !approx(second.UV[1][1], 0.3) {
		t.Errorf("UV[1] = %v, want (0.25, 0.3)", second.UV[1])
	}
	if got := mesh.Faces; len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 0 {
		t.Errorf("Faces = %v", got)
	}
}

func TestParseBinary_Textures(t *testing.T) {
	b := &builder{}
	b.modernHeader()
	b.u32(0)
	b.u32(1).str("").u32(1).u32(3)
	b.str(`C:\models\tex\skin.png`).u32(0)
	b.str("textures/hair.dds").u32(1)
	b.str("eye.tga").u32(2)
	b.u32(0).u32(0)

	model, err := ParseBinary(b.Bytes(), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseBinary failed: %v", err)
	}
	mesh := model.Meshes[0]
	if mesh.Name != UnnamedMesh {
		t.Errorf("Name = %q, want %q", mesh.Name, UnnamedMesh)
	}
	want := []Texture{
		{ID: 0, File: "skin.png", UVLayer: 0},
		{ID: 1, File: "hair.dds", UVLayer: 1},
		{ID: 2, File: "eye.tga", UVLayer: 2},
	}
	if len(mesh.Textures) != len(want) {
		t.Fatalf("got %d textures, want %d", len(mesh.Textures), len(want))
	}
	for i, tex := range want {
		if mesh.Textures[i] != tex {
			t.Errorf("texture %d = %+v, want %+v", i, mesh.Textures[i], tex)
		}
	}
}

func TestParseBinary_EmptyTexturePath(t *testing.T) {
	b := &builder{}
	b.modernHeader()
	b.u32(0)
	b.u32(1).str("body").u32(1).u32(1)
	b.str("").u32(0)

	_, err := ParseBinary(b.Bytes(), DefaultOptions())
	if err == nil {
		t.Fatal("expected an error")
	}
	if KindOf(err) != KindMeshReadBin {
		t.Errorf("KindOf = %v, want MeshReadBin", KindOf(err))
	}
	if !errors.Is(err, ErrPathGetParent) {
		t.Errorf("error %v does not wrap ErrPathGetParent", err)
	}
}

func TestParseBinary_WindingAndFlip(t *testing.T) {
	build := func() []byte {
		b := &builder{}
		b.modernHeader()
		b.u32(0)
		b.u32(1).str("body").u32(1).u32(0)
		b.u32(1).vertex([3]float32{}, 1, false, false)
		b.u32(1).u32(5).u32(7).u32(9)
		return b.Bytes()
	}

	tests := []struct {
		name  string
		opts  Options
		faces []uint32
		v     float32
	}{
		{"defaults", DefaultOptions(), []uint32{5, 9, 7}, 0.7},
		{"raw", Options{}, []uint32{5, 7, 9}, 0.3},
		{"flip only", Options{FlipUV: true}, []uint32{5, 7, 9}, 0.7},
		{"reverse only", Options{ReverseWinding: true}, []uint32{5, 9, 7}, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := ParseBinary(build(), tt.opts)
			if err != nil {
				t.Fatalf("ParseBinary failed: %v", err)
			}
			mesh := model.Meshes[0]
			if len(mesh.Faces) != 3 {
				t.Fatalf("Faces = %v", mesh.Faces)
			}
			for i := range tt.faces {
				if mesh.Faces[i] != tt.faces[i] {
					t.Errorf("Faces = %v, want %v", mesh.Faces, tt.faces)
					break
				}
			}
			if got := mesh.Vertices[0].UV[0][1]; !approx(got, tt.v) {
				t.Errorf("v = %f, want %f", got, tt.v)
			}
		})
	}
}

func TestParseBinary_ExtraUVLayersDropped(t *testing.T) {
	b := &builder{}
	b.modernHeader()
	b.u32(0)
	b.u32(1).str("body").u32(5).u32(0)
	b.u32(2)
	b.vertex([3]float32{1, 0, 0}, 5, false, false)
	b.vertex([3]float32{2, 0, 0}, 5, false, false)
	b.u32(0)

	model, err := ParseBinary(b.Bytes(), Options{})
	if err != nil {
		t.Fatalf("ParseBinary failed: %v", err)
	}
	mesh := model.Meshes[0]
	if mesh.UVCount != 5 {
		t.Errorf("UVCount = %d, want 5", mesh.UVCount)
	}
	if len(mesh.Vertices) != 2 || mesh.Vertices[1].Position[0] != 2 {
		t.Fatalf("vertices misaligned: %+v", mesh.Vertices)
	}
	if !approx(mesh.Vertices[1].UV[2][0], 0.5) {
		t.Errorf("UV[2] = %v, want u 0.5", mesh.Vertices[1].UV[2])
	}
}

func TestParseBinary_Truncated(t *testing.T) {
	b := &builder{}
	b.modernHeader()
	b.u32(1000000).bone("root", -1, 0, 0, 0)

	model, err := ParseBinary(b.Bytes(), DefaultOptions())
	if err != nil {
		t.Fatalf("truncated input should decode leniently, got %v", err)
	}
	if len(model.Bones) == 0 || len(model.Bones) > 2 {
		t.Errorf("got %d bones, want the readable prefix", len(model.Bones))
	}
	if model.Bones[0].Name != "root" {
		t.Errorf("first bone = %+v", model.Bones[0])
	}
	if len(model.Meshes) != 0 {
		t.Errorf("got %d meshes, want 0", len(model.Meshes))
	}
}

func TestAppendTriangle(t *testing.T) {
	if got := appendTriangle(nil, 1, 2, 3, false); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("forward = %v", got)
	}
	if got := appendTriangle(nil, 1, 2, 3, true); got[0] != 1 || got[1] != 3 || got[2] != 2 {
		t.Errorf("reversed = %v", got)
	}
}
