// Package importer runs the model import pipeline: decode, bone renaming,
// and per-mesh render group resolution.
package importer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/xps-import/internal/config"
	"github.com/Faultbox/xps-import/internal/logger"
	"github.com/Faultbox/xps-import/pkg/bonenames"
	"github.com/Faultbox/xps-import/pkg/material"
	"github.com/Faultbox/xps-import/pkg/meshname"
	"github.com/Faultbox/xps-import/pkg/xps"
)

// Options configures an import.
type Options struct {
	Decode xps.Options
	Naming bonenames.Naming
}

// DefaultOptions returns the decoder defaults with names left as stored.
func DefaultOptions() Options {
	return Options{Decode: xps.DefaultOptions(), Naming: bonenames.Default}
}

// OptionsFromConfig resolves the import section of cfg.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	decode, err := cfg.Import.DecodeOptions()
	if err != nil {
		return Options{}, err
	}
	naming, err := cfg.Import.Naming()
	if err != nil {
		return Options{}, err
	}
	return Options{Decode: decode, Naming: naming}, nil
}

// MeshInfo is the resolved material description of one mesh.
type MeshInfo struct {
	Index      int
	Name       meshname.Name
	Group      material.RenderGroup
	KnownGroup bool
}

// Result is an imported model.
type Result struct {
	Path     string
	Format   xps.Format
	Model    *xps.Model
	Meshes   []MeshInfo
	Renamed  int      // bones renamed by the naming pass
	Warnings []string // consistency problems that did not stop decoding
	Elapsed  time.Duration
}

// Open imports the model at path.
func Open(path string, opts Options) (*Result, error) {
	start := time.Now()

	format, err := xps.FormatForPath(path)
	if err != nil {
		logger.Warn("unsupported model file", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	model, err := xps.Decode(path, opts.Decode)
	if err != nil {
		logger.Error("decoding model failed",
			zap.String("path", path),
			zap.Stringer("kind", xps.KindOf(err)),
			zap.Error(err))
		return nil, err
	}

	res := &Result{
		Path:   path,
		Format: format,
		Model:  model,
	}
	res.Renamed = bonenames.Rename(model, opts.Naming)
	res.Meshes = describeMeshes(model)
	res.Warnings = Check(model)
	res.Elapsed = time.Since(start)

	for _, w := range res.Warnings {
		logger.Warn("model check", zap.String("path", path), zap.String("problem", w))
	}
	logger.Info("model imported",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Stringer("version", model.Header.Version()),
		zap.Int("bones", len(model.Bones)),
		zap.Int("meshes", len(model.Meshes)),
		zap.Int("vertices", model.TotalVertexCount()),
		zap.Int("triangles", model.TotalTriangleCount()),
		zap.Int("renamed", res.Renamed),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

func describeMeshes(model *xps.Model) []MeshInfo {
	infos := make([]MeshInfo, len(model.Meshes))
	for i := range model.Meshes {
		mesh := &model.Meshes[i]
		name := meshname.Parse(mesh.Name)
		group, known := material.Lookup(name.RenderGroupNumber())
		infos[i] = MeshInfo{Index: i, Name: name, Group: group, KnownGroup: known}

		logger.Debug("mesh resolved",
			zap.String("mesh", mesh.Name),
			zap.Int("renderGroup", name.RenderGroupNumber()),
			zap.Bool("knownGroup", known),
			zap.Bool("alpha", group.Alpha),
			zap.Int("textures", len(mesh.Textures)),
			zap.Int("slots", group.TexCount()))
	}
	return infos
}

// Check reports references that point outside the model: parent ids, bone
// weight ids and face indices.
func Check(model *xps.Model) []string {
	var problems []string
	boneCount := len(model.Bones)

	for _, b := range model.Bones {
		if b.ParentID >= int16(boneCount) || b.ParentID < -1 {
			problems = append(problems, fmt.Sprintf("bone %d (%s): parent %d out of range", b.ID, b.Name, b.ParentID))
		}
	}

	for mi := range model.Meshes {
		mesh := &model.Meshes[mi]
		badWeights := 0
		for _, v := range mesh.Vertices {
			for _, w := range v.BoneWeights {
				if w.Weight != 0 && (w.ID < 0 || int(w.ID) >= boneCount) {
					badWeights++
				}
			}
		}
		if badWeights > 0 {
			problems = append(problems, fmt.Sprintf("mesh %d (%s): %d weights reference missing bones", mi, mesh.Name, badWeights))
		}

		badFaces := 0
		for _, idx := range mesh.Faces {
			if int(idx) >= len(mesh.Vertices) {
				badFaces++
			}
		}
		if badFaces > 0 {
			problems = append(problems, fmt.Sprintf("mesh %d (%s): %d face indices out of range", mi, mesh.Name, badFaces))
		}
	}
	return problems
}
