// xpstool is a CLI utility for inspecting XNALara/XPS models and converting
// them to glTF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/xps-import/internal/config"
	"github.com/Faultbox/xps-import/internal/export"
	"github.com/Faultbox/xps-import/internal/importer"
	"github.com/Faultbox/xps-import/internal/logger"
	"github.com/Faultbox/xps-import/pkg/bonenames"
	"github.com/Faultbox/xps-import/pkg/xps"
)

var stdout io.Writer = os.Stdout

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(args)
	case "bones":
		return cmdBones(args)
	case "meshes":
		return cmdMeshes(args)
	case "pose":
		return cmdPose(args)
	case "dump":
		return cmdDump(args)
	case "gltf", "convert":
		return cmdGLTF(args)
	case "config":
		return cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `xpstool - XNALara/XPS model utility

Usage:
  xpstool <command> [options] <file>

Commands:
  info <model>                 Show header, counts and consistency warnings
  bones <model>                List the skeleton
  meshes <model>               List meshes, render groups and textures
  pose <model|file.pose>       Print the default pose
  dump [-n N] <model>          Dump the decoded model (N vertices per mesh)
  gltf [-o dir] <model>...     Convert models to glTF
  config [-save]               Print (or save) the effective configuration

Options shared by every command:
  -config, -debug, -flip-uv, -reverse-winding, -bone-naming,
  -encoding, -log-file, -log-format

Examples:
  xpstool info generic_item.mesh.ascii
  xpstool bones -bone-naming mecanim model.xps
  xpstool gltf -o out -format gltf *.xps`)
}

// command is a parsed subcommand invocation.
type command struct {
	fs    *flag.FlagSet
	flags *config.Flags
	cfg   *config.Config
}

// newCommand creates the flag set for a subcommand with the shared flags
// registered on it.
func newCommand(name string) *command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &command{fs: fs, flags: config.RegisterFlags(fs)}
}

// parse parses args, loads the configuration and sets up logging.
func (c *command) parse(args []string) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(c.flags)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logCfg := logger.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Console: os.Stderr,
	}
	if cfg.Logging.LogFile != "" {
		logCfg.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	return logger.Setup(logCfg)
}

// open imports the single model named on the command line.
func (c *command) open(usage string) (*importer.Result, error) {
	if c.fs.NArg() < 1 {
		return nil, fmt.Errorf("usage: xpstool %s", usage)
	}
	opts, err := importer.OptionsFromConfig(c.cfg)
	if err != nil {
		return nil, err
	}
	return importer.Open(c.fs.Arg(0), opts)
}

func cmdInfo(args []string) error {
	c := newCommand("info")
	if err := c.parse(args); err != nil {
		return err
	}
	defer logger.Sync()

	res, err := c.open("info <model>")
	if err != nil {
		return err
	}
	m := res.Model
	h := &m.Header

	fmt.Fprintf(stdout, "Model:     %s\n", res.Path)
	fmt.Fprintf(stdout, "Format:    %s\n", res.Format)
	fmt.Fprintf(stdout, "Version:   %s", h.Version())
	if h.Version().Legacy() {
		fmt.Fprint(stdout, " (legacy)")
	}
	fmt.Fprintln(stdout)
	if h.ToolName != "" {
		fmt.Fprintf(stdout, "Tool:      %s\n", h.ToolName)
	}
	if h.Machine != "" || h.User != "" || h.File != "" {
		fmt.Fprintf(stdout, "Source:    %s@%s %s\n", h.User, h.Machine, h.File)
	}
	fmt.Fprintf(stdout, "Bones:     %d\n", len(m.Bones))
	fmt.Fprintf(stdout, "Meshes:    %d\n", len(m.Meshes))
	fmt.Fprintf(stdout, "Vertices:  %d\n", m.TotalVertexCount())
	fmt.Fprintf(stdout, "Triangles: %d\n", m.TotalTriangleCount())
	if len(h.DefaultPose) > 0 {
		fmt.Fprintf(stdout, "Pose:      %d bones\n", len(h.DefaultPose))
	}
	if res.Renamed > 0 {
		fmt.Fprintf(stdout, "Renamed:   %d bones\n", res.Renamed)
	}

	if len(res.Warnings) > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Warnings:")
		for _, w := range res.Warnings {
			fmt.Fprintf(stdout, "  %s\n", w)
		}
	}
	return nil
}

func cmdBones(args []string) error {
	c := newCommand("bones")
	if err := c.parse(args); err != nil {
		return err
	}
	defer logger.Sync()

	res, err := c.open("bones <model>")
	if err != nil {
		return err
	}

	for _, b := range res.Model.Bones {
		slot := "-"
		if t, ok := bonenames.Lookup(b.Name); ok {
			slot = t.String()
		}
		fmt.Fprintf(stdout, "%4d  %-32s parent %4d  (%8.4f %8.4f %8.4f)  %s\n",
			b.ID, b.Name, b.ParentID, b.Position[0], b.Position[1], b.Position[2], slot)
	}
	return nil
}

func cmdMeshes(args []string) error {
	c := newCommand("meshes")
	if err := c.parse(args); err != nil {
		return err
	}
	defer logger.Sync()

	res, err := c.open("meshes <model>")
	if err != nil {
		return err
	}

	for _, info := range res.Meshes {
		mesh := &res.Model.Meshes[info.Index]
		group := fmt.Sprintf("group %d", info.Name.RenderGroupNumber())
		if !info.KnownGroup {
			group += " (default)"
		}
		if info.Group.Alpha {
			group += " alpha"
		}
		fmt.Fprintf(stdout, "%s\n", mesh.Name)
		fmt.Fprintf(stdout, "  %s, %d vertices, %d triangles, %d UV layers\n",
			group, len(mesh.Vertices), mesh.TriangleCount(), mesh.UVCount)
		fmt.Fprintf(stdout, "  specular %g, bump %g/%g\n",
			info.Name.Specular, info.Name.Bump1Scale, info.Name.Bump2Scale)
		for i, tex := range mesh.Textures {
			role := "unused"
			if r, ok := info.Group.TextureRole(i); ok {
				role = r.String()
			}
			fmt.Fprintf(stdout, "  [%d] %-12s %s (uv %d)\n", i, role, tex.File, tex.UVLayer)
		}
	}
	return nil
}

func cmdPose(args []string) error {
	c := newCommand("pose")
	if err := c.parse(args); err != nil {
		return err
	}
	defer logger.Sync()

	if c.fs.NArg() < 1 {
		return fmt.Errorf("usage: xpstool pose <model|file.pose>")
	}

	var pose map[string]xps.BonePose
	if path := c.fs.Arg(0); strings.EqualFold(filepath.Ext(path), ".pose") {
		cs, err := config.Charset(c.cfg.Import.Encoding)
		if err != nil {
			return err
		}
		if pose, err = xps.DecodePoseFile(path, cs); err != nil {
			return err
		}
	} else {
		res, err := c.open("pose <model|file.pose>")
		if err != nil {
			return err
		}
		pose = res.Model.Header.DefaultPose
	}

	if len(pose) == 0 {
		fmt.Fprintln(stdout, "(no pose)")
		return nil
	}

	names := make([]string, 0, len(pose))
	for name := range pose {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := pose[name]
		fmt.Fprintf(stdout, "%-32s rot %v  move %v  scale %v\n", name, p.RotationDelta, p.CoordinateDelta, p.Scale)
	}
	return nil
}

func cmdDump(args []string) error {
	c := newCommand("dump")
	limit := c.fs.Int("n", 3, "Vertices and faces to show per mesh (0 = all)")
	if err := c.parse(args); err != nil {
		return err
	}
	defer logger.Sync()

	res, err := c.open("dump [-n N] <model>")
	if err != nil {
		return err
	}

	model := *res.Model
	model.Meshes = make([]xps.Mesh, len(res.Model.Meshes))
	for i, mesh := range res.Model.Meshes {
		if *limit > 0 {
			mesh.Vertices = mesh.Vertices[:min(*limit, len(mesh.Vertices))]
			mesh.Faces = mesh.Faces[:min(*limit*3, len(mesh.Faces))]
		}
		model.Meshes[i] = mesh
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	cfg.Fdump(stdout, model)
	return nil
}

func cmdGLTF(args []string) error {
	c := newCommand("gltf")
	outDir := c.fs.String("o", "", "Output directory (default: next to each model)")
	format := c.fs.String("format", "", "Output format: glb or gltf (default from config)")
	if err := c.parse(args); err != nil {
		return err
	}
	defer logger.Sync()

	if c.fs.NArg() < 1 {
		return fmt.Errorf("usage: xpstool gltf [-o dir] <model>...")
	}

	binary := c.cfg.Export.Binary
	switch strings.ToLower(*format) {
	case "":
	case "glb":
		binary = true
	case "gltf":
		binary = false
	default:
		return fmt.Errorf("unknown output format %q", *format)
	}
	dir := c.cfg.Export.OutputDir
	if *outDir != "" {
		dir = *outDir
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	opts, err := importer.OptionsFromConfig(c.cfg)
	if err != nil {
		return err
	}
	manager := importer.NewManager(opts)
	defer manager.Close()

	results, errs := manager.LoadAll(c.fs.Args())

	failed := 0
	for i, res := range results {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", c.fs.Arg(i), errs[i])
			failed++
			continue
		}

		out := export.OutputPath(res.Path, dir, binary)
		doc := export.Document(res.Model, export.Options{DoubleSided: c.cfg.Export.DoubleSided})
		if err := export.WriteFile(out, doc); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, err)
			failed++
			continue
		}
		logger.Info("glTF written",
			zap.String("model", res.Path),
			zap.String("output", out),
			zap.Int("meshes", len(doc.Meshes)),
			zap.Int("nodes", len(doc.Nodes)))
		fmt.Fprintf(stdout, "%s -> %s\n", res.Path, out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d models failed", failed, len(results))
	}
	return nil
}

func cmdConfig(args []string) error {
	c := newCommand("config")
	save := c.fs.Bool("save", false, "Save the effective configuration to the user config directory")
	if err := c.parse(args); err != nil {
		return err
	}
	defer logger.Sync()

	if *save {
		if err := c.cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved %s\n", config.UserConfigPath())
		return nil
	}

	data, err := yaml.Marshal(c.cfg)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
