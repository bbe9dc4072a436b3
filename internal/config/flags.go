package config

import "flag"

// Flags holds the command-line overrides registered on a flag set.
type Flags struct {
	fs *flag.FlagSet

	Config         *string
	Debug          *bool
	FlipUV         *bool
	ReverseWinding *bool
	BoneNaming     *string
	Encoding       *string
	LogFile        *string
	LogFormat      *string
}

// RegisterFlags registers the global flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:             fs,
		Config:         fs.String("config", "", "Path to config file"),
		Debug:          fs.Bool("debug", false, "Enable debug logging"),
		FlipUV:         fs.Bool("flip-uv", true, "Store V texture coordinates as 1-v"),
		ReverseWinding: fs.Bool("reverse-winding", true, "Store triangles (a,b,c) as (a,c,b)"),
		BoneNaming:     fs.String("bone-naming", "", "Bone naming: default or mecanim"),
		Encoding:       fs.String("encoding", "", "Character map for stored strings (e.g. \"Windows 1251\")"),
		LogFile:        fs.String("log-file", "", "Write logs to a rotating file"),
		LogFormat:      fs.String("log-format", "", "Log encoding: console or json"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.Config
}

// apply applies CLI flag overrides to the config. Flags the user did not
// set leave the file values alone.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if set["flip-uv"] {
		cfg.Import.FlipUV = *f.FlipUV
	}
	if set["reverse-winding"] {
		cfg.Import.ReverseWinding = *f.ReverseWinding
	}
	if *f.BoneNaming != "" {
		cfg.Import.BoneNaming = *f.BoneNaming
	}
	if *f.Encoding != "" {
		cfg.Import.Encoding = *f.Encoding
	}
	if *f.LogFile != "" {
		cfg.Logging.LogFile = *f.LogFile
	}
	if *f.LogFormat != "" {
		cfg.Logging.Format = *f.LogFormat
	}
}
