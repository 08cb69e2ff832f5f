package build

import (
	"runtime"

	"github.com/arthur-debert/wieldy/pkg/config"
)

// Options controls a build
type Options struct {
	// Inputs are the files and directories named on the command line
	Inputs []string
	// OutputDir receives compiled files. Empty writes them next to their source.
	OutputDir string
	Compress  bool
	SourceExt string
	OutputExt string
	// Workers bounds parallel compilations, 0 for one per CPU
	Workers int
}

// OptionsFromConfig builds the options for compiling inputs with cfg
func OptionsFromConfig(cfg *config.Config, inputs []string) Options {
	return Options{
		Inputs:    inputs,
		OutputDir: cfg.Build.OutputDir,
		Compress:  cfg.Compile.Compress,
		SourceExt: cfg.Files.SourceExtension,
		OutputExt: cfg.Files.OutputExtension,
		Workers:   cfg.Build.Workers,
	}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}
