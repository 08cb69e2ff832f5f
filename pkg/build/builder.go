package build

import (
	"context"
	"os"
	"time"

	"github.com/arthur-debert/wieldy/pkg/compiler"
	"github.com/arthur-debert/wieldy/pkg/errors"
	"github.com/arthur-debert/wieldy/pkg/filesystem"
	"github.com/arthur-debert/wieldy/pkg/logging"
	"github.com/arthur-debert/wieldy/pkg/paths"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of compiling one source
type FileResult struct {
	Source string
	// Output is the file written, or that would have been written
	Output string
	Err    error
}

// Result is the outcome of a build, both lists sorted by source
type Result struct {
	Compiled []FileResult
	Failed   []FileResult
	Duration time.Duration
}

// OK reports whether every file compiled
func (r *Result) OK() bool {
	return len(r.Failed) == 0
}

// Builder compiles jobs against a filesystem
type Builder struct {
	fs     filesystem.FS
	logger zerolog.Logger
}

// NewBuilder creates a builder reading and writing through fs
func NewBuilder(fs filesystem.FS) *Builder {
	return &Builder{
		fs:     fs,
		logger: logging.GetLogger("build"),
	}
}

// Run discovers the jobs for opts and compiles them in parallel. The error
// is only set when discovery fails or ctx is done; compilation failures are
// reported per file in the result.
func (b *Builder) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	done := logging.LogOperationStart(b.logger, "build")
	defer done()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jobs, err := Discover(b.fs, opts.Inputs, opts.SourceExt)
	if err != nil {
		return nil, err
	}
	b.logger.Info().Int("files", len(jobs)).Int("workers", opts.workers()).Msg("Compiling")

	results := make([]FileResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = b.CompileJob(job, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Duration: time.Since(start)}
	for _, r := range results {
		if r.Err != nil {
			result.Failed = append(result.Failed, r)
		} else {
			result.Compiled = append(result.Compiled, r)
		}
	}

	b.logger.Info().
		Int("compiled", len(result.Compiled)).
		Int("failed", len(result.Failed)).
		Dur("duration", result.Duration).
		Msg("Build finished")

	return result, nil
}

// CompileJob reads, compiles and writes a single job
func (b *Builder) CompileJob(job Job, opts Options) FileResult {
	outputRoot := opts.OutputDir
	if outputRoot == "" {
		outputRoot = job.InputRoot
	}
	res := FileResult{
		Source: job.Source,
		Output: paths.OutputPath(job.InputRoot, outputRoot, job.Source, opts.OutputExt),
	}
	res.Err = b.compileTo(job.Source, res.Output, opts.Compress)

	switch {
	case errors.IsParseError(res.Err):
		b.logger.Debug().Err(res.Err).Str("source", res.Source).Msg("Compilation failed")
	case res.Err != nil:
		// Not a markup problem, the file could not be read or written
		b.logger.Warn().Err(res.Err).Str("source", res.Source).Str("output", res.Output).Msg("Build failed")
	default:
		b.logger.Debug().Str("source", res.Source).Str("output", res.Output).Msg("Compiled")
	}
	return res
}

func (b *Builder) compileTo(source, output string, compress bool) error {
	if output == source {
		return errors.Newf(errors.ErrInvalidInput, "output would overwrite its source %s", source).
			WithDetail("path", source)
	}

	data, err := b.fs.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", source).
			WithDetail("path", source)
	}

	html, err := compiler.Compile(string(data), compress)
	if err != nil {
		return err
	}

	for _, dir := range paths.DirsForPath(output) {
		if _, err := b.fs.Stat(dir); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", dir).
				WithDetail("path", dir)
		}
		if err := b.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
				WithDetail("path", dir)
		}
	}

	if err := b.fs.WriteFile(output, []byte(html), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", output).
			WithDetail("path", output)
	}
	return nil
}
