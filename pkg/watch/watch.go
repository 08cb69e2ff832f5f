// Package watch implements mirror mode: sources are compiled once, then
// recompiled whenever they change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/wieldy/pkg/build"
	"github.com/arthur-debert/wieldy/pkg/errors"
	"github.com/arthur-debert/wieldy/pkg/filesystem"
	"github.com/arthur-debert/wieldy/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher keeps the outputs of a build up to date
type Watcher struct {
	builder  *build.Builder
	fs       filesystem.FS
	opts     build.Options
	debounce time.Duration
	logger   zerolog.Logger

	// OnBuild receives the result of the initial build. Changes made once it
	// has been called are guaranteed to be seen.
	OnBuild func(*build.Result)
	// OnResult receives the outcome of every recompilation
	OnResult func(build.FileResult)

	// roots are the watched input directories, in command line order
	roots []string
	// files are the inputs named directly, by path
	files map[string]build.Job
}

// New creates a watcher rebuilding opts.Inputs with builder. Bursts of
// changes to one file closer together than debounce cause one compilation.
func New(builder *build.Builder, fs filesystem.FS, opts build.Options, debounce time.Duration) *Watcher {
	return &Watcher{
		builder:  builder,
		fs:       fs,
		opts:     opts,
		debounce: debounce,
		logger:   logging.GetLogger("watch"),
		files:    make(map[string]build.Job),
	}
}

// Run watches until ctx is done, which is not an error. It fails when the
// initial build cannot discover its inputs or the inputs cannot be watched.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "cannot create file watcher")
	}
	defer fw.Close()

	if err := w.addInputs(fw); err != nil {
		return err
	}

	result, err := w.builder.Run(ctx, w.opts)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	if w.OnBuild != nil {
		w.OnBuild(result)
	}

	w.logger.Info().Strs("roots", w.roots).Int("files", len(w.files)).Msg("Watching for changes")

	pending := make(chan build.Job)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	schedule := func(job build.Job) {
		if t, ok := timers[job.Source]; ok {
			t.Stop()
		}
		timers[job.Source] = time.AfterFunc(w.debounce, func() {
			select {
			case pending <- job:
			case <-ctx.Done():
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("Watch stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fw, event, schedule)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")

		case job := <-pending:
			delete(timers, job.Source)
			res := w.builder.CompileJob(job, w.opts)
			if w.OnResult != nil {
				w.OnResult(res)
			}
		}
	}
}

func (w *Watcher) addInputs(fw *fsnotify.Watcher) error {
	for _, input := range w.opts.Inputs {
		input = filepath.Clean(input)

		info, err := w.fs.Stat(input)
		if err != nil {
			return errors.Newf(errors.ErrFileNotFound, "no such file or directory: %s", input).
				WithDetail("path", input)
		}

		if !info.IsDir() {
			dir := filepath.Dir(input)
			w.files[input] = build.Job{Source: input, InputRoot: dir}
			if err := w.add(fw, dir); err != nil {
				return err
			}
			continue
		}

		w.roots = append(w.roots, input)
		if _, err := w.addTree(fw, input); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) add(fw *fsnotify.Watcher, dir string) error {
	if err := fw.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrWatch, "cannot watch %s", dir).WithDetail("path", dir)
	}
	w.logger.Trace().Str("dir", dir).Msg("Watching directory")
	return nil
}

// addTree watches dir and every directory below it, and returns the sources
// found on the way.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) ([]string, error) {
	var sources []string
	err := w.fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.add(fw, path)
		}
		if filepath.Ext(path) == w.opts.SourceExt {
			sources = append(sources, path)
		}
		return nil
	})
	return sources, err
}

func (w *Watcher) handleEvent(fw *fsnotify.Watcher, event fsnotify.Event, schedule func(build.Job)) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	path := filepath.Clean(event.Name)

	if event.Has(fsnotify.Create) {
		if info, err := w.fs.Stat(path); err == nil && info.IsDir() {
			if w.rootOf(path) == "" {
				return
			}
			// Files may land in the new directory before it is watched.
			sources, err := w.addTree(fw, path)
			if err != nil {
				w.logger.Warn().Err(err).Str("dir", path).Msg("Cannot watch new directory")
			}
			for _, source := range sources {
				if job, ok := w.jobFor(source); ok {
					schedule(job)
				}
			}
			return
		}
	}

	if job, ok := w.jobFor(path); ok {
		w.logger.Debug().Str("source", path).Str("op", event.Op.String()).Msg("Source changed")
		schedule(job)
	}
}

// jobFor returns the job compiling path, if path is an input
func (w *Watcher) jobFor(path string) (build.Job, bool) {
	if job, ok := w.files[path]; ok {
		return job, true
	}
	if filepath.Ext(path) != w.opts.SourceExt {
		return build.Job{}, false
	}
	if root := w.rootOf(path); root != "" {
		return build.Job{Source: path, InputRoot: root}, true
	}
	return build.Job{}, false
}

// rootOf returns the first watched root containing path
func (w *Watcher) rootOf(path string) string {
	for _, root := range w.roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return root
	}
	return ""
}
