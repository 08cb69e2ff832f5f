package build

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/wieldy/pkg/errors"
	"github.com/arthur-debert/wieldy/pkg/filesystem"
)

// Job is one source file to compile
type Job struct {
	Source string
	// InputRoot is the directory Source's output location is relative to
	InputRoot string
}

// Discover expands inputs into jobs sorted by source. Files named directly
// are compiled whatever their extension; directories contribute every file
// below them ending in sourceExt.
func Discover(fs filesystem.FS, inputs []string, sourceExt string) ([]Job, error) {
	seen := make(map[string]bool)
	var jobs []Job

	add := func(job Job) {
		if !seen[job.Source] {
			seen[job.Source] = true
			jobs = append(jobs, job)
		}
	}

	for _, input := range inputs {
		input = filepath.Clean(input)

		info, err := fs.Stat(input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Newf(errors.ErrFileNotFound, "no such file or directory: %s", input).
					WithDetail("path", input)
			}
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", input).
				WithDetail("path", input)
		}

		if !info.IsDir() {
			add(Job{Source: input, InputRoot: filepath.Dir(input)})
			continue
		}

		err = fs.Walk(input, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(path) == sourceExt {
				add(Job{Source: path, InputRoot: input})
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", input).
				WithDetail("path", input)
		}
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Source < jobs[j].Source })
	return jobs, nil
}
