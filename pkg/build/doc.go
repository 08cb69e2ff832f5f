// Package build compiles wieldy sources to HTML files.
//
// Discover turns the command line arguments into jobs: a file argument is one
// job, a directory argument is searched recursively for sources. A Builder
// then compiles the jobs in parallel and writes every result either next to
// its source or, when an output directory is set, at the same relative
// location below it.
//
// A file that fails to compile does not stop the others; failures are
// collected in the Result.
package build
