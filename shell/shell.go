// Package shell defines the uniform command-execution interface shared by
// all just-bash utilities. A command receives an execution context scoped to
// a single invocation and an argument vector, and yields a Result containing
// the captured stdout, stderr and exit code. Nothing else crosses the
// command boundary.
package shell

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
)

// Result is the outcome of a single command invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ExecFunc runs a single composed command line on the host, returning its
// captured stdout, stderr and exit code. The error is reserved for failures
// to run the command at all (e.g. an unparseable command line); a non-zero
// exit code is not an error.
type ExecFunc func(ctx context.Context, commandLine string) (stdout, stderr string, exitCode int, err error)

// Context carries the capabilities a command may consume during one
// invocation. It is constructed fresh per invocation and discarded on
// return.
type Context struct {
	// Dir is the invocation's working directory. It must be absolute.
	Dir string
	// Fs serves all metadata queries, directory listings and removals.
	Fs afero.Fs
	// Exec is the host's command-execution capability. A nil Exec means
	// the capability is absent; commands that require it must fail
	// explicitly.
	Exec ExecFunc
}

// Resolve maps a relative-or-absolute path string to an absolute path
// against the context's working directory.
func (c *Context) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Dir, path)
}

// Command is a just-bash utility reachable through the uniform
// command-execution interface.
type Command interface {
	Name() string
	Run(ctx context.Context, sctx *Context, args []string) Result
}
