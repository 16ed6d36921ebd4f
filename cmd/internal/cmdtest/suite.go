// Package cmdtest provides helpers for testing just-bash commands against
// an in-memory filesystem.
package cmdtest

import (
	"context"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/MaTriXy/just-bash/shell"
)

// Suite represents a type that tests just-bash commands. Each test gets a
// fresh in-memory filesystem rooted at /wd, which is also the context's
// working directory.
type Suite struct {
	suite.Suite
	Fs  afero.Fs
	Ctx *shell.Context
}

// SetupTest builds a fresh filesystem and execution context.
func (s *Suite) SetupTest() {
	s.Fs = afero.NewMemMapFs()
	s.Require().NoError(s.Fs.MkdirAll("/wd", 0755))
	s.Ctx = &shell.Context{
		Dir: "/wd",
		Fs:  s.Fs,
	}
}

// TearDownTest discards the filesystem and context.
func (s *Suite) TearDownTest() {
	s.Fs = nil
	s.Ctx = nil
}

// WriteFile creates a file at path (relative to the working directory) with
// the given content and modification time, creating parent directories as
// needed.
func (s *Suite) WriteFile(path string, content []byte, mtime time.Time) {
	abs := s.Ctx.Resolve(path)
	s.Require().NoError(afero.WriteFile(s.Fs, abs, content, 0644))
	s.Require().NoError(s.Fs.Chtimes(abs, mtime, mtime))
}

// Mkdir creates a directory at path, relative to the working directory.
func (s *Suite) Mkdir(path string) {
	s.Require().NoError(s.Fs.MkdirAll(s.Ctx.Resolve(path), 0755))
}

// Exists reports whether path, relative to the working directory, exists.
func (s *Suite) Exists(path string) bool {
	ok, err := afero.Exists(s.Fs, s.Ctx.Resolve(path))
	s.Require().NoError(err)
	return ok
}

// ExecCall records one invocation received by a RecordingExec.
type ExecCall struct {
	CommandLine string
}

// RecordingExec is a fake shell.ExecFunc that records composed command
// lines and replies with canned output.
type RecordingExec struct {
	Calls    []ExecCall
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Func returns the shell.ExecFunc backed by this recorder.
func (r *RecordingExec) Func() shell.ExecFunc {
	return func(ctx context.Context, commandLine string) (string, string, int, error) {
		r.Calls = append(r.Calls, ExecCall{CommandLine: commandLine})
		if r.Err != nil {
			return "", "", 0, r.Err
		}
		return r.Stdout, r.Stderr, r.ExitCode, nil
	}
}
