// Package find implements the `just-bash find` utility: a predicate
// expression engine and traversal driver over the shell's filesystem. We
// keep it separate from the cmd package to decouple it from cobra, which
// makes testing easier.
package find

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gobwas/glob"

	"github.com/MaTriXy/just-bash/cmd/internal/find/expr"
	"github.com/MaTriXy/just-bash/cmd/internal/find/parser"
	"github.com/MaTriXy/just-bash/shell"
)

// Command is the find utility. It implements shell.Command.
type Command struct {
	// IgnorePatterns are basename globs whose matching entries are
	// neither visited nor recursed into. They never apply to the search
	// root. Typically sourced from the find.ignore config key.
	IgnorePatterns []string
}

// New returns a find command with the given traversal ignore patterns.
func New(ignorePatterns []string) *Command {
	return &Command{IgnorePatterns: ignorePatterns}
}

// Name implements shell.Command.
func (c *Command) Name() string {
	return "find"
}

// Run implements shell.Command. Every invocation parses the arguments
// afresh, resolves newer-references, traverses, and then performs the
// terminal actions; no state survives across invocations.
func (c *Command) Run(ctx context.Context, sctx *shell.Context, args []string) shell.Result {
	var stdout, stderr bytes.Buffer
	code := c.run(ctx, sctx, args, &stdout, &stderr)
	return shell.Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: code,
	}
}

func (c *Command) run(ctx context.Context, sctx *shell.Context, args []string, stdout, stderr io.Writer) int {
	now := time.Now()

	r, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "find: %v\n", err)
		return 1
	}
	if r.Options.Help {
		fmt.Fprint(stdout, Usage())
		return 0
	}

	ignore, err := compileIgnores(c.IgnorePatterns)
	if err != nil {
		fmt.Fprintf(stderr, "find: %v\n", err)
		return 1
	}

	refTimes := resolveReferences(sctx, r.Expr)

	w := newWalker(sctx.Fs, r.Options, r.Expr, now, refTimes, ignore)
	matches, err := w.Walk(sctx.Resolve(r.Path), r.Path)
	if err != nil {
		fmt.Fprintf(stderr, "find: %v\n", err)
		return 1
	}

	return runActions(ctx, sctx, r.Actions, matches, stdout, stderr)
}

// resolveReferences pre-resolves every -newer reference to its modification
// time before traversal begins. A reference that cannot be stat'ed is
// omitted from the cache, so its predicate evaluates false for every entry.
// The cache is read-only for the rest of the invocation.
func resolveReferences(sctx *shell.Context, e expr.Expr) map[string]time.Time {
	refs := expr.References(e)
	times := make(map[string]time.Time, len(refs))
	for _, ref := range refs {
		fi, err := sctx.Fs.Stat(sctx.Resolve(ref))
		if err != nil {
			continue
		}
		times[ref] = fi.ModTime()
	}
	return times
}

func compileIgnores(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %v", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
