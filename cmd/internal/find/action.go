package find

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/MaTriXy/just-bash/cmd/internal/find/types"
	"github.com/MaTriXy/just-bash/shell"
)

// runActions consumes the collected match list, performing each registered
// action in registration order. It returns the invocation's exit code.
func runActions(ctx context.Context, sctx *shell.Context, actions []types.Action, matches []string, stdout, stderr io.Writer) int {
	if len(actions) == 0 {
		actions = []types.Action{&types.PrintAction{}}
	}

	// -exec without an execution capability is a fatal configuration
	// error. Fail before producing any partial action output.
	for _, a := range actions {
		if _, ok := a.(*types.ExecAction); ok && sctx.Exec == nil {
			fmt.Fprintf(stderr, "find: -exec: command execution is not available\n")
			return 1
		}
	}

	code := 0
	for _, a := range actions {
		switch act := a.(type) {
		case *types.PrintAction:
			sep := "\n"
			if act.Null {
				sep = "\x00"
			}
			if len(matches) > 0 {
				fmt.Fprint(stdout, strings.Join(matches, sep)+sep)
			}
		case *types.DeleteAction:
			if !runDelete(sctx, matches, stderr) {
				code = 1
			}
		case *types.ExecAction:
			if !runExec(ctx, sctx, act, matches, stdout, stderr) {
				code = 1
			}
		}
	}
	return code
}

// runDelete removes every match non-recursively, deepest paths first.
// Failed removals each produce one stderr line and force exit code 1, but
// the remaining removals still proceed.
func runDelete(sctx *shell.Context, matches []string, stderr io.Writer) bool {
	// Descending path length approximates depth-first order, so children
	// go before their parents.
	ordered := append([]string(nil), matches...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	ok := true
	for _, m := range ordered {
		if err := sctx.Fs.Remove(sctx.Resolve(m)); err != nil {
			fmt.Fprintf(stderr, "find: cannot delete %v: %v\n", m, err)
			ok = false
		}
	}
	return ok
}

// runExec invokes the external command, once per match or exactly once in
// batch mode. The command's own exit code does not affect find's; only a
// failure to invoke it at all does.
func runExec(ctx context.Context, sctx *shell.Context, act *types.ExecAction, matches []string, stdout, stderr io.Writer) bool {
	var lines []string
	if act.Batch {
		if len(matches) > 0 {
			lines = []string{composeBatch(act.Template, matches)}
		}
	} else {
		for _, m := range matches {
			lines = append(lines, compose(act.Template, m))
		}
	}
	ok := true
	for _, line := range lines {
		log.Debugf("find: -exec %v", line)
		out, errOut, exitCode, err := sctx.Exec(ctx, line)
		if err != nil {
			fmt.Fprintf(stderr, "find: -exec: %v\n", err)
			ok = false
			continue
		}
		fmt.Fprint(stdout, out)
		fmt.Fprint(stderr, errOut)
		log.Debugf("find: -exec exited with %v", exitCode)
	}
	return ok
}

// compose builds a single command line from the template, substituting the
// match for every placeholder fragment.
func compose(template []string, match string) string {
	parts := make([]string, len(template))
	for i, frag := range template {
		if frag == types.Placeholder {
			frag = match
		}
		parts[i] = quote(frag)
	}
	return strings.Join(parts, " ")
}

// composeBatch builds a single command line with every placeholder fragment
// replaced by the entire match list inline.
func composeBatch(template []string, matches []string) string {
	var parts []string
	for _, frag := range template {
		if frag == types.Placeholder {
			for _, m := range matches {
				parts = append(parts, quote(m))
			}
			continue
		}
		parts = append(parts, quote(frag))
	}
	return strings.Join(parts, " ")
}

// quote naively wraps a fragment in double quotes. Embedded quote
// characters are not escaped; this is a known limitation that is kept for
// compatibility.
func quote(s string) string {
	return `"` + s + `"`
}
