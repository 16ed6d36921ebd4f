package find

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/MaTriXy/just-bash/cmd/internal/find/expr"
	"github.com/MaTriXy/just-bash/cmd/internal/find/types"
)

// walker performs the depth-first pre-order traversal, evaluating the
// expression against every qualifying entry and collecting matches in
// discovery order.
type walker struct {
	fs       afero.Fs
	opts     types.Options
	e        expr.Expr
	now      time.Time
	refTimes map[string]time.Time
	ignore   []glob.Glob
	// needEmpty is set when the expression contains an -empty predicate,
	// in which case a directory listing is needed for emptiness even when
	// recursion is cut off by -maxdepth.
	needEmpty bool
	// userPath is the user-supplied search path, verbatim. Reported
	// relative paths reproduce its prefix exactly.
	userPath string
	matches  []string
}

func newWalker(fs afero.Fs, opts types.Options, e expr.Expr, now time.Time, refTimes map[string]time.Time, ignore []glob.Glob) *walker {
	return &walker{
		fs:        fs,
		opts:      opts,
		e:         e,
		now:       now,
		refTimes:  refTimes,
		ignore:    ignore,
		needEmpty: expr.UsesEmpty(e),
	}
}

// Walk traverses the subtree rooted at the resolved base path, returning
// the ordered match list. Only a missing search root is an error; stat
// failures below the root silently abandon their branch.
func (w *walker) Walk(baseAbs, userPath string) ([]string, error) {
	if _, err := w.fs.Stat(baseAbs); err != nil {
		return nil, fmt.Errorf("%v: no such file or directory", userPath)
	}
	w.userPath = userPath
	w.matches = nil
	w.walk(baseAbs, filepath.Base(userPath), "", 0)
	return w.matches, nil
}

func (w *walker) walk(abs, name, suffix string, depth int) {
	if w.opts.Maxdepth >= 0 && depth > w.opts.Maxdepth {
		return
	}
	fi, err := w.fs.Stat(abs)
	if err != nil {
		log.Debugf("find: abandoning %v: %v", abs, err)
		return
	}
	rel := w.relPath(suffix)
	isDir := fi.IsDir()

	var entries []os.FileInfo
	listed := false
	if isDir {
		canRecurse := w.opts.Maxdepth < 0 || depth < w.opts.Maxdepth
		if canRecurse || w.needEmpty {
			entries, err = afero.ReadDir(w.fs, abs)
			if err != nil {
				log.Debugf("find: could not list %v: %v", abs, err)
				entries = nil
			} else {
				listed = true
			}
		}
	}

	empty := false
	if !isDir {
		empty = fi.Size() == 0
	} else if listed {
		empty = len(entries) == 0
	}

	if w.opts.Mindepth < 0 || depth >= w.opts.Mindepth {
		c := &expr.Context{
			Name:     name,
			Path:     rel,
			IsDir:    isDir,
			Empty:    empty,
			ModTime:  fi.ModTime(),
			Size:     fi.Size(),
			Now:      w.now,
			RefTimes: w.refTimes,
		}
		if expr.Evaluate(w.e, c) {
			log.Debugf("find: matched %v (%v)", rel, humanize.Bytes(uint64(fi.Size())))
			w.matches = append(w.matches, rel)
		}
	}

	for _, entry := range entries {
		if w.ignored(entry.Name()) {
			log.Debugf("find: ignoring %v", filepath.Join(abs, entry.Name()))
			continue
		}
		childSuffix := entry.Name()
		if suffix != "" {
			childSuffix = suffix + "/" + entry.Name()
		}
		w.walk(filepath.Join(abs, entry.Name()), entry.Name(), childSuffix, depth+1)
	}
}

// relPath reconstructs the reported path for the entry at the given suffix
// beyond the base. The base itself reports the search path verbatim; its
// descendants reproduce the user's original path prefix, never an absolute
// path.
func (w *walker) relPath(suffix string) string {
	if suffix == "" {
		return w.userPath
	}
	if w.userPath == "." {
		return "./" + suffix
	}
	return strings.TrimSuffix(w.userPath, "/") + "/" + suffix
}

func (w *walker) ignored(name string) bool {
	for _, g := range w.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
