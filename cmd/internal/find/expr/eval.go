package expr

import (
	"fmt"
	"time"
)

// Context is the per-entry state a predicate is evaluated against. One
// Context is built for every visited entry; the reference-time cache is
// shared read-only across the whole traversal.
type Context struct {
	// Name is the entry's display basename.
	Name string
	// Path is the entry's reconstructed relative path.
	Path string
	// IsDir reports whether the entry is a directory.
	IsDir bool
	// Empty reports whether the entry is a zero-byte file or a directory
	// with no entries.
	Empty bool
	// ModTime is the entry's modification time.
	ModTime time.Time
	// Size is the entry's size in bytes.
	Size int64
	// Now is the invocation's start time, the reference point for age
	// predicates.
	Now time.Time
	// RefTimes maps newer-reference paths, as written on the command
	// line, to their resolved modification times. Populated once before
	// traversal; read-only afterwards.
	RefTimes map[string]time.Time
}

// Evaluate applies e to the entry described by c. It is a pure function of
// (e, c). A nil expression matches everything.
func Evaluate(e Expr, c *Context) bool {
	if e == nil {
		return true
	}
	switch n := e.(type) {
	case *Name:
		return n.Glob.Match(c.Name)
	case *Path:
		return n.Glob.Match(c.Path)
	case *Type:
		if n.Kind == TypeDir {
			return c.IsDir
		}
		return !c.IsDir
	case *Empty:
		return c.Empty
	case *Mtime:
		days := int64(c.Now.Sub(c.ModTime) / (24 * time.Hour))
		return compare(days, n.Days, n.Compare)
	case *Newer:
		ref, ok := c.RefTimes[n.Reference]
		if !ok {
			return false
		}
		return c.ModTime.After(ref)
	case *NewerThan:
		return c.ModTime.After(n.Time)
	case *Size:
		units := (c.Size + int64(n.Unit) - 1) / int64(n.Unit)
		return compare(units, n.Value, n.Compare)
	case *Not:
		return !Evaluate(n.Inner, c)
	case *And:
		// No short-circuiting: predicates are total, and both operands
		// are always evaluated.
		l := Evaluate(n.Left, c)
		r := Evaluate(n.Right, c)
		return l && r
	case *Or:
		l := Evaluate(n.Left, c)
		r := Evaluate(n.Right, c)
		return l || r
	default:
		panic(fmt.Sprintf("expr.Evaluate: unknown node type %T", e))
	}
}

func compare(v, target int64, mode Comparison) bool {
	switch mode {
	case CompareGreater:
		return v > target
	case CompareLess:
		return v < target
	default:
		return v == target
	}
}
