// Package expr defines the predicate expression tree evaluated by find
// against every visited filesystem entry. The tree is a closed tagged
// union: each predicate and combinator is its own node type, and the
// evaluator is a single exhaustive switch. A tree is built once per
// invocation and never mutated afterwards.
package expr

import (
	"time"

	"github.com/MaTriXy/just-bash/cmd/internal/find/glob"
)

// Expr is a node in a predicate expression tree.
type Expr interface {
	exprNode()
}

// FileType is the kind tested by the Type predicate.
type FileType int

const (
	// TypeFile matches regular files.
	TypeFile FileType = iota
	// TypeDir matches directories.
	TypeDir
)

// Comparison is the mode used by numeric predicates. Exact is the default;
// a leading "+" or "-" on the primary's argument selects Greater or Less.
type Comparison int

const (
	CompareExact Comparison = iota
	CompareGreater
	CompareLess
)

// Unit is a size unit accepted by the Size predicate.
type Unit int64

const (
	// UnitBlocks is the default unit, 512-byte blocks.
	UnitBlocks Unit = 512
	UnitBytes  Unit = 1
	UnitKB     Unit = 1024
	UnitMB     Unit = 1024 * 1024
	UnitGB     Unit = 1024 * 1024 * 1024
)

// Name matches the entry's basename against a shell pattern.
type Name struct {
	Pattern    string
	IgnoreCase bool
	Glob       *glob.Glob
}

// Path matches the entry's reconstructed relative path against a shell
// pattern.
type Path struct {
	Pattern    string
	IgnoreCase bool
	Glob       *glob.Glob
}

// Type matches the entry's kind.
type Type struct {
	Kind FileType
}

// Empty matches zero-byte files and directories with no entries.
type Empty struct{}

// Mtime matches the entry's age, in whole 24-hour periods relative to the
// invocation's start time.
type Mtime struct {
	Days    int64
	Compare Comparison
}

// Newer matches entries modified strictly after the named reference file.
// The reference is resolved to a timestamp once, before traversal begins;
// a reference that cannot be resolved never matches.
type Newer struct {
	Reference string
}

// NewerThan matches entries modified strictly after an absolute timestamp.
type NewerThan struct {
	Time time.Time
}

// Size matches the entry's size, rounded up to a whole number of units.
type Size struct {
	Value   int64
	Unit    Unit
	Compare Comparison
}

// Not negates its inner expression.
type Not struct {
	Inner Expr
}

// And is the conjunction of two expressions. Both operands are always
// evaluated; predicates are side-effect-free, so order is immaterial.
type And struct {
	Left, Right Expr
}

// Or is the disjunction of two expressions. Both operands are always
// evaluated.
type Or struct {
	Left, Right Expr
}

func (*Name) exprNode()      {}
func (*Path) exprNode()      {}
func (*Type) exprNode()      {}
func (*Empty) exprNode()     {}
func (*Mtime) exprNode()     {}
func (*Newer) exprNode()     {}
func (*NewerThan) exprNode() {}
func (*Size) exprNode()      {}
func (*Not) exprNode()       {}
func (*And) exprNode()       {}
func (*Or) exprNode()        {}

// NewName builds a Name predicate, compiling its pattern.
func NewName(pattern string, ignoreCase bool) (*Name, error) {
	g, err := glob.New(pattern, ignoreCase)
	if err != nil {
		return nil, err
	}
	return &Name{Pattern: pattern, IgnoreCase: ignoreCase, Glob: g}, nil
}

// NewPath builds a Path predicate, compiling its pattern.
func NewPath(pattern string, ignoreCase bool) (*Path, error) {
	g, err := glob.New(pattern, ignoreCase)
	if err != nil {
		return nil, err
	}
	return &Path{Pattern: pattern, IgnoreCase: ignoreCase, Glob: g}, nil
}
