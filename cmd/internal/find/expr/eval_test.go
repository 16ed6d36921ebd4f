package expr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type EvalTestSuite struct {
	suite.Suite
	now time.Time
}

func (s *EvalTestSuite) SetupTest() {
	s.now = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *EvalTestSuite) ctx() *Context {
	return &Context{
		Name:    "a.txt",
		Path:    "./a.txt",
		ModTime: s.now.Add(-time.Hour),
		Size:    10,
		Now:     s.now,
	}
}

func (s *EvalTestSuite) TestNilExprMatchesEverything() {
	s.True(Evaluate(nil, s.ctx()))
}

func (s *EvalTestSuite) TestName() {
	p, err := NewName("*.txt", false)
	s.Require().NoError(err)
	s.True(Evaluate(p, s.ctx()))

	c := s.ctx()
	c.Name = "a.txtx"
	s.False(Evaluate(p, c))
}

func (s *EvalTestSuite) TestNameIgnoreCase() {
	p, err := NewName("*.txt", true)
	s.Require().NoError(err)
	c := s.ctx()
	c.Name = "A.TXT"
	s.True(Evaluate(p, c))
}

func (s *EvalTestSuite) TestPath() {
	p, err := NewPath("./*.txt", false)
	s.Require().NoError(err)
	s.True(Evaluate(p, s.ctx()))

	c := s.ctx()
	c.Path = "./d/c.txt"
	s.False(Evaluate(p, c))
}

func (s *EvalTestSuite) TestType() {
	c := s.ctx()
	s.True(Evaluate(&Type{Kind: TypeFile}, c))
	s.False(Evaluate(&Type{Kind: TypeDir}, c))
	c.IsDir = true
	s.False(Evaluate(&Type{Kind: TypeFile}, c))
	s.True(Evaluate(&Type{Kind: TypeDir}, c))
}

func (s *EvalTestSuite) TestEmpty() {
	c := s.ctx()
	s.False(Evaluate(&Empty{}, c))
	c.Empty = true
	s.True(Evaluate(&Empty{}, c))
}

func (s *EvalTestSuite) TestMtime() {
	c := s.ctx()
	c.ModTime = s.now.Add(-36 * time.Hour)

	// 36 hours is one whole 24-hour period.
	s.True(Evaluate(&Mtime{Days: 1, Compare: CompareExact}, c))
	s.False(Evaluate(&Mtime{Days: 2, Compare: CompareExact}, c))
	s.True(Evaluate(&Mtime{Days: 0, Compare: CompareGreater}, c))
	s.False(Evaluate(&Mtime{Days: 1, Compare: CompareGreater}, c))
	s.True(Evaluate(&Mtime{Days: 2, Compare: CompareLess}, c))
	s.False(Evaluate(&Mtime{Days: 1, Compare: CompareLess}, c))
}

func (s *EvalTestSuite) TestNewer() {
	c := s.ctx()
	c.RefTimes = map[string]time.Time{
		"ref.txt": s.now.Add(-2 * time.Hour),
	}
	s.True(Evaluate(&Newer{Reference: "ref.txt"}, c))

	c.ModTime = s.now.Add(-3 * time.Hour)
	s.False(Evaluate(&Newer{Reference: "ref.txt"}, c))

	// Strictly greater, so an equal mtime does not match.
	c.ModTime = s.now.Add(-2 * time.Hour)
	s.False(Evaluate(&Newer{Reference: "ref.txt"}, c))
}

func (s *EvalTestSuite) TestNewerMissingReferenceNeverMatches() {
	s.False(Evaluate(&Newer{Reference: "missing.txt"}, s.ctx()))
}

func (s *EvalTestSuite) TestNewerThan() {
	c := s.ctx()
	s.True(Evaluate(&NewerThan{Time: s.now.Add(-2 * time.Hour)}, c))
	s.False(Evaluate(&NewerThan{Time: s.now}, c))
}

func (s *EvalTestSuite) TestSizeBlocks() {
	p := &Size{Value: 1, Unit: UnitBlocks, Compare: CompareExact}

	c := s.ctx()
	c.Size = 0
	s.False(Evaluate(p, c))
	c.Size = 1
	s.True(Evaluate(p, c))
	c.Size = 512
	s.True(Evaluate(p, c))
	c.Size = 513
	s.False(Evaluate(p, c))
}

func (s *EvalTestSuite) TestSizeUnits() {
	c := s.ctx()
	c.Size = 2048
	s.True(Evaluate(&Size{Value: 2, Unit: UnitKB, Compare: CompareExact}, c))
	s.True(Evaluate(&Size{Value: 2048, Unit: UnitBytes, Compare: CompareExact}, c))
	s.True(Evaluate(&Size{Value: 1, Unit: UnitKB, Compare: CompareGreater}, c))
	s.True(Evaluate(&Size{Value: 2, Unit: UnitMB, Compare: CompareLess}, c))
	s.False(Evaluate(&Size{Value: 1, Unit: UnitGB, Compare: CompareGreater}, c))
}

func (s *EvalTestSuite) TestNegationLaw() {
	p, err := NewName("*.txt", false)
	s.Require().NoError(err)
	exprs := []Expr{
		p,
		&Empty{},
		&Type{Kind: TypeDir},
		&Size{Value: 1, Unit: UnitBlocks, Compare: CompareExact},
		&And{Left: p, Right: &Empty{}},
		&Or{Left: p, Right: &Empty{}},
	}
	for _, e := range exprs {
		c := s.ctx()
		s.Equal(!Evaluate(e, c), Evaluate(&Not{Inner: e}, c))
	}
}

func (s *EvalTestSuite) TestCombinators() {
	t := &Type{Kind: TypeFile} // true for ctx
	f := &Type{Kind: TypeDir}  // false for ctx
	c := s.ctx()

	s.True(Evaluate(&And{Left: t, Right: t}, c))
	s.False(Evaluate(&And{Left: t, Right: f}, c))
	s.True(Evaluate(&Or{Left: f, Right: t}, c))
	s.False(Evaluate(&Or{Left: f, Right: f}, c))
}

func TestEval(t *testing.T) {
	suite.Run(t, new(EvalTestSuite))
}

func TestReferences(t *testing.T) {
	e := &Or{
		Left: &And{
			Left:  &Newer{Reference: "a"},
			Right: &Not{Inner: &Newer{Reference: "b"}},
		},
		Right: &Newer{Reference: "a"},
	}
	refs := References(e)
	if len(refs) != 2 || refs[0] != "a" || refs[1] != "b" {
		t.Errorf("References() = %v, want [a b]", refs)
	}
}

func TestUsesEmpty(t *testing.T) {
	if UsesEmpty(&Type{Kind: TypeFile}) {
		t.Error("UsesEmpty() = true for a tree without -empty")
	}
	if !UsesEmpty(&Not{Inner: &Empty{}}) {
		t.Error("UsesEmpty() = false for a tree with -empty")
	}
	if UsesEmpty(nil) {
		t.Error("UsesEmpty(nil) = true")
	}
}
