package core_test

import (
	"cmp"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ekohilas/train-conductor-world-tools/core"
)

// name is a minimal ordered vertex type for tests.
type name string

func (n name) Compare(o name) int { return cmp.Compare(n, o) }

// GraphSuite exercises the mutation and query API on a small triangle plus a tail.
type GraphSuite struct {
	suite.Suite
	g *core.Graph[name]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[name]()
	s.Require().NoError(s.g.AddEdge("B", "A"))
	s.Require().NoError(s.g.AddEdge("B", "C"))
	s.Require().NoError(s.g.AddEdge("C", "A"))
	s.Require().NoError(s.g.AddEdge("C", "D"))
}

func (s *GraphSuite) TestCounts() {
	s.Equal(4, s.g.VertexCount())
	s.Equal(4, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeIsIdempotent() {
	s.Require().NoError(s.g.AddEdge("A", "B"))
	s.Require().NoError(s.g.AddEdge("B", "A"))
	s.Equal(4, s.g.EdgeCount())
}

func (s *GraphSuite) TestHasEdgeIsSymmetric() {
	s.True(s.g.HasEdge("A", "B"))
	s.True(s.g.HasEdge("B", "A"))
	s.False(s.g.HasEdge("A", "D"))
	s.False(s.g.HasEdge("A", "Z"))
}

func (s *GraphSuite) TestNeighborsSorted() {
	nbs, err := s.g.Neighbors("C")
	s.Require().NoError(err)
	s.Equal([]name{"A", "B", "D"}, nbs)

	deg, err := s.g.Degree("D")
	s.Require().NoError(err)
	s.Equal(1, deg)
}

func (s *GraphSuite) TestVerticesAndEdgesSorted() {
	s.Equal([]name{"A", "B", "C", "D"}, s.g.Vertices())
	s.Equal([]core.Edge[name]{
		{From: "A", To: "B"},
		{From: "A", To: "C"},
		{From: "B", To: "C"},
		{From: "C", To: "D"},
	}, s.g.Edges())
}

func (s *GraphSuite) TestMissingVertex() {
	_, err := s.g.Neighbors("Z")
	s.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree("Z")
	s.ErrorIs(err, core.ErrVertexNotFound)
	s.False(s.g.HasVertex("Z"))
}

func (s *GraphSuite) TestIsolatedVertex() {
	s.g.AddVertex("E")
	s.g.AddVertex("E")
	s.True(s.g.HasVertex("E"))
	nbs, err := s.g.Neighbors("E")
	s.Require().NoError(err)
	s.Empty(nbs)
	s.Equal(5, s.g.VertexCount())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	c := s.g.Clone()
	s.Require().NoError(c.AddEdge("D", "E"))
	s.False(s.g.HasVertex("E"))
	s.Equal(4, s.g.EdgeCount())
	s.Equal(5, c.EdgeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestLoops(t *testing.T) {
	g := core.NewGraph[name]()
	err := g.AddEdge("X", "X")
	if !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("AddEdge(X, X) error = %v; want ErrLoopNotAllowed", err)
	}
	if g.HasVertex("X") {
		t.Errorf("rejected loop added vertex X")
	}
	require.Zero(t, g.EdgeCount())
}
