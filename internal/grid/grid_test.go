package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(Pt(2, 3), Pt(2, 3)))
	assert.Equal(t, 7, Manhattan(Pt(-1, 2), Pt(3, -1)))
	assert.InDelta(t, 5.0, Euclidean(Pt(0, 0), Pt(3, 4)), 1e-9)
}

func TestDirectionTables(t *testing.T) {
	assert.Equal(t, [4]Point{Up, Right, Down, Left}, Cardinal)
	for i, d := range Cardinal {
		assert.Equal(t, d, Eight[i*2], "cardinal directions sit on even slots of Eight")
	}
	for _, d := range Eight {
		assert.Equal(t, 1, max(abs(d.X), abs(d.Y)))
	}
}

func TestRectCenterAndContains(t *testing.T) {
	r := NewRect(2, 4, 5, 6)
	assert.Equal(t, Vec2{X: 4.5, Y: 7}, r.Center())
	assert.True(t, r.Contains(Pt(2, 4)))
	assert.True(t, r.Contains(Pt(6, 9)))
	assert.False(t, r.Contains(Pt(7, 9)), "max is exclusive")
	assert.Equal(t, 30, r.Area())
}

func TestPointSetKeepsInsertionOrder(t *testing.T) {
	s := NewPointSet(Pt(3, 3), Pt(1, 1), Pt(2, 2))
	assert.False(t, s.Add(Pt(1, 1)))
	assert.Equal(t, []Point{Pt(3, 3), Pt(1, 1), Pt(2, 2)}, s.Points())

	require.True(t, s.Remove(Pt(1, 1)))
	assert.False(t, s.Has(Pt(1, 1)))
	assert.Equal(t, []Point{Pt(3, 3), Pt(2, 2)}, s.Points())
	assert.Equal(t, Pt(2, 2), s.At(1))

	s.Add(Pt(1, 1))
	assert.Equal(t, []Point{Pt(3, 3), Pt(2, 2), Pt(1, 1)}, s.Points())
}

func TestPointSetManyRemovalsCompact(t *testing.T) {
	s := NewPointSet()
	for i := 0; i < 200; i++ {
		s.Add(Pt(i, 0))
	}
	for i := 0; i < 200; i += 2 {
		s.Remove(Pt(i, 0))
	}
	require.Equal(t, 100, s.Len())
	pts := s.Points()
	require.Len(t, pts, 100)
	for i, p := range pts {
		assert.Equal(t, 2*i+1, p.X)
	}
}

func TestPointSetSetAlgebra(t *testing.T) {
	a := NewPointSet(Pt(0, 0), Pt(1, 0), Pt(2, 0))
	b := NewPointSet(Pt(2, 0), Pt(3, 0))

	assert.True(t, a.Intersects(b))
	c := a.Clone()
	c.Union(b)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 3, a.Len(), "clone is independent")

	c.RemoveAll(b)
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 0)}, c.Points())
	assert.False(t, c.Intersects(b))

	w := a.Without(b)
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 0)}, w.Points())
}

func TestPointSetBounds(t *testing.T) {
	_, ok := NewPointSet().Bounds()
	assert.False(t, ok)

	b, ok := NewPointSet(Pt(-2, 5), Pt(4, -1), Pt(0, 0)).Bounds()
	require.True(t, ok)
	assert.Equal(t, Bounds{MinX: -2, MinY: -1, MaxX: 4, MaxY: 5}, b)
	assert.Equal(t, Bounds{MinX: -4, MinY: -3, MaxX: 6, MaxY: 7}, b.Expand(2))
}

func TestNilPointSetIsEmpty(t *testing.T) {
	var s *PointSet
	assert.False(t, s.Has(Pt(0, 0)))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Points())
}

func TestAnyOf(t *testing.T) {
	a := NewPointSet(Pt(1, 1))
	var missing *PointSet
	blocked := AnyOf(a, missing, nil, BlockerFunc(func(p Point) bool { return p.X < 0 }))
	assert.True(t, blocked.Has(Pt(1, 1)))
	assert.True(t, blocked.Has(Pt(-1, 9)))
	assert.False(t, blocked.Has(Pt(2, 2)))
}

func TestCountNeighbors4(t *testing.T) {
	s := NewPointSet(Pt(0, 1), Pt(1, 0), Pt(1, 1))
	assert.Equal(t, 2, s.CountNeighbors4(Pt(0, 0)))
	assert.Equal(t, 2, s.CountNeighbors4(Pt(1, 1)))
}
