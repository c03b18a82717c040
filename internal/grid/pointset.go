package grid

import (
	"github.com/zyedidia/generic/mapset"
)

// PointSet is a set of tiles that remembers insertion order, so iterating
// it under a seeded RNG reproduces the same dungeon every time.
// The zero value is not usable; create sets with NewPointSet.
type PointSet struct {
	members mapset.Set[Point]
	order   []Point
	// removed counts stale entries still present in order.
	removed int
}

// NewPointSet returns a set holding pts.
func NewPointSet(pts ...Point) *PointSet {
	s := &PointSet{members: mapset.New[Point]()}
	for _, p := range pts {
		s.Add(p)
	}
	return s
}

// Len returns the number of tiles in the set.
func (s *PointSet) Len() int {
	if s == nil {
		return 0
	}
	return s.members.Size()
}

// Has reports whether p is in the set. A nil set is empty.
func (s *PointSet) Has(p Point) bool {
	if s == nil {
		return false
	}
	return s.members.Has(p)
}

// Add inserts p and reports whether it was new.
func (s *PointSet) Add(p Point) bool {
	if s.members.Has(p) {
		return false
	}
	s.members.Put(p)
	s.order = append(s.order, p)
	return true
}

// AddAll inserts every point of pts in order.
func (s *PointSet) AddAll(pts []Point) {
	for _, p := range pts {
		s.Add(p)
	}
}

// Union inserts every point of other.
func (s *PointSet) Union(other *PointSet) {
	other.Each(func(p Point) { s.Add(p) })
}

// Remove deletes p and reports whether it was present.
func (s *PointSet) Remove(p Point) bool {
	if !s.members.Has(p) {
		return false
	}
	s.members.Remove(p)
	s.removed++
	if s.removed > 32 && s.removed > len(s.order)/2 {
		s.compact()
	}
	return true
}

// RemoveAll deletes every point of other.
func (s *PointSet) RemoveAll(other *PointSet) {
	other.Each(func(p Point) { s.Remove(p) })
}

// Clear empties the set.
func (s *PointSet) Clear() {
	s.members = mapset.New[Point]()
	s.order = s.order[:0]
	s.removed = 0
}

func (s *PointSet) compact() {
	live := s.order[:0]
	for _, p := range s.order {
		if s.members.Has(p) {
			live = append(live, p)
		}
	}
	s.order = live
	s.removed = 0
}

// Each calls fn for every tile in insertion order.
func (s *PointSet) Each(fn func(Point)) {
	if s == nil {
		return
	}
	for _, p := range s.order {
		if s.removed > 0 && !s.members.Has(p) {
			continue
		}
		fn(p)
	}
}

// Points returns a copy of the tiles in insertion order.
func (s *PointSet) Points() []Point {
	out := make([]Point, 0, s.Len())
	s.Each(func(p Point) { out = append(out, p) })
	return out
}

// Clone returns an independent copy.
func (s *PointSet) Clone() *PointSet {
	c := NewPointSet()
	s.Each(func(p Point) { c.Add(p) })
	return c
}

// Without returns the tiles of s not blocked by b, in order.
func (s *PointSet) Without(b Blocker) *PointSet {
	out := NewPointSet()
	s.Each(func(p Point) {
		if b == nil || !b.Has(p) {
			out.Add(p)
		}
	})
	return out
}

// Intersects reports whether s and other share a tile.
func (s *PointSet) Intersects(other *PointSet) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	found := false
	small.Each(func(p Point) {
		if !found && large.Has(p) {
			found = true
		}
	})
	return found
}

// At returns the i-th live tile in insertion order.
func (s *PointSet) At(i int) Point {
	if s.removed > 0 {
		s.compact()
	}
	return s.order[i]
}

// Bounds returns the inclusive bounding box of s. ok is false for an empty set.
func (s *PointSet) Bounds() (b Bounds, ok bool) {
	s.Each(func(p Point) {
		if !ok {
			b = Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			ok = true
			return
		}
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	})
	return b, ok
}

// CountNeighbors4 returns how many cardinal neighbours of p are in s.
func (s *PointSet) CountNeighbors4(p Point) int {
	n := 0
	for _, d := range Cardinal {
		if s.Has(p.Add(d)) {
			n++
		}
	}
	return n
}
