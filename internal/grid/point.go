// Package grid provides the integer tile coordinates, direction tables and
// tile sets shared by every stage of dungeon generation.
package grid

import (
	"fmt"
	"math"
)

// Point is an integer tile coordinate. Y grows upward.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns the 4-connected distance between a and b.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Vec2 is a float coordinate, used for room centers.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Round returns the nearest tile to v.
func (v Vec2) Round() Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Distance returns the straight-line distance between v and w.
func (v Vec2) Distance(w Vec2) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Rect is an axis-aligned integer rectangle. Min is inclusive, Max exclusive.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// NewRect returns the rectangle with origin (x, y) and size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Min returns the inclusive lower-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// MaxX returns the exclusive upper x bound.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY returns the exclusive upper y bound.
func (r Rect) MaxY() int { return r.Y + r.H }

// Center returns the geometric center of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Area returns W*H.
func (r Rect) Area() int {
	return r.W * r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}

// Bounds is an inclusive tile-space bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Expand grows b by n tiles on every side.
func (b Bounds) Expand(n int) Bounds {
	return Bounds{MinX: b.MinX - n, MinY: b.MinY - n, MaxX: b.MaxX + n, MaxY: b.MaxY + n}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Each calls fn for every tile in b, row by row from the bottom.
func (b Bounds) Each(fn func(Point)) {
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}
