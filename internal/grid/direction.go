package grid

// Unit offsets.
var (
	Up        = Point{X: 0, Y: 1}
	Right     = Point{X: 1, Y: 0}
	Down      = Point{X: 0, Y: -1}
	Left      = Point{X: -1, Y: 0}
	UpRight   = Point{X: 1, Y: 1}
	DownRight = Point{X: 1, Y: -1}
	DownLeft  = Point{X: -1, Y: -1}
	UpLeft    = Point{X: -1, Y: 1}
)

// Cardinal lists the four axis directions in up, right, down, left order.
// Wall patterns depend on this order.
var Cardinal = [4]Point{Up, Right, Down, Left}

// Diagonal lists the four diagonal directions clockwise from up-right.
var Diagonal = [4]Point{UpRight, DownRight, DownLeft, UpLeft}

// Eight lists all neighbours clockwise starting at up.
var Eight = [8]Point{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// Neighbors4 returns the cardinal neighbours of p.
func Neighbors4(p Point) [4]Point {
	var out [4]Point
	for i, d := range Cardinal {
		out[i] = p.Add(d)
	}
	return out
}

// Neighbors8 returns all eight neighbours of p in Eight order.
func Neighbors8(p Point) [8]Point {
	var out [8]Point
	for i, d := range Eight {
		out[i] = p.Add(d)
	}
	return out
}

// Blocker reports whether a tile is unavailable.
type Blocker interface {
	Has(p Point) bool
}

// BlockerFunc adapts a function to Blocker.
type BlockerFunc func(p Point) bool

// Has implements Blocker.
func (f BlockerFunc) Has(p Point) bool { return f(p) }

// AnyOf returns a Blocker that blocks p when any of bs does. Nil entries are ignored.
func AnyOf(bs ...Blocker) Blocker {
	return BlockerFunc(func(p Point) bool {
		for _, b := range bs {
			if b != nil && b.Has(p) {
				return true
			}
		}
		return false
	})
}
