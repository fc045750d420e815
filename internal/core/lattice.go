package core

const occupiedCell = 1

var (
	cardinalOffsets = []Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	diagonalOffsets = []Point{{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
)

// Lattice records frozen cluster cells over the square domain [-R, R] x [-R, R].
// The origin is always occupied after construction and Reset.
type Lattice struct {
	r     int
	grid  *ByteGrid
	count int
}

// NewLattice allocates a lattice with half-width radius and seeds the origin.
func NewLattice(radius int) *Lattice {
	if radius < 1 {
		radius = 1
	}
	side := 2*radius + 1
	l := &Lattice{r: radius, grid: NewByteGrid(side, side)}
	l.Reset()
	return l
}

// Radius returns the half-width R of the domain.
func (l *Lattice) Radius() int { return l.r }

// Size returns the grid dimensions of the backing store.
func (l *Lattice) Size() Size { return Size{W: l.grid.W, H: l.grid.H} }

// Count returns the number of occupied cells, the origin included.
func (l *Lattice) Count() int { return l.count }

// Cells exposes the row-major occupancy buffer; (-R, -R) is index 0.
func (l *Lattice) Cells() []uint8 { return l.grid.Cells() }

// InBounds reports whether (x, y) lies inside the domain.
func (l *Lattice) InBounds(x, y int) bool {
	return x >= -l.r && x <= l.r && y >= -l.r && y <= l.r
}

// IsOccupied reports whether (x, y) holds a frozen particle.
func (l *Lattice) IsOccupied(x, y int) bool {
	if !l.InBounds(x, y) {
		return false
	}
	return l.grid.At(x+l.r, y+l.r) == occupiedCell
}

// Occupy freezes (x, y). It reports false when the cell is out of bounds or
// already occupied.
func (l *Lattice) Occupy(x, y int) bool {
	if !l.InBounds(x, y) || l.IsOccupied(x, y) {
		return false
	}
	l.grid.Set(x+l.r, y+l.r, occupiedCell)
	l.count++
	return true
}

// NeighborsOccupied counts occupied cells among the 4 cardinal neighbours of
// (x, y), or all 8 surrounding cells when diagonals is set.
func (l *Lattice) NeighborsOccupied(x, y int, diagonals bool) int {
	n := 0
	for _, d := range cardinalOffsets {
		if l.IsOccupied(x+d.X, y+d.Y) {
			n++
		}
	}
	if !diagonals {
		return n
	}
	for _, d := range diagonalOffsets {
		if l.IsOccupied(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// Nearest returns the occupied cell closest to (x, y) in Euclidean distance
// among the cells within Chebyshev distance maxDist. Ties keep the first cell
// in row-major scan order.
func (l *Lattice) Nearest(x, y, maxDist int) (Point, bool) {
	if maxDist <= 0 {
		return Point{}, false
	}
	origin := Point{X: x, Y: y}
	best := Point{}
	bestDist := -1
	for dy := -maxDist; dy <= maxDist; dy++ {
		for dx := -maxDist; dx <= maxDist; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := Point{X: x + dx, Y: y + dy}
			if !l.IsOccupied(p.X, p.Y) {
				continue
			}
			d := origin.Dist2(p)
			if bestDist < 0 || d < bestDist {
				best = p
				bestDist = d
			}
		}
	}
	return best, bestDist >= 0
}

// Occupied lists every frozen cell in row-major order.
func (l *Lattice) Occupied() []Point {
	pts := make([]Point, 0, l.count)
	cells := l.grid.Cells()
	for i, v := range cells {
		if v != occupiedCell {
			continue
		}
		pts = append(pts, Point{X: i%l.grid.W - l.r, Y: i/l.grid.W - l.r})
	}
	return pts
}

// Reset clears every mark and re-occupies the origin.
func (l *Lattice) Reset() {
	l.grid.Clear()
	l.count = 0
	l.Occupy(0, 0)
}
