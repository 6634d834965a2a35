package grid

import (
	"fmt"
	"iter"
)

// Grid describes a Dimension-dimensional lattice of side Width. Every
// coordinate of a contained point lies in [0, Width).
type Grid struct {
	Dimension int
	Width     int
}

func New(dimension, width int) Grid {
	if dimension < 1 || width < 1 {
		panic(fmt.Sprintf("invalid grid <%d:%d>", dimension, width))
	}
	return Grid{Dimension: dimension, Width: width}
}

// Size returns the number of lattice points, Width^Dimension.
func (g Grid) Size() uint64 {
	size := uint64(1)
	for range g.Dimension {
		size *= uint64(g.Width)
	}
	return size
}

// PointAt decodes an index in [0, Size()) into its point: the index is read
// as a base-Width number whose least significant digit is the last axis.
func (g Grid) PointAt(index uint64) Point {
	p := make(Point, g.Dimension)
	for i := range g.Dimension {
		p[g.Dimension-1-i] = int(index % uint64(g.Width))
		index /= uint64(g.Width)
	}
	return p
}

// IndexOf is the inverse of PointAt.
func (g Grid) IndexOf(p Point) uint64 {
	index := uint64(0)
	for _, x := range p {
		index = index*uint64(g.Width) + uint64(x)
	}
	return index
}

func (g Grid) Contains(p Point) bool {
	if p.Dimension() != g.Dimension {
		return false
	}
	for _, x := range p {
		if x < 0 || x >= g.Width {
			return false
		}
	}
	return true
}

// Points yields every lattice point exactly once, in index order (the last
// axis varies fastest). The sequence is restartable: each range starts over
// from index zero.
func (g Grid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		size := g.Size()
		for i := uint64(0); i < size; i++ {
			if !yield(g.PointAt(i)) {
				return
			}
		}
	}
}
