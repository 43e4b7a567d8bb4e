package obj

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns half the length of the box diagonal.
func (b Bounds) Radius() float32 {
	s := b.Size()
	return math32.Sqrt(s.Dot(s)) / 2
}

// Bounds returns the bounding box of all vertices in the model.
// The second result is false if the model has no vertices.
func (m *Model) Bounds() (Bounds, bool) {
	if len(m.vertices) == 0 {
		return Bounds{}, false
	}

	first := m.vertices[0]
	b := Bounds{
		Min: mgl32.Vec3{first.X, first.Y, first.Z},
		Max: mgl32.Vec3{first.X, first.Y, first.Z},
	}
	for _, v := range m.vertices[1:] {
		p := mgl32.Vec3{v.X, v.Y, v.Z}
		for i := 0; i < 3; i++ {
			b.Min[i] = math32.Min(b.Min[i], p[i])
			b.Max[i] = math32.Max(b.Max[i], p[i])
		}
	}
	return b, true
}
