// Package obj loads Wavefront OBJ geometry into flat vertex, texture
// coordinate and normal lists with named groups of indexed faces.
package obj

import "fmt"

// DefaultGroupName names the group created for faces that appear before
// any group directive.
const DefaultGroupName = "default"

// Vertex is a vertex position.
type Vertex struct {
	X, Y, Z float32
}

// TexCoord is a texture coordinate.
type TexCoord struct {
	U, V float32
}

// Normal is a vertex normal.
type Normal struct {
	X, Y, Z float32
}

// Face is a polygon given as zero-based indices into the model's flat lists.
// Texture and normal index lists only hold entries the source supplied,
// so they may be shorter than the vertex index list.
type Face struct {
	vertices  []int
	texCoords []int
	normals   []int
}

// VertexIndices returns the vertex indices of the face.
func (f *Face) VertexIndices() []int { return f.vertices }

// VertexIndexCount returns the number of vertex indices.
func (f *Face) VertexIndexCount() int { return len(f.vertices) }

// TexCoordIndices returns the texture coordinate indices of the face.
func (f *Face) TexCoordIndices() []int { return f.texCoords }

// TexCoordIndexCount returns the number of texture coordinate indices.
func (f *Face) TexCoordIndexCount() int { return len(f.texCoords) }

// NormalIndices returns the normal indices of the face.
func (f *Face) NormalIndices() []int { return f.normals }

// NormalIndexCount returns the number of normal indices.
func (f *Face) NormalIndexCount() int { return len(f.normals) }

// Group is a named, ordered collection of faces.
type Group struct {
	name  string
	faces []Face
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// FaceCount returns the number of faces in the group.
func (g *Group) FaceCount() int { return len(g.faces) }

// FaceAt returns the face at index i.
// Returns nil if i is out of bounds.
func (g *Group) FaceAt(i int) *Face {
	if i < 0 || i >= len(g.faces) {
		return nil
	}
	return &g.faces[i]
}

// Faces returns the faces of the group in source order.
func (g *Group) Faces() []Face { return g.faces }

// Model is a loaded OBJ file.
//
// The slices returned by accessors alias model storage and must not be
// modified. A model is only mutated while it is being parsed.
type Model struct {
	vertices  []Vertex
	texCoords []TexCoord
	normals   []Normal
	groups    []Group
	byName    map[string]int
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{byName: make(map[string]int)}
}

// Vertices returns the flat vertex list.
func (m *Model) Vertices() []Vertex { return m.vertices }

// VertexCount returns the number of vertices.
func (m *Model) VertexCount() int { return len(m.vertices) }

// TexCoords returns the flat texture coordinate list.
func (m *Model) TexCoords() []TexCoord { return m.texCoords }

// TexCoordCount returns the number of texture coordinates.
func (m *Model) TexCoordCount() int { return len(m.texCoords) }

// Normals returns the flat normal list.
func (m *Model) Normals() []Normal { return m.normals }

// NormalCount returns the number of normals.
func (m *Model) NormalCount() int { return len(m.normals) }

// GroupCount returns the number of groups.
func (m *Model) GroupCount() int { return len(m.groups) }

// GroupAt returns the group at index i in first-appearance order.
// Returns nil if i is out of bounds.
func (m *Model) GroupAt(i int) *Group {
	if i < 0 || i >= len(m.groups) {
		return nil
	}
	return &m.groups[i]
}

// Group returns the group with the given name, or nil.
func (m *Model) Group(name string) *Group {
	idx, ok := m.byName[name]
	if !ok {
		return nil
	}
	return &m.groups[idx]
}

// FaceCount returns the total number of faces across all groups.
func (m *Model) FaceCount() int {
	n := 0
	for i := range m.groups {
		n += len(m.groups[i].faces)
	}
	return n
}

// Clear releases all geometry and groups. It is safe to call on a nil or
// already cleared model.
func (m *Model) Clear() {
	if m == nil {
		return
	}
	m.vertices = nil
	m.texCoords = nil
	m.normals = nil
	m.groups = nil
	m.byName = make(map[string]int)
}

// findOrAddGroup returns the index of the named group, appending a new
// empty group if none exists. Indices stay valid as the slice grows.
func (m *Model) findOrAddGroup(name string) int {
	if idx, ok := m.byName[name]; ok {
		return idx
	}
	m.groups = append(m.groups, Group{name: name})
	idx := len(m.groups) - 1
	m.byName[name] = idx
	return idx
}

// Attributes is a set of optional per-vertex attributes.
type Attributes uint8

// Optional attributes.
const (
	AttrTexCoord Attributes = 1 << iota
	AttrNormal
)

// Has reports whether all attributes in a are set.
func (s Attributes) Has(a Attributes) bool {
	return s&a == a
}

// Attributes returns the optional attributes the model carries: a flat list
// that is non-empty counts as present for every face.
func (m *Model) Attributes() Attributes {
	var s Attributes
	if len(m.texCoords) > 0 {
		s |= AttrTexCoord
	}
	if len(m.normals) > 0 {
		s |= AttrNormal
	}
	return s
}

// Corner is one resolved face vertex.
type Corner struct {
	Position Vertex
	TexCoord *TexCoord // nil unless requested
	Normal   *Normal   // nil unless requested
}

// Corner resolves the i-th vertex of f against the flat lists, looking up
// the optional attributes in want. A missing or invalid index for any
// requested attribute is an ErrIndexOutOfRange.
func (m *Model) Corner(f *Face, i int, want Attributes) (Corner, error) {
	var c Corner
	if i < 0 || i >= len(f.vertices) {
		return c, fmt.Errorf("%w: face vertex %d of %d", ErrIndexOutOfRange, i, len(f.vertices))
	}

	vi := f.vertices[i]
	if vi < 0 || vi >= len(m.vertices) {
		return c, fmt.Errorf("%w: vertex %d (have %d)", ErrIndexOutOfRange, vi+1, len(m.vertices))
	}
	c.Position = m.vertices[vi]

	if want.Has(AttrTexCoord) {
		if i >= len(f.texCoords) {
			return c, fmt.Errorf("%w: face vertex %d has no texture coordinate", ErrIndexOutOfRange, i)
		}
		ti := f.texCoords[i]
		if ti < 0 || ti >= len(m.texCoords) {
			return c, fmt.Errorf("%w: texture coordinate %d (have %d)", ErrIndexOutOfRange, ti+1, len(m.texCoords))
		}
		c.TexCoord = &m.texCoords[ti]
	}

	if want.Has(AttrNormal) {
		if i >= len(f.normals) {
			return c, fmt.Errorf("%w: face vertex %d has no normal", ErrIndexOutOfRange, i)
		}
		ni := f.normals[i]
		if ni < 0 || ni >= len(m.normals) {
			return c, fmt.Errorf("%w: normal %d (have %d)", ErrIndexOutOfRange, ni+1, len(m.normals))
		}
		c.Normal = &m.normals[ni]
	}

	return c, nil
}
