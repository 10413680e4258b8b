// Package mesh generates the primitive shapes the scene is composed of
// and owns their GPU buffers.
package mesh

import "fmt"

// Shape identifies one of the primitive meshes.
type Shape int

const (
	Plane Shape = iota
	Box
	Cylinder
	TaperedCylinder
	Torus
	Sphere
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case TaperedCylinder:
		return "tapered cylinder"
	case Torus:
		return "torus"
	case Sphere:
		return "sphere"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// AllShapes lists every primitive shape.
func AllShapes() []Shape {
	return []Shape{Plane, Box, Cylinder, TaperedCylinder, Torus, Sphere}
}

// Vertex is a single mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Geometry is mesh data in CPU memory, ready for GPU upload.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Default segment counts for the curved shapes.
const (
	radialSegs       = 32
	heightSegs       = 1
	sphereWidthSegs  = 32
	sphereHeightSegs = 16
	torusRingSegs    = 32
	torusTubeSegs    = 16
)

// Generate builds the geometry for a shape at its default resolution.
func Generate(s Shape) (Geometry, error) {
	switch s {
	case Plane:
		return NewPlane(), nil
	case Box:
		return NewBox(), nil
	case Cylinder:
		return NewCylinder(radialSegs, heightSegs), nil
	case TaperedCylinder:
		return NewTaperedCylinder(radialSegs, heightSegs), nil
	case Torus:
		return NewTorus(torusRingSegs, torusTubeSegs), nil
	case Sphere:
		return NewSphere(sphereWidthSegs, sphereHeightSegs), nil
	default:
		return Geometry{}, fmt.Errorf("unknown shape %d", int(s))
	}
}
