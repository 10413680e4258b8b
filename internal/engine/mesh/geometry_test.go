package mesh

import (
	"testing"

	"github.com/chewxy/math32"
)

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestGenerateAllShapes(t *testing.T) {
	for _, s := range AllShapes() {
		g, err := Generate(s)
		if err != nil {
			t.Fatalf("Generate(%v): %v", s, err)
		}
		if len(g.Vertices) == 0 || len(g.Indices) == 0 {
			t.Errorf("%v: empty geometry", s)
		}
		if len(g.Indices)%3 != 0 {
			t.Errorf("%v: index count %d not a multiple of 3", s, len(g.Indices))
		}
		for _, idx := range g.Indices {
			if int(idx) >= len(g.Vertices) {
				t.Fatalf("%v: index %d out of range (%d vertices)", s, idx, len(g.Vertices))
			}
		}
		for i, v := range g.Vertices {
			n := v.Normal
			len2 := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
			if absf(len2-1) > 1e-4 {
				t.Errorf("%v: vertex %d normal is not unit length (len sq = %f)", s, i, len2)
				break
			}
		}
	}
}

func TestGenerateUnknownShape(t *testing.T) {
	if _, err := Generate(Shape(99)); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestPlaneGeometry(t *testing.T) {
	g := NewPlane()
	if len(g.Vertices) != 4 || len(g.Indices) != 6 {
		t.Fatalf("plane: got %d vertices, %d indices", len(g.Vertices), len(g.Indices))
	}
	for _, v := range g.Vertices {
		if v.Position[1] != 0 {
			t.Errorf("plane vertex off the XZ plane: %v", v.Position)
		}
		if absf(v.Position[0]) != 1 || absf(v.Position[2]) != 1 {
			t.Errorf("plane vertex not at the ±1 extents: %v", v.Position)
		}
		if v.Normal != [3]float32{0, 1, 0} {
			t.Errorf("plane normal = %v, want +Y", v.Normal)
		}
	}
}

func TestBoxGeometry(t *testing.T) {
	g := NewBox()
	if len(g.Vertices) != 24 || len(g.Indices) != 36 {
		t.Fatalf("box: got %d vertices, %d indices", len(g.Vertices), len(g.Indices))
	}
	for _, v := range g.Vertices {
		for axis := 0; axis < 3; axis++ {
			if absf(v.Position[axis]) != 0.5 {
				t.Fatalf("box corner off the unit cube: %v", v.Position)
			}
		}
	}
}

func TestCylinderBounds(t *testing.T) {
	g := NewCylinder(16, 1)
	minY, maxY := float32(1), float32(0)
	for _, v := range g.Vertices {
		if v.Position[1] < minY {
			minY = v.Position[1]
		}
		if v.Position[1] > maxY {
			maxY = v.Position[1]
		}
		r2 := v.Position[0]*v.Position[0] + v.Position[2]*v.Position[2]
		if r2 > 1+1e-4 {
			t.Errorf("cylinder vertex outside radius 1: %v", v.Position)
		}
	}
	if minY != 0 || maxY != 1 {
		t.Errorf("cylinder y span [%f, %f], want [0, 1]", minY, maxY)
	}
}

func TestTaperedCylinderRadii(t *testing.T) {
	g := NewTaperedCylinder(16, 1)
	maxRadiusAt := func(y float32) float32 {
		var max float32
		for _, v := range g.Vertices {
			if v.Position[1] != y {
				continue
			}
			r := math32.Sqrt(v.Position[0]*v.Position[0] + v.Position[2]*v.Position[2])
			if r > max {
				max = r
			}
		}
		return max
	}
	if r := maxRadiusAt(0); absf(r-1) > 1e-3 {
		t.Errorf("bottom radius = %f, want 1", r)
	}
	if r := maxRadiusAt(1); absf(r-0.5) > 1e-3 {
		t.Errorf("top radius = %f, want 0.5", r)
	}
}

func TestSphereGeometry(t *testing.T) {
	g := NewSphere(16, 8)
	for i, v := range g.Vertices {
		r2 := v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2]
		if absf(r2-1) > 1e-4 {
			t.Fatalf("sphere vertex %d off the unit sphere: %v", i, v.Position)
		}
		if v.Normal != v.Position {
			t.Fatalf("sphere vertex %d normal %v does not match position %v", i, v.Normal, v.Position)
		}
	}
}

func TestTorusGeometry(t *testing.T) {
	g := NewTorus(16, 8)
	for _, v := range g.Vertices {
		if absf(v.Position[2]) > torusTubeRadius+1e-4 {
			t.Errorf("torus vertex too far off the XY plane: %v", v.Position)
		}
		ringDist := math32.Sqrt(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1])
		dz := v.Position[2]
		tube2 := (ringDist-1)*(ringDist-1) + dz*dz
		if absf(tube2-torusTubeRadius*torusTubeRadius) > 1e-3 {
			t.Errorf("torus vertex off the tube surface: %v", v.Position)
		}
	}
}
