package mesh

import "github.com/chewxy/math32"

// NewPlane builds a 2x2 quad in the XZ plane centered at the origin,
// facing +Y.
func NewPlane() Geometry {
	up := [3]float32{0, 1, 0}
	return Geometry{
		Vertices: []Vertex{
			{Position: [3]float32{-1, 0, -1}, Normal: up, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{1, 0, -1}, Normal: up, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{1, 0, 1}, Normal: up, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-1, 0, 1}, Normal: up, TexCoord: [2]float32{0, 1}},
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}

// NewBox builds a unit cube centered at the origin. Each face carries
// its own four vertices so normals and UVs stay flat.
func NewBox() Geometry {
	var g Geometry
	const h = 0.5
	faces := []struct {
		corners [4][3]float32
		normal  [3]float32
	}{
		{[4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}, [3]float32{0, 0, 1}},
		{[4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, [3]float32{0, 0, -1}},
		{[4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}, [3]float32{1, 0, 0}},
		{[4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, [3]float32{-1, 0, 0}},
		{[4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}, [3]float32{0, 1, 0}},
		{[4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, [3]float32{0, -1, 0}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, f := range faces {
		base := uint32(len(g.Vertices))
		for i, c := range f.corners {
			g.Vertices = append(g.Vertices, Vertex{Position: c, Normal: f.normal, TexCoord: uvs[i]})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// NewCylinder builds a capped cylinder of radius 1 spanning y in [0,1],
// base at the origin.
func NewCylinder(radialSegs, heightSegs int) Geometry {
	return newConic(1, 1, radialSegs, heightSegs)
}

// NewTaperedCylinder builds a capped cone frustum spanning y in [0,1],
// bottom radius 1 tapering to 0.5 at the top.
func NewTaperedCylinder(radialSegs, heightSegs int) Geometry {
	return newConic(1, 0.5, radialSegs, heightSegs)
}

// newConic builds the shared cylinder/frustum geometry: a lateral
// surface from botRad at y=0 to topRad at y=1, closed by flat disk caps.
func newConic(botRad, topRad float32, radialSegs, heightSegs int) Geometry {
	var g Geometry

	// Lateral surface. The seam column is duplicated so UVs wrap cleanly.
	// Slanted sides tilt the normal by (botRad-topRad)/height in y.
	tanTheta := botRad - topRad
	nscale := 1 / math32.Sqrt(1+tanTheta*tanTheta)
	for i := 0; i <= heightSegs; i++ {
		v := float32(i) / float32(heightSegs)
		radius := botRad + v*(topRad-botRad)
		for j := 0; j <= radialSegs; j++ {
			u := float32(j) / float32(radialSegs)
			theta := u * 2 * math32.Pi
			cos, sin := math32.Cos(theta), math32.Sin(theta)
			g.Vertices = append(g.Vertices, Vertex{
				Position: [3]float32{radius * cos, v, radius * sin},
				Normal:   [3]float32{cos * nscale, tanTheta * nscale, sin * nscale},
				TexCoord: [2]float32{u, 1 - v},
			})
		}
	}
	stride := uint32(radialSegs + 1)
	for i := 0; i < heightSegs; i++ {
		row := uint32(i) * stride
		for j := 0; j < radialSegs; j++ {
			a := row + uint32(j)
			b := a + 1
			d := a + stride
			c := d + 1
			g.Indices = append(g.Indices, a, d, b, b, d, c)
		}
	}

	g = appendDiskCap(g, topRad, 1, true, radialSegs)
	g = appendDiskCap(g, botRad, 0, false, radialSegs)
	return g
}

// appendDiskCap closes a conic end with a triangle fan around a center
// vertex. top selects the +Y winding and normal.
func appendDiskCap(g Geometry, radius, y float32, top bool, radialSegs int) Geometry {
	ny := float32(-1)
	if top {
		ny = 1
	}
	normal := [3]float32{0, ny, 0}

	center := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{
		Position: [3]float32{0, y, 0},
		Normal:   normal,
		TexCoord: [2]float32{0.5, 0.5},
	})
	for j := 0; j <= radialSegs; j++ {
		theta := float32(j) / float32(radialSegs) * 2 * math32.Pi
		cos, sin := math32.Cos(theta), math32.Sin(theta)
		g.Vertices = append(g.Vertices, Vertex{
			Position: [3]float32{radius * cos, y, radius * sin},
			Normal:   normal,
			TexCoord: [2]float32{(cos + 1) / 2, (sin + 1) / 2},
		})
	}
	rim := center + 1
	for j := 0; j < radialSegs; j++ {
		a := rim + uint32(j)
		b := a + 1
		if top {
			g.Indices = append(g.Indices, center, b, a)
		} else {
			g.Indices = append(g.Indices, center, a, b)
		}
	}
	return g
}

// NewSphere builds a unit sphere centered at the origin from a
// latitude/longitude grid. The quads touching each pole collapse to
// single triangles.
func NewSphere(widthSegs, heightSegs int) Geometry {
	var g Geometry
	for i := 0; i <= heightSegs; i++ {
		elev := float32(i) / float32(heightSegs) * math32.Pi
		sinE, cosE := math32.Sin(elev), math32.Cos(elev)
		for j := 0; j <= widthSegs; j++ {
			ang := float32(j) / float32(widthSegs) * 2 * math32.Pi
			p := [3]float32{sinE * math32.Cos(ang), cosE, sinE * math32.Sin(ang)}
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   p,
				TexCoord: [2]float32{float32(j) / float32(widthSegs), float32(i) / float32(heightSegs)},
			})
		}
	}
	stride := uint32(widthSegs + 1)
	for i := 0; i < heightSegs; i++ {
		row := uint32(i) * stride
		for j := 0; j < widthSegs; j++ {
			v2 := row + uint32(j)
			v1 := v2 + 1
			v3 := v2 + stride
			v4 := v1 + stride
			if i != 0 {
				g.Indices = append(g.Indices, v1, v4, v2)
			}
			if i != heightSegs-1 {
				g.Indices = append(g.Indices, v2, v4, v3)
			}
		}
	}
	return g
}

// Torus proportions: ring radius 1, tube radius a quarter of that.
const torusTubeRadius = 0.25

// NewTorus builds a torus lying in the XY plane, centered at the
// origin, with ring radius 1 and tube radius 0.25.
func NewTorus(ringSegs, tubeSegs int) Geometry {
	var g Geometry
	const ringRad = 1
	for j := 0; j <= tubeSegs; j++ {
		v := float32(j) / float32(tubeSegs) * 2 * math32.Pi
		cosV, sinV := math32.Cos(v), math32.Sin(v)
		for i := 0; i <= ringSegs; i++ {
			u := float32(i) / float32(ringSegs) * 2 * math32.Pi
			cosU, sinU := math32.Cos(u), math32.Sin(u)
			p := [3]float32{
				(ringRad + torusTubeRadius*cosV) * cosU,
				(ringRad + torusTubeRadius*cosV) * sinU,
				torusTubeRadius * sinV,
			}
			// Normal points from the tube center circle out to the surface.
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   [3]float32{cosV * cosU, cosV * sinU, sinV},
				TexCoord: [2]float32{float32(i) / float32(ringSegs), float32(j) / float32(tubeSegs)},
			})
		}
	}
	stride := uint32(ringSegs + 1)
	for j := 1; j <= tubeSegs; j++ {
		for i := 1; i <= ringSegs; i++ {
			a := stride*uint32(j) + uint32(i-1)
			b := stride*uint32(j-1) + uint32(i-1)
			c := stride*uint32(j-1) + uint32(i)
			d := stride*uint32(j) + uint32(i)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}
