// Package lighting defines the light sources the scene shader consumes.
package lighting

// MaxPointLights is the number of point light slots in the shader.
const MaxPointLights = 3

// DirectionalLight is an infinitely distant light shining along a fixed
// direction.
type DirectionalLight struct {
	Direction [3]float32
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Active    bool
}

// PointLight is a positional light with distance falloff. Attenuation
// holds the constant, linear and quadratic terms.
type PointLight struct {
	Position    [3]float32
	Ambient     [3]float32
	Diffuse     [3]float32
	Specular    [3]float32
	Attenuation [3]float32
	Active      bool
}

// Rig is the full set of lights a scene uploads to the shader.
type Rig struct {
	Directional DirectionalLight
	Points      []PointLight
}

// AddPoint appends a point light. Returns false when every shader slot
// is taken.
func (r *Rig) AddPoint(light PointLight) bool {
	if len(r.Points) >= MaxPointLights {
		return false
	}
	r.Points = append(r.Points, light)
	return true
}

// SetPoints replaces the point lights, truncating to MaxPointLights.
func (r *Rig) SetPoints(lights []PointLight) {
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	r.Points = append(r.Points[:0], lights[:count]...)
}
