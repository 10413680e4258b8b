package scene

// Material holds the reflectance parameters a tag selects during
// rendering.
type Material struct {
	Tag       string
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
}

// MaterialRegistry is an insertion-ordered material list. Tags are
// expected to be unique but duplicates are not rejected; Lookup returns
// the first match.
type MaterialRegistry struct {
	materials []Material
}

// Define appends one material.
func (r *MaterialRegistry) Define(tag string, diffuse, specular [3]float32, shininess float32) {
	r.materials = append(r.materials, Material{
		Tag:       tag,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	})
}

// Lookup returns the first material defined under tag.
func (r *MaterialRegistry) Lookup(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Count returns the number of defined materials.
func (r *MaterialRegistry) Count() int {
	return len(r.materials)
}
