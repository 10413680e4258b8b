package scene

import "testing"

func TestMaterialRegistryDefineLookup(t *testing.T) {
	var r MaterialRegistry
	r.Define("metal", [3]float32{0.4, 0.4, 0.4}, [3]float32{0.7, 0.7, 0.6}, 60)
	r.Define("wood", [3]float32{0.2, 0.2, 0.3}, [3]float32{0, 0, 0}, 0.1)
	r.Define("glass", [3]float32{0.7, 0.7, 0.7}, [3]float32{1, 1, 1}, 90)

	if r.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", r.Count())
	}

	m, ok := r.Lookup("wood")
	if !ok {
		t.Fatal("Lookup(wood) reported not found")
	}
	if m.Diffuse != [3]float32{0.2, 0.2, 0.3} {
		t.Errorf("wood diffuse = %v", m.Diffuse)
	}
	if m.Specular != [3]float32{0, 0, 0} {
		t.Errorf("wood specular = %v", m.Specular)
	}
	if m.Shininess != 0.1 {
		t.Errorf("wood shininess = %f", m.Shininess)
	}
}

func TestMaterialRegistryLookupMiss(t *testing.T) {
	var r MaterialRegistry
	r.Define("metal", [3]float32{0.4, 0.4, 0.4}, [3]float32{0.7, 0.7, 0.6}, 60)

	m, ok := r.Lookup("plastic")
	if ok {
		t.Fatal("Lookup(plastic) reported found")
	}
	if m != (Material{}) {
		t.Errorf("miss returned non-zero material %+v", m)
	}
}

func TestMaterialRegistryFirstMatch(t *testing.T) {
	var r MaterialRegistry
	r.Define("metal", [3]float32{0.4, 0.4, 0.4}, [3]float32{0.7, 0.7, 0.6}, 60)
	r.Define("metal", [3]float32{1, 0, 0}, [3]float32{1, 0, 0}, 5)

	m, ok := r.Lookup("metal")
	if !ok {
		t.Fatal("Lookup(metal) reported not found")
	}
	if m.Shininess != 60 {
		t.Errorf("Lookup(metal) returned the later duplicate (shininess %f)", m.Shininess)
	}
}
