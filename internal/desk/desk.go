// Package desk defines the desk scene content: the textures, materials,
// lights and object placements that compose the rendered picture.
package desk

import (
	"github.com/studiolumen/deskscene/internal/engine/lighting"
	"github.com/studiolumen/deskscene/internal/engine/mesh"
	"github.com/studiolumen/deskscene/internal/engine/scene"
	"github.com/studiolumen/deskscene/pkg/math"
)

// Scene returns the full desk scene definition.
func Scene() scene.Definition {
	return scene.Definition{
		Textures:  textures(),
		Materials: materials(),
		Lights:    lights(),
		Objects:   objects(),
	}
}

func textures() []scene.TextureFile {
	return []scene.TextureFile{
		{Path: "textures/Desk texture.jpg", Tag: "DeskTexture"},
		{Path: "textures/BlackBezzle.jpg", Tag: "BlackBezzle"},
		{Path: "textures/Steel.jpg", Tag: "Steel"},
		{Path: "textures/coffeecuptexture.jpg", Tag: "CupTexture"},
	}
}

func materials() []scene.Material {
	return []scene.Material{
		{Tag: "metal", Diffuse: [3]float32{0.4, 0.4, 0.4}, Specular: [3]float32{0.7, 0.7, 0.6}, Shininess: 60},
		{Tag: "wood", Diffuse: [3]float32{0.2, 0.2, 0.3}, Specular: [3]float32{0, 0, 0}, Shininess: 0.1},
		{Tag: "glass", Diffuse: [3]float32{0.7, 0.7, 0.7}, Specular: [3]float32{1, 1, 1}, Shininess: 90},
	}
}

func lights() lighting.Rig {
	overhead := lighting.PointLight{
		Ambient:     [3]float32{0.1, 0.1, 0.1},
		Diffuse:     [3]float32{1, 1, 1},
		Specular:    [3]float32{1, 1, 1},
		Attenuation: [3]float32{1.0, 0.1, 0.05},
		Active:      true,
	}
	left := overhead
	left.Position = [3]float32{-15, 55, 0}
	back := overhead
	back.Position = [3]float32{0, 55, -5}
	overhead.Position = [3]float32{0, 55, 0}

	return lighting.Rig{
		Directional: lighting.DirectionalLight{
			Direction: [3]float32{0, -1, 0},
			Ambient:   [3]float32{0.1, 0.1, 0.1},
			Diffuse:   [3]float32{0.4, 0.4, 0.4},
			Specular:  [3]float32{1, 1, 1},
			Active:    true,
		},
		Points: []lighting.PointLight{overhead, left, back},
	}
}

// objects lists every draw step in order. Objects without a material
// tag inherit whatever material the previous step left in the shader.
func objects() []scene.Object {
	return []scene.Object{
		{
			Name:  "desk surface",
			Shape: mesh.Plane,
			Transform: scene.Transform{
				Scale: math.Vec3{X: 30, Y: 2, Z: 15},
			},
			TextureTag:  "DeskTexture",
			UVScale:     [2]float32{1, 1},
			MaterialTag: "wood",
		},
		{
			Name:  "backdrop",
			Shape: mesh.Plane,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 30, Y: 2, Z: 15},
				RotationDegrees: math.Vec3{X: 90},
				Translation:     math.Vec3{X: 0, Y: 15, Z: -15},
			},
			Color: [4]float32{0.9, 0.9, 0.9, 1},
		},
		{
			Name:  "monitor bezel",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 18, Y: 0.5, Z: 11},
				RotationDegrees: math.Vec3{X: 90},
				Translation:     math.Vec3{X: 0, Y: 8, Z: -7},
			},
			TextureTag:  "BlackBezzle",
			UVScale:     [2]float32{1, 1},
			MaterialTag: "metal",
		},
		{
			Name:  "monitor screen",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 16, Y: 0.7, Z: 9},
				RotationDegrees: math.Vec3{X: 90},
				Translation:     math.Vec3{X: 0, Y: 8, Z: -7},
			},
			Color: [4]float32{1, 1, 1, 1},
		},
		{
			Name:  "monitor trim",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 18, Y: 0.7, Z: 1},
				RotationDegrees: math.Vec3{X: 90},
				Translation:     math.Vec3{X: 0, Y: 2.4, Z: -7},
			},
			TextureTag:  "Steel",
			UVScale:     [2]float32{1, 1},
			MaterialTag: "metal",
		},
		{
			Name:  "monitor back",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 18, Y: 0.5, Z: 11},
				RotationDegrees: math.Vec3{X: 90},
				Translation:     math.Vec3{X: 0, Y: 8, Z: -7.5},
			},
			Color: [4]float32{0, 0, 0, 1},
		},
		{
			Name:  "stand base",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 5, Y: 0.5, Z: 6},
				RotationDegrees: math.Vec3{X: 90},
				Translation:     math.Vec3{X: 0, Y: 0, Z: -7},
			},
			TextureTag: "Steel",
			UVScale:    [2]float32{1, 1},
		},
		{
			Name:  "stand neck",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 8, Y: 4.5, Z: 1.5},
				RotationDegrees: math.Vec3{X: 90},
				Translation:     math.Vec3{X: 0, Y: 0, Z: -6},
			},
			TextureTag:  "Steel",
			UVScale:     [2]float32{1, 1},
			MaterialTag: "metal",
		},
		{
			Name:  "coffee cup",
			Shape: mesh.TaperedCylinder,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 1.8, Y: 2.8, Z: 1.8},
				RotationDegrees: math.Vec3{X: 180},
				Translation:     math.Vec3{X: -8.7, Y: 3.0, Z: -4.6},
			},
			TextureTag:  "CupTexture",
			UVScale:     [2]float32{1, 1},
			MaterialTag: "glass",
		},
		{
			Name:  "cup handle",
			Shape: mesh.Torus,
			Transform: scene.Transform{
				Scale:       math.Vec3{X: 0.8, Y: 0.8, Z: 0.3},
				Translation: math.Vec3{X: -6.9, Y: 1.3, Z: -4.6},
			},
			TextureTag:  "CupTexture",
			UVScale:     [2]float32{0, 0},
			MaterialTag: "glass",
		},
		{
			Name:  "keyboard",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:       math.Vec3{X: 11.8, Y: 0.8, Z: 3.8},
				Translation: math.Vec3{X: -2.2, Y: 0, Z: 0},
			},
			Color: [4]float32{1, 1, 1, 1},
		},
		{
			Name:  "mouse",
			Shape: mesh.Sphere,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 1.6, Y: 1.0, Z: 0.2},
				RotationDegrees: math.Vec3{Y: 90, Z: 90},
				Translation:     math.Vec3{X: 6.2, Y: 0.3, Z: 0},
			},
			Color: [4]float32{1, 1, 1, 1},
		},
		{
			Name:  "pencil cup",
			Shape: mesh.TaperedCylinder,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 1.8, Y: 2.8, Z: 1.8},
				RotationDegrees: math.Vec3{X: 180},
				Translation:     math.Vec3{X: 11.2, Y: 2.8, Z: -5.3},
			},
			Color: [4]float32{1, 1, 1, 1},
		},
		{
			Name:  "pencil 1",
			Shape: mesh.Cylinder,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 0.2, Y: 3.5, Z: 0.2},
				RotationDegrees: math.Vec3{X: 5, Y: 15},
				Translation:     math.Vec3{X: 11.2, Y: 1.0, Z: -5.3},
			},
			Color: [4]float32{0, 0, 0, 1},
		},
		{
			Name:  "pencil 2",
			Shape: mesh.Cylinder,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 0.2, Y: 3.8, Z: 0.2},
				RotationDegrees: math.Vec3{X: -13, Y: -10},
				Translation:     math.Vec3{X: 10.8, Y: 1.3, Z: -5.2},
			},
			Color: [4]float32{0, 0, 0, 1},
		},
		{
			Name:  "pencil 3",
			Shape: mesh.Cylinder,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 0.2, Y: 3.2, Z: 0.2},
				RotationDegrees: math.Vec3{X: 7, Y: -5},
				Translation:     math.Vec3{X: 10.1, Y: 1.9, Z: -5.4},
			},
			Color: [4]float32{0, 0, 0, 1},
		},
		{
			Name:  "book 1",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 3.5, Y: 0.5, Z: 2.5},
				RotationDegrees: math.Vec3{Y: -5},
				Translation:     math.Vec3{X: -13, Y: 0.25, Z: -5},
			},
			Color: [4]float32{0, 0, 0, 1},
		},
		{
			Name:  "book 2",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 3.3, Y: 0.4, Z: 2.4},
				RotationDegrees: math.Vec3{Y: 3},
				Translation:     math.Vec3{X: -12.9, Y: 0.75, Z: -5.2},
			},
			Color: [4]float32{1, 1, 1, 1},
		},
		{
			Name:  "book 3",
			Shape: mesh.Box,
			Transform: scene.Transform{
				Scale:           math.Vec3{X: 3.2, Y: 0.3, Z: 2.3},
				RotationDegrees: math.Vec3{Y: -7},
				Translation:     math.Vec3{X: -13.2, Y: 1.1, Z: -4.8},
			},
			Color: [4]float32{0, 0, 0, 1},
		},
	}
}
