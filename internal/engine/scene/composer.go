// Package scene drives the per-object uniform and draw cycle that
// turns a static object list into rendered frames. It owns the texture
// and material registries and the one-time light upload.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/studiolumen/deskscene/internal/engine/lighting"
	"github.com/studiolumen/deskscene/internal/engine/mesh"
	"github.com/studiolumen/deskscene/internal/logger"
	"github.com/studiolumen/deskscene/pkg/math"
)

// UniformStore is the subset of shader program operations the composer
// writes through. *shader.Program implements it.
type UniformStore interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, v [2]float32)
	SetVec3(name string, v [3]float32)
	SetVec4(name string, v [4]float32)
	SetMat4(name string, m math.Mat4)
}

// ShapeDrawer prepares and draws primitive shapes. *mesh.Library
// implements it.
type ShapeDrawer interface {
	Load(shapes ...mesh.Shape) error
	Draw(shape mesh.Shape)
	Destroy()
}

// TextureFile names an image on disk and the tag it registers under.
type TextureFile struct {
	Path string
	Tag  string
}

// Object is one draw step: a primitive shape, its placement, and
// either a flat color or a texture tag, plus an optional material tag.
// A non-empty TextureTag wins over Color.
type Object struct {
	Name        string
	Shape       mesh.Shape
	Transform   Transform
	TextureTag  string
	UVScale     [2]float32
	Color       [4]float32
	MaterialTag string
}

// Definition is the full content of a scene: images to register,
// materials, lights, and the ordered object list drawn each frame.
type Definition struct {
	Textures  []TextureFile
	Materials []Material
	Lights    lighting.Rig
	Objects   []Object
}

// Composer owns the registries and replays the scene's object list,
// writing transform, color/texture and material uniforms before each
// draw call.
type Composer struct {
	uniforms  UniformStore
	shapes    ShapeDrawer
	Textures  *TextureRegistry
	Materials *MaterialRegistry
	objects   []Object
}

// NewComposer creates a composer around the given uniform store, shape
// drawer and registries.
func NewComposer(uniforms UniformStore, shapes ShapeDrawer, textures *TextureRegistry, materials *MaterialRegistry) *Composer {
	return &Composer{
		uniforms:  uniforms,
		shapes:    shapes,
		Textures:  textures,
		Materials: materials,
	}
}

// Prepare runs the one-time setup phase: uploads mesh geometry,
// registers textures, defines materials and uploads the static lights.
// Individual texture failures are logged and skipped; exhausting the
// texture registry aborts.
func (c *Composer) Prepare(def Definition) error {
	if err := c.shapes.Load(mesh.AllShapes()...); err != nil {
		return fmt.Errorf("loading shapes: %w", err)
	}
	for _, tf := range def.Textures {
		err := c.Textures.Register(tf.Path, tf.Tag)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrRegistryFull) {
			return err
		}
		logger.Warn("texture registration failed",
			zap.String("tag", tf.Tag),
			zap.Error(err))
	}
	c.Textures.BindAll()

	for _, m := range def.Materials {
		c.Materials.Define(m.Tag, m.Diffuse, m.Specular, m.Shininess)
	}

	c.uploadLights(def.Lights)
	c.uniforms.SetBool("bUseLighting", true)

	c.objects = def.Objects
	logger.Info("scene prepared",
		zap.Int("textures", c.Textures.Count()),
		zap.Int("materials", c.Materials.Count()),
		zap.Int("objects", len(c.objects)))
	return nil
}

// uploadLights writes the directional light and every point light slot.
// Slots beyond the rig's lights are marked inactive; lights beyond the
// shader's slots are dropped.
func (c *Composer) uploadLights(rig lighting.Rig) {
	if len(rig.Points) > lighting.MaxPointLights {
		logger.Warn("dropping point lights beyond shader capacity",
			zap.Int("defined", len(rig.Points)),
			zap.Int("slots", lighting.MaxPointLights))
	}

	d := rig.Directional
	c.uniforms.SetVec3("directionalLight.direction", d.Direction)
	c.uniforms.SetVec3("directionalLight.ambient", d.Ambient)
	c.uniforms.SetVec3("directionalLight.diffuse", d.Diffuse)
	c.uniforms.SetVec3("directionalLight.specular", d.Specular)
	c.uniforms.SetBool("directionalLight.bActive", d.Active)

	for i := 0; i < lighting.MaxPointLights; i++ {
		prefix := fmt.Sprintf("pointLights[%d]", i)
		if i >= len(rig.Points) {
			c.uniforms.SetBool(prefix+".bActive", false)
			continue
		}
		p := rig.Points[i]
		c.uniforms.SetVec3(prefix+".position", p.Position)
		c.uniforms.SetVec3(prefix+".ambient", p.Ambient)
		c.uniforms.SetVec3(prefix+".diffuse", p.Diffuse)
		c.uniforms.SetVec3(prefix+".specular", p.Specular)
		c.uniforms.SetVec3(prefix+".attenuation", p.Attenuation)
		c.uniforms.SetBool(prefix+".bActive", p.Active)
	}
}

// SetTransform composes the model matrix and uploads it.
func (c *Composer) SetTransform(t Transform) {
	c.uniforms.SetMat4("model", t.Matrix())
}

// SetColor uploads a flat RGBA color and disables texturing for the
// next draw.
func (c *Composer) SetColor(r, g, b, a float32) {
	c.uniforms.SetVec4("objectColor", [4]float32{r, g, b, a})
	c.uniforms.SetBool("bUseTexture", false)
}

// SetTexture selects a registered texture by tag and enables
// texturing. An unknown tag disables texturing for the next draw
// instead.
func (c *Composer) SetTexture(tag string) {
	slot, ok := c.Textures.FindSlot(tag)
	if !ok {
		logger.Warn("unknown texture tag", zap.String("tag", tag))
		c.uniforms.SetBool("bUseTexture", false)
		return
	}
	c.uniforms.SetInt("objectTexture", int32(slot))
	c.uniforms.SetBool("bUseTexture", true)
}

// SetUVScale sets the texture coordinate multiplier.
func (c *Composer) SetUVScale(u, v float32) {
	c.uniforms.SetVec2("UVscale", [2]float32{u, v})
}

// SetMaterial uploads the material defined under tag. An unknown tag
// leaves the material uniforms untouched.
func (c *Composer) SetMaterial(tag string) {
	m, ok := c.Materials.Lookup(tag)
	if !ok {
		logger.Warn("unknown material tag", zap.String("tag", tag))
		return
	}
	c.uniforms.SetVec3("material.diffuseColor", m.Diffuse)
	c.uniforms.SetVec3("material.specularColor", m.Specular)
	c.uniforms.SetFloat("material.shininess", m.Shininess)
}

// Draw issues the draw call for one primitive shape.
func (c *Composer) Draw(shape mesh.Shape) {
	c.shapes.Draw(shape)
}

// RenderObject runs the full uniform/draw cycle for one object:
// transform, then color or texture, then material, then the draw call.
func (c *Composer) RenderObject(obj Object) {
	c.SetTransform(obj.Transform)
	if obj.TextureTag != "" {
		c.SetTexture(obj.TextureTag)
		c.SetUVScale(obj.UVScale[0], obj.UVScale[1])
	} else {
		c.SetColor(obj.Color[0], obj.Color[1], obj.Color[2], obj.Color[3])
	}
	if obj.MaterialTag != "" {
		c.SetMaterial(obj.MaterialTag)
	}
	c.Draw(obj.Shape)
}

// Render replays the prepared object list. Call once per frame after
// the view and projection uniforms are current.
func (c *Composer) Render() {
	for _, obj := range c.objects {
		c.RenderObject(obj)
	}
}

// Destroy releases the GPU resources the composer owns.
func (c *Composer) Destroy() {
	c.Textures.Destroy()
	c.shapes.Destroy()
}
