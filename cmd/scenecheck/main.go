// scenecheck validates the desk scene content without opening a window:
// every referenced texture file must decode with a supported channel
// count, every tag an object references must be defined, and the scene
// must fit the texture and light slot limits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/studiolumen/deskscene/internal/assets"
	"github.com/studiolumen/deskscene/internal/desk"
	"github.com/studiolumen/deskscene/internal/engine/lighting"
	"github.com/studiolumen/deskscene/internal/engine/scene"
	"github.com/studiolumen/deskscene/internal/engine/texture"
)

func main() {
	assetDir := flag.String("assets", "assets", "Asset directory the texture paths resolve against")
	flag.Parse()

	def := desk.Scene()
	problems := check(def, *assetDir)

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "scenecheck: %s\n", p)
		}
		fmt.Fprintf(os.Stderr, "\n%d problem(s) found\n", len(problems))
		os.Exit(1)
	}

	fmt.Printf("scene ok: %d textures, %d materials, %d lights, %d objects\n",
		len(def.Textures), len(def.Materials), 1+len(def.Lights.Points), len(def.Objects))
}

// check returns one line per problem found in the scene definition.
func check(def scene.Definition, assetDir string) []string {
	var problems []string

	if len(def.Textures) > scene.MaxTextureSlots {
		problems = append(problems, fmt.Sprintf(
			"scene registers %d textures, registry holds %d",
			len(def.Textures), scene.MaxTextureSlots))
	}
	if len(def.Lights.Points) > lighting.MaxPointLights {
		problems = append(problems, fmt.Sprintf(
			"scene defines %d point lights, shader supports %d",
			len(def.Lights.Points), lighting.MaxPointLights))
	}

	// Texture files must exist and decode with 3 or 4 channels.
	loader := assets.NewManager(assetDir)
	textureTags := make(map[string]bool, len(def.Textures))
	for _, tf := range def.Textures {
		if textureTags[tf.Tag] {
			problems = append(problems, fmt.Sprintf("duplicate texture tag %q", tf.Tag))
		}
		textureTags[tf.Tag] = true

		data, err := loader.Load(tf.Path)
		if err != nil {
			problems = append(problems, fmt.Sprintf("texture %q: %v", tf.Tag, err))
			continue
		}
		img, err := texture.Decode(data, tf.Path)
		if err != nil {
			problems = append(problems, fmt.Sprintf("texture %q: decoding %s: %v", tf.Tag, tf.Path, err))
			continue
		}
		if img.Channels != 3 && img.Channels != 4 {
			problems = append(problems, fmt.Sprintf(
				"texture %q: %s has %d channels, need 3 or 4", tf.Tag, tf.Path, img.Channels))
		}
	}

	materialTags := make(map[string]bool, len(def.Materials))
	for _, m := range def.Materials {
		if materialTags[m.Tag] {
			problems = append(problems, fmt.Sprintf("duplicate material tag %q", m.Tag))
		}
		materialTags[m.Tag] = true
	}

	// Every tag an object references must resolve.
	for _, obj := range def.Objects {
		if obj.TextureTag != "" && !textureTags[obj.TextureTag] {
			problems = append(problems, fmt.Sprintf(
				"object %q references unknown texture tag %q", obj.Name, obj.TextureTag))
		}
		if obj.MaterialTag != "" && !materialTags[obj.MaterialTag] {
			problems = append(problems, fmt.Sprintf(
				"object %q references unknown material tag %q", obj.Name, obj.MaterialTag))
		}
	}

	return problems
}
