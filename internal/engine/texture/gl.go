package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GL is the OpenGL texture backend. It satisfies the backend interface
// the scene composer uploads and binds textures through.
type GL struct{}

// Upload creates a GL texture from the image and returns its handle.
// Images are uploaded as RGBA with mipmaps, linear filtering and repeat
// wrapping, which is what tiled surface textures need.
func (GL) Upload(img *Image) (uint32, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return 0, fmt.Errorf("invalid texture size %dx%d", img.Width, img.Height)
	}
	if len(img.Pix) < img.Width*img.Height*4 {
		return 0, fmt.Errorf("texture pixel data truncated: %d bytes for %dx%d", len(img.Pix), img.Width, img.Height)
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Width), int32(img.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return handle, nil
}

// BindUnit binds a texture handle to the given texture unit.
func (GL) BindUnit(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// DeleteAll releases the given texture handles.
func (GL) DeleteAll(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}
