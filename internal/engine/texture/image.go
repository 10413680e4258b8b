// Package texture provides image decoding and GPU texture upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	// Register decoders for image.Decode.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// Image is a decoded image in CPU memory, ready for GPU upload.
// Pix is tightly packed RGBA regardless of the source format; Channels
// reports the color channel count of the source so callers can reject
// formats they do not support.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Decode decodes image data into RGBA pixels. The path is used to pick
// the decoder for formats the stdlib registry does not cover (TGA).
func Decode(data []byte, path string) (*Image, error) {
	var img image.Image
	var channels int

	if strings.HasSuffix(strings.ToLower(path), ".tga") {
		decoded, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding TGA %s: %w", path, err)
		}
		img = decoded
		channels = int(data[16]) / 8 // validated to 24/32 bpp by DecodeTGA
	} else {
		decoded, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		img = decoded
		channels = channelsOf(decoded)
	}

	rgba := ImageToRGBA(img)
	bounds := rgba.Bounds()

	return &Image{
		Pix:      rgba.Pix,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: channels,
	}, nil
}

// channelsOf reports the color channel count of a decoded image based on
// its concrete type. Grayscale formats report 1, opaque color formats 3,
// formats carrying alpha 4.
func channelsOf(img image.Image) int {
	switch im := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NYCbCrA:
		return 4
	case *image.Paletted:
		for _, c := range im.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		return 4
	}
}

// ImageToRGBA converts any image.Image to *image.RGBA.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			r16, g16, b16, a16 := c.RGBA()
			// Convert from 16-bit to 8-bit
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}

	return rgba
}
