package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// tgaHeader builds an 18-byte TGA header for true-color images.
func tgaHeader(imageType byte, width, height, bpp int) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12] = byte(width)
	h[13] = byte(width >> 8)
	h[14] = byte(height)
	h[15] = byte(height >> 8)
	h[16] = byte(bpp)
	// descriptor left 0: bottom-up row order
	return h
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 1x2, 24bpp, bottom-up: file row 0 is the bottom of the image.
	data := tgaHeader(TGATypeUncompressed, 1, 2, 24)
	data = append(data,
		0, 0, 255, // BGR red -> image y=1
		255, 0, 0, // BGR blue -> image y=0
	)

	img, err := Decode(data, "textures/fixture.tga")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if img.Width != 1 || img.Height != 2 {
		t.Errorf("expected 1x2, got %dx%d", img.Width, img.Height)
	}
	if img.Channels != 3 {
		t.Errorf("expected 3 channels for 24bpp, got %d", img.Channels)
	}

	// Pixels are tightly packed RGBA, top row first.
	top := img.Pix[0:4]
	bottom := img.Pix[4:8]
	if top[0] != 0 || top[1] != 0 || top[2] != 255 || top[3] != 255 {
		t.Errorf("expected blue at top, got %v", top)
	}
	if bottom[0] != 255 || bottom[1] != 0 || bottom[2] != 0 || bottom[3] != 255 {
		t.Errorf("expected red at bottom, got %v", bottom)
	}
}

func TestDecodeTGA32bpp(t *testing.T) {
	data := tgaHeader(TGATypeUncompressed, 1, 1, 32)
	data = append(data, 10, 20, 30, 128) // B G R A

	img, err := Decode(data, "alpha.TGA") // suffix match is case-insensitive
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if img.Channels != 4 {
		t.Errorf("expected 4 channels for 32bpp, got %d", img.Channels)
	}
	px := img.Pix[0:4]
	if px[0] != 30 || px[1] != 20 || px[2] != 10 || px[3] != 128 {
		t.Errorf("expected RGBA (30, 20, 10, 128), got %v", px)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 2x2, 24bpp, one RLE packet repeating a single green pixel 4 times.
	data := tgaHeader(TGATypeRLE, 2, 2, 24)
	data = append(data,
		0x83,      // RLE packet, count 4
		0, 255, 0, // BGR green
	)

	img, err := Decode(data, "solid.tga")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if img.Width != 2 || img.Height != 2 {
		t.Errorf("expected 2x2, got %dx%d", img.Width, img.Height)
	}
	for i := 0; i < 4; i++ {
		px := img.Pix[i*4 : i*4+4]
		if px[0] != 0 || px[1] != 255 || px[2] != 0 || px[3] != 255 {
			t.Errorf("pixel %d: expected green, got %v", i, px)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{0, 0, 2}},
		{"color mapped", func() []byte {
			h := tgaHeader(TGATypeUncompressed, 1, 1, 24)
			h[1] = 1
			return h
		}()},
		{"unsupported type", tgaHeader(3, 1, 1, 24)},
		{"unsupported bpp", tgaHeader(TGATypeUncompressed, 1, 1, 16)},
		{"truncated pixels", append(tgaHeader(TGATypeUncompressed, 2, 2, 24), 1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data, "bad.tga"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{}) // fully transparent black

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	img, err := Decode(buf.Bytes(), "textures/fixture.png")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if img.Width != 2 || img.Height != 1 {
		t.Errorf("expected 2x1, got %dx%d", img.Width, img.Height)
	}
	if img.Channels != 4 {
		t.Errorf("expected 4 channels for RGBA PNG, got %d", img.Channels)
	}

	px := img.Pix[0:4]
	if px[0] != 200 || px[1] != 100 || px[2] != 50 || px[3] != 255 {
		t.Errorf("expected RGBA (200, 100, 50, 255), got %v", px)
	}
	px = img.Pix[4:8]
	if px[3] != 0 {
		t.Errorf("expected transparent second pixel, got alpha %d", px[3])
	}
}

func TestDecodeGrayPNGReportsOneChannel(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	img, err := Decode(buf.Bytes(), "gray.png")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Channels != 1 {
		t.Errorf("expected 1 channel for grayscale PNG, got %d", img.Channels)
	}
}

func TestDecodeJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 180
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	img, err := Decode(buf.Bytes(), "textures/fixture.jpg")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if img.Width != 8 || img.Height != 8 {
		t.Errorf("expected 8x8, got %dx%d", img.Width, img.Height)
	}
	if img.Channels != 3 {
		t.Errorf("expected 3 channels for JPEG, got %d", img.Channels)
	}
}

func TestDecodePalettedPNG(t *testing.T) {
	palette := color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
	}
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	img, err := Decode(buf.Bytes(), "paletted.png")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Channels != 3 {
		t.Errorf("expected 3 channels for opaque palette, got %d", img.Channels)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image at all"), "bad.png"); err == nil {
		t.Error("expected error decoding garbage, got nil")
	}
}

func TestImageToRGBAPassthrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := ImageToRGBA(src); got != src {
		t.Error("expected *image.RGBA to pass through unchanged")
	}
}
