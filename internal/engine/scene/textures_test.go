package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/studiolumen/deskscene/internal/engine/texture"
)

// fakeBackend records GPU texture operations and hands out sequential
// handles.
type fakeBackend struct {
	nextHandle uint32
	uploadErr  error
	binds      []string
	deleted    [][]uint32
}

func (f *fakeBackend) Upload(img *texture.Image) (uint32, error) {
	if f.uploadErr != nil {
		return 0, f.uploadErr
	}
	f.nextHandle++
	return f.nextHandle, nil
}

func (f *fakeBackend) BindUnit(unit int, handle uint32) {
	f.binds = append(f.binds, fmt.Sprintf("%d:%d", unit, handle))
}

func (f *fakeBackend) DeleteAll(handles []uint32) {
	f.deleted = append(f.deleted, handles)
}

func mapLoader(files map[string][]byte) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		data, ok := files[path]
		if !ok {
			return nil, fmt.Errorf("no such file %s", path)
		}
		return data, nil
	}
}

// tinyTGA returns a 1x1 24bpp uncompressed TGA.
func tinyTGA() []byte {
	hdr := make([]byte, 18)
	hdr[2] = texture.TGATypeUncompressed
	hdr[12] = 1
	hdr[14] = 1
	hdr[16] = 24
	return append(hdr, 10, 20, 30)
}

// grayPNG returns a 1x1 grayscale PNG, which decodes to one channel.
func grayPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestTextureRegistryRegister(t *testing.T) {
	backend := &fakeBackend{}
	r := NewTextureRegistry(backend, mapLoader(map[string][]byte{
		"textures/desk.tga":  tinyTGA(),
		"textures/bezel.tga": tinyTGA(),
	}))

	if err := r.Register("textures/desk.tga", "desk"); err != nil {
		t.Fatalf("Register(desk): %v", err)
	}
	if err := r.Register("textures/bezel.tga", "bezel"); err != nil {
		t.Fatalf("Register(bezel): %v", err)
	}
	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}

	slot, ok := r.FindSlot("desk")
	if !ok || slot != 0 {
		t.Errorf("FindSlot(desk) = %d, %t, want 0, true", slot, ok)
	}
	slot, ok = r.FindSlot("bezel")
	if !ok || slot != 1 {
		t.Errorf("FindSlot(bezel) = %d, %t, want 1, true", slot, ok)
	}

	h1, ok1 := r.FindHandle("desk")
	h2, ok2 := r.FindHandle("bezel")
	if !ok1 || !ok2 || h1 == h2 {
		t.Errorf("handles = %d, %d (found %t, %t), want two distinct handles", h1, h2, ok1, ok2)
	}
}

func TestTextureRegistryLookupMiss(t *testing.T) {
	backend := &fakeBackend{}
	r := NewTextureRegistry(backend, mapLoader(map[string][]byte{"a.tga": tinyTGA()}))
	if err := r.Register("a.tga", "desk"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, ok := r.FindSlot("nonexistent"); ok {
		t.Error("FindSlot(nonexistent) reported found")
	}
	if h, ok := r.FindHandle("nonexistent"); ok || h != 0 {
		t.Errorf("FindHandle(nonexistent) = %d, %t, want 0, false", h, ok)
	}
}

func TestTextureRegistryCapacity(t *testing.T) {
	backend := &fakeBackend{}
	r := NewTextureRegistry(backend, func(string) ([]byte, error) { return tinyTGA(), nil })

	for i := 0; i < MaxTextureSlots; i++ {
		if err := r.Register("tex.tga", fmt.Sprintf("tag%d", i)); err != nil {
			t.Fatalf("Register %d: %v", i, err)
		}
	}
	err := r.Register("tex.tga", "overflow")
	if !errors.Is(err, ErrRegistryFull) {
		t.Fatalf("17th Register returned %v, want ErrRegistryFull", err)
	}
	if r.Count() != MaxTextureSlots {
		t.Errorf("Count() = %d after overflow, want %d", r.Count(), MaxTextureSlots)
	}
	if slot, ok := r.FindSlot("tag0"); !ok || slot != 0 {
		t.Errorf("FindSlot(tag0) = %d, %t after overflow, want 0, true", slot, ok)
	}
	if _, ok := r.FindSlot("overflow"); ok {
		t.Error("overflowing tag was registered")
	}
}

func TestTextureRegistryRejectsChannelCount(t *testing.T) {
	backend := &fakeBackend{}
	r := NewTextureRegistry(backend, mapLoader(map[string][]byte{"gray.png": grayPNG(t)}))

	err := r.Register("gray.png", "gray")
	if err == nil {
		t.Fatal("Register accepted a one-channel image")
	}
	if !strings.Contains(err.Error(), "channel count") {
		t.Errorf("error = %v, want channel count rejection", err)
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d after rejected registration, want 0", r.Count())
	}
}

func TestTextureRegistryDecodeFailure(t *testing.T) {
	backend := &fakeBackend{}
	r := NewTextureRegistry(backend, mapLoader(map[string][]byte{"bad.png": []byte("not an image")}))

	if err := r.Register("bad.png", "bad"); err == nil {
		t.Fatal("Register accepted undecodable data")
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d after failed decode, want 0", r.Count())
	}
}

func TestTextureRegistryLoadFailure(t *testing.T) {
	backend := &fakeBackend{}
	r := NewTextureRegistry(backend, mapLoader(nil))

	err := r.Register("missing.png", "missing")
	if err == nil {
		t.Fatal("Register accepted a missing file")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("error = %v, want wrapped loader error", err)
	}
}

func TestTextureRegistryUploadFailure(t *testing.T) {
	backend := &fakeBackend{uploadErr: errors.New("no GL context")}
	r := NewTextureRegistry(backend, func(string) ([]byte, error) { return tinyTGA(), nil })

	if err := r.Register("tex.tga", "desk"); err == nil {
		t.Fatal("Register accepted a failed upload")
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d after failed upload, want 0", r.Count())
	}
}

func TestTextureRegistryBindAllIdempotent(t *testing.T) {
	backend := &fakeBackend{}
	r := NewTextureRegistry(backend, func(string) ([]byte, error) { return tinyTGA(), nil })
	for _, tag := range []string{"a", "b", "c"} {
		if err := r.Register("tex.tga", tag); err != nil {
			t.Fatalf("Register(%s): %v", tag, err)
		}
	}

	r.BindAll()
	first := append([]string(nil), backend.binds...)
	r.BindAll()
	second := backend.binds[len(first):]

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("bind counts = %d, %d, want 3, 3", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("bind %d changed between calls: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestTextureRegistryDestroyOnce(t *testing.T) {
	backend := &fakeBackend{}
	r := NewTextureRegistry(backend, func(string) ([]byte, error) { return tinyTGA(), nil })
	if err := r.Register("tex.tga", "a"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("tex.tga", "b"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	r.Destroy()
	r.Destroy()

	if len(backend.deleted) != 1 {
		t.Fatalf("DeleteAll called %d times, want 1", len(backend.deleted))
	}
	if len(backend.deleted[0]) != 2 {
		t.Errorf("released %d handles, want 2", len(backend.deleted[0]))
	}
}
