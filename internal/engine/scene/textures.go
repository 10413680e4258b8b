package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/studiolumen/deskscene/internal/engine/texture"
	"github.com/studiolumen/deskscene/internal/logger"
)

// MaxTextureSlots is the capacity of the texture registry. A slot
// index doubles as the texture unit index once BindAll runs.
const MaxTextureSlots = 16

// ErrRegistryFull is returned when every texture slot is taken.
var ErrRegistryFull = errors.New("texture registry full")

// TextureBackend abstracts the GPU texture operations the registry
// performs. texture.GL is the real implementation.
type TextureBackend interface {
	Upload(img *texture.Image) (uint32, error)
	BindUnit(unit int, handle uint32)
	DeleteAll(handles []uint32)
}

type textureSlot struct {
	tag    string
	handle uint32
}

// TextureRegistry holds up to MaxTextureSlots textures, filled
// contiguously from slot 0. There is no per-texture removal; Destroy
// releases everything at teardown.
type TextureRegistry struct {
	backend   TextureBackend
	load      func(path string) ([]byte, error)
	slots     []textureSlot
	destroyed bool
}

// NewTextureRegistry creates an empty registry reading image files
// through load and uploading them through backend.
func NewTextureRegistry(backend TextureBackend, load func(path string) ([]byte, error)) *TextureRegistry {
	return &TextureRegistry{
		backend: backend,
		load:    load,
		slots:   make([]textureSlot, 0, MaxTextureSlots),
	}
}

// Register decodes the image at path and stores its GPU handle under
// tag in the next free slot. Images must decode to 3 (RGB) or 4 (RGBA)
// channels. On any failure the registry is left unchanged.
func (r *TextureRegistry) Register(path, tag string) error {
	if len(r.slots) >= MaxTextureSlots {
		return fmt.Errorf("registering %s: %w", path, ErrRegistryFull)
	}
	data, err := r.load(path)
	if err != nil {
		return fmt.Errorf("registering %s: %w", path, err)
	}
	img, err := texture.Decode(data, path)
	if err != nil {
		return fmt.Errorf("registering %s: %w", path, err)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return fmt.Errorf("registering %s: unsupported channel count %d", path, img.Channels)
	}
	handle, err := r.backend.Upload(img)
	if err != nil {
		return fmt.Errorf("registering %s: %w", path, err)
	}
	r.slots = append(r.slots, textureSlot{tag: tag, handle: handle})
	logger.Debug("texture registered",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("slot", len(r.slots)-1))
	return nil
}

// BindAll binds every registered texture to the texture unit matching
// its slot index. Call once after registration, before the first draw;
// calling again reproduces the same assignment.
func (r *TextureRegistry) BindAll() {
	for i, slot := range r.slots {
		r.backend.BindUnit(i, slot.handle)
	}
}

// FindSlot returns the slot index registered under tag.
func (r *TextureRegistry) FindSlot(tag string) (int, bool) {
	for i, slot := range r.slots {
		if slot.tag == tag {
			return i, true
		}
	}
	return 0, false
}

// FindHandle returns the GPU handle registered under tag.
func (r *TextureRegistry) FindHandle(tag string) (uint32, bool) {
	for _, slot := range r.slots {
		if slot.tag == tag {
			return slot.handle, true
		}
	}
	return 0, false
}

// Count returns the number of registered textures.
func (r *TextureRegistry) Count() int {
	return len(r.slots)
}

// Destroy releases every registered GPU texture. Further calls are
// no-ops.
func (r *TextureRegistry) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	handles := make([]uint32, len(r.slots))
	for i, slot := range r.slots {
		handles[i] = slot.handle
	}
	r.backend.DeleteAll(handles)
	r.slots = nil
}
