// Package viewer implements the interactive desk scene viewer: window
// and GL setup, scene preparation, and the main loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/studiolumen/deskscene/internal/assets"
	"github.com/studiolumen/deskscene/internal/config"
	"github.com/studiolumen/deskscene/internal/desk"
	"github.com/studiolumen/deskscene/internal/engine/camera"
	"github.com/studiolumen/deskscene/internal/engine/debug"
	"github.com/studiolumen/deskscene/internal/engine/input"
	"github.com/studiolumen/deskscene/internal/engine/mesh"
	"github.com/studiolumen/deskscene/internal/engine/renderer"
	"github.com/studiolumen/deskscene/internal/engine/scene"
	"github.com/studiolumen/deskscene/internal/engine/shader"
	"github.com/studiolumen/deskscene/internal/engine/shader/shaders"
	"github.com/studiolumen/deskscene/internal/engine/texture"
	"github.com/studiolumen/deskscene/internal/engine/window"
	"github.com/studiolumen/deskscene/internal/logger"
	"github.com/studiolumen/deskscene/pkg/math"
)

const (
	windowTitle = "Desk Scene"

	nearPlane = 0.1
	farPlane  = 500.0
)

// Viewer owns the window, the GL resources and the main loop.
type Viewer struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	program  *shader.Program
	composer *scene.Composer
	shots    *debug.ScreenshotCapture

	running  bool
	dragging bool
}

// New creates the window and GL context, compiles the scene shader and
// prepares the desk scene for rendering.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{cfg: cfg}

	var err error
	v.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window: gl.Init needs the context.
	width, height := v.window.GetSize()
	v.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.program, err = shader.NewProgram(shaders.PhongVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to build scene shader: %w", err)
	}
	// Uniform writes land on the bound program; bind before Prepare.
	v.program.Use()

	loader := assets.NewManager(cfg.Assets.Dir)
	textures := scene.NewTextureRegistry(texture.GL{}, loader.Load)
	materials := &scene.MaterialRegistry{}
	v.composer = scene.NewComposer(v.program, mesh.NewLibrary(), textures, materials)

	if err := v.composer.Prepare(desk.Scene()); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to prepare scene: %w", err)
	}

	v.input = input.New()
	v.camera = camera.NewOrbitCamera()
	v.camera.Distance = cfg.Camera.Distance
	v.camera.MinDistance = cfg.Camera.MinDistance
	v.camera.MaxDistance = cfg.Camera.MaxDistance
	v.shots = debug.NewScreenshotCapture(cfg.Assets.ScreenshotDir, "deskscene")

	logger.Info("viewer initialized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return v, nil
}

// Run drives the main loop until the window is closed or ESC is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			v.running = false
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.captureScreenshot()
		}

		v.drawFrame()
		v.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.cfg.Graphics.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("%s - %d fps", windowTitle, frameCount))
			}
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("frame_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the scene resources, the shader program and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.composer != nil {
		v.composer.Destroy()
	}
	if v.program != nil {
		v.program.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		v.renderer.Resize(e.Width, e.Height)

	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT || e.Button == sdl.BUTTON_RIGHT {
			v.dragging = true
		}

	case input.EventMouseUp:
		v.dragging = false

	case input.EventMouseMove:
		if v.dragging {
			v.camera.HandleDrag(float32(e.RelX), float32(e.RelY))
		}

	case input.EventMouseWheel:
		v.camera.HandleZoom(float32(e.WheelY))
	}
}

// drawFrame clears the frame, uploads the per-frame camera uniforms and
// replays the scene's draw list.
func (v *Viewer) drawFrame() {
	v.renderer.Begin()

	fov := v.cfg.Camera.FOVDegrees * math32.Pi / 180
	pos := v.camera.Position()

	v.program.SetMat4("view", v.camera.ViewMatrix())
	v.program.SetMat4("projection", math.Perspective(fov, v.renderer.AspectRatio(), nearPlane, farPlane))
	v.program.SetVec3("viewPosition", [3]float32{pos.X, pos.Y, pos.Z})

	v.composer.Render()

	v.renderer.End()
}

func (v *Viewer) captureScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
