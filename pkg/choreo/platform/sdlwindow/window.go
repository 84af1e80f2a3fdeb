// Package sdlwindow hosts a choreo view tree in an SDL2 window.
//
// The window owns the main scheduling context: each frame it polls events,
// ticks its realtime platform so due timers and animations advance, renders
// the root view into a streaming texture and presents it.
//
// SDL must be driven from the thread that opened the window. Call
// runtime.LockOSThread in main before Open.
package sdlwindow

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/BrandonKowalski/choreo/pkg/choreo"
	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/veandco/go-sdl2/sdl"
)

// ErrClosed is returned by Run when the window was closed by the user or by
// the event handler.
var ErrClosed = errors.New("sdlwindow: window closed")

// EventHandler receives every SDL event before the frame is rendered.
// Returning false closes the window.
type EventHandler func(event sdl.Event) bool

// Window wraps an SDL window and renderer with the view tree it presents.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background colorful.Color

	platform *choreo.Realtime
	root     *view.View
	texture  *sdl.Texture
	canvas   *image.RGBA
	size     Size

	hasVSync        bool
	lastPresentTime uint64
}

// Open initialises SDL video and opens a window sized to the display, or to
// the dev-mode size. The window's platform becomes the default platform.
func Open(title string, cfg choreo.Config, winOpts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, choreo.NewPlatformError("sdl_init", err)
	}

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true}
		}
	}
	if constants.IsDevMode() {
		winOpts.Borderless = false
	}

	display := Size{Width: devWidth, Height: devHeight}
	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		display = Size{Width: mode.W, Height: mode.H}
	} else {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}
	size := resolveSize(display)

	x, y := int32(0), int32(0)
	if constants.IsDevMode() {
		x, y = 50, 50
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", size.Width, "height", size.Height)

	window, err := sdl.CreateWindow(title, x, y, size.Width, size.Height, winOpts.ToSDLFlags())
	if err != nil {
		sdl.Quit()
		return nil, choreo.NewPlatformError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, choreo.NewPlatformError("create_renderer", err)
	}
	renderer.SetLogicalSize(size.Width, size.Height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	w := &Window{
		Window:     window,
		Renderer:   renderer,
		Title:      title,
		Background: colorful.Color{},
		platform:   choreo.NewRealtime(cfg),
		hasVSync:   vsync,
	}
	if err := w.resize(size); err != nil {
		w.Close()
		return nil, err
	}

	choreo.SetPlatform(w.platform)
	return w, nil
}

// resize recreates the streaming texture and canvas for a new window size.
func (w *Window) resize(size Size) error {
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	texture, err := w.Renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, size.Width, size.Height)
	if err != nil {
		return choreo.NewPlatformError("create_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	w.texture = texture
	w.canvas = image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
	w.size = size
	if w.root != nil {
		w.root.SetFrame(w.Bounds())
	}
	return nil
}

// Platform returns the realtime platform the window ticks every frame.
func (w *Window) Platform() *choreo.Realtime {
	return w.platform
}

// Size returns the window size in pixels.
func (w *Window) Size() Size {
	return w.size
}

// Bounds returns the window area as a view rectangle.
func (w *Window) Bounds() view.Rect {
	return view.Rect{W: float64(w.size.Width), H: float64(w.size.Height)}
}

// SetRoot sets the view drawn each frame and sizes it to the window.
func (w *Window) SetRoot(root *view.View) {
	w.root = root
	if root != nil {
		root.SetFrame(w.Bounds())
	}
}

func (w *Window) Root() *view.View {
	return w.root
}

// Frame ticks the platform once and presents the current view tree.
func (w *Window) Frame() error {
	w.platform.Tick()

	if w.root != nil {
		w.root.LayoutIfNeeded()
	}
	clear(w.canvas.Pix)
	if w.root != nil {
		w.root.Render(w.canvas)
	}
	if err := w.upload(); err != nil {
		return err
	}

	red, green, blue := w.Background.RGB255()
	w.Renderer.SetDrawColor(red, green, blue, 255)
	w.Renderer.Clear()
	w.Renderer.Copy(w.texture, nil, nil)
	w.Present()
	return nil
}

func (w *Window) upload() error {
	pixels, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return choreo.NewPlatformError("lock_texture", err)
	}
	defer w.texture.Unlock()

	rowBytes := w.canvas.Rect.Dx() * 4
	for y := 0; y < w.canvas.Rect.Dy(); y++ {
		src := w.canvas.Pix[y*w.canvas.Stride : y*w.canvas.Stride+rowBytes]
		copy(pixels[y*pitch:y*pitch+rowBytes], src)
	}
	return nil
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Run renders frames until ctx is cancelled or the window is closed. handler
// may be nil.
func (w *Window) Run(ctx context.Context, handler EventHandler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return ErrClosed
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					if err := w.resize(Size{Width: e.Data1, Height: e.Data2}); err != nil {
						return err
					}
					w.Renderer.SetLogicalSize(e.Data1, e.Data2)
				}
			}
			if handler != nil && !handler(event) {
				return ErrClosed
			}
		}

		if err := w.Frame(); err != nil {
			return fmt.Errorf("sdlwindow: frame: %w", err)
		}
	}
}

// Close releases the window and shuts SDL down. The window's platform stops
// being the default platform.
func (w *Window) Close() {
	if current := choreo.SetPlatform(nil); current != nil && current != choreo.Platform(w.platform) {
		choreo.SetPlatform(current)
	}
	if w.texture != nil {
		w.texture.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
	sdl.Quit()
}
