package visual

import "github.com/simukka/sonic-backdrop/common"

// Renderer draws a Scene onto a surface through the post-processing chain.
type Renderer interface {
	// Resize applies the scene's viewport to the surface and composer.
	Resize(s *Scene)
	// Render draws one frame.
	Render(s *Scene, dt float64)
	// Dispose removes the surface and releases GPU resources.
	Dispose()
}

// Backdrop ties a scene, a renderer and the animation loop together for one
// mount.
type Backdrop struct {
	Scene *Scene
	Stats *Stats

	renderer  Renderer
	loop      *Loop
	onFrame   []func(*Backdrop)
	cleanups  []func()
	tornDown  bool
	viewportW int
	viewportH int
}

// NewBackdrop creates a stopped backdrop.
func NewBackdrop(scene *Scene, r Renderer, sched FrameScheduler) *Backdrop {
	b := &Backdrop{
		Scene:     scene,
		Stats:     NewStats(),
		renderer:  r,
		viewportW: int(scene.Uniforms.Resolution[0]),
		viewportH: int(scene.Uniforms.Resolution[1]),
	}
	b.loop = NewLoop(sched, b.frame)
	return b
}

// Start begins rendering.
func (b *Backdrop) Start(now float64) {
	if b.tornDown {
		return
	}
	common.Debug("backdrop: start", b.viewportW, "x", b.viewportH)
	b.loop.Start(now)
}

// Running reports whether frames are being scheduled.
func (b *Backdrop) Running() bool {
	return b.loop.Running()
}

// OnFrame registers fn to run after each rendered frame.
func (b *Backdrop) OnFrame(fn func(*Backdrop)) {
	b.onFrame = append(b.onFrame, fn)
}

// OnTeardown registers fn to run during Teardown, before the renderer is
// disposed.
func (b *Backdrop) OnTeardown(fn func()) {
	b.cleanups = append(b.cleanups, fn)
}

// Resize applies a new viewport to the camera, the resolution uniform and
// the renderer in one step, so no frame sees a partial update.
func (b *Backdrop) Resize(w, h int) {
	if b.tornDown || w <= 0 || h <= 0 {
		return
	}
	b.viewportW, b.viewportH = w, h
	b.Scene.Resize(w, h)
	b.renderer.Resize(b.Scene)
}

// Teardown stops the loop, runs cleanups and disposes the renderer. It is
// safe to call more than once and from inside a frame.
func (b *Backdrop) Teardown() {
	if b.tornDown {
		return
	}
	b.tornDown = true
	b.loop.Stop()
	for _, fn := range b.cleanups {
		fn()
	}
	b.renderer.Dispose()
	common.Debug("backdrop: torn down after", b.loop.Frames(), "frames")
}

func (b *Backdrop) frame(dt, now float64) {
	b.Scene.Update(dt, now)
	b.Stats.UpdateFPS(now)
	b.renderer.Render(b.Scene, dt)
	for _, fn := range b.onFrame {
		if b.tornDown {
			return
		}
		fn(b)
	}
}
