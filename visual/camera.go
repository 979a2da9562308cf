package visual

import "github.com/go-gl/mathgl/mgl32"

// Camera is the perspective camera looking down -Z at the particle field.
type Camera struct {
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Z      float64
	Aspect float64
}

// NewCamera creates the backdrop camera for a w x h viewport.
func NewCamera(w, h int) *Camera {
	c := &Camera{
		FOV:  60,
		Near: 0.1,
		Far:  2000,
		Z:    180,
	}
	c.SetViewport(w, h)
	return c
}

// SetViewport sets the aspect ratio to w/h. A zero height leaves it as is.
func (c *Camera) SetViewport(w, h int) {
	if h <= 0 {
		return
	}
	c.Aspect = float64(w) / float64(h)
}

// Projection returns the column-major projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(float32(c.FOV)), float32(c.Aspect), float32(c.Near), float32(c.Far))
}
