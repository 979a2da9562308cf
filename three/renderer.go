//go:build js
// +build js

// Package three draws a visual.Scene with three.js and its post-processing
// examples (EffectComposer, RenderPass, UnrealBloomPass, ShaderPass and
// RGBShiftShader), loaded as page globals.
package three

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonic-backdrop/common"
	"github.com/simukka/sonic-backdrop/visual"
)

// ErrUnavailable is returned when THREE or one of the post-processing
// classes is not loaded.
var ErrUnavailable = errors.New("three: library not loaded")

var required = []string{
	"WebGLRenderer", "EffectComposer", "RenderPass",
	"UnrealBloomPass", "ShaderPass", "RGBShiftShader",
}

// Renderer implements visual.Renderer.
type Renderer struct {
	three  *js.Object
	mount  *js.Object
	canvas *js.Object

	renderer *js.Object
	scene    *js.Object
	camera   *js.Object
	composer *js.Object
	bloom    *js.Object
	rgbShift *js.Object

	planeMaterial  *js.Object
	audioTexture   *js.Object
	pointsMaterial *js.Object
	positions      *js.Object

	disposables []*js.Object
}

// New creates the WebGL surface under mount and builds the scene graph for
// s.
func New(mount *js.Object, s *visual.Scene) (r *Renderer, err error) {
	three := js.Global.Get("THREE")
	if three == nil || three == js.Undefined {
		return nil, ErrUnavailable
	}
	for _, name := range required {
		if c := three.Get(name); c == nil || c == js.Undefined {
			common.Warn("three: missing", name)
			return nil, ErrUnavailable
		}
	}
	defer recoverJS(&err)

	w, h := s.Uniforms.Resolution[0], s.Uniforms.Resolution[1]
	r = &Renderer{three: three, mount: mount}

	r.renderer = three.Get("WebGLRenderer").New(map[string]interface{}{
		"antialias": true,
		"alpha":     false,
	})
	r.renderer.Call("setPixelRatio", js.Global.Get("devicePixelRatio"))
	r.renderer.Call("setSize", w, h)
	r.canvas = r.renderer.Get("domElement")
	style := r.canvas.Get("style")
	style.Set("position", "fixed")
	style.Set("inset", "0")
	style.Set("zIndex", "-1")
	mount.Call("appendChild", r.canvas)

	r.scene = three.Get("Scene").New()
	r.camera = three.Get("PerspectiveCamera").New(s.Camera.FOV, s.Camera.Aspect, s.Camera.Near, s.Camera.Far)
	r.camera.Get("position").Set("z", s.Camera.Z)
	r.applyProjection(s.Camera)

	r.buildPlane(s)
	r.buildParticles(s.Particles)
	r.buildComposer(s, w, h)
	return r, nil
}

func (r *Renderer) buildPlane(s *visual.Scene) {
	three := r.three
	data := byteArray(s.AudioTexture)
	r.audioTexture = three.Get("DataTexture").New(data, len(s.AudioTexture), 1, three.Get("RedFormat"))
	r.audioTexture.Set("magFilter", three.Get("NearestFilter"))
	r.audioTexture.Set("minFilter", three.Get("NearestFilter"))
	r.audioTexture.Set("needsUpdate", true)

	u := s.Uniforms
	r.planeMaterial = three.Get("ShaderMaterial").New(map[string]interface{}{
		"vertexShader":   visual.VertexShader,
		"fragmentShader": visual.FragmentShader,
		"depthWrite":     false,
		"uniforms": map[string]interface{}{
			"uTime":       map[string]interface{}{"value": u.Time},
			"uAudio":      map[string]interface{}{"value": r.audioTexture},
			"uResolution": map[string]interface{}{"value": three.Get("Vector2").New(u.Resolution[0], u.Resolution[1])},
			"uSamples":    map[string]interface{}{"value": three.Get("Vector3").New(u.SampleCoord.Bass, u.SampleCoord.Mid, u.SampleCoord.High)},
		},
	})
	geometry := three.Get("PlaneGeometry").New(2, 2)
	plane := three.Get("Mesh").New(geometry, r.planeMaterial)
	plane.Set("frustumCulled", false)
	plane.Set("renderOrder", -1)
	r.scene.Call("add", plane)
	r.disposables = append(r.disposables, geometry, r.planeMaterial, r.audioTexture)
}

func (r *Renderer) buildParticles(f *visual.Field) {
	three := r.three
	geometry := three.Get("BufferGeometry").New()
	r.positions = three.Get("BufferAttribute").New(floatArray(f.Positions), 3)
	r.positions.Call("setUsage", three.Get("DynamicDrawUsage"))
	geometry.Call("setAttribute", "position", r.positions)
	geometry.Call("setAttribute", "color", three.Get("BufferAttribute").New(floatArray(f.Colors), 3))

	r.pointsMaterial = three.Get("PointsMaterial").New(map[string]interface{}{
		"size":         f.Size,
		"vertexColors": true,
		"transparent":  true,
		"opacity":      f.Opacity,
		"depthWrite":   false,
		"blending":     three.Get("AdditiveBlending"),
	})
	points := three.Get("Points").New(geometry, r.pointsMaterial)
	points.Set("frustumCulled", false)
	r.scene.Call("add", points)
	r.disposables = append(r.disposables, geometry, r.pointsMaterial)
}

func (r *Renderer) buildComposer(s *visual.Scene, w, h float64) {
	three := r.three
	r.composer = three.Get("EffectComposer").New(r.renderer)
	r.composer.Call("addPass", three.Get("RenderPass").New(r.scene, r.camera))

	b := s.Bloom
	r.bloom = three.Get("UnrealBloomPass").New(three.Get("Vector2").New(w, h), b.Strength, b.Radius, b.Threshold)
	r.composer.Call("addPass", r.bloom)

	r.rgbShift = three.Get("ShaderPass").New(three.Get("RGBShiftShader"))
	r.rgbShift.Get("uniforms").Get("amount").Set("value", s.RGBShift)
	r.composer.Call("addPass", r.rgbShift)
}

// applyProjection loads the camera's projection matrix into the three.js
// camera. Both are column-major.
func (r *Renderer) applyProjection(c *visual.Camera) {
	m := c.Projection()
	r.camera.Set("aspect", c.Aspect)
	r.camera.Get("projectionMatrix").Call("fromArray", m[:])
	r.camera.Get("projectionMatrixInverse").Call("copy", r.camera.Get("projectionMatrix")).Call("invert")
}

// Resize applies the scene viewport to the surface, the composer, the bloom
// pass and the camera.
func (r *Renderer) Resize(s *visual.Scene) {
	w, h := s.Uniforms.Resolution[0], s.Uniforms.Resolution[1]
	r.renderer.Call("setSize", w, h)
	r.composer.Call("setSize", w, h)
	r.applyProjection(s.Camera)
	r.planeMaterial.Get("uniforms").Get("uResolution").Get("value").Call("set", w, h)
}

// Render uploads whatever changed in s and draws one frame through the
// composer.
func (r *Renderer) Render(s *visual.Scene, dt float64) {
	uniforms := r.planeMaterial.Get("uniforms")
	uniforms.Get("uTime").Set("value", s.Uniforms.Time)

	if s.AudioDirty {
		r.audioTexture.Set("needsUpdate", true)
		s.AudioDirty = false
	}
	if s.PositionsDirty {
		r.positions.Set("needsUpdate", true)
		s.PositionsDirty = false
	}

	r.pointsMaterial.Set("size", s.Particles.Size)
	r.bloom.Set("strength", s.Bloom.Strength)
	r.rgbShift.Get("uniforms").Get("amount").Set("value", s.RGBShift)

	r.composer.Call("render", dt)
}

// Dispose releases GPU resources and removes the canvas from the page.
func (r *Renderer) Dispose() {
	for _, o := range r.disposables {
		o.Call("dispose")
	}
	r.disposables = nil
	// Passes first, then the composer's render targets, then the context.
	for _, o := range []*js.Object{r.bloom, r.rgbShift, r.composer, r.renderer} {
		o.Call("dispose")
	}
	if parent := r.canvas.Get("parentNode"); parent != nil && parent != js.Undefined {
		parent.Call("removeChild", r.canvas)
	}
}

// floatArray returns the Float32Array backing s. Writes through s are
// visible to three.js without copying.
func floatArray(s []float32) *js.Object {
	return js.InternalObject(s).Get("$array")
}

// byteArray returns the Uint8Array backing s.
func byteArray(s []byte) *js.Object {
	return js.InternalObject(s).Get("$array")
}

func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(*js.Error); ok {
		*err = jsErr
		return
	}
	panic(r)
}
