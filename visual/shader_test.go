package visual

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestShade_ColumnBrightens(t *testing.T) {
	s := DefaultMapping().Shader
	silent := make([]byte, 1024)
	loud := make([]byte, 1024)
	for i := range loud {
		loud[i] = 255
	}

	dark := Shade(0.3, 0.3, 0, silent, s)
	bright := Shade(0.3, 0.3, 0, loud, s)

	sum := func(c RGB) float64 { return c.R + c.G + c.B }
	if sum(bright) <= sum(dark) {
		t.Errorf("Expected a loud column to be brighter: %v vs %v", bright, dark)
	}
}

func TestShade_GlowPeaksAtCenter(t *testing.T) {
	s := DefaultMapping().Shader
	tex := make([]byte, 1024)
	for i := range tex {
		tex[i] = 128
	}

	center := Shade(0.5, 0.5, 0, tex, s)
	corner := Shade(0.5, 0.0, 0, tex, s)

	// same column, same wave: only the glow term differs
	if center.R <= corner.R {
		t.Errorf("Expected more glow at the center: %f vs %f", center.R, corner.R)
	}
}

func TestSampleTexture_Edges(t *testing.T) {
	tex := []byte{0, 51, 102, 255}

	if SampleTexture(tex, 0) != 0 {
		t.Error("Expected first texel at 0")
	}
	if SampleTexture(tex, 1) != 1 {
		t.Error("Expected last texel at 1")
	}
	if math.Abs(SampleTexture(tex, 0.3)-0.2) > 1e-9 {
		t.Errorf("Expected 0.2 at 0.3, got %f", SampleTexture(tex, 0.3))
	}
	if SampleTexture(nil, 0.5) != 0 {
		t.Error("Expected 0 from an empty texture")
	}
}

func TestPalette_Periodic(t *testing.T) {
	a, b := Palette(0.2), Palette(1.2)
	if math.Abs(a.R-b.R) > 1e-9 || math.Abs(a.G-b.G) > 1e-9 || math.Abs(a.B-b.B) > 1e-9 {
		t.Errorf("Expected palette to repeat every period: %v vs %v", a, b)
	}
}

func TestHSL_Primaries(t *testing.T) {
	red := HSL(0, 1, 0.5)
	if math.Abs(red.R-1) > 1e-9 || red.G > 1e-9 || red.B > 1e-9 {
		t.Errorf("Expected pure red, got %v", red)
	}
	grey := HSL(0.4, 0, 0.3)
	if grey.R != 0.3 || grey.G != 0.3 || grey.B != 0.3 {
		t.Errorf("Expected grey 0.3, got %v", grey)
	}
}

func TestFragmentShader_DeclaresUniforms(t *testing.T) {
	for _, u := range []string{"uTime", "uAudio", "uResolution", "uSamples"} {
		if !strings.Contains(FragmentShader, "uniform") || !strings.Contains(FragmentShader, u) {
			t.Errorf("Expected fragment shader to declare %s", u)
		}
	}
}

// project maps a world point through c's projection with the camera at +Z,
// as the renderer places it.
func project(c *Camera, x, y, z float64) mgl32.Vec3 {
	view := mgl32.Translate3D(0, 0, float32(-c.Z))
	clip := c.Projection().Mul4(view).Mul4x1(mgl32.Vec4{float32(x), float32(y), float32(z), 1})
	return clip.Vec3().Mul(1 / clip.W())
}

func TestCamera_Projection(t *testing.T) {
	c := NewCamera(1600, 900)
	if c.Aspect != 1600.0/900.0 {
		t.Fatalf("Expected aspect %f, got %f", 1600.0/900.0, c.Aspect)
	}

	origin := project(c, 0, 0, 0)
	if math.Abs(float64(origin.X())) > 1e-6 || math.Abs(float64(origin.Y())) > 1e-6 {
		t.Errorf("Expected origin at screen center, got %v", origin)
	}

	right := project(c, 50, 0, 0)
	if right.X() <= 0 {
		t.Errorf("Expected +x to project right of center, got %v", right)
	}

	c.SetViewport(100, 0)
	if c.Aspect != 1600.0/900.0 {
		t.Error("Expected zero height to be ignored")
	}
}

func TestStats_Lines(t *testing.T) {
	s := NewStats()
	s.UpdateFPS(500)
	s.UpdateFPS(1000)
	if s.CurrentFPS != 2 {
		t.Errorf("Expected 2 FPS, got %f", s.CurrentFPS)
	}

	lines := s.Lines(newTestScene(nil))
	if lines[0].Label != "FPS" || lines[1].Value != "no analyser" {
		t.Errorf("Unexpected stat lines: %v", lines[:2])
	}
	found := false
	for _, l := range lines {
		if l.Label == "Seed" {
			found = true
			if l.Value != "99" {
				t.Errorf("Expected seed 99, got %s", l.Value)
			}
		}
	}
	if !found {
		t.Error("Expected a Seed line")
	}
}
