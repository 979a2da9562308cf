package visual

import "math"

// VertexShader passes the plane through untransformed so it always covers
// the viewport.
const VertexShader = `
varying vec2 vUv;
void main() {
	vUv = uv;
	gl_Position = vec4(position, 1.0);
}
`

// FragmentShader colors the backdrop plane from the audio texture. Keep it in
// step with Shade.
const FragmentShader = `
precision highp float;
uniform float uTime;
uniform sampler2D uAudio;
uniform vec2 uResolution;
uniform vec3 uSamples;
varying vec2 vUv;

vec3 palette(float t) {
	return vec3(0.5 + 0.5*cos(6.28318*(t+vec3(0.0,0.33,0.66))));
}

void main() {
	float column = texture2D(uAudio, vec2(vUv.x, 0.0)).r;
	float bass = texture2D(uAudio, vec2(uSamples.x, 0.0)).r;
	float mid = texture2D(uAudio, vec2(uSamples.y, 0.0)).r;
	float hi = texture2D(uAudio, vec2(uSamples.z, 0.0)).r;

	float t = uTime * 0.1;
	float wave = sin((vUv.x + t * 0.5) * 10.0 + column * 10.0) * 0.5 + 0.5;
	float glow = pow(max(0.0, 1.0 - distance(vUv, vec2(0.5, 0.5)) * (1.0 - bass)), 2.0);

	vec3 col = palette(wave + mid * 0.5 + hi * 0.2);
	col += vec3(0.2, 0.12, 0.05) * glow * (0.5 + bass);
	col *= 0.6 + column * 1.2;

	gl_FragColor = vec4(col, 1.0);
}
`

// glowTint is the warm color added by the radial glow.
var glowTint = RGB{0.2, 0.12, 0.05}

// SampleTexture reads the audio texture at coordinate x in [0,1] with
// nearest filtering, returning a value in [0,1].
func SampleTexture(tex []byte, x float64) float64 {
	if len(tex) == 0 {
		return 0
	}
	i := int(x * float64(len(tex)))
	if i < 0 {
		i = 0
	}
	if i >= len(tex) {
		i = len(tex) - 1
	}
	return float64(tex[i]) / 255
}

// Shade computes the backdrop color at texture coordinate (u, v) the way the
// fragment shader does.
func Shade(u, v, time float64, tex []byte, s ShaderSamples) RGB {
	column := SampleTexture(tex, u)
	bass := SampleTexture(tex, s.Bass)
	mid := SampleTexture(tex, s.Mid)
	hi := SampleTexture(tex, s.High)

	t := time * 0.1
	wave := math.Sin((u+t*0.5)*10+column*10)*0.5 + 0.5
	dist := math.Hypot(u-0.5, v-0.5)
	glow := math.Pow(math.Max(0, 1-dist*(1-bass)), 2)

	col := Palette(wave + mid*0.5 + hi*0.2)
	col = col.Add(glowTint.Scale(glow * (0.5 + bass)))
	return col.Scale(0.6 + column*1.2)
}
