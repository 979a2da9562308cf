package visual

import "math"

// RGB is a linear color with components in [0,1].
type RGB struct {
	R, G, B float64
}

// Add returns c + o.
func (c RGB) Add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Scale returns c * k.
func (c RGB) Scale(k float64) RGB {
	return RGB{c.R * k, c.G * k, c.B * k}
}

// Palette is the shader's periodic color palette: channel phases are offset
// by thirds of a period.
func Palette(t float64) RGB {
	const tau = 2 * math.Pi
	return RGB{
		R: 0.5 + 0.5*math.Cos(tau*(t+0.0)),
		G: 0.5 + 0.5*math.Cos(tau*(t+0.33)),
		B: 0.5 + 0.5*math.Cos(tau*(t+0.66)),
	}
}

// HSL converts hue, saturation and lightness in [0,1] to RGB.
func HSL(h, s, l float64) RGB {
	h = h - math.Floor(h)
	if s == 0 {
		return RGB{l, l, l}
	}
	var q float64
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: hueToRGB(p, q, h+1.0/3),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}
	return p
}
