package visual

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/simukka/sonic-backdrop/analysis"
)

//go:embed mapping.yaml
var defaultMappingYAML []byte

// ErrInvalidMapping is returned when a mapping table fails validation.
var ErrInvalidMapping = errors.New("visual: invalid mapping")

// Mapping is the band -> visual parameter table. Every audio-reactive
// formula of the backdrop reads its constants from here.
type Mapping struct {
	Bands struct {
		Low analysis.Range `yaml:"low"`
		Mid analysis.Range `yaml:"mid"`
	} `yaml:"bands"`

	Texture struct {
		Width int `yaml:"width"`
	} `yaml:"texture"`

	Particles ParticleMapping `yaml:"particles"`
	Bloom     BloomMapping    `yaml:"bloom"`

	RGBShift struct {
		BaseAmount float64 `yaml:"base_amount"`
		AmountGain float64 `yaml:"amount_gain"`
	} `yaml:"rgb_shift"`

	Shader ShaderSamples `yaml:"shader"`
}

type ParticleMapping struct {
	Count      int     `yaml:"count"`
	Spread     float64 `yaml:"spread"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
	Opacity    float64 `yaml:"opacity"`
	BaseSize   float64 `yaml:"base_size"`
	SizeGain   float64 `yaml:"size_gain"`
	Drift      float64 `yaml:"drift"`
	DriftBase  float64 `yaml:"drift_base"`
	DriftGain  float64 `yaml:"drift_gain"`
}

type BloomMapping struct {
	Threshold    float64 `yaml:"threshold"`
	Radius       float64 `yaml:"radius"`
	BaseStrength float64 `yaml:"base_strength"`
	StrengthGain float64 `yaml:"strength_gain"`
}

// ShaderSamples are the fixed spectrum positions, in texture coordinates,
// the fragment shader reads.
type ShaderSamples struct {
	Bass float64 `yaml:"bass"`
	Mid  float64 `yaml:"mid"`
	High float64 `yaml:"high"`
}

// DefaultMapping returns the built-in table.
func DefaultMapping() *Mapping {
	m, err := decodeMapping(&Mapping{}, bytes.NewReader(defaultMappingYAML))
	if err != nil {
		panic("visual: embedded mapping: " + err.Error())
	}
	return m
}

// LoadMapping reads a YAML table from r. Keys missing from r keep their
// default values.
func LoadMapping(r io.Reader) (*Mapping, error) {
	return decodeMapping(DefaultMapping(), r)
}

func decodeMapping(m *Mapping, r io.Reader) (*Mapping, error) {
	if err := yaml.NewDecoder(r).Decode(m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode mapping: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks ranges and sizes.
func (m *Mapping) Validate() error {
	if m.Bands.Low.From < 0 || m.Bands.Low.Empty() {
		return fmt.Errorf("%w: low band %v", ErrInvalidMapping, m.Bands.Low)
	}
	if m.Bands.Mid.From < 0 || m.Bands.Mid.Empty() {
		return fmt.Errorf("%w: mid band %v", ErrInvalidMapping, m.Bands.Mid)
	}
	if m.Texture.Width <= 0 {
		return fmt.Errorf("%w: texture width %d", ErrInvalidMapping, m.Texture.Width)
	}
	if m.Particles.Count < 0 {
		return fmt.Errorf("%w: particle count %d", ErrInvalidMapping, m.Particles.Count)
	}
	for _, p := range []float64{m.Shader.Bass, m.Shader.Mid, m.Shader.High} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: shader sample position %f", ErrInvalidMapping, p)
		}
	}
	return nil
}

// BloomStrength maps low-band energy to bloom strength.
func (m *Mapping) BloomStrength(low float64) float64 {
	return m.Bloom.BaseStrength + low*m.Bloom.StrengthGain
}

// PointSize maps mid-band energy to particle point size.
func (m *Mapping) PointSize(mid float64) float64 {
	return m.Particles.BaseSize + mid*m.Particles.SizeGain
}

// RGBShiftAmount maps mid-band energy to the pixel-shift magnitude.
func (m *Mapping) RGBShiftAmount(mid float64) float64 {
	return m.RGBShift.BaseAmount + mid*m.RGBShift.AmountGain
}

// DriftScale maps low-band energy to the particle depth oscillation scale.
func (m *Mapping) DriftScale(low float64) float64 {
	return m.Particles.Drift * (m.Particles.DriftBase + low*m.Particles.DriftGain)
}
