package data

import (
	"fmt"
	"os"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/vecmath"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Scenario is an initial world population.
type Scenario struct {
	Name      string     `yaml:"name"`
	Timestep  float64    `yaml:"timestep,omitempty"` // 0 = keep the world's Δt
	AutoOrbit bool       `yaml:"auto_orbit"`
	Bodies    []BodySpec `yaml:"bodies"`
}

// BodySpec describes one body. Omitted material fields keep body defaults.
type BodySpec struct {
	Pos         [2]float64 `yaml:"pos,flow"`
	Vel         [2]float64 `yaml:"vel,flow"`
	Mass        *float64   `yaml:"mass,omitempty"`
	Radius      *float64   `yaml:"radius,omitempty"`
	Restitution *float64   `yaml:"restitution,omitempty"`
	Color       *ColorSpec `yaml:"color,omitempty"`
}

// LoadScenario loads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return &s, nil
}

// Count returns the number of bodies described.
func (s *Scenario) Count() int {
	return len(s.Bodies)
}

// Build returns a configured, unregistered body. Invalid mass or radius is an
// error here: a scenario file with a bad body is rejected, not patched.
func (bs BodySpec) Build(log *zap.Logger) (*body.Body, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b := body.New(log)
	b.SetPosition(vecmath.Vec2{X: bs.Pos[0], Y: bs.Pos[1]})
	b.SetVelocity(vecmath.Vec2{X: bs.Vel[0], Y: bs.Vel[1]})
	if bs.Mass != nil {
		if err := b.SetMass(*bs.Mass); err != nil {
			return nil, fmt.Errorf("mass %v: %w", *bs.Mass, err)
		}
	}
	if bs.Radius != nil {
		if err := b.SetRadius(*bs.Radius); err != nil {
			return nil, fmt.Errorf("radius %v: %w", *bs.Radius, err)
		}
	}
	if bs.Restitution != nil {
		b.SetRestitution(*bs.Restitution)
	}
	if bs.Color != nil {
		if bs.Color.invalid {
			log.Warn("invalid hex color, using default", zap.String("value", bs.Color.hex))
		}
		b.SetColor(bs.Color.Color)
	}
	return b, nil
}

// mass returns the spec's mass or the body default.
func (bs BodySpec) mass() float64 {
	if bs.Mass != nil {
		return *bs.Mass
	}
	return 1
}
