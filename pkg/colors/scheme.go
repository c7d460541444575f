// Package colors holds the named-color configuration consumed when no
// per-entity dynamic coloring is active, plus the canonical presets.
package colors

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Scheme assigns one color per entity class. Values are treated as
// immutable after construction; renderer-facing code reads, never
// writes. Colors are hex strings or any color name the renderer
// accepts.
type Scheme struct {
	PipeColor      string `json:"pipe_color" yaml:"pipe_color" validate:"required"`
	NodeColor      string `json:"node_color" yaml:"node_color" validate:"required"`
	PumpColor      string `json:"pump_color" yaml:"pump_color" validate:"required"`
	TankColor      string `json:"tank_color" yaml:"tank_color" validate:"required"`
	ReservoirColor string `json:"reservoir_color" yaml:"reservoir_color" validate:"required"`
	ValveColor     string `json:"valve_color" yaml:"valve_color" validate:"required"`
}

// EPANET returns the color scheme matching the classic EPANET GUI.
func EPANET() Scheme {
	return Scheme{
		PipeColor:      "#0403ee",
		NodeColor:      "#0403ee",
		PumpColor:      "#fe00ff",
		TankColor:      "#02fffd",
		ReservoirColor: "#00ff00",
		ValveColor:     "#000000",
	}
}

// Default returns the house palette.
func Default() Scheme {
	return Scheme{
		PipeColor:      "#29222f",
		NodeColor:      "#29222f",
		PumpColor:      "#d79233",
		TankColor:      "#607b80",
		ReservoirColor: "#33483d",
		ValveColor:     "#a3320b",
	}
}

// AllBlack returns a scheme drawing every entity class in black.
func AllBlack() Scheme {
	return Scheme{
		PipeColor:      "#000000",
		NodeColor:      "#000000",
		PumpColor:      "#000000",
		TankColor:      "#000000",
		ReservoirColor: "#000000",
		ValveColor:     "#000000",
	}
}

// ByName resolves a preset scheme by its configuration name.
func ByName(name string) (Scheme, error) {
	switch name {
	case "epanet":
		return EPANET(), nil
	case "default", "":
		return Default(), nil
	case "black":
		return AllBlack(), nil
	default:
		return Scheme{}, fmt.Errorf("unknown color scheme %q (valid: epanet, default, black)", name)
	}
}

// Validate checks that every entity class has a color assigned.
func (s Scheme) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("color scheme: field %s is %s", verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}
	return nil
}

// LoadFile reads a scheme from a JSON file.
func LoadFile(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, err
	}
	var s Scheme
	if err := json.Unmarshal(data, &s); err != nil {
		return Scheme{}, fmt.Errorf("parse color scheme %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Scheme{}, err
	}
	return s, nil
}

// SaveFile writes the scheme to a JSON file.
func (s Scheme) SaveFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
