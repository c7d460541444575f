// Package config loads visualization settings from YAML: renderer
// profiles (the explicit allow-lists of drawing parameters), animation
// defaults and the named color scheme.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hydroviz/flowvis/pkg/colors"
	"github.com/hydroviz/flowvis/pkg/frames"
)

// validate is a singleton validator instance
var validate = validator.New()

// RendererProfile declares the attribute names one renderer accepts per
// entity kind. Profiles are versioned configuration, never discovered
// from a renderer at runtime.
type RendererProfile struct {
	Name       string   `yaml:"name" validate:"required"`
	NodeParams []string `yaml:"node_params" validate:"required,min=1"`
	EdgeParams []string `yaml:"edge_params" validate:"required,min=1"`
}

// Animation holds playback defaults for the frame densification step.
type Animation struct {
	TargetFrames int        `yaml:"target_frames" validate:"omitempty,min=1"`
	WidthRange   [2]float64 `yaml:"width_range"`
}

// Config is the root visualization configuration.
type Config struct {
	Profile     RendererProfile `yaml:"profile"`
	Animation   Animation       `yaml:"animation"`
	ColorScheme string          `yaml:"color_scheme" validate:"omitempty,oneof=epanet default black"`
}

// DefaultConfig returns the configuration used when no file is given:
// the networkx-style profile, a gentle width range and the house
// color scheme.
func DefaultConfig() *Config {
	return &Config{
		Profile: RendererProfile{
			Name:       "networkx",
			NodeParams: paramNames(frames.DefaultNodeParams),
			EdgeParams: paramNames(frames.DefaultEdgeParams),
		},
		Animation: Animation{
			TargetFrames: 60,
			WidthRange:   [2]float64{1, 2},
		},
		ColorScheme: "default",
	}
}

// Load reads and validates a YAML configuration file. Missing fields
// fall back to DefaultConfig values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config: field %s failed %q validation", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}
	if c.Animation.WidthRange[0] > c.Animation.WidthRange[1] {
		return fmt.Errorf("config: width_range lo %g exceeds hi %g",
			c.Animation.WidthRange[0], c.Animation.WidthRange[1])
	}
	return nil
}

// NodeParamSet returns the node allow-list as a frames.Params set.
func (p RendererProfile) NodeParamSet() frames.Params {
	return frames.NewParams(p.NodeParams...)
}

// EdgeParamSet returns the edge allow-list as a frames.Params set.
func (p RendererProfile) EdgeParamSet() frames.Params {
	return frames.NewParams(p.EdgeParams...)
}

// Scheme resolves the configured color scheme preset.
func (c *Config) Scheme() (colors.Scheme, error) {
	return colors.ByName(c.ColorScheme)
}

func paramNames(p frames.Params) []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
