package model

import (
	"math"

	"github.com/pkg/errors"
)

const DefaultRotationSpeed = 0.005

var defaultPartConfigs = [PartCount]PartConfig{
	Body:     {Color: "#ffffff", Material: Glossy},
	Cap:      {Color: "#ffffff", Material: Glossy},
	Handle:   {Color: "#c0c0c0", Material: Metal},
	EndCap:   {Color: "#c0c0c0", Material: Metal},
	Pillow:   {Color: "#ebe6d9", Material: Fabric},
	Moulding: {Color: "#7a5230", Material: Wood},
	Interior: {Color: "#ebe6d9", Material: Fabric},
	Hardware: {Color: "#b27c36", Material: Metal},
}

// ConfigurationState is the full snapshot of a configurator session. Parts is indexed by PartCategory,
// so every category always has a config.
type ConfigurationState struct {
	Parts         [PartCount]PartConfig
	IsRotating    bool
	RotationSpeed float64
	IsCapOpen     bool
}

func DefaultConfigurationState() ConfigurationState {
	return ConfigurationState{
		Parts:         defaultPartConfigs,
		IsRotating:    false,
		RotationSpeed: DefaultRotationSpeed,
		IsCapOpen:     false,
	}
}

func DefaultPartConfig(part PartCategory) PartConfig {
	if !part.IsValid() {
		return PartConfig{}
	}
	return defaultPartConfigs[part]
}

func (s *ConfigurationState) Part(part PartCategory) PartConfig {
	if !part.IsValid() {
		return PartConfig{}
	}
	return s.Parts[part]
}

func ValidateRotationSpeed(speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return errors.Wrapf(ErrInvalidRotationSpeed, "%v", speed)
	}
	return nil
}

// Canonical validates every field and returns a copy with canonical colors.
func (s ConfigurationState) Canonical() (ConfigurationState, error) {
	result := s

	for _, p := range AllParts() {
		c, err := s.Parts[p].Canonical()
		if err != nil {
			return ConfigurationState{}, errors.Wrapf(err, "part %v", p)
		}
		result.Parts[p] = c
	}

	err := ValidateRotationSpeed(s.RotationSpeed)
	if err != nil {
		return ConfigurationState{}, err
	}

	return result, nil
}

// DesignRecord is the flat form of a ConfigurationState handed to persistence.
type DesignRecord struct {
	Parts         map[string]PartRecord `json:"parts"`
	IsRotating    bool                  `json:"isRotating"`
	RotationSpeed float64               `json:"rotationSpeed"`
	IsCapOpen     bool                  `json:"isCapOpen"`
}

type PartRecord struct {
	Color    string `json:"color"`
	Material string `json:"material"`
}

func (s ConfigurationState) ToRecord() *DesignRecord {
	result := &DesignRecord{
		Parts:         make(map[string]PartRecord, PartCount),
		IsRotating:    s.IsRotating,
		RotationSpeed: s.RotationSpeed,
		IsCapOpen:     s.IsCapOpen,
	}

	for _, p := range AllParts() {
		c := s.Parts[p]
		result.Parts[p.String()] = PartRecord{
			Color:    c.Color.String(),
			Material: c.Material.String(),
		}
	}

	return result
}

func ConfigurationStateFromRecord(r *DesignRecord) (ConfigurationState, error) {
	result := ConfigurationState{
		IsRotating:    r.IsRotating,
		RotationSpeed: r.RotationSpeed,
		IsCapOpen:     r.IsCapOpen,
	}

	for key := range r.Parts {
		_, err := ParsePartCategory(key)
		if err != nil {
			return ConfigurationState{}, err
		}
	}

	for _, p := range AllParts() {
		pr, ok := r.Parts[p.String()]
		if !ok {
			return ConfigurationState{}, errors.Errorf("missing part %v", p)
		}

		color, err := ParseColor(pr.Color)
		if err != nil {
			return ConfigurationState{}, errors.Wrapf(err, "part %v", p)
		}

		material, err := ParseMaterialKind(pr.Material)
		if err != nil {
			return ConfigurationState{}, errors.Wrapf(err, "part %v", p)
		}

		result.Parts[p] = PartConfig{Color: color, Material: material}
	}

	err := ValidateRotationSpeed(result.RotationSpeed)
	if err != nil {
		return ConfigurationState{}, err
	}

	return result, nil
}
