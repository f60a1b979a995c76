package model

import (
	"fmt"

	"github.com/pkg/errors"
)

type PartConfig struct {
	Color    Color
	Material MaterialKind
}

func (c PartConfig) String() string {
	return fmt.Sprintf("color=%v, material=%v", c.Color, c.Material)
}

// Canonical validates the config and returns it with the color in canonical form.
func (c PartConfig) Canonical() (PartConfig, error) {
	color, err := ParseColor(string(c.Color))
	if err != nil {
		return PartConfig{}, err
	}

	if !c.Material.IsValid() {
		return PartConfig{}, errors.Wrapf(ErrInvalidMaterialKind, "%v", int(c.Material))
	}

	return PartConfig{Color: color, Material: c.Material}, nil
}
