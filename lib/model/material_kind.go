package model

import (
	"strings"

	"github.com/pkg/errors"
)

type MaterialKind int

const (
	Glossy MaterialKind = iota
	Wood
	Fabric
	Metal
	Plastic
)

const MaterialCount = int(Plastic) + 1

var materialKeys = [MaterialCount]string{
	Glossy:  "glossy",
	Wood:    "wood",
	Fabric:  "fabric",
	Metal:   "metal",
	Plastic: "plastic",
}

func AllMaterials() []MaterialKind {
	result := make([]MaterialKind, MaterialCount)
	for i := range result {
		result[i] = MaterialKind(i)
	}
	return result
}

func (m MaterialKind) IsValid() bool {
	return m >= Glossy && m <= Plastic
}

func (m MaterialKind) String() string {
	if !m.IsValid() {
		return "<unknown>"
	}
	return materialKeys[m]
}

func ParseMaterialKind(s string) (MaterialKind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range materialKeys {
		if k == key {
			return MaterialKind(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidMaterialKind, "%q", s)
}
