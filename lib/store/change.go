package store

import "github.com/pescuma/casket/lib/model"

type ChangeKind int

const (
	ChangePartColor ChangeKind = iota
	ChangePartMaterial
	ChangeRotation
	ChangeRotationSpeed
	ChangeCapOpen
	ChangeReset
	ChangeRestore
	ChangePart
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePartColor:
		return "part-color"
	case ChangePartMaterial:
		return "part-material"
	case ChangeRotation:
		return "rotation"
	case ChangeRotationSpeed:
		return "rotation-speed"
	case ChangeCapOpen:
		return "cap-open"
	case ChangeReset:
		return "reset"
	case ChangeRestore:
		return "restore"
	case ChangePart:
		return "part"
	default:
		return "<unknown>"
	}
}

// Change is delivered to observers after every committed mutation.
type Change struct {
	Kind ChangeKind
	// Part is only meaningful for ChangePartColor, ChangePartMaterial and ChangePart.
	Part  model.PartCategory
	State model.ConfigurationState
}

func (c Change) TouchesPart(p model.PartCategory) bool {
	switch c.Kind {
	case ChangePartColor, ChangePartMaterial, ChangePart:
		return c.Part == p
	case ChangeReset, ChangeRestore:
		return true
	default:
		return false
	}
}

type Observer func(Change)
