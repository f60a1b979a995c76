package model

import "time"

type Design struct {
	ID    UUID
	Name  string
	State ConfigurationState

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewDesign(id *UUID, name string, state ConfigurationState) *Design {
	result := &Design{
		Name:  name,
		State: state,
	}

	if id == nil {
		result.ID = NewUUID("d")
	} else {
		result.ID = *id
	}

	return result
}

// DiffParts lists the parts whose config differs between two designs.
func (d *Design) DiffParts(other *Design) []PartCategory {
	var result []PartCategory
	for _, p := range AllParts() {
		if d.State.Parts[p] != other.State.Parts[p] {
			result = append(result, p)
		}
	}
	return result
}
