package model

import (
	"sort"

	"github.com/samber/lo"
)

type Designs struct {
	byID map[UUID]*Design
}

func NewDesigns() *Designs {
	return &Designs{
		byID: map[UUID]*Design{},
	}
}

func (ds *Designs) Add(name string, state ConfigurationState) *Design {
	result := NewDesign(nil, name, state)
	ds.byID[result.ID] = result
	return result
}

func (ds *Designs) AddFromStorage(d *Design) {
	ds.byID[d.ID] = d
}

func (ds *Designs) Get(id UUID) *Design {
	return ds.byID[id]
}

func (ds *Designs) Remove(id UUID) bool {
	_, ok := ds.byID[id]
	delete(ds.byID, id)
	return ok
}

func (ds *Designs) Len() int {
	return len(ds.byID)
}

// List returns the designs sorted by name, then by creation time.
func (ds *Designs) List() []*Design {
	result := lo.Values(ds.byID)
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
