package materials

import "github.com/pescuma/casket/lib/model"

type CatalogEntry struct {
	Kind        model.MaterialKind `json:"-"`
	Key         string             `json:"key"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
}

var catalog = []CatalogEntry{
	{Kind: model.Glossy, Name: "High Gloss", Description: "Polished lacquer with a deep clear-coat shine."},
	{Kind: model.Wood, Name: "Natural Wood", Description: "Visible grain with a satin hand-rubbed finish."},
	{Kind: model.Fabric, Name: "Fabric", Description: "Soft matte upholstery, ideal for interiors and pillows."},
	{Kind: model.Metal, Name: "Metal", Description: "Brushed, highly reflective metal."},
	{Kind: model.Plastic, Name: "Composite", Description: "Durable mid-sheen composite surface."},
}

// Catalog lists the selectable materials in display order.
func Catalog() []CatalogEntry {
	result := make([]CatalogEntry, len(catalog))
	for i, e := range catalog {
		e.Key = e.Kind.String()
		result[i] = e
	}
	return result
}
