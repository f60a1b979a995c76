package materials

import "github.com/pescuma/casket/lib/model"

type finish struct {
	roughness float64
	metalness float64
	texture   *TextureRef
	aux       map[string]float64
}

var finishes = map[model.MaterialKind]finish{
	model.Glossy: {
		roughness: 0.1,
		metalness: 0.2,
		aux: map[string]float64{
			AuxEnvMapIntensity:    1.0,
			AuxClearcoat:          1.0,
			AuxClearcoatRoughness: 0.1,
		},
	},
	model.Wood: {
		roughness: 0.7,
		metalness: 0.1,
		texture:   &TextureRef{Name: "wood", RepeatU: 2, RepeatV: 2, Wrap: WrapRepeat},
	},
	model.Fabric: {
		roughness: 0.8,
		metalness: 0.0,
	},
	model.Metal: {
		roughness: 0.15,
		metalness: 0.9,
		aux: map[string]float64{
			AuxEnvMapIntensity: 1.2,
		},
	},
	model.Plastic: {
		roughness: 0.4,
		metalness: 0.0,
	},
}

// Used for material kinds this table does not know about. Never fails so a part can always be drawn.
var fallback = finish{
	roughness: 0.5,
	metalness: 0.0,
}

// Resolve computes the renderer-facing appearance of a part config. The base color is passed through
// unchanged. The result shares nothing with package state.
func Resolve(config model.PartConfig) Appearance {
	f, ok := finishes[config.Material]
	if !ok {
		f = fallback
	}

	result := Appearance{
		BaseColor: config.Color,
		Roughness: f.roughness,
		Metalness: f.metalness,
	}

	if f.texture != nil {
		t := *f.texture
		result.Texture = &t
	}

	if len(f.aux) > 0 {
		result.Aux = make(map[string]float64, len(f.aux))
		for k, v := range f.aux {
			result.Aux[k] = v
		}
	}

	return result
}

// ResolveAll resolves every part of a state, indexed like the state itself.
func ResolveAll(state model.ConfigurationState) [model.PartCount]Appearance {
	var result [model.PartCount]Appearance
	for _, p := range model.AllParts() {
		result[p] = Resolve(state.Parts[p])
	}
	return result
}
