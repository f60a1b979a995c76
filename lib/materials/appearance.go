package materials

import "github.com/pescuma/casket/lib/model"

type Appearance struct {
	BaseColor model.Color        `json:"baseColor"`
	Roughness float64            `json:"roughness"`
	Metalness float64            `json:"metalness"`
	Texture   *TextureRef        `json:"texture,omitempty"`
	Aux       map[string]float64 `json:"aux,omitempty"`
}

type TextureRef struct {
	Name    string   `json:"name"`
	RepeatU float64  `json:"repeatU"`
	RepeatV float64  `json:"repeatV"`
	Wrap    WrapMode `json:"wrap"`
}

type WrapMode string

const (
	WrapRepeat WrapMode = "repeat"
)

const (
	AuxEnvMapIntensity    = "envMapIntensity"
	AuxClearcoat          = "clearcoat"
	AuxClearcoatRoughness = "clearcoatRoughness"
)
