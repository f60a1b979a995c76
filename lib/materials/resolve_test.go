package materials_test

import (
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/pescuma/casket/lib/materials"
	"github.com/pescuma/casket/lib/model"
)

func TestResolve(t *testing.T) {
	testgroup.RunInParallel(t, &ResolveTests{})
}

type ResolveTests struct {
}

func (g *ResolveTests) resolve(color string, kind model.MaterialKind) materials.Appearance {
	return materials.Resolve(model.PartConfig{Color: model.MustParseColor(color), Material: kind})
}

func (g *ResolveTests) BaseColorIsPassedThrough(t *testgroup.T) {
	for _, m := range append(model.AllMaterials(), model.MaterialKind(99)) {
		a := g.resolve("#123abc", m)
		t.Equal(model.Color("#123abc"), a.BaseColor)
	}
}

func (g *ResolveTests) IsDeterministic(t *testgroup.T) {
	a1 := g.resolve("#ffffff", model.Wood)
	a2 := g.resolve("#ffffff", model.Wood)

	t.Equal(a1, a2)
	t.NotSame(a1.Texture, a2.Texture)
}

func (g *ResolveTests) ValuesAreWithinRanges(t *testgroup.T) {
	type rng struct{ rmin, rmax, mmin, mmax float64 }

	ranges := map[model.MaterialKind]rng{
		model.Glossy:  {0.1, 0.1, 0.2, 0.2},
		model.Wood:    {0.7, 0.7, 0.1, 0.1},
		model.Fabric:  {0.8, 0.9, 0, 0},
		model.Metal:   {0.15, 0.2, 0.8, 0.9},
		model.Plastic: {0.4, 0.5, 0, 0},
	}

	for m, r := range ranges {
		a := g.resolve("#000000", m)
		t.GreaterOrEqual(a.Roughness, r.rmin, m.String())
		t.LessOrEqual(a.Roughness, r.rmax, m.String())
		t.GreaterOrEqual(a.Metalness, r.mmin, m.String())
		t.LessOrEqual(a.Metalness, r.mmax, m.String())
	}
}

func (g *ResolveTests) OnlyWoodHasATexture(t *testgroup.T) {
	for _, m := range model.AllMaterials() {
		a := g.resolve("#000000", m)
		if m == model.Wood {
			t.Equal(&materials.TextureRef{Name: "wood", RepeatU: 2, RepeatV: 2, Wrap: materials.WrapRepeat}, a.Texture)
		} else {
			t.Nil(a.Texture, m.String())
		}
	}
}

func (g *ResolveTests) UnknownKindFallsBack(t *testgroup.T) {
	a := g.resolve("#abcdef", model.MaterialKind(-3))

	t.Equal(materials.Appearance{BaseColor: "#abcdef", Roughness: 0.5, Metalness: 0}, a)
}

func (g *ResolveTests) AuxIsNotShared(t *testgroup.T) {
	a := g.resolve("#000000", model.Metal)
	a.Aux[materials.AuxEnvMapIntensity] = 99

	b := g.resolve("#000000", model.Metal)
	t.Equal(1.2, b.Aux[materials.AuxEnvMapIntensity])
}

func (g *ResolveTests) MetalScenario(t *testgroup.T) {
	a := g.resolve("#C0C0C0", model.Metal)

	t.Equal(model.MustParseColor("#C0C0C0"), a.BaseColor)
	t.Equal(0.15, a.Roughness)
	t.Equal(0.9, a.Metalness)
	t.Nil(a.Texture)
}

func (g *ResolveTests) ResolveAll(t *testgroup.T) {
	s := model.DefaultConfigurationState()
	all := materials.ResolveAll(s)

	for _, p := range model.AllParts() {
		t.Equal(materials.Resolve(s.Parts[p]), all[p])
	}
}

func (g *ResolveTests) CatalogCoversEveryMaterial(t *testgroup.T) {
	c := materials.Catalog()

	t.Len(c, model.MaterialCount)
	for i, m := range model.AllMaterials() {
		t.Equal(m, c[i].Kind)
		t.Equal(m.String(), c[i].Key)
		t.NotEmpty(c[i].Name)
	}
}
