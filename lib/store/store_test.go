package store_test

import (
	"math"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/pkg/errors"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/store"
)

func TestStore(t *testing.T) {
	testgroup.RunInParallel(t, &StoreTests{})
}

type StoreTests struct {
}

func (g *StoreTests) newStore() (*store.Store, *[]store.Change) {
	s := store.New(consoles.NewMemoryConsole())

	var changes []store.Change
	s.Subscribe(func(c store.Change) {
		changes = append(changes, c)
	})

	return s, &changes
}

func (g *StoreTests) EveryPartHasAConfig(t *testgroup.T) {
	s, _ := g.newStore()

	for _, p := range model.AllParts() {
		c := s.GetPartConfig(p)
		t.Equal(model.DefaultPartConfig(p), c)
		t.NotEmpty(c.Color)
	}
}

func (g *StoreTests) SetPartColor(t *testgroup.T) {
	s, changes := g.newStore()

	err := s.SetPartColor(model.Body, "#1a2b3c")

	t.Nil(err)
	t.Equal(model.Color("#1a2b3c"), s.GetPartConfig(model.Body).Color)
	t.Equal(model.DefaultPartConfig(model.Body).Material, s.GetPartConfig(model.Body).Material)
	t.Len(*changes, 1)
	t.Equal(store.ChangePartColor, (*changes)[0].Kind)
	t.Equal(model.Body, (*changes)[0].Part)
	t.Equal(model.Color("#1a2b3c"), (*changes)[0].State.Parts[model.Body].Color)
}

func (g *StoreTests) SetPartColorCanonicalizes(t *testgroup.T) {
	s, _ := g.newStore()

	t.Nil(s.SetPartColor(model.Cap, "#ABCDEF"))
	t.Equal(model.Color("#abcdef"), s.GetPartConfig(model.Cap).Color)
}

func (g *StoreTests) InvalidColorLeavesStateUnchanged(t *testgroup.T) {
	s, changes := g.newStore()
	before := s.Snapshot()

	err := s.SetPartColor(model.Body, "red")

	t.True(errors.Is(err, model.ErrInvalidColorFormat))
	t.Equal(before, s.Snapshot())
	t.Empty(*changes)
}

func (g *StoreTests) WritesAreIsolatedPerPart(t *testgroup.T) {
	for _, p1 := range model.AllParts() {
		s, _ := g.newStore()
		before := s.Snapshot()

		t.Nil(s.SetPartColor(p1, "#010203"))
		t.Nil(s.SetPartMaterial(p1, model.Plastic))

		for _, p2 := range model.AllParts() {
			if p1 == p2 {
				continue
			}
			t.Equal(before.Parts[p2], s.GetPartConfig(p2), "%v changed when writing %v", p2, p1)
		}
	}
}

func (g *StoreTests) SetPartMaterial(t *testgroup.T) {
	s, changes := g.newStore()

	t.Nil(s.SetPartMaterial(model.Pillow, model.Metal))
	t.Equal(model.Metal, s.GetPartConfig(model.Pillow).Material)
	t.Equal(model.DefaultPartConfig(model.Pillow).Color, s.GetPartConfig(model.Pillow).Color)
	t.Len(*changes, 1)
	t.Equal(store.ChangePartMaterial, (*changes)[0].Kind)
}

func (g *StoreTests) UpdatePartIsASingleChange(t *testgroup.T) {
	s, changes := g.newStore()

	color := "#0A0A0A"
	material := model.Wood
	t.Nil(s.UpdatePart(model.Handle, &color, &material))

	t.Equal(model.PartConfig{Color: "#0a0a0a", Material: model.Wood}, s.GetPartConfig(model.Handle))
	t.Len(*changes, 1)
	t.Equal(store.ChangePart, (*changes)[0].Kind)
	t.Equal(model.Handle, (*changes)[0].Part)
	t.Equal(s.GetPartConfig(model.Handle), (*changes)[0].State.Parts[model.Handle])
}

func (g *StoreTests) UpdatePartKeepsNilValues(t *testgroup.T) {
	s, _ := g.newStore()

	material := model.Plastic
	t.Nil(s.UpdatePart(model.Body, nil, &material))

	t.Equal(model.DefaultPartConfig(model.Body).Color, s.GetPartConfig(model.Body).Color)
	t.Equal(model.Plastic, s.GetPartConfig(model.Body).Material)
}

func (g *StoreTests) UpdatePartAppliesNothingWhenInvalid(t *testgroup.T) {
	s, changes := g.newStore()

	color := "#000000"
	material := model.MaterialKind(42)
	err := s.UpdatePart(model.Body, &color, &material)

	t.True(errors.Is(err, model.ErrInvalidMaterialKind))
	t.Equal(model.DefaultPartConfig(model.Body), s.GetPartConfig(model.Body))
	t.Empty(*changes)
}

func (g *StoreTests) InvalidMaterialIsRejected(t *testgroup.T) {
	s, changes := g.newStore()

	err := s.SetPartMaterial(model.Body, model.MaterialKind(17))

	t.True(errors.Is(err, model.ErrInvalidMaterialKind))
	t.Equal(model.DefaultConfigurationState(), s.Snapshot())
	t.Empty(*changes)
}

func (g *StoreTests) InvalidPartIsRejected(t *testgroup.T) {
	s, changes := g.newStore()

	t.True(errors.Is(s.SetPartColor(model.PartCategory(8), "#000000"), model.ErrInvalidPartCategory))
	t.True(errors.Is(s.SetPartMaterial(model.PartCategory(-1), model.Wood), model.ErrInvalidPartCategory))
	t.Empty(*changes)
}

func (g *StoreTests) ViewState(t *testgroup.T) {
	s, changes := g.newStore()

	s.ToggleRotation()
	t.True(s.IsRotating())
	s.ToggleRotation()
	t.False(s.IsRotating())

	t.Nil(s.SetRotationSpeed(0.01))
	t.Equal(0.01, s.RotationSpeed())

	s.SetCapOpen(true)
	t.True(s.IsCapOpen())
	s.ToggleCapOpen()
	t.False(s.IsCapOpen())

	t.Len(*changes, 5)
	t.Equal(model.DefaultConfigurationState().Parts, s.Snapshot().Parts)
}

func (g *StoreTests) InvalidRotationSpeedIsRejected(t *testgroup.T) {
	s, changes := g.newStore()

	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := s.SetRotationSpeed(v)
		t.True(errors.Is(err, model.ErrInvalidRotationSpeed))
	}

	t.Equal(model.DefaultRotationSpeed, s.RotationSpeed())
	t.Empty(*changes)
}

func (g *StoreTests) ResetIsAtomic(t *testgroup.T) {
	s, changes := g.newStore()

	for _, p := range model.AllParts() {
		t.Nil(s.SetPartColor(p, "#000000"))
		t.Nil(s.SetPartMaterial(p, model.Plastic))
	}
	s.ToggleRotation()
	t.Nil(s.SetRotationSpeed(1))
	s.SetCapOpen(true)

	*changes = nil
	s.ResetConfig()

	t.Equal(model.DefaultConfigurationState(), s.Snapshot())
	t.Len(*changes, 1)
	t.Equal(store.ChangeReset, (*changes)[0].Kind)
	t.Equal(model.DefaultConfigurationState(), (*changes)[0].State)
}

func (g *StoreTests) RestoreReplacesEverythingOnce(t *testgroup.T) {
	s, changes := g.newStore()

	state := model.DefaultConfigurationState()
	state.Parts[model.Handle] = model.PartConfig{Color: "#AA0000", Material: model.Wood}
	state.IsCapOpen = true

	t.Nil(s.Restore(state))

	t.Equal(model.PartConfig{Color: "#aa0000", Material: model.Wood}, s.GetPartConfig(model.Handle))
	t.True(s.IsCapOpen())
	t.Len(*changes, 1)
	t.Equal(store.ChangeRestore, (*changes)[0].Kind)
}

func (g *StoreTests) RestoreRejectsInvalidState(t *testgroup.T) {
	s, changes := g.newStore()

	state := model.DefaultConfigurationState()
	state.Parts[model.Handle].Color = "nope"

	t.True(errors.Is(s.Restore(state), model.ErrInvalidColorFormat))
	t.Equal(model.DefaultConfigurationState(), s.Snapshot())
	t.Empty(*changes)
}

func (g *StoreTests) ObserversCanReadTheStore(t *testgroup.T) {
	s := store.New(consoles.NewMemoryConsole())

	var seen model.Color
	s.Subscribe(func(c store.Change) {
		seen = s.GetPartConfig(model.Body).Color
	})

	t.Nil(s.SetPartColor(model.Body, "#0000ff"))
	t.Equal(model.Color("#0000ff"), seen)
}

func (g *StoreTests) ObserversAreCalledInOrderAndCanUnsubscribe(t *testgroup.T) {
	s := store.New(consoles.NewMemoryConsole())

	var calls []string
	s.Subscribe(func(store.Change) { calls = append(calls, "a") })
	unsubscribe := s.Subscribe(func(store.Change) { calls = append(calls, "b") })

	s.ToggleRotation()
	unsubscribe()
	s.ToggleRotation()

	t.Equal([]string{"a", "b", "a"}, calls)
}

func (g *StoreTests) SnapshotIsACopy(t *testgroup.T) {
	s, _ := g.newStore()

	snap := s.Snapshot()
	snap.Parts[model.Body].Color = "#000000"

	t.Equal(model.DefaultPartConfig(model.Body), s.GetPartConfig(model.Body))
}

func (g *StoreTests) EndToEnd(t *testgroup.T) {
	s, _ := g.newStore()
	original := s.GetPartConfig(model.Body)

	t.Nil(s.SetPartMaterial(model.Body, model.Metal))
	t.Nil(s.SetPartColor(model.Body, "#C0C0C0"))
	t.Equal(model.PartConfig{Color: model.MustParseColor("#C0C0C0"), Material: model.Metal}, s.GetPartConfig(model.Body))

	s.ResetConfig()

	t.Equal(original, s.GetPartConfig(model.Body))
}
