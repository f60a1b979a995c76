package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/store"
	"github.com/pescuma/casket/lib/workspace"
)

func TestApplySetting(t *testing.T) {
	t.Parallel()

	st := store.New(consoles.NewMemoryConsole())

	assert.Nil(t, applySetting(st, "body.color=#202020"))
	assert.Nil(t, applySetting(st, " Handle.Material = glossy"))

	assert.Equal(t, model.MustParseColor("#202020"), st.GetPartConfig(model.Body).Color)
	assert.Equal(t, model.Glossy, st.GetPartConfig(model.Handle).Material)
}

func TestApplySettingErrors(t *testing.T) {
	t.Parallel()

	st := store.New(consoles.NewMemoryConsole())

	assert.NotNil(t, applySetting(st, "body.color"))
	assert.NotNil(t, applySetting(st, "body=#202020"))
	assert.ErrorIs(t, applySetting(st, "lid.color=#202020"), model.ErrInvalidPartCategory)
	assert.ErrorIs(t, applySetting(st, "body.color=red"), model.ErrInvalidColorFormat)
	assert.ErrorIs(t, applySetting(st, "body.material=velvet"), model.ErrInvalidMaterialKind)
	assert.NotNil(t, applySetting(st, "body.size=2"))

	assert.Equal(t, model.DefaultConfigurationState(), st.Snapshot())
}

func TestDesignsCreate(t *testing.T) {
	t.Parallel()

	ws, err := workspace.NewWorkspaceWithConsole(":memory:", consoles.NewMemoryConsole())
	assert.Nil(t, err)
	defer ws.Close()

	cmd := &DesignsCreateCmd{
		Name:    "Walnut",
		Set:     []string{"body.material=wood", "body.color=#5c4033"},
		Speed:   0.01,
		CapOpen: true,
	}
	assert.Nil(t, cmd.Run(&context{ws: ws}))

	designs, err := ws.ListDesigns("")
	assert.Nil(t, err)
	assert.Len(t, designs, 1)

	d := designs[0]
	assert.Equal(t, "Walnut", d.Name)
	assert.Equal(t, model.Wood, d.State.Parts[model.Body].Material)
	assert.Equal(t, 0.01, d.State.RotationSpeed)
	assert.True(t, d.State.IsCapOpen)
	assert.False(t, d.State.IsRotating)
}

func TestFilterIgnored(t *testing.T) {
	t.Parallel()

	names, err := filterIgnored([]string{"lid_top", "Armature", "Armature.001", "body"}, []string{"Armature*"})
	assert.Nil(t, err)
	assert.Equal(t, []string{"lid_top", "body"}, names)

	_, err = filterIgnored([]string{"body"}, []string{"[a"})
	assert.NotNil(t, err)
}

func TestServePortFromConfig(t *testing.T) {
	t.Parallel()

	ws, err := workspace.NewWorkspaceWithConsole(":memory:", consoles.NewMemoryConsole())
	assert.Nil(t, err)
	defer ws.Close()

	ctx := &context{ws: ws}

	port, err := (&ServeCmd{}).port(ctx)
	assert.Nil(t, err)
	assert.Equal(t, uint(0), port)

	_, err = ws.SetConfig(portConfig, "8080")
	assert.Nil(t, err)

	port, err = (&ServeCmd{}).port(ctx)
	assert.Nil(t, err)
	assert.Equal(t, uint(8080), port)

	port, err = (&ServeCmd{Port: 9000}).port(ctx)
	assert.Nil(t, err)
	assert.Equal(t, uint(9000), port)

	_, err = ws.SetConfig(portConfig, "nope")
	assert.Nil(t, err)

	_, err = (&ServeCmd{}).port(ctx)
	assert.NotNil(t, err)
}
