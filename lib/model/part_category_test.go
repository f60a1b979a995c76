package model_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/casket/lib/model"
)

func TestAllPartsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []model.PartCategory{
		model.Body, model.Cap, model.Handle, model.EndCap,
		model.Pillow, model.Moulding, model.Interior, model.Hardware,
	}, model.AllParts())
}

func TestParsePartCategory(t *testing.T) {
	t.Parallel()

	for _, p := range model.AllParts() {
		parsed, err := model.ParsePartCategory(p.String())
		assert.Nil(t, err)
		assert.Equal(t, p, parsed)
	}

	p, err := model.ParsePartCategory(" EndCap ")
	assert.Nil(t, err)
	assert.Equal(t, model.EndCap, p)

	_, err = model.ParsePartCategory("lid")
	assert.True(t, errors.Is(err, model.ErrInvalidPartCategory))
}

func TestParseMaterialKind(t *testing.T) {
	t.Parallel()

	m, err := model.ParseMaterialKind("Wood")
	assert.Nil(t, err)
	assert.Equal(t, model.Wood, m)

	_, err = model.ParseMaterialKind("velvet")
	assert.True(t, errors.Is(err, model.ErrInvalidMaterialKind))

	assert.False(t, model.MaterialKind(-1).IsValid())
	assert.Equal(t, "<unknown>", model.MaterialKind(99).String())
}
