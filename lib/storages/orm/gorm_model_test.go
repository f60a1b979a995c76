package orm

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/casket/lib/model"
)

func TestEqualsEmpty(t *testing.T) {
	t.Parallel()

	d1 := &sqlDesign{}
	d2 := &sqlDesign{}

	assert.True(t, reflect.DeepEqual(d1, d2))

	d1.Name = "a"
	assert.False(t, reflect.DeepEqual(d1, d2))
}

func TestEqualsSomeFields(t *testing.T) {
	t.Parallel()

	now := time.Now()
	d1 := &sqlDesign{
		ID:        "1",
		CreatedAt: now,
	}
	d2 := &sqlDesign{
		ID:        "1",
		CreatedAt: now,
	}

	assert.True(t, reflect.DeepEqual(d1, d2))

	d1.IsCapOpen = true
	assert.False(t, reflect.DeepEqual(d1, d2))
}

func TestEqualsParts(t *testing.T) {
	t.Parallel()

	d1 := newSqlDesign(model.NewDesign(nil, "a", model.DefaultConfigurationState()))
	d2 := newSqlDesign(model.NewDesign(&d1.ID, "a", model.DefaultConfigurationState()))

	assert.True(t, reflect.DeepEqual(d1, d2))

	d1.Parts["body"] = model.PartRecord{Color: "#000000", Material: "wood"}
	assert.False(t, reflect.DeepEqual(d1, d2))
}

func TestSqlDesignToModelRejectsBrokenRows(t *testing.T) {
	t.Parallel()

	d := newSqlDesign(model.NewDesign(nil, "a", model.DefaultConfigurationState()))
	d.Parts["cap"] = model.PartRecord{Color: "#00", Material: "wood"}

	_, err := d.ToModel()
	assert.NotNil(t, err)
}
