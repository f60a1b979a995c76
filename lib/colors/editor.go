package colors

import (
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/store"
)

var presets = []model.Color{
	"#4b371c", // dark brown
	"#7a5230", // medium brown
	"#b27c36", // light brown
	"#513123", // mahogany
	"#bb5c4d", // cherry
	"#ebe6d9", // cream
	"#ffffff", // white
	"#18181d", // black
	"#373b4d", // navy blue
	"#823d47", // burgundy
}

func Presets() []model.Color {
	result := make([]model.Color, len(presets))
	copy(result, presets)
	return result
}

// Editor holds the uncommitted color of a picker bound to one part. Partial input stays in the draft
// and only reaches the store on Commit or ApplyPreset.
type Editor struct {
	store *store.Store
	part  model.PartCategory
	draft string
}

func NewEditor(s *store.Store, part model.PartCategory) *Editor {
	return &Editor{
		store: s,
		part:  part,
		draft: s.GetPartConfig(part).Color.String(),
	}
}

func (e *Editor) Part() model.PartCategory {
	return e.part
}

func (e *Editor) Draft() string {
	return e.draft
}

// SetPart switches the edited part, dropping any uncommitted draft.
func (e *Editor) SetPart(part model.PartCategory) {
	e.part = part
	e.Sync()
}

// Sync reloads the draft from the store.
func (e *Editor) Sync() {
	e.draft = e.store.GetPartConfig(e.part).Color.String()
}

// Type handles text input. Values that cannot become a color are ignored and false is returned.
func (e *Editor) Type(value string) bool {
	if !model.IsPartialColor(value) {
		return false
	}

	e.draft = value
	return true
}

// Pick handles a move of the color wheel.
func (e *Editor) Pick(value string) bool {
	return e.Type(value)
}

// Commit pushes the draft to the store if it is complete and differs from the stored color.
func (e *Editor) Commit() (bool, error) {
	current := e.store.GetPartConfig(e.part).Color

	c, err := model.ParseColor(e.draft)
	if err != nil {
		return false, err
	}

	if c == current {
		return false, nil
	}

	err = e.store.SetPartColor(e.part, c.String())
	if err != nil {
		return false, err
	}

	e.draft = c.String()
	return true, nil
}

func (e *Editor) ApplyPreset(color string) error {
	err := e.store.SetPartColor(e.part, color)
	if err != nil {
		return err
	}

	e.Sync()
	return nil
}
