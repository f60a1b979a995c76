package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/linediff"
	"github.com/pescuma/casket/lib/materials"
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/store"
	"github.com/pescuma/casket/lib/utils"
)

type DesignsListCmd struct {
	Filter string `arg:"" optional:"" help:"Glob to filter design names."`
}

func (c *DesignsListCmd) Run(ctx *context) error {
	designs, err := ctx.ws.ListDesigns(c.Filter)
	if err != nil {
		return err
	}

	for _, d := range designs {
		fmt.Printf("%-12v %-*v %v\n", d.ID, maxNameWidth,
			truncate.Truncate(d.Name, maxNameWidth, "...", truncate.PositionEnd),
			humanize.Time(d.UpdatedAt))
	}

	return nil
}

type DesignsShowCmd struct {
	ID string `arg:"" help:"Design to show."`
}

func (c *DesignsShowCmd) Run(ctx *context) error {
	d, err := ctx.ws.GetDesign(model.UUID(c.ID))
	if err != nil {
		return err
	}

	fmt.Printf("%v (%v)\n", d.Name, d.ID)
	fmt.Printf("Created %v, updated %v\n", humanize.Time(d.CreatedAt), humanize.Time(d.UpdatedAt))
	fmt.Printf("Turntable %v at %v, cap %v\n",
		utils.IIf(d.State.IsRotating, "rotating", "stopped"), d.State.RotationSpeed,
		utils.IIf(d.State.IsCapOpen, "open", "closed"))
	fmt.Println()

	for _, p := range model.AllParts() {
		printAppearance(p, d.State.Parts[p], materials.Resolve(d.State.Parts[p]))
	}

	return nil
}

type DesignsCreateCmd struct {
	Name    string   `arg:"" help:"Name of the new design."`
	Set     []string `short:"s" help:"Part setting to change, like body.color=#202020 or handle.material=metal."`
	Rotate  bool     `help:"Turntable rotating."`
	Speed   float64  `help:"Turntable speed in radians per frame." default:"0.005"`
	CapOpen bool     `help:"Cap open."`
}

func (c *DesignsCreateCmd) Run(ctx *context) error {
	st := store.New(consoles.NewMemoryConsole())

	for _, s := range c.Set {
		err := applySetting(st, s)
		if err != nil {
			return err
		}
	}

	if c.Rotate {
		st.ToggleRotation()
	}

	err := st.SetRotationSpeed(c.Speed)
	if err != nil {
		return err
	}

	st.SetCapOpen(c.CapOpen)

	_, err = ctx.ws.SaveDesign(c.Name, st)
	return err
}

// applySetting parses part.property=value and applies it to the store.
func applySetting(st *store.Store, setting string) error {
	key, value, ok := strings.Cut(setting, "=")
	if !ok {
		return errors.Errorf("invalid setting (expected part.property=value): %v", setting)
	}

	name, property, ok := strings.Cut(strings.TrimSpace(key), ".")
	if !ok {
		return errors.Errorf("invalid setting (expected part.property=value): %v", setting)
	}

	part, err := model.ParsePartCategory(name)
	if err != nil {
		return err
	}

	switch strings.ToLower(property) {
	case "color":
		return st.SetPartColor(part, strings.TrimSpace(value))

	case "material":
		m, err := model.ParseMaterialKind(value)
		if err != nil {
			return err
		}

		return st.SetPartMaterial(part, m)

	default:
		return errors.Errorf("unknown part property: %v", property)
	}
}

type DesignsDeleteCmd struct {
	ID string `arg:"" help:"Design to delete."`
}

func (c *DesignsDeleteCmd) Run(ctx *context) error {
	err := ctx.ws.DeleteDesign(model.UUID(c.ID))
	if err != nil {
		return err
	}

	fmt.Printf("Deleted design %v\n", c.ID)
	return nil
}

type DesignsDiffCmd struct {
	A       string `arg:"" help:"First design."`
	B       string `arg:"" help:"Second design."`
	Json    bool   `short:"j" help:"Show a line diff of the stored records."`
	Context int    `default:"2" help:"Lines of context around changes in the line diff."`
}

func (c *DesignsDiffCmd) Run(ctx *context) error {
	a, err := ctx.ws.GetDesign(model.UUID(c.A))
	if err != nil {
		return err
	}

	b, err := ctx.ws.GetDesign(model.UUID(c.B))
	if err != nil {
		return err
	}

	if c.Json {
		return c.printJson(a, b)
	}

	diff := a.DiffParts(b)
	if len(diff) == 0 {
		fmt.Println("Designs have the same parts")
		return nil
	}

	for _, p := range diff {
		fmt.Printf("%-10v %v  ->  %v\n", p.DisplayName(), a.State.Parts[p], b.State.Parts[p])
	}

	return nil
}

func (c *DesignsDiffCmd) printJson(a, b *model.Design) error {
	ja, err := json.MarshalIndent(a.State.ToRecord(), "", "  ")
	if err != nil {
		return err
	}

	jb, err := json.MarshalIndent(b.State.ToRecord(), "", "  ")
	if err != nil {
		return err
	}

	fmt.Print(linediff.Format(linediff.Do(string(ja), string(jb)), c.Context))
	return nil
}
