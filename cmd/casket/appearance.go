package main

import (
	"fmt"

	"github.com/pescuma/casket/lib/materials"
	"github.com/pescuma/casket/lib/model"
)

type AppearanceCmd struct {
	Design string   `short:"d" help:"Design to resolve. Default is the default configuration."`
	Parts  []string `arg:"" optional:"" help:"Parts to show. Default is all."`
}

func (c *AppearanceCmd) Run(ctx *context) error {
	state := model.DefaultConfigurationState()

	if c.Design != "" {
		d, err := ctx.ws.GetDesign(model.UUID(c.Design))
		if err != nil {
			return err
		}

		state = d.State
	}

	parts := model.AllParts()
	if len(c.Parts) > 0 {
		parts = nil
		for _, name := range c.Parts {
			p, err := model.ParsePartCategory(name)
			if err != nil {
				return err
			}

			parts = append(parts, p)
		}
	}

	for _, p := range parts {
		printAppearance(p, state.Parts[p], materials.Resolve(state.Parts[p]))
	}

	return nil
}

func printAppearance(part model.PartCategory, config model.PartConfig, a materials.Appearance) {
	fmt.Printf("%-10v %v %-8v roughness=%.2f metalness=%.2f", part.DisplayName(), a.BaseColor, config.Material, a.Roughness, a.Metalness)

	if a.Texture != nil {
		fmt.Printf(" texture=%v(%vx%v)", a.Texture.Name, a.Texture.RepeatU, a.Texture.RepeatV)
	}

	fmt.Println()
}
