package main

import (
	"fmt"

	"github.com/pescuma/casket/lib/colors"
	"github.com/pescuma/casket/lib/materials"
)

type PresetsCmd struct {
}

func (c *PresetsCmd) Run(ctx *context) error {
	for _, p := range colors.Presets() {
		fmt.Println(p)
	}

	return nil
}

type MaterialsCmd struct {
}

func (c *MaterialsCmd) Run(ctx *context) error {
	for _, m := range materials.Catalog() {
		fmt.Printf("%-8v %-8v %v\n", m.Key, m.Name, m.Description)
	}

	return nil
}
