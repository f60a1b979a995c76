package main

import (
	"fmt"
)

type ConfigSetCmd struct {
	Config string `arg:"" help:"Configuration name to change."`
	Value  string `arg:"" optional:"" help:"Configuration value to set. Empty removes the configuration."`
}

func (c *ConfigSetCmd) Run(ctx *context) error {
	changed, err := ctx.ws.SetConfig(c.Config, c.Value)
	if err != nil {
		return err
	}

	switch {
	case !changed:
		fmt.Printf("'%v' unchanged\n", c.Config)
	case c.Value == "":
		fmt.Printf("Removed '%v'\n", c.Config)
	default:
		fmt.Printf("Set '%v' = '%v'\n", c.Config, c.Value)
	}

	return nil
}
