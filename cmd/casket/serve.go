package main

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/server"
	"github.com/pescuma/casket/lib/store"
)

const portConfig = "server.port"

type ServeCmd struct {
	Port   uint   `help:"Port to listen to. Default is the server.port config or 2724."`
	Design string `short:"d" help:"Design to load before starting."`
}

func (c *ServeCmd) Run(ctx *context) error {
	port, err := c.port(ctx)
	if err != nil {
		return err
	}

	console := ctx.ws.Console()
	st := store.New(console)

	if c.Design != "" {
		d, err := ctx.ws.LoadDesign(model.UUID(c.Design), st)
		if err != nil {
			return err
		}

		console.Printf("Loaded design '%v'\n", d.Name)
	}

	return server.Run(console, ctx.ws, st, &server.Options{
		Port: port,
	})
}

func (c *ServeCmd) port(ctx *context) (uint, error) {
	if c.Port != 0 {
		return c.Port, nil
	}

	v, ok, err := ctx.ws.GetConfig(portConfig)
	if err != nil || !ok {
		return 0, err
	}

	port, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %v config", portConfig)
	}

	return uint(port), nil
}
