package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/casket/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store data. Default is ./.casket or ~/.casket if that does not exist." type:"path"`

	Serve      ServeCmd      `cmd:"" help:"Start the configurator API server."`
	Identify   IdentifyCmd   `cmd:"" help:"Identify the casket part of mesh names."`
	Appearance AppearanceCmd `cmd:"" help:"Show the resolved appearance of the parts."`
	Presets    PresetsCmd    `cmd:"" help:"List the preset colors."`
	Materials  MaterialsCmd  `cmd:"" help:"List the available materials."`

	Designs struct {
		List   DesignsListCmd   `cmd:"" default:"1" help:"List saved designs."`
		Show   DesignsShowCmd   `cmd:"" help:"Show a saved design."`
		Create DesignsCreateCmd `cmd:"" help:"Create a design from the default configuration."`
		Delete DesignsDeleteCmd `cmd:"" help:"Delete a saved design."`
		Diff   DesignsDiffCmd   `cmd:"" help:"Show the parts that differ between two designs."`
	} `cmd:""`

	Config struct {
		Set ConfigSetCmd `cmd:"" help:"Set configuration parameters."`
	} `cmd:""`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Workspace)
	ctx.FatalIfErrorf(err)

	defer ws.Close()

	err = ctx.Run(&context{
		ws: ws,
	})
	ctx.FatalIfErrorf(err)
}
