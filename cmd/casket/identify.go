package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aquilax/truncate"
	"github.com/gertd/go-pluralize"
	"github.com/gobwas/glob"
	"github.com/samber/lo"

	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/scene"
	"github.com/pescuma/casket/lib/utils"
)

const maxNameWidth = 40

type IdentifyCmd struct {
	Names  []string `arg:"" optional:"" help:"Mesh names to identify."`
	File   string   `short:"f" type:"existingfile" help:"File with one mesh name per line."`
	Ignore []string `short:"i" help:"Glob of mesh names to ignore."`
}

func (c *IdentifyCmd) Run(ctx *context) error {
	names, err := c.loadNames()
	if err != nil {
		return err
	}

	names, err = filterIgnored(names, c.Ignore)
	if err != nil {
		return err
	}

	tags := scene.TagAsset(ctx.ws.Console(), names)

	for _, m := range tags.Tagged {
		fmt.Printf("%-*v %v\n", maxNameWidth, truncate.Truncate(m.Name, maxNameWidth, "...", truncate.PositionEnd), m.Part.DisplayName())
	}
	for _, n := range tags.Unmatched {
		fmt.Printf("%-*v -\n", maxNameWidth, truncate.Truncate(n, maxNameWidth, "...", truncate.PositionEnd))
	}

	fmt.Println()
	fmt.Println(summary(tags))

	if lid, ok := scene.FindLid(names); ok {
		fmt.Printf("Lid node: %v\n", lid)
	}

	missing := tags.Missing()
	if len(missing) > 0 {
		fmt.Printf("Parts without meshes: %v\n", strings.Join(lo.Map(missing, func(p model.PartCategory, _ int) string {
			return p.String()
		}), ", "))
	}

	return nil
}

func (c *IdentifyCmd) loadNames() ([]string, error) {
	result := append([]string{}, c.Names...)

	if c.File == "" {
		return result, nil
	}

	file, err := os.Open(c.File)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	bar := utils.NewProgressBar(int(stat.Size()))
	defer bar.Finish()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		_ = bar.Add(len(scanner.Bytes()) + 1)

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result = append(result, line)
	}

	return result, scanner.Err()
}

func filterIgnored(names []string, ignore []string) ([]string, error) {
	if len(ignore) == 0 {
		return names, nil
	}

	globs := make([]glob.Glob, 0, len(ignore))
	for _, i := range ignore {
		g, err := glob.Compile(i)
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return lo.Filter(names, func(name string, _ int) bool {
		return !lo.SomeBy(globs, func(g glob.Glob) bool { return g.Match(name) })
	}), nil
}

func summary(tags *scene.AssetTags) string {
	pc := pluralize.NewClient()

	return fmt.Sprintf("%v identified, %v unmatched, %v found",
		pc.Pluralize("mesh", len(tags.Tagged), true),
		pc.Pluralize("mesh", len(tags.Unmatched), true),
		pc.Pluralize("part", tags.Parts.Size(), true))
}
