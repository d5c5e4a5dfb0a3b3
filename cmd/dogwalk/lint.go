package main

import (
	"fmt"

	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"chosenoffset.com/dogwalk/internal/world/level"
)

func lintAction(c *cli.Context) error {
	lvl, err := loadLevel(c.String("level"))
	if err != nil {
		return err
	}
	issues := level.Lint(lvl)
	out := c.App.Writer
	for _, is := range issues {
		fmt.Fprintln(out, chalk.Yellow.Color(is.String()))
	}
	if len(issues) > 0 {
		return cli.NewExitError(fmt.Sprintf("%s: %d issues", lvl.Name(), len(issues)), 1)
	}
	fmt.Fprintln(out, chalk.Green.Color(fmt.Sprintf("%s: %d walls, no issues", lvl.Name(), len(lvl.Walls()))))
	return nil
}
