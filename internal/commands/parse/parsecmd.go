package parse

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/vermanip/internal/clix"
	"github.com/indaco/vermanip/internal/coords"
	"github.com/indaco/vermanip/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "parse" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a comma-separated coordinate list, skipping invalid entries",
		UsageText: "vermanip parse [--require] [--ga] <g:a:v,g:a:v,...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "require",
				Usage: "Fail when no coordinate survives parsing",
			},
			&cli.BoolFlag{
				Name:  "ga",
				Usage: "Print group:artifact only",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runParse(env, strings.Join(cmd.Args().Slice(), ","), cmd.Bool("require"), cmd.Bool("ga"))
		},
	}
}

func runParse(env *clix.Env, list string, require, gaOnly bool) error {
	refs := coords.ParseList(list, env.Logger)

	if require && len(refs) == 0 {
		return fmt.Errorf("no valid coordinates in %q", list)
	}

	for _, ref := range refs {
		if gaOnly {
			printer.Println(ref.GA())
		} else {
			printer.Println(ref.String())
		}
	}
	return nil
}
