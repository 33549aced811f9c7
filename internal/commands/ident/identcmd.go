package ident

import (
	"context"
	"fmt"

	"github.com/indaco/vermanip/internal/clix"
	"github.com/indaco/vermanip/internal/coords"
	"github.com/indaco/vermanip/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "ident" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "ident",
		Usage:     "Print the coordinates of build descriptors",
		UsageText: "vermanip ident [--strict] <descriptor>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when group or version cannot be resolved instead of printing null",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runIdent(ctx, env, cmd.Args().Slice(), cmd.Bool("strict"))
		},
	}
}

func runIdent(ctx context.Context, env *clix.Env, paths []string, strict bool) error {
	projects, err := env.ReadProjects(ctx, paths)
	if err != nil {
		return err
	}

	for _, p := range projects {
		gav := coords.GroupArtifactVersion(p)
		if strict {
			ref, err := coords.ResolveGAV(p)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Path, err)
			}
			gav = ref.String()
		}

		line := fmt.Sprintf("%s %s", gav, printer.Faint(p.Path))
		if parent := p.Parent(); parent != nil {
			line += printer.Faint(fmt.Sprintf(" (parent %s)", coords.GroupArtifactVersion(parent)))
		}
		printer.Println(line)
	}
	return nil
}
