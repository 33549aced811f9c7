package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/indaco/vermanip/internal/clix"
	"github.com/indaco/vermanip/internal/commands/apply"
	"github.com/indaco/vermanip/internal/commands/check"
	"github.com/indaco/vermanip/internal/commands/ident"
	"github.com/indaco/vermanip/internal/commands/parse"
	"github.com/indaco/vermanip/internal/commands/plan"
	"github.com/indaco/vermanip/internal/commands/status"
	"github.com/indaco/vermanip/internal/printer"
	"github.com/indaco/vermanip/internal/tui"
	"github.com/indaco/vermanip/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the vermanip cli.
func New(env *clix.Env) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "vermanip",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Rewrite module versions across a multi-module build",
		EnableShellCompletion: true,
		// -D values may carry comma-separated coordinate lists.
		DisableSliceFlagSeparator: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringSliceFlag{
				Name:    clix.FlagDefine,
				Aliases: []string{"D"},
				Usage:   "Set a user property (key=value), e.g. -D version.suffix=redhat",
			},
			&urfavecli.StringFlag{
				Name:    clix.FlagProps,
				Usage:   "Properties file (yaml, toml, json or .properties)",
				Sources: urfavecli.EnvVars("VERMANIP_PROPS_FILE"),
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&urfavecli.StringFlag{
				Name:  "theme",
				Usage: "Prompt theme (charm, base, base16, catppuccin, dracula)",
				Value: "charm",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color") || !tui.IsTTY())
			if cmd.Bool("verbose") {
				env.Logger.SetLevel(log.DebugLevel)
			}
			theme := cmd.String("theme")
			if !tui.IsValidTheme(theme) {
				return ctx, fmt.Errorf("invalid theme %q", theme)
			}
			tui.SetTheme(theme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			status.Run(env),
			check.Run(env),
			parse.Run(env),
			ident.Run(env),
			plan.Run(env),
			apply.Run(env),
		},
	}
}
