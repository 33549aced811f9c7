package check

import (
	"context"
	"fmt"

	"github.com/indaco/vermanip/internal/clix"
	"github.com/indaco/vermanip/internal/coords"
	"github.com/indaco/vermanip/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "check" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate group:artifact:version coordinates",
		UsageText: "vermanip check <coordinate>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCheck(env, cmd.Args().Slice())
		},
	}
}

func runCheck(env *clix.Env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one coordinate is required")
	}

	invalid := 0
	for _, arg := range args {
		if coords.IsValid(arg) {
			printer.Println(fmt.Sprintf("%s %s", printer.Success("✓"), arg))
			continue
		}
		invalid++
		env.Logger.Debug("invalid coordinate", "coordinate", arg)
		printer.Println(fmt.Sprintf("%s %s", printer.Error("✗"), arg))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d coordinate(s) invalid", invalid, len(args))
	}
	return nil
}
