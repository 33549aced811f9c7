package status

import (
	"context"
	"strconv"

	"github.com/indaco/vermanip/internal/clix"
	"github.com/indaco/vermanip/internal/printer"
	"github.com/indaco/vermanip/internal/versioning"
	"github.com/urfave/cli/v3"
)

// Run returns the "status" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show the resolved versioning configuration",
		UsageText: "vermanip status [-D key=value]...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := env.Config(ctx, cmd)
			if err != nil {
				return err
			}
			printStatus(cfg)
			return nil
		},
	}
}

func printStatus(cfg *versioning.Config) {
	if cfg.IsEnabled() {
		printer.PrintSuccess("Version manipulation is enabled")
	} else {
		printer.PrintWarning("Version manipulation is disabled (set version.suffix, version.incremental.suffix or version.override)")
	}

	printer.PrintBold("Versioning properties")
	printer.Println(printer.KeyValue(versioning.KeySuffix, optional(cfg.Suffix())))
	printer.Println(printer.KeyValue(versioning.KeyIncrementalSuffix, optional(cfg.IncrementalSuffix())))
	printer.Println(printer.KeyValue(versioning.KeyOverride, optional(cfg.Override())))
	printer.Println(printer.KeyValue(versioning.KeySuffixSnapshot, strconv.FormatBool(cfg.PreserveSnapshot())))
	printer.Println(printer.KeyValue(versioning.KeyOSGi, strconv.FormatBool(cfg.OSGiCompliant())))
}

func optional(value string, ok bool) string {
	if !ok {
		return printer.Faint("(unset)")
	}
	return value
}
