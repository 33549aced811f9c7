package apply

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/vermanip/internal/clix"
	"github.com/indaco/vermanip/internal/commands/plan"
	"github.com/indaco/vermanip/internal/coords"
	"github.com/indaco/vermanip/internal/parser"
	"github.com/indaco/vermanip/internal/printer"
	"github.com/urfave/cli/v3"
)

var (
	// ErrNotConfirmed is returned when the user declines, or cannot be asked.
	ErrNotConfirmed = errors.New("descriptor rewrite not confirmed")

	// ErrVersionMismatch is returned when a rewritten descriptor does not
	// read back with its planned version.
	ErrVersionMismatch = errors.New("rewritten version does not match plan")
)

// Run returns the "apply" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Rewrite descriptor versions according to the plan",
		UsageText: "vermanip apply [--yes] <descriptor>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Do not ask for confirmation",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runApply(ctx, env, cmd, cmd.Args().Slice(), cmd.Bool("yes"))
		},
	}
}

func runApply(ctx context.Context, env *clix.Env, cmd *cli.Command, paths []string, yes bool) error {
	result, err := plan.Build(ctx, env, cmd, paths)
	if err != nil {
		return err
	}

	text, err := plan.NewFormatter(plan.FormatText).Format(result)
	if err != nil {
		return fmt.Errorf("failed to format plan: %w", err)
	}
	printer.Println(text)
	if !result.Enabled() {
		return nil
	}

	if !yes {
		if !env.Interactive() {
			return fmt.Errorf("%w: pass --yes to rewrite descriptors non-interactively", ErrNotConfirmed)
		}
		ok, err := env.Confirm("Rewrite descriptors?", fmt.Sprintf("%d descriptor(s) will be updated", len(result.Projects)))
		if err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}
		if !ok {
			return ErrNotConfirmed
		}
	}

	printer.PrintInfo(fmt.Sprintf("Rewriting %d descriptor(s)", len(result.Projects)))
	written, err := rewrite(ctx, env, result)
	if err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Updated %d version field(s)", written))
	return nil
}

// rewrite applies the planned versions. A declared version is replaced. An
// inherited version follows the parent reference when the parent is part
// of the plan, and is declared on the descriptor otherwise. Every rewritten
// descriptor is read back and checked against the plan.
func rewrite(ctx context.Context, env *clix.Env, result *plan.Result) (int, error) {
	rw := parser.NewReadWriter(env.FS)
	changes := result.Config.VersioningChanges()
	written := 0

	for _, p := range result.Projects {
		newVersion, planned := changes[coords.GroupArtifactVersion(p)]
		if !planned {
			continue
		}

		parentVersion, parentPlanned := "", false
		if p.ParentRef != nil {
			parentVersion, parentPlanned = changes[coords.GroupArtifactVersion(p.ParentRef)]
		}

		switch {
		case p.Version != nil:
			if err := rw.SetVersion(ctx, p.Path, parser.FieldVersion, newVersion); err != nil {
				return written, err
			}
			written++
		case !parentPlanned:
			if err := rw.DeclareVersion(ctx, p.Path, newVersion); err != nil {
				return written, err
			}
			written++
			env.Logger.Debug("declared inherited version", "path", p.Path, "version", newVersion)
		}

		if parentPlanned {
			if err := rw.SetVersion(ctx, p.Path, parser.FieldParentVersion, parentVersion); err != nil {
				return written, err
			}
			written++
			env.Logger.Debug("updated parent reference", "path", p.Path, "version", parentVersion)
		}

		if err := verify(ctx, rw, p.Path, newVersion); err != nil {
			return written, err
		}
		printer.PrintFaint(fmt.Sprintf("  %s -> %s", p.Path, newVersion))
	}

	return written, nil
}

func verify(ctx context.Context, rw *parser.ReadWriter, path, want string) error {
	model, err := rw.ReadModel(ctx, path)
	if err != nil {
		return err
	}
	ref, err := coords.ResolveGAV(model)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if ref.Version != want {
		return fmt.Errorf("%w: %s reads back as %q, want %q", ErrVersionMismatch, path, ref.Version, want)
	}
	return nil
}
