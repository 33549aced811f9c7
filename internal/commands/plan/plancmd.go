package plan

import (
	"context"

	"github.com/indaco/vermanip/internal/clix"
	"github.com/indaco/vermanip/internal/coords"
	"github.com/indaco/vermanip/internal/printer"
	"github.com/indaco/vermanip/internal/versioning"
	"github.com/urfave/cli/v3"
)

// Result is a computed plan over a set of descriptors.
type Result struct {
	Config   *versioning.Config
	Projects []*coords.Project
}

// Enabled reports whether the plan changes anything.
func (r *Result) Enabled() bool {
	return r.Config.IsEnabled()
}

// Entry is one planned change.
type Entry struct {
	Path       string
	GAV        string
	NewVersion string
}

// Entries returns the planned changes in descriptor order.
func (r *Result) Entries() []Entry {
	changes := r.Config.VersioningChanges()
	entries := make([]Entry, 0, len(r.Projects))
	for _, p := range r.Projects {
		gav := coords.GroupArtifactVersion(p)
		newVersion, ok := changes[gav]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Path: p.Path, GAV: gav, NewVersion: newVersion})
	}
	return entries
}

// Build resolves the configuration for cmd, reads the descriptors and
// stores the computed changes on the configuration.
func Build(ctx context.Context, env *clix.Env, cmd *cli.Command, paths []string) (*Result, error) {
	cfg, err := env.Config(ctx, cmd)
	if err != nil {
		return nil, err
	}

	projects, err := env.ReadProjects(ctx, paths)
	if err != nil {
		return nil, err
	}

	changes, err := versioning.Plan(cfg, clix.Descriptors(projects))
	if err != nil {
		return nil, err
	}
	cfg.SetVersioningChanges(changes)
	env.Logger.Debug("planned version changes", "modules", len(changes))

	return &Result{Config: cfg, Projects: projects}, nil
}

// Run returns the "plan" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "Compute the new version of every descriptor without writing",
		UsageText: "vermanip plan [--format text|json] <descriptor>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text or json",
				Value: "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			result, err := Build(ctx, env, cmd, cmd.Args().Slice())
			if err != nil {
				return err
			}

			out, err := NewFormatter(ParseOutputFormat(cmd.String("format"))).Format(result)
			if err != nil {
				return err
			}
			printer.Println(out)
			return nil
		},
	}
}
