// Package clix carries the dependencies shared by every vermanip command
// and resolves the per-invocation versioning configuration from flags.
package clix

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/indaco/vermanip/internal/config"
	"github.com/indaco/vermanip/internal/coords"
	"github.com/indaco/vermanip/internal/core"
	"github.com/indaco/vermanip/internal/parser"
	"github.com/indaco/vermanip/internal/tui"
	"github.com/indaco/vermanip/internal/versioning"
	"github.com/urfave/cli/v3"
)

// Flag names shared by all commands.
const (
	FlagDefine = "define"
	FlagProps  = "props"
)

// Env holds the dependencies commands run against.
type Env struct {
	Logger *log.Logger
	FS     core.FileSystem

	// Confirm asks the user a yes/no question.
	Confirm func(title, description string) (bool, error)
	// Interactive reports whether Confirm may be used.
	Interactive func() bool
}

// NewEnv returns an Env backed by the host filesystem and terminal.
func NewEnv(logger *log.Logger) *Env {
	return &Env{
		Logger:      logger,
		FS:          core.NewOSFileSystem(),
		Confirm:     tui.Confirm,
		Interactive: tui.IsInteractive,
	}
}

// Config resolves the properties file and -D definitions of cmd into a
// versioning configuration.
func (e *Env) Config(ctx context.Context, cmd *cli.Command) (*versioning.Config, error) {
	props, err := config.NewLoader(e.FS).Resolve(ctx, cmd.String(FlagProps), cmd.StringSlice(FlagDefine))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve properties: %w", err)
	}
	e.Logger.Debug("resolved properties", "count", len(props))
	return versioning.NewConfig(props), nil
}

// ReadProjects reads every descriptor path as a project, in order.
func (e *Env) ReadProjects(ctx context.Context, paths []string) ([]*coords.Project, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("at least one descriptor path is required")
	}

	reader := parser.NewReader(e.FS)
	projects := make([]*coords.Project, 0, len(paths))
	for _, path := range paths {
		p, err := reader.ReadProject(ctx, path)
		if err != nil {
			return nil, err
		}
		e.Logger.Debug("read descriptor", "path", path, "gav", coords.GroupArtifactVersion(p))
		projects = append(projects, p)
	}
	return projects, nil
}

// Descriptors converts projects to the coords.Descriptor interface.
func Descriptors(projects []*coords.Project) []coords.Descriptor {
	ds := make([]coords.Descriptor, len(projects))
	for i, p := range projects {
		ds[i] = p
	}
	return ds
}
