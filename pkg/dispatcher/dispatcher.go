// Package dispatcher provides centralized command dispatching for wsinit.
// It acts as the entry point from the CLI layer: subcommand names are
// resolved against a build-time registry by naming convention, the
// configuration is loaded, and the matched command is constructed with it
// and invoked exactly once.
package dispatcher

import (
	"strings"

	"github.com/arthur-debert/wsinit/pkg/config"
	"github.com/arthur-debert/wsinit/pkg/errors"
	"github.com/arthur-debert/wsinit/pkg/filesystem"
	"github.com/arthur-debert/wsinit/pkg/logging"
	"github.com/arthur-debert/wsinit/pkg/paths"
	"github.com/arthur-debert/wsinit/pkg/registry"
	"github.com/arthur-debert/wsinit/pkg/types"
)

// Command is the uniform invocation contract: constructed per CLI
// invocation, run once, discarded.
type Command interface {
	Run() (*Result, error)
}

// Result carries the user-facing outcome of a command
type Result struct {
	// Message is printed to the user on success
	Message string

	// Path is the file the command produced, if any
	Path string
}

// Context carries everything a command is constructed with
type Context struct {
	Config *config.Config
	Paths  *paths.Paths
	FS     types.FS
	DryRun bool
}

// Factory builds a command instance for one invocation
type Factory func(ctx Context) Command

// Registration describes a dispatchable command
type Registration struct {
	Factory Factory

	// SkipConfig marks commands that must run before a config file
	// exists (gen-config writes the initial one).
	SkipConfig bool
}

// Options contains the per-invocation inputs to Dispatch
type Options struct {
	Paths *paths.Paths

	// FileSystem is the filesystem to use (optional, defaults to the
	// OS filesystem)
	FileSystem types.FS

	DryRun bool
}

var commands = registry.New[Registration]()

// MustRegister adds a command under its canonical identifier. It panics on
// conflict and is meant to be called from package init functions.
func MustRegister(identifier string, reg Registration) {
	if err := commands.Register(identifier, reg); err != nil {
		panic(err)
	}
}

// Known returns the canonical identifiers of all registered commands
func Known() []string {
	return commands.List()
}

// CanonicalName transforms a hyphenated subcommand name into its registry
// identifier: each hyphen-separated token is capitalized and the tokens are
// concatenated, so "init-workspace" becomes "InitWorkspace".
func CanonicalName(subcommand string) string {
	var b strings.Builder
	for _, token := range strings.Split(subcommand, "-") {
		if token == "" {
			continue
		}
		b.WriteString(strings.ToUpper(token[:1]))
		b.WriteString(token[1:])
	}
	return b.String()
}

// Dispatch resolves the subcommand name, loads the configuration, constructs
// the matched command with it and invokes it. Name resolution happens before
// config loading so that an unknown command never surfaces a config error.
func Dispatch(subcommand string, opts Options) (*Result, error) {
	logger := logging.GetLogger("dispatcher")

	identifier := CanonicalName(subcommand)
	logger.Debug().
		Str("subcommand", subcommand).
		Str("identifier", identifier).
		Bool("dryRun", opts.DryRun).
		Msg("Dispatching command")

	reg, err := commands.Get(identifier)
	if err != nil {
		return nil, errors.Newf(errors.ErrCommandNotFound, "command %q is not implemented", subcommand)
	}

	ctx := Context{
		Paths:  opts.Paths,
		FS:     opts.FileSystem,
		DryRun: opts.DryRun,
	}
	if ctx.FS == nil {
		ctx.FS = filesystem.NewOS()
	}

	if !reg.SkipConfig {
		cfg, err := config.Load(opts.Paths)
		if err != nil {
			return nil, err
		}
		ctx.Config = cfg
	}

	return reg.Factory(ctx).Run()
}
