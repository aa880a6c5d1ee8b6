// Package wscommands implements the dispatchable wsinit commands. Each
// command registers itself under its canonical identifier from init(); the
// main package blank-imports this package to trigger registration.
package wscommands

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/wsinit/pkg/dispatcher"
	"github.com/arthur-debert/wsinit/pkg/errors"
	"github.com/arthur-debert/wsinit/pkg/logging"
	"github.com/arthur-debert/wsinit/pkg/template"
)

func init() {
	dispatcher.MustRegister("InitWorkspace", dispatcher.Registration{
		Factory: func(ctx dispatcher.Context) dispatcher.Command {
			return &initWorkspace{ctx: ctx}
		},
	})
}

// initWorkspace renders the exclude template into the workspace's git
// metadata directory, overwriting any existing file there.
type initWorkspace struct {
	ctx dispatcher.Context
}

func (c *initWorkspace) Run() (*dispatcher.Result, error) {
	logger := logging.GetLogger("wscommands.initworkspace")
	cfg, p, fs := c.ctx.Config, c.ctx.Paths, c.ctx.FS

	templatePath := p.TemplatePath(cfg.Template.Asset)
	raw, err := fs.ReadFile(templatePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read template asset %s", templatePath)
	}

	resolve := func(placeholder string) (string, error) {
		name := strings.TrimSuffix(strings.TrimPrefix(placeholder, "{{"), "}}")
		return cfg.Field(name)
	}

	// The whole output is buffered before anything touches the
	// destination: a resolution error further down the template must not
	// leave a half-written exclude file behind.
	marker := cfg.Template.CommentMarker
	lines := splitLines(string(raw))
	substituted := 0
	var out strings.Builder
	out.Grow(len(raw))

	for _, line := range lines {
		switch {
		case marker != "" && strings.HasPrefix(line, marker):
			out.WriteString(line)
		case !template.IsTemplated(line):
			out.WriteString(line)
		default:
			rendered, err := template.Substitute(line, resolve)
			if err != nil {
				return nil, err
			}
			out.WriteString(rendered)
			substituted++
		}
	}

	dest := p.ExcludePath()

	if c.ctx.DryRun {
		logger.Info().
			Str("template", templatePath).
			Str("dest", dest).
			Int("lines", len(lines)).
			Msg("Dry run, skipping write")
		return &dispatcher.Result{
			Message: fmt.Sprintf("Would write %d lines (%d substituted) to %s.", len(lines), substituted, dest),
			Path:    dest,
		}, nil
	}

	// The git metadata directory must already exist; a workspace without
	// one is not initialized here.
	if err := fs.WriteFile(dest, []byte(out.String()), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}

	logger.Info().
		Str("template", templatePath).
		Str("dest", dest).
		Int("lines", len(lines)).
		Int("substituted", substituted).
		Msg("Workspace exclude file written")

	return &dispatcher.Result{
		Message: fmt.Sprintf("Workspace exclude file written to %s (%d lines, %d substituted).", dest, len(lines), substituted),
		Path:    dest,
	}, nil
}

// splitLines splits text into lines preserving their terminators. A final
// line without a trailing newline is kept as-is, so joining the result
// reproduces the input byte for byte.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}
