package wscommands

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wsinit/pkg/dispatcher"
	"github.com/arthur-debert/wsinit/pkg/errors"
	"github.com/arthur-debert/wsinit/pkg/logging"
	"github.com/pelletier/go-toml/v2"
)

func init() {
	dispatcher.MustRegister("GenConfig", dispatcher.Registration{
		// gen-config creates the config file other commands require,
		// so dispatch must not load one first.
		SkipConfig: true,
		Factory: func(ctx dispatcher.Context) dispatcher.Command {
			return &genConfig{ctx: ctx}
		},
	})
}

const genConfigHeader = `# wsinit configuration. The [wsinit] section provides the values
# templates may reference as {{user}}, {{email}} and {{host}}.
`

// starterConfig is the marshaled shape of the generated config file
type starterConfig struct {
	Wsinit struct {
		User  string `toml:"user"`
		Email string `toml:"email,omitempty"`
		Host  string `toml:"host,omitempty"`
	} `toml:"wsinit"`
}

// genConfig writes a starter wsinit.toml next to the binary, seeded from
// the environment. It refuses to overwrite an existing config file.
type genConfig struct {
	ctx dispatcher.Context
}

func (c *genConfig) Run() (*dispatcher.Result, error) {
	logger := logging.GetLogger("wscommands.genconfig")
	dest := c.ctx.Paths.DefaultConfigPath()

	if _, err := c.ctx.FS.Stat(dest); err == nil {
		return nil, errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", dest)
	}

	var starter starterConfig
	starter.Wsinit.User = os.Getenv("USER")
	if starter.Wsinit.User == "" {
		starter.Wsinit.User = "user"
	}
	if host, err := os.Hostname(); err == nil {
		starter.Wsinit.Host = host
	}

	body, err := toml.Marshal(starter)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal starter config")
	}
	content := genConfigHeader + string(body)

	if c.ctx.DryRun {
		return &dispatcher.Result{
			Message: fmt.Sprintf("Would write %s:\n%s", dest, content),
			Path:    dest,
		}, nil
	}

	if err := c.ctx.FS.WriteFile(dest, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}

	logger.Info().Str("dest", dest).Str("user", starter.Wsinit.User).Msg("Starter config written")

	return &dispatcher.Result{
		Message: fmt.Sprintf("Starter config written to %s.", dest),
		Path:    dest,
	}, nil
}
