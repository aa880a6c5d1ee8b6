package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/wsinit/pkg/errors"
	"github.com/arthur-debert/wsinit/pkg/logging"
	"github.com/arthur-debert/wsinit/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envPrefix namespaces the environment variable overrides
const envPrefix = "WSINIT_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}

// Load builds the Config for one run. The wsinit section must provide a
// user value; its absence is a load error.
func Load(p *paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. First config file found next to the binary
	loadedFrom := ""
	for _, path := range p.ConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		loadedFrom = path
		break
	}

	// 3. Environment overrides: WSINIT_USER -> wsinit.user
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return "wsinit." + strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if !k.Exists("wsinit.user") {
		return nil, errors.Newf(errors.ErrConfigKeyMissing,
			"missing required config key 'wsinit.user' (searched %s)", strings.Join(p.ConfigPaths(), ", "))
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	logger.Debug().
		Str("file", loadedFrom).
		Str("user", cfg.Wsinit.User).
		Str("asset", cfg.Template.Asset).
		Msg("Configuration loaded")

	return &cfg, nil
}

// parserFor picks the koanf parser from the file extension
func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}
