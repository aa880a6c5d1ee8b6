// Package config loads wsinit's layered configuration: embedded defaults,
// then the first config file found next to the binary, then WSINIT_*
// environment variables.
package config

import (
	"github.com/arthur-debert/wsinit/pkg/errors"
)

// Config is the immutable configuration record for one run
type Config struct {
	Wsinit   Tool     `koanf:"wsinit"`
	Template Template `koanf:"template"`
}

// Tool holds the [wsinit] section: the named values templates may
// reference as placeholders. user is required; email and host are optional.
type Tool struct {
	User  string `koanf:"user"`
	Email string `koanf:"email"`
	Host  string `koanf:"host"`
}

// Template holds the [template] section, populated from embedded defaults
// and overridable from the config file.
type Template struct {
	// Asset is the template filename inside the assets directory
	Asset string `koanf:"asset"`

	// CommentMarker prefixes lines that are copied without substitution
	CommentMarker string `koanf:"comment-marker"`
}

// Field resolves a template placeholder identifier to its configured value.
// The set of valid identifiers is fixed; unknown identifiers and identifiers
// without a configured value both fail with ErrFieldNotFound.
func (c *Config) Field(name string) (string, error) {
	var value string
	switch name {
	case "user":
		value = c.Wsinit.User
	case "email":
		value = c.Wsinit.Email
	case "host":
		value = c.Wsinit.Host
	default:
		return "", errors.Newf(errors.ErrFieldNotFound, "no configuration field %q", name)
	}

	if value == "" {
		return "", errors.Newf(errors.ErrFieldNotFound, "configuration field %q has no value", name)
	}
	return value, nil
}
