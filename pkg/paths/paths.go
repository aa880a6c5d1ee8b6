// Package paths provides centralized path handling for wsinit.
// Every path the tool touches is derived from the installation directory
// (the directory holding the wsinit binary): the template assets live in an
// assets/ subdirectory, the config file sits next to the binary, and the
// output lands in the workspace root one level above the installation
// directory, under the git metadata directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/wsinit/pkg/errors"
)

// Environment variable names
const (
	// EnvInstallDir overrides the detected installation directory.
	// Used by tests and by callers that relocate the binary.
	EnvInstallDir = "WSINIT_HOME"
)

// Fixed names in the on-disk layout. These define wsinit's file layout and
// are not user-configurable.
const (
	// AssetsDirName is the subdirectory holding template assets
	AssetsDirName = "assets"

	// GitInfoDir is the git metadata subdirectory receiving the output
	GitInfoDir = ".git/info"

	// ExcludeFileName is the output filename inside GitInfoDir
	ExcludeFileName = "exclude"
)

// ConfigCandidates are the config filenames probed next to the binary,
// in priority order.
var ConfigCandidates = []string{"wsinit.toml", ".wsinit.toml", "wsinit.yaml"}

// Paths resolves wsinit's file layout from the installation directory
type Paths struct {
	installDir string
}

// New creates a Paths instance. When installDirOverride is empty, the
// WSINIT_HOME environment variable wins, then the directory of the running
// executable.
func New(installDirOverride string) (*Paths, error) {
	dir := installDirOverride
	if dir == "" {
		dir = os.Getenv(EnvInstallDir)
	}
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrPathResolve, "cannot locate the wsinit executable")
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir = filepath.Dir(exe)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPathResolve, "cannot resolve installation directory %s", dir)
	}

	return &Paths{installDir: abs}, nil
}

// InstallDir returns the installation directory
func (p *Paths) InstallDir() string {
	return p.installDir
}

// AssetsDir returns the directory holding template assets
func (p *Paths) AssetsDir() string {
	return filepath.Join(p.installDir, AssetsDirName)
}

// TemplatePath returns the full path of a template asset by filename
func (p *Paths) TemplatePath(asset string) string {
	return filepath.Join(p.AssetsDir(), asset)
}

// ConfigPaths returns the config file candidates next to the binary,
// in priority order.
func (p *Paths) ConfigPaths() []string {
	candidates := make([]string, 0, len(ConfigCandidates))
	for _, name := range ConfigCandidates {
		candidates = append(candidates, filepath.Join(p.installDir, name))
	}
	return candidates
}

// DefaultConfigPath returns where gen-config writes a starter config
func (p *Paths) DefaultConfigPath() string {
	return filepath.Join(p.installDir, ConfigCandidates[0])
}

// WorkspaceRoot returns the workspace root, the parent of the
// installation directory.
func (p *Paths) WorkspaceRoot() string {
	return filepath.Dir(p.installDir)
}

// ExcludePath returns the destination of the generated ignore file
func (p *Paths) ExcludePath() string {
	return filepath.Join(p.WorkspaceRoot(), filepath.FromSlash(GitInfoDir), ExcludeFileName)
}
