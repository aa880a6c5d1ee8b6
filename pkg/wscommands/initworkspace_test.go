package wscommands

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wsinit/pkg/config"
	"github.com/arthur-debert/wsinit/pkg/dispatcher"
	"github.com/arthur-debert/wsinit/pkg/errors"
	"github.com/arthur-debert/wsinit/pkg/filesystem"
	"github.com/arthur-debert/wsinit/pkg/paths"
	"github.com/arthur-debert/wsinit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `# Workspace exclude list, generated by wsinit.
# Lines like scratch/{{user}} in comments stay untouched.
*.swp
scratch/{{user}}/
ignore-me-{{user}}.log
notes-{{user}}-{{host}}.md
`

func testConfig() *config.Config {
	return &config.Config{
		Wsinit:   config.Tool{User: "alice", Host: "devbox"},
		Template: config.Template{Asset: "exclude.template", CommentMarker: "#"},
	}
}

func testContext(t *testing.T, tmpl string) (dispatcher.Context, types.FS) {
	t.Helper()

	p, err := paths.New("/srv/ws/bin")
	require.NoError(t, err)

	fs := filesystem.NewMemory()
	if tmpl != "" {
		require.NoError(t, fs.WriteFile(p.TemplatePath("exclude.template"), []byte(tmpl), 0644))
	}

	return dispatcher.Context{
		Config: testConfig(),
		Paths:  p,
		FS:     fs,
	}, fs
}

func readOutput(t *testing.T, fs types.FS, ctx dispatcher.Context) string {
	t.Helper()
	data, err := fs.ReadFile(ctx.Paths.ExcludePath())
	require.NoError(t, err)
	return string(data)
}

func TestInitWorkspace(t *testing.T) {
	ctx, fs := testContext(t, testTemplate)

	result, err := (&initWorkspace{ctx: ctx}).Run()

	require.NoError(t, err)
	assert.Equal(t, ctx.Paths.ExcludePath(), result.Path)
	assert.Contains(t, result.Message, "written to /srv/ws/.git/info/exclude")

	want := `# Workspace exclude list, generated by wsinit.
# Lines like scratch/{{user}} in comments stay untouched.
*.swp
scratch/alice/
ignore-me-alice.log
notes-alice-devbox.md
`
	assert.Equal(t, want, readOutput(t, fs, ctx))
}

func TestInitWorkspaceSingleLineExample(t *testing.T) {
	ctx, fs := testContext(t, "ignore-me-{{user}}.log\n")
	ctx.Config.Wsinit.User = "bob"

	_, err := (&initWorkspace{ctx: ctx}).Run()

	require.NoError(t, err)
	assert.Equal(t, "ignore-me-bob.log\n", readOutput(t, fs, ctx))
}

func TestInitWorkspaceIdempotent(t *testing.T) {
	ctx, fs := testContext(t, testTemplate)

	_, err := (&initWorkspace{ctx: ctx}).Run()
	require.NoError(t, err)
	first := readOutput(t, fs, ctx)

	_, err = (&initWorkspace{ctx: ctx}).Run()
	require.NoError(t, err)

	assert.Equal(t, first, readOutput(t, fs, ctx))
}

func TestInitWorkspaceOverwritesExisting(t *testing.T) {
	ctx, fs := testContext(t, "fresh-{{user}}\n")
	require.NoError(t, fs.WriteFile(ctx.Paths.ExcludePath(), []byte("stale content\n"), 0644))

	_, err := (&initWorkspace{ctx: ctx}).Run()

	require.NoError(t, err)
	assert.Equal(t, "fresh-alice\n", readOutput(t, fs, ctx))
}

func TestInitWorkspacePreservesMissingFinalNewline(t *testing.T) {
	ctx, fs := testContext(t, "one\ntwo-{{user}}")

	_, err := (&initWorkspace{ctx: ctx}).Run()

	require.NoError(t, err)
	assert.Equal(t, "one\ntwo-alice", readOutput(t, fs, ctx))
}

func TestInitWorkspaceUnknownField(t *testing.T) {
	ctx, fs := testContext(t, "keep\nbad-{{unknown_field}}\n")

	_, err := (&initWorkspace{ctx: ctx}).Run()

	assert.True(t, errors.IsErrorCode(err, errors.ErrFieldNotFound))

	// Nothing may be written when resolution fails partway through.
	_, statErr := fs.Stat(ctx.Paths.ExcludePath())
	assert.Error(t, statErr)
}

func TestInitWorkspaceMissingAsset(t *testing.T) {
	ctx, _ := testContext(t, "")

	_, err := (&initWorkspace{ctx: ctx}).Run()

	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestInitWorkspaceMissingDestinationDir(t *testing.T) {
	// The git metadata directory is never created by wsinit, so this
	// needs a real filesystem: the in-memory one creates parents
	// implicitly on write.
	installDir := filepath.Join(t.TempDir(), "bin")
	p, err := paths.New(installDir)
	require.NoError(t, err)

	fs := filesystem.NewOS()
	require.NoError(t, fs.MkdirAll(p.AssetsDir(), 0755))
	require.NoError(t, fs.WriteFile(p.TemplatePath("exclude.template"), []byte("x-{{user}}\n"), 0644))

	ctx := dispatcher.Context{Config: testConfig(), Paths: p, FS: fs}

	_, err = (&initWorkspace{ctx: ctx}).Run()

	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestInitWorkspaceDryRun(t *testing.T) {
	ctx, fs := testContext(t, testTemplate)
	ctx.DryRun = true

	result, err := (&initWorkspace{ctx: ctx}).Run()

	require.NoError(t, err)
	assert.Contains(t, result.Message, "Would write")

	_, statErr := fs.Stat(ctx.Paths.ExcludePath())
	assert.Error(t, statErr)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single with newline", input: "a\n", want: []string{"a\n"}},
		{name: "single without newline", input: "a", want: []string{"a"}},
		{name: "multiple", input: "a\nb\nc\n", want: []string{"a\n", "b\n", "c\n"}},
		{name: "blank lines kept", input: "a\n\nb\n", want: []string{"a\n", "\n", "b\n"}},
		{name: "no final newline", input: "a\nb", want: []string{"a\n", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.input))
		})
	}
}
