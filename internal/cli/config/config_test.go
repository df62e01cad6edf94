package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projector/projection"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("profiles", "", "")
	fs.StringP("output", "o", "", "")
	fs.String("mode", "", "")
	fs.Bool("strict", false, "")
	fs.Bool("normalized-names", false, "")
	fs.BoolP("verbose", "v", false, "")
	require.NoError(t, fs.Parse(args))

	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "projector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Equal(t, &Config{Output: DefaultOutput, Mode: DefaultMode}, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeConfig(t, `
profiles: shapes.yaml
output: yaml
mode: reduce
strict: true
`)

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "shapes.yaml", cfg.Profiles)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "reduce", cfg.Mode)
	assert.True(t, cfg.Strict)

	t.Setenv("PROJECTOR_OUTPUT", "json")
	t.Setenv("PROJECTOR_NORMALIZED_NAMES", "true")

	cfg, _, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output, "env beats file")
	assert.True(t, cfg.NormalizedNames)

	cfg, _, err = Load(path, newFlags(t, "-o", "yaml", "--mode", "pass-through", "-v"))
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output, "flags beat env")
	assert.Equal(t, "pass-through", cfg.Mode)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Strict, "unset flags keep lower layers")
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projector.yml"), []byte("output: yaml\n"), 0o600))
	t.Chdir(dir)

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "projector.yml", used)
	assert.Equal(t, OutputYAML, cfg.Output)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := Load("", newFlags(t, "-o", "xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")

	_, _, err = Load("", newFlags(t, "--mode", "identity"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown projection mode")

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_ProjectorOptions(t *testing.T) {
	cfg := &Config{Output: OutputJSON, Mode: "reduce", Strict: true}

	opts, err := cfg.ProjectorOptions(nil)
	require.NoError(t, err)

	p := projection.New(opts...)
	assert.Equal(t, projection.ModeReduce, p.Mode())

	_, err = p.Project(projection.Record{}, []string{"A..B"})
	require.ErrorIs(t, err, projection.ErrInvalidPath)
}

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, DefaultOutput, GetConfig(ctx).Output)
	assert.NotNil(t, GetLogger(ctx))

	cfg := &Config{Output: OutputYAML}
	logger := NewLogger(os.Stderr, true)

	ctx = WithLogger(WithConfig(ctx, cfg), logger)
	assert.Same(t, cfg, GetConfig(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}
