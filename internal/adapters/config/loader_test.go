package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nivo.ch/panelctl/internal/adapters/config"
	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PANELCTL_ENDPOINT", "")
	t.Setenv("PANELCTL_LOGIN", "")
	t.Setenv("PANELCTL_PASSWORD", "")
}

func TestLoader_Load_FromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
endpoint: https://panel.example.com/api
login: alice
password: hunter2
timeoutSeconds: 10
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://panel.example.com/api", cfg.Endpoint)
	assert.Equal(t, "alice", cfg.Login)
	assert.Equal(t, "hunter2", cfg.Password)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoader_Load_WalksUpwards(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
endpoint: https://panel.example.com/api
login: alice
`)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Login)
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
endpoint: https://panel.example.com/api
login: alice
password: from-file
`)
	t.Setenv("PANELCTL_ENDPOINT", "")
	t.Setenv("PANELCTL_LOGIN", "")
	t.Setenv("PANELCTL_PASSWORD", "from-env")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Password)
}

func TestLoader_Load_EnvOnly(t *testing.T) {
	t.Setenv("PANELCTL_ENDPOINT", "https://panel.example.com/api")
	t.Setenv("PANELCTL_LOGIN", "alice")
	t.Setenv("PANELCTL_PASSWORD", "hunter2")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "") // keep the user config dir out of the search

	cfg, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Login)
}

func TestLoader_Load_NotFound(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	_, err := newLoader(t).Load(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_Load_InvalidEndpoint(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
endpoint: "not a url"
login: alice
`)

	_, err := newLoader(t).Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestLoader_Load_MissingLogin(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
endpoint: https://panel.example.com/api
`)

	_, err := newLoader(t).Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestLoader_Load_UnparsableYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "endpoint: [broken")

	_, err := newLoader(t).Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}
