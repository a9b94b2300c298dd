package injector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/planetattack/internal/core/config"
)

func TestInitializeAppDefaults(t *testing.T) {
	app, err := InitializeApp("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *app.Config)
	assert.NotNil(t, app.Logger)
	assert.Same(t, app.Bus, app.World.Bus())
	assert.Equal(t, app.Config.Seed, app.World.Config().Seed)
}

func TestInitializeAppFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planetattack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\nlog:\n  level: warn\n"), 0o600))

	app, err := InitializeApp(ConfigPath(path))
	require.NoError(t, err)
	assert.Equal(t, int64(42), app.World.Config().Seed)
}

func TestInitializeAppRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  chunk_size: 100\n"), 0o600))

	_, err := InitializeApp(ConfigPath(path))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
