package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"zikkycal.dev/zikkycal/internal/errors"
)

func setupConfigPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	t.Setenv("ZIKKYCAL_CONFIG", path)
	t.Setenv("ZIKKYCAL_THEME", "")
	t.Setenv("ZIKKYCAL_SHARE_URL", "")
	return path
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		setupConfigPath(t)

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("reads values saved earlier", func(t *testing.T) {
		path := setupConfigPath(t)

		cfg := Default()
		require.NoError(t, cfg.Set(KeyTheme, ThemeLight))
		require.NoError(t, Save(cfg))
		require.FileExists(t, path)

		loaded, err := Load()
		require.NoError(t, err)
		require.Equal(t, ThemeLight, loaded.Theme)
		require.Equal(t, DefaultShareURL, loaded.Share.URL)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		setupConfigPath(t)
		require.NoError(t, Save(Default()))
		t.Setenv("ZIKKYCAL_THEME", ThemeLight)

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, ThemeLight, cfg.Theme)
	})

	t.Run("rejects a broken file", func(t *testing.T) {
		path := setupConfigPath(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("rejects an invalid theme in the file", func(t *testing.T) {
		path := setupConfigPath(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(`{"theme": "purple"}`), 0o600))

		_, err := Load()
		require.ErrorIs(t, err, errors.ErrInvalidConfigValue)
	})
}

func TestConfigGetSet(t *testing.T) {
	t.Parallel()

	t.Run("get returns current values", func(t *testing.T) {
		t.Parallel()
		cfg := Default()

		theme, err := cfg.Get(KeyTheme)
		require.NoError(t, err)
		require.Equal(t, ThemeDark, theme)

		shareURL, err := cfg.Get(KeyShareURL)
		require.NoError(t, err)
		require.Equal(t, DefaultShareURL, shareURL)
	})

	t.Run("set validates the theme", func(t *testing.T) {
		t.Parallel()
		cfg := Default()

		err := cfg.Set(KeyTheme, "purple")
		require.ErrorIs(t, err, errors.ErrInvalidConfigValue)
		require.Equal(t, ThemeDark, cfg.Theme)
	})

	t.Run("set validates the share url", func(t *testing.T) {
		t.Parallel()
		cfg := Default()

		require.ErrorIs(t, cfg.Set(KeyShareURL, "not a url"), errors.ErrInvalidConfigValue)
		require.ErrorIs(t, cfg.Set(KeyShareURL, "ftp://example.com"), errors.ErrInvalidConfigValue)
		require.NoError(t, cfg.Set(KeyShareURL, "https://example.com/calc"))
		require.Equal(t, "https://example.com/calc", cfg.Share.URL)
	})

	t.Run("unknown keys suggest the closest key", func(t *testing.T) {
		t.Parallel()
		cfg := Default()

		_, err := cfg.Get("them")
		require.ErrorIs(t, err, errors.ErrUnknownConfigKey)

		var keyErr *errors.ConfigKeyError
		require.True(t, stderrors.As(err, &keyErr))
		require.Equal(t, KeyTheme, keyErr.Suggestion)
	})

	t.Run("toggled theme flips between dark and light", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		require.Equal(t, ThemeLight, cfg.ToggledTheme())
		cfg.Theme = ThemeLight
		require.Equal(t, ThemeDark, cfg.ToggledTheme())
	})
}
