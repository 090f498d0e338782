package testhelpers

import (
	"path/filepath"
	"testing"

	"zikkycal.dev/zikkycal/internal/config"
)

// Scene represents a test scene with a temporary directory holding the
// config file and the log file, so tests never touch the user's own files.
type Scene struct {
	Dir        string
	ConfigPath string
	LogPath    string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene in t.TempDir() and points ZIKKYCAL_CONFIG
// and ZIKKYCAL_LOG_FILE into it. Interactive prompts are disabled.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	scene := &Scene{
		Dir:        dir,
		ConfigPath: filepath.Join(dir, "config", "config.json"),
		LogPath:    filepath.Join(dir, "logs", "zikkycal.log"),
	}

	t.Setenv("ZIKKYCAL_CONFIG", scene.ConfigPath)
	t.Setenv("ZIKKYCAL_LOG_FILE", scene.LogPath)
	t.Setenv("ZIKKYCAL_TEST_NO_INTERACTIVE", "1")
	t.Setenv("ZIKKYCAL_THEME", "")
	t.Setenv("ZIKKYCAL_SHARE_URL", "")

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Failed to set up scene: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup writes the default configuration file.
func BasicSceneSetup(_ *Scene) error {
	return config.Save(config.Default())
}

// LightThemeSceneSetup writes a configuration with the light theme selected.
func LightThemeSceneSetup(_ *Scene) error {
	cfg := config.Default()
	cfg.Theme = config.ThemeLight
	return config.Save(cfg)
}
