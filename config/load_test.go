package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		viper.Reset()
		Controller = DefaultController()
		World = DefaultWorld()
		Log.Level = "INFO"
		Debug = DebugConfig{Overlay: true}
		Input.InvertY = false
	})
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	resetGlobals(t)

	dir := t.TempDir()
	cfg := `{
		"controller": {
			"walkSpeed": 4.5,
			"canSprint": false,
			"crouchEasing": "inOutQuad",
			"crouchCenter": { "y": 0.75 }
		},
		"world": { "unitScale": 16 },
		"input": { "invertY": true },
		"log": { "level": "debug" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fpcontroller.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 4.5, Controller.WalkSpeed)
	assert.False(t, Controller.CanSprint)
	assert.Equal(t, "inOutQuad", Controller.CrouchEasing)
	assert.Equal(t, Vec3{Y: 0.75}, Controller.CrouchCenter)
	assert.Equal(t, 16.0, World.UnitScale)
	assert.True(t, Input.InvertY)
	assert.Equal(t, "debug", Log.Level)

	// untouched keys keep their defaults
	assert.Equal(t, 6.0, Controller.SprintSpeed)
	assert.Equal(t, 30.0, Controller.Gravity)
	assert.Equal(t, 0.05, World.RayStep)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	resetGlobals(t)

	err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultController(), Controller)
	assert.Equal(t, DefaultWorld(), World)
	assert.Equal(t, "INFO", Log.Level)
	assert.True(t, Debug.Overlay)
}

func TestLoad_MalformedFile(t *testing.T) {
	resetGlobals(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fpcontroller.json"), []byte(`{"controller": `), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	resetGlobals(t)
	t.Setenv("FPC_CONTROLLER_GRAVITY", "9.81")
	t.Setenv("FPC_LOG_LEVEL", "WARN")

	err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9.81, Controller.Gravity)
	assert.Equal(t, "WARN", Log.Level)
}

func TestBindFlags(t *testing.T) {
	resetGlobals(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "INFO", "")
	fs.Bool("debug", true, "")
	fs.String("level", "", "")
	require.NoError(t, fs.Parse([]string{"--log-level=TRACE", "--debug=false", "--level=tunnels"}))

	require.NoError(t, BindFlags(fs))
	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "TRACE", Log.Level)
	assert.False(t, Debug.Overlay)
	assert.Equal(t, "tunnels", Debug.Level)
}
