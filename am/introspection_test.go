package am

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkSettingsFromSource(t *testing.T) {
	t.Run("Flat settings", func(t *testing.T) {
		settings := map[string]interface{}{
			"path":  "settings.toml",
			"theme": "gruvbox",
		}

		sourceMap := make(map[string]SourceInfo)
		markSettingsFromSource(settings, "", SourceUser, "/home/user/.config/chordc/chordc.toml", sourceMap)

		assert.Len(t, sourceMap, 2)
		assert.Equal(t, SourceUser, sourceMap["path"].Source)
		assert.Equal(t, "/home/user/.config/chordc/chordc.toml", sourceMap["theme"].Path)
	})

	t.Run("Nested settings", func(t *testing.T) {
		settings := map[string]interface{}{
			"output": map[string]interface{}{
				"directory": "build",
				"banner":    false,
			},
			"watch": map[string]interface{}{
				"debounce_ms": 50,
			},
		}

		sourceMap := make(map[string]SourceInfo)
		markSettingsFromSource(settings, "", SourceProject, "/kb/chordc.toml", sourceMap)

		assert.Len(t, sourceMap, 3)
		assert.Equal(t, SourceProject, sourceMap["output.directory"].Source)
		assert.Equal(t, SourceProject, sourceMap["output.banner"].Source)
		assert.Equal(t, "/kb/chordc.toml", sourceMap["watch.debounce_ms"].Path)
	})
}

func TestFlattenSettingsWithSources(t *testing.T) {
	settings := map[string]interface{}{
		"watch": map[string]interface{}{
			"debounce_ms": 300,
		},
		"output": map[string]interface{}{
			"directory": "",
			"file_base": "pipit_config",
		},
	}
	sourceMap := map[string]SourceInfo{
		"output.file_base": {Source: SourceProject, Path: "/kb/chordc.toml"},
	}
	t.Setenv("CHORDC_OUTPUT_DIRECTORY", "/tmp/out")

	intro := &ConfigIntrospection{}
	flattenSettingsWithSources(settings, "", intro, sourceMap)

	require.Len(t, intro.Settings, 3)
	// Sorted by key
	assert.Equal(t, "output.directory", intro.Settings[0].Key)
	assert.Equal(t, SourceEnvironment, intro.Settings[0].Source)
	assert.Equal(t, "CHORDC_OUTPUT_DIRECTORY", intro.Settings[0].SourcePath)

	assert.Equal(t, "output.file_base", intro.Settings[1].Key)
	assert.Equal(t, SourceProject, intro.Settings[1].Source)

	assert.Equal(t, "watch.debounce_ms", intro.Settings[2].Key)
	assert.Equal(t, SourceDefault, intro.Settings[2].Source)
	assert.Equal(t, 300, intro.Settings[2].Value)
}

func TestGetConfigIntrospection(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ConfigFileName), "[log]\njson = true\n")
	t.Chdir(project)
	t.Setenv("CHORDC_OUTPUT_FILE_BASE", "pipit_config")

	intro, err := GetConfigIntrospection()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, ConfigFileName), intro.ConfigFile)

	byKey := make(map[string]SettingInfo)
	for _, s := range intro.Settings {
		byKey[s.Key] = s
	}
	assert.Equal(t, SourceProject, byKey["log.json"].Source)
	assert.Equal(t, true, byKey["log.json"].Value)
	assert.Equal(t, SourceEnvironment, byKey["output.file_base"].Source)
	assert.Equal(t, SourceDefault, byKey["settings.path"].Source)
}
