package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(location, []byte(contents), 0600))
	return location
}

func TestLoadApplicationConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		cliOpts  CliOnlyOptions
		wantErr  require.ErrorAssertionFunc
		validate func(t *testing.T, cfg *Application)
	}{
		{
			name:    "defaults",
			config:  "quiet: false\n",
			wantErr: require.NoError,
			validate: func(t *testing.T, cfg *Application) {
				assert.Equal(t, spec.V1_3, cfg.SpecVersionOpt)
				assert.Equal(t, format.JSON, cfg.FormatOpt)
				assert.True(t, cfg.Validate)
				assert.False(t, cfg.DeterministicSerial)
				assert.Empty(t, cfg.Output)
				assert.Equal(t, logrus.WarnLevel, cfg.Log.LevelOpt)
			},
		},
		{
			name: "explicit values",
			config: `output:
  - json@1.2
  - xml@1.3=bom.xml
spec-version: "1.2"
format: xml
deterministic-serial: true
log:
  level: debug
  structured: true
`,
			wantErr: require.NoError,
			validate: func(t *testing.T, cfg *Application) {
				assert.Equal(t, []string{"json@1.2", "xml@1.3=bom.xml"}, cfg.Output)
				assert.Equal(t, spec.V1_2, cfg.SpecVersionOpt)
				assert.Equal(t, format.XML, cfg.FormatOpt)
				assert.True(t, cfg.DeterministicSerial)
				assert.True(t, cfg.Log.Structured)
				assert.Equal(t, logrus.DebugLevel, cfg.Log.LevelOpt)
				assert.Equal(t, uint(1), cfg.Verbosity)
			},
		},
		{
			name:    "verbosity flag",
			config:  "quiet: false\n",
			cliOpts: CliOnlyOptions{Verbosity: 2},
			wantErr: require.NoError,
			validate: func(t *testing.T, cfg *Application) {
				assert.Equal(t, logrus.DebugLevel, cfg.Log.LevelOpt)
			},
		},
		{
			name:    "quiet wins",
			config:  "quiet: true\nlog:\n  level: trace\n",
			wantErr: require.NoError,
			validate: func(t *testing.T, cfg *Application) {
				assert.Equal(t, logrus.PanicLevel, cfg.Log.LevelOpt)
			},
		},
		{
			name:    "level and verbosity together",
			config:  "log:\n  level: info\n",
			cliOpts: CliOnlyOptions{Verbosity: 1},
			wantErr: require.Error,
		},
		{
			name:    "unsupported spec version",
			config:  "spec-version: \"1.4\"\n",
			wantErr: require.Error,
		},
		{
			name:    "unsupported format",
			config:  "format: protobuf\n",
			wantErr: require.Error,
		},
		{
			name:    "two profilers",
			config:  "dev:\n  profile-cpu: true\n  profile-mem: true\n",
			wantErr: require.Error,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opts := test.cliOpts
			opts.ConfigPath = writeConfig(t, test.config)

			cfg, err := LoadApplicationConfig(viper.New(), opts)
			test.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, opts.ConfigPath, cfg.ConfigPath)
			if test.validate != nil {
				test.validate(t, cfg)
			}
		})
	}
}

func TestLoadApplicationConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadApplicationConfig(viper.New(), CliOnlyOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestApplication_String(t *testing.T) {
	cfg := Application{Output: []string{"json@1.3"}, SpecVersion: "1.3", Validate: true}
	rendered := cfg.String()
	assert.Contains(t, rendered, "output:\n- json@1.3\n")
	assert.Contains(t, rendered, "spec-version: \"1.3\"")
	assert.NotContains(t, rendered, "SpecVersionOpt")
}
