package config

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
	"github.com/allisonsierra/bomsmith/internal"
	"github.com/allisonsierra/bomsmith/internal/logger"
)

var ErrApplicationConfigNotFound = fmt.Errorf("application config not found")

type defaultValueLoader interface {
	loadDefaultValues(*viper.Viper)
}

type parser interface {
	parseConfigValues() error
}

type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}

type Application struct {
	ConfigPath          string         `yaml:",omitempty" json:"configPath"`                                                      // the location where the application config was read from (either from -c or discovered while loading)
	Verbosity           uint           `yaml:"verbosity,omitempty" json:"verbosity" mapstructure:"verbosity"`                     // -v, the level of log detail
	Output              []string       `yaml:"output" json:"output" mapstructure:"output"`                                        // -o, the documents to emit as <format>@<version>[=<file>]
	SpecVersion         string         `yaml:"spec-version" json:"spec-version" mapstructure:"spec-version"`                      // --spec-version, the schema version used when an output does not name one
	SpecVersionOpt      spec.Version   `yaml:"-" json:"-"`                                                                        // the parsed spec-version value
	Format              string         `yaml:"format" json:"format" mapstructure:"format"`                                        // --format, the serialization used when no output is requested
	FormatOpt           format.Format  `yaml:"-" json:"-"`                                                                        // the parsed format value
	File                string         `yaml:"file" json:"file" mapstructure:"file"`                                              // --file, the file (or directory when several documents are emitted) to write to
	Quiet               bool           `yaml:"quiet" json:"quiet" mapstructure:"quiet"`                                           // -q, indicates to not show any status output to stderr
	DeterministicSerial bool           `yaml:"deterministic-serial" json:"deterministic-serial" mapstructure:"deterministic-serial"` // derive serial numbers from the manifest content
	Validate            bool           `yaml:"validate" json:"validate" mapstructure:"validate"`                                  // validate the BOM before emitting any document
	CliOptions          CliOnlyOptions `yaml:"-" json:"-"`
	Log                 logging        `yaml:"log" json:"log" mapstructure:"log"`
	Dev                 development    `yaml:"dev" json:"dev" mapstructure:"dev"`
}

func newApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) *Application {
	config := &Application{
		CliOptions: cliOpts,
	}
	config.loadDefaultValues(v)

	return config
}

func LoadApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) (*Application, error) {
	// the user may not have a config, and this is OK, we can use the default config + default cobra cli values instead
	config := newApplicationConfig(v, cliOpts)

	if err := readConfig(v, cliOpts.ConfigPath); err != nil && !errors.Is(err, ErrApplicationConfigNotFound) {
		return nil, err
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	config.ConfigPath = v.ConfigFileUsed()

	if err := config.parseConfigValues(); err != nil {
		return nil, fmt.Errorf("invalid application config: %w", err)
	}

	return config, nil
}

// loadDefaultValues loads the default configuration values into the viper instance (before the config values are read and parsed).
func (cfg Application) loadDefaultValues(v *viper.Viper) {
	// set the default values for primitive fields in this struct
	v.SetDefault("spec-version", spec.V1_3.String())
	v.SetDefault("format", strings.ToLower(format.JSON.String()))
	v.SetDefault("validate", true)
	v.SetDefault("deterministic-serial", false)

	// for each field in the configuration struct, see if the field implements the defaultValueLoader interface and invoke it if it does
	value := reflect.ValueOf(cfg)
	for i := 0; i < value.NumField(); i++ {
		// note: the defaultValueLoader method receiver is NOT a pointer receiver.
		if loadable, ok := value.Field(i).Interface().(defaultValueLoader); ok {
			// the field implements defaultValueLoader, call it
			loadable.loadDefaultValues(v)
		}
	}
}

func (cfg *Application) parseConfigValues() error {
	// parse application config options
	for _, optionFn := range []func() error{
		cfg.parseLogLevelOption,
		cfg.parseSpecVersionOption,
		cfg.parseFormatOption,
	} {
		if err := optionFn(); err != nil {
			return err
		}
	}

	// parse nested config options
	// for each field in the configuration struct, see if the field implements the parser interface
	// note: the app config is a pointer, so we need to grab the elements explicitly (to traverse the address)
	value := reflect.ValueOf(cfg).Elem()
	for i := 0; i < value.NumField(); i++ {
		// note: since the interface method of parser is a pointer receiver we need to get the value of the field as a pointer.
		if parsable, ok := value.Field(i).Addr().Interface().(parser); ok {
			// the field implements parser, call it
			if err := parsable.parseConfigValues(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *Application) parseLogLevelOption() error {
	switch {
	case cfg.Quiet:
		// TODO: quiet trumps file logging too; only the console output should be silenced
		cfg.Log.LevelOpt = logrus.PanicLevel

	case cfg.CliOptions.Verbosity > 0:
		if cfg.Log.Level != "" {
			return fmt.Errorf("cannot explicitly set log level (cfg file or env var) and use -v flag together")
		}
		cfg.Log.LevelOpt = logger.LevelFromVerbosity(cfg.CliOptions.Verbosity)
		cfg.Verbosity = uint(cfg.CliOptions.Verbosity)

	case cfg.Log.Level != "":
		lvl, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
		if err != nil {
			return fmt.Errorf("bad log level value '%s': %w", cfg.Log.Level, err)
		}
		cfg.Log.LevelOpt = lvl
		if lvl >= logrus.InfoLevel {
			cfg.Verbosity = 1
		}

	default:
		cfg.Log.LevelOpt = logrus.WarnLevel
	}

	return nil
}

func (cfg *Application) parseSpecVersionOption() error {
	v, err := spec.ParseVersion(cfg.SpecVersion)
	if err != nil {
		return fmt.Errorf("bad --spec-version value '%s': %w", cfg.SpecVersion, err)
	}
	cfg.SpecVersionOpt = v
	return nil
}

func (cfg *Application) parseFormatOption() error {
	f, err := format.Parse(cfg.Format)
	if err != nil {
		return fmt.Errorf("bad --format value '%s': %w", cfg.Format, err)
	}
	cfg.FormatOpt = f
	return nil
}

func (cfg Application) String() string {
	// yaml is pretty human friendly (at least when compared to json)
	appCfgStr, err := yaml.Marshal(&cfg)

	if err != nil {
		return err.Error()
	}

	return string(appCfgStr)
}

// readConfig attempts to read the given config path from disk or discover an alternate store location
func readConfig(v *viper.Viper, configPath string) error {
	var err error
	v.AutomaticEnv()
	v.SetEnvPrefix(internal.ApplicationName)
	// allow for nested options to be specified via environment variables
	// e.g. log.level = BOMSMITH_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// use explicitly the given user config
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read application config=%q : %w", configPath, err)
		}
		// don't fall through to other options if the config path was explicitly provided
		return nil
	}

	// start searching for valid configs in order...

	// 1. look for .<appname>.yaml (in the current directory)
	v.AddConfigPath(".")
	v.SetConfigName("." + internal.ApplicationName)
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	// 2. look for .<appname>/config.yaml (in the current directory)
	v.AddConfigPath("." + internal.ApplicationName)
	v.SetConfigName("config")
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	// 3. look for ~/.<appname>.yaml
	home, err := homedir.Dir()
	if err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + internal.ApplicationName)
		if err = v.ReadInConfig(); err == nil {
			return nil
		} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
		}
	}

	// 4. look for <appname>/config.yaml in xdg locations (starting with xdg home config dir, then moving upwards)
	v.AddConfigPath(path.Join(xdg.ConfigHome, internal.ApplicationName))
	for _, dir := range xdg.ConfigDirs {
		v.AddConfigPath(path.Join(dir, internal.ApplicationName))
	}
	v.SetConfigName("config")
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	return ErrApplicationConfigNotFound
}
