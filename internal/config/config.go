// Package config loads the generator options from flags, MAPGEN_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/discover"
	"mapping-generator/internal/errors"
	"mapping-generator/internal/gen"
	"mapping-generator/internal/logger"
	"mapping-generator/internal/mapping"
	"mapping-generator/internal/match"
)

// EnvPrefix prefixes every environment variable, e.g. MAPGEN_MAPPING_FILE.
const EnvPrefix = "MAPGEN"

// Option keys. They double as flag names and config file keys.
const (
	KeyConfig          = "config"
	KeySource          = "source"
	KeyTypes           = "types"
	KeyGenerateMapping = "generate-mapping"
	KeyTransform       = "transform"
	KeyPrefix          = "prefix"
	KeyPostfix         = "postfix"
	KeyReferenceFormat = "reference-format"
	KeyLookupFormat    = "lookup-format"
	KeyLookupKey       = "lookup-key"
	KeyPackage         = "package"
	KeyReferences      = "references"
	KeyMappingFile     = "mapping-file"
	KeyTemplateDir     = "template-dir"
	KeyOutputDir       = "output-dir"
	KeyGenerators      = "generators"
	KeyExcludeModule   = "exclude-module"
	KeyConcurrency     = "concurrency"
	KeyDebounce        = "debounce"
	KeyNoReplay        = "no-replay"
	KeyLogLevel        = "log-level"
	KeyLogJSON         = "log-json"
)

// Config is the resolved set of options.
type Config struct {
	ConfigFile      string
	Sources         []string
	Types           []string
	GenerateMapping bool
	Transform       string
	Renames         *mapping.RenameRules
	Naming          gen.Naming
	References      []string
	MappingFile     string
	TemplateDir     string
	OutputDir       string
	Generators      []string
	ExcludeModules  []string
	Concurrency     int
	Debounce        time.Duration
	NoReplay        bool
	LogLevel        string
	LogJSON         bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyReferenceFormat, gen.DefaultReferenceTypeFormat)
	v.SetDefault(KeyLookupFormat, gen.DefaultReferenceLookupFormat)
	v.SetDefault(KeyLookupKey, gen.DefaultReferenceLookupKey)
	v.SetDefault(KeyPackage, gen.DefaultPackage)
	v.SetDefault(KeyExcludeModule, []string{descriptor.PlatformModule})
	v.SetDefault(KeyConcurrency, gen.DefaultWriteConcurrency)
	v.SetDefault(KeyDebounce, gen.DefaultDebounce)
	v.SetDefault(KeyLogLevel, "info")
}

// RegisterGlobalFlags adds the flags every command understands.
func RegisterGlobalFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "config file (toml, yaml or json)")
	fs.StringP(KeyMappingFile, "m", "", "mapping file to write or read (.yaml, .yml or .json)")
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn, error")
	fs.Bool(KeyLogJSON, false, "log as JSON")
}

// RegisterDiscoverFlags adds the discovery flags.
func RegisterDiscoverFlags(fs *pflag.FlagSet) {
	fs.StringSliceP(KeySource, "s", nil, "descriptor files or Go package patterns (',' or ';' separated)")
	fs.StringSliceP(KeyTypes, "t", nil, "root type names")
	fs.String(KeyTransform, "", "property rename rules, e.g. 'Id>UniqueId;Order.Ref>OrderRef'")
	fs.StringSlice(KeyReferences, nil, "types generated as references instead of copies")
	fs.StringSlice(KeyExcludeModule, []string{descriptor.PlatformModule}, "modules removed from the closure")
	fs.Bool(KeyNoReplay, false, "do not write the <mapping file>.run.sh replay script")
}

// RegisterGenerateFlags adds the generation flags.
func RegisterGenerateFlags(fs *pflag.FlagSet) {
	fs.String(KeyPrefix, "", "prefix of generated type names")
	fs.String(KeyPostfix, "", "postfix of generated type names")
	fs.String(KeyReferenceFormat, gen.DefaultReferenceTypeFormat, "field type of references, {0} is the type")
	fs.String(KeyLookupFormat, gen.DefaultReferenceLookupFormat, "reference lookup expression, {0} is the type, {1} the key")
	fs.String(KeyLookupKey, gen.DefaultReferenceLookupKey, "property holding the reference key")
	fs.String(KeyPackage, gen.DefaultPackage, "package name of generated Go sources")
	fs.String(KeyTemplateDir, "", "directory of text/template files rendered per mapping")
	fs.StringP(KeyOutputDir, "o", "", "output directory (default: directory of the mapping file)")
	fs.StringSliceP(KeyGenerators, "g", nil, "generators to run, e.g. csharp.class or typescript.* (default: all)")
	fs.Int(KeyConcurrency, gen.DefaultWriteConcurrency, "parallel artifact writes")
	fs.Duration(KeyDebounce, gen.DefaultDebounce, "quiet period before --watch regenerates")
}

// NewViper returns a viper instance bound to fs and the MAPGEN environment.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrConfig), "binding flags")
		}
	}

	return v, nil
}

// Load reads the config file named by --config, if any, and decodes all
// options. The result is not validated.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(errors.Mark(err, errors.ErrConfig), "reading config file %s", path),
				"config files may be toml, yaml or json",
			)
		}
	}

	return &Config{
		ConfigFile:      v.GetString(KeyConfig),
		Sources:         list(v, KeySource),
		Types:           list(v, KeyTypes),
		GenerateMapping: v.GetBool(KeyGenerateMapping),
		Transform:       v.GetString(KeyTransform),
		Naming: gen.Naming{
			Prefix:                v.GetString(KeyPrefix),
			Postfix:               v.GetString(KeyPostfix),
			ReferenceTypeFormat:   v.GetString(KeyReferenceFormat),
			ReferenceLookupFormat: v.GetString(KeyLookupFormat),
			ReferenceLookupKey:    v.GetString(KeyLookupKey),
			Package:               v.GetString(KeyPackage),
		},
		References:     list(v, KeyReferences),
		MappingFile:    v.GetString(KeyMappingFile),
		TemplateDir:    v.GetString(KeyTemplateDir),
		OutputDir:      v.GetString(KeyOutputDir),
		Generators:     list(v, KeyGenerators),
		ExcludeModules: list(v, KeyExcludeModule),
		Concurrency:    v.GetInt(KeyConcurrency),
		Debounce:       v.GetDuration(KeyDebounce),
		NoReplay:       v.GetBool(KeyNoReplay),
		LogLevel:       v.GetString(KeyLogLevel),
		LogJSON:        v.GetBool(KeyLogJSON),
	}, nil
}

// SplitList splits delimited values on ',' and ';', trimming blanks.
func SplitList(values ...string) []string {
	var out []string

	for _, v := range values {
		for _, item := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ';' }) {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}

	return out
}

// list reads a key that may be a string, a flag slice or a config file array.
func list(v *viper.Viper, key string) []string {
	if s, ok := v.Get(key).(string); ok {
		return SplitList(s)
	}

	return SplitList(v.GetStringSlice(key)...)
}

// ValidateDiscover checks the options discovery needs and parses the rename
// rules.
func (c *Config) ValidateDiscover() error {
	if err := c.validateCommon(); err != nil {
		return err
	}

	if len(c.Sources) == 0 {
		return errors.WithHint(
			errors.Wrap(errors.ErrConfig, "no type sources given"),
			"pass --source with descriptor files or Go package patterns",
		)
	}

	if len(c.Types) == 0 {
		return errors.WithHint(
			errors.Wrap(errors.ErrConfig, "no root types given"),
			"pass --types with the type names discovery starts from",
		)
	}

	renames, err := mapping.ParseRenameRules(c.Transform)
	if err != nil {
		return errors.Wrap(errors.Mark(err, errors.ErrConfig), "--transform")
	}

	c.Renames = renames

	return nil
}

// ValidateGenerate checks the options generation needs.
func (c *Config) ValidateGenerate() error {
	if err := c.validateCommon(); err != nil {
		return err
	}

	if !strings.Contains(c.Naming.ReferenceTypeFormat, "{0}") {
		return errors.WithHint(
			errors.Wrapf(errors.ErrConfig, "reference format %q has no {0} placeholder", c.Naming.ReferenceTypeFormat),
			"e.g. --reference-format 'Ref<{0}>'",
		)
	}

	if !match.IsIdentifier(c.Naming.ReferenceLookupKey) {
		return errors.Wrapf(errors.ErrConfig, "lookup key %q is not an identifier", c.Naming.ReferenceLookupKey)
	}

	if name := c.Naming.Prefix + "X" + c.Naming.Postfix; !match.IsIdentifier(name) {
		return errors.Wrapf(errors.ErrConfig, "prefix %q and postfix %q do not form identifiers", c.Naming.Prefix, c.Naming.Postfix)
	}

	if c.Concurrency < 0 {
		return errors.Wrapf(errors.ErrConfig, "concurrency must not be negative, got %d", c.Concurrency)
	}

	return nil
}

func (c *Config) validateCommon() error {
	if c.MappingFile == "" {
		return errors.WithHint(
			errors.Wrap(errors.ErrConfig, "no mapping file given"),
			"pass --mapping-file or set "+EnvPrefix+"_MAPPING_FILE",
		)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ResolvedOutputDir is the output directory, defaulting to the directory of
// the mapping file.
func (c *Config) ResolvedOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}

	return filepath.Dir(c.MappingFile)
}

// DiscoverOptions converts the config for the discovery builder. Call
// ValidateDiscover first.
func (c *Config) DiscoverOptions() discover.Options {
	return discover.Options{
		Roots:          c.Types,
		References:     c.References,
		Renames:        c.Renames,
		ExcludeModules: c.ExcludeModules,
	}
}

// RunnerConfig converts the config for the generation runner.
func (c *Config) RunnerConfig() gen.RunnerConfig {
	return gen.RunnerConfig{
		OutputDir:   c.ResolvedOutputDir(),
		Concurrency: c.Concurrency,
	}
}
