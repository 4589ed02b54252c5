package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/modu-ai/themegen/internal/defs"
	"github.com/modu-ai/themegen/pkg/models"
)

// flagKeys maps command-line flag names onto settings keys. Flags not listed
// here are not settings and are ignored by the loader.
var flagKeys = map[string]string{
	"dir":       KeyOutputDir,
	"log-level": KeyLogLevel,
}

// sections are the nested settings groups recognised in env var names.
var sections = []string{"defaults", "tailwind"}

// Load merges settings with precedence flags > env > file > defaults.
// A missing settings file is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	k := koanf.New(".")

	if err := loadFileAndEnv(k, path); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagValue(flags)), nil); err != nil {
			return nil, fmt.Errorf("loading command flags: %w", err)
		}
	}

	s := build(k)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// loadFileAndEnv loads the settings file and THEMEGEN_* variables into k.
func loadFileAndEnv(k *koanf.Koanf, path string) error {
	if path == "" {
		path = defs.SettingsFile
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("loading settings file %s: %w: %v", path, ErrInvalidYAML, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(defs.EnvPrefix, ".", envKeyValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}
	return nil
}

// envKeyValue maps an environment variable onto a settings key:
//
//	THEMEGEN_DEFAULTS_PRIMARY_COLOR -> defaults.primary-color
//	THEMEGEN_OUTPUT_DIR             -> output-dir
//	THEMEGEN_TAILWIND_CONTENT       -> tailwind.content (comma-separated)
//
// Blank variables are treated as unset.
func envKeyValue(name, value string) (string, any) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	key := envKey(name)
	if key == KeyTailwindContent {
		return key, splitList(value)
	}
	return key, value
}

func envKey(name string) string {
	s := strings.ToLower(strings.TrimPrefix(name, defs.EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(s, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(s, "_", "-")
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// flagValue returns a posflag callback that only passes through flags the
// user set explicitly, renamed to their settings keys.
func flagValue(flags *pflag.FlagSet) func(f *pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	}
}

// build constructs Settings from koanf state, falling back to the compiled
// defaults for every key that is absent or empty.
func build(k *koanf.Koanf) Settings {
	d := NewDefaultSettings()

	s := Settings{
		Defaults: models.ThemeConfig{
			Language:        models.Language(getString(k, KeyLanguage, string(d.Defaults.Language))),
			Framework:       models.Framework(getString(k, KeyFramework, string(d.Defaults.Framework))),
			IncludeMui:      getBool(k, KeyIncludeMui, d.Defaults.IncludeMui),
			IncludeTailwind: getBool(k, KeyIncludeTailwind, d.Defaults.IncludeTailwind),
			IncludeShadcn:   getBool(k, KeyIncludeShadcn, d.Defaults.IncludeShadcn),
			IncludeScss:     getBool(k, KeyIncludeScss, d.Defaults.IncludeScss),
			PrimaryColor:    getString(k, KeyPrimaryColor, d.Defaults.PrimaryColor),
			FontFamily:      getString(k, KeyFontFamily, d.Defaults.FontFamily),
			FontSize:        getString(k, KeyFontSize, d.Defaults.FontSize),
		},
		OutputDir:       getString(k, KeyOutputDir, d.OutputDir),
		LogLevel:        getString(k, KeyLogLevel, d.LogLevel),
		TailwindContent: d.TailwindContent,
	}

	if globs := k.Strings(KeyTailwindContent); len(globs) > 0 {
		s.TailwindContent = globs
	}
	return s
}

// getString returns the value at key, or defaultVal when it is unset or blank.
func getString(k *koanf.Koanf, key, defaultVal string) string {
	if v := strings.TrimSpace(k.String(key)); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or defaultVal when it is unset.
func getBool(k *koanf.Koanf, key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
