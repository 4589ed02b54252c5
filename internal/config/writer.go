package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/themegen/internal/defs"
)

// fileDocument is the on-disk layout of the settings file.
type fileDocument struct {
	Defaults  defaultsDocument `yaml:"defaults"`
	OutputDir string           `yaml:"output-dir,omitempty"`
	LogLevel  string           `yaml:"log-level"`
	Tailwind  tailwindDocument `yaml:"tailwind"`
}

type defaultsDocument struct {
	Language        string `yaml:"language"`
	Framework       string `yaml:"framework"`
	IncludeMui      bool   `yaml:"include-mui"`
	IncludeTailwind bool   `yaml:"include-tailwind"`
	IncludeShadcn   bool   `yaml:"include-shadcn"`
	IncludeScss     bool   `yaml:"include-scss"`
	PrimaryColor    string `yaml:"primary-color"`
	FontFamily      string `yaml:"font-family"`
	FontSize        string `yaml:"font-size"`
}

type tailwindDocument struct {
	Content []string `yaml:"content"`
}

func newFileDocument(s Settings) fileDocument {
	return fileDocument{
		Defaults: defaultsDocument{
			Language:        string(s.Defaults.Language),
			Framework:       string(s.Defaults.Framework),
			IncludeMui:      s.Defaults.IncludeMui,
			IncludeTailwind: s.Defaults.IncludeTailwind,
			IncludeShadcn:   s.Defaults.IncludeShadcn,
			IncludeScss:     s.Defaults.IncludeScss,
			PrimaryColor:    s.Defaults.PrimaryColor,
			FontFamily:      s.Defaults.FontFamily,
			FontSize:        s.Defaults.FontSize,
		},
		OutputDir: s.OutputDir,
		LogLevel:  s.LogLevel,
		Tailwind:  tailwindDocument{Content: s.TailwindContent},
	}
}

// Marshal renders s in the settings file format.
func Marshal(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(newFileDocument(s))
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return data, nil
}

// Write saves s to path. An existing file is only replaced when force is set.
func Write(path string, s Settings, force bool) error {
	if path == "" {
		path = defs.SettingsFile
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrSettingsExist, path)
		}
	}

	data, err := Marshal(s)
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".themegen-settings-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
