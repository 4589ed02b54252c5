package models_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/modu-ai/themegen/pkg/models"
)

func TestLanguageExt(t *testing.T) {
	tests := []struct {
		lang models.Language
		want string
	}{
		{models.LanguageTypeScript, "ts"},
		{models.LanguageJavaScript, "js"},
		{models.Language(""), "js"},
	}
	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			if got := tt.lang.Ext(); got != tt.want {
				t.Errorf("Language(%q).Ext() = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestLanguageIsValid(t *testing.T) {
	tests := []struct {
		name  string
		lang  models.Language
		valid bool
	}{
		{"TypeScript", models.LanguageTypeScript, true},
		{"JavaScript", models.LanguageJavaScript, true},
		{"lowercase is invalid", models.Language("typescript"), false},
		{"empty is invalid", models.Language(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lang.IsValid(); got != tt.valid {
				t.Errorf("Language(%q).IsValid() = %v, want %v", tt.lang, got, tt.valid)
			}
		})
	}
}

func TestFrameworkIsValid(t *testing.T) {
	for _, fw := range models.ValidFrameworks() {
		if !fw.IsValid() {
			t.Errorf("Framework(%q).IsValid() = false", fw)
		}
	}
	if models.Framework("Angular").IsValid() {
		t.Error("Angular should not be a valid framework")
	}
}

func TestNewDefaultThemeConfig(t *testing.T) {
	cfg := models.NewDefaultThemeConfig()

	if cfg.Language != models.LanguageTypeScript {
		t.Errorf("Language = %q, want TypeScript", cfg.Language)
	}
	if cfg.Framework != models.FrameworkReactVite {
		t.Errorf("Framework = %q, want %q", cfg.Framework, models.FrameworkReactVite)
	}
	if !cfg.IncludeMui || !cfg.IncludeScss {
		t.Error("MUI and SCSS should be included by default")
	}
	if cfg.IncludeTailwind || cfg.IncludeShadcn {
		t.Error("Tailwind and ShadCN should be excluded by default")
	}
	if cfg.PrimaryColor != "#DC3C22" {
		t.Errorf("PrimaryColor = %q", cfg.PrimaryColor)
	}
	if cfg.FontFamily != `"Roboto", sans-serif` {
		t.Errorf("FontFamily = %q", cfg.FontFamily)
	}
	if cfg.FontSize != "14" {
		t.Errorf("FontSize = %q", cfg.FontSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestAnyGeneratorSelected(t *testing.T) {
	cfg := models.ThemeConfig{}
	if cfg.AnyGeneratorSelected() {
		t.Error("empty config should select nothing")
	}
	cfg.IncludeShadcn = true
	if !cfg.AnyGeneratorSelected() {
		t.Error("ShadCN flag should count as a selection")
	}
}

func TestThemeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ThemeConfig)
		wantErr bool
		field   string
	}{
		{"malformed hex is accepted", func(c *models.ThemeConfig) { c.PrimaryColor = "#ZZZ" }, false, ""},
		{"named color is accepted", func(c *models.ThemeConfig) { c.PrimaryColor = "red" }, false, ""},
		{"non-numeric size is accepted", func(c *models.ThemeConfig) { c.FontSize = "abc" }, false, ""},
		{"quoted font family is accepted", func(c *models.ThemeConfig) { c.FontFamily = `"Inter", sans-serif` }, false, ""},
		{"empty color is accepted", func(c *models.ThemeConfig) { c.PrimaryColor = "" }, false, ""},
		{"unknown language", func(c *models.ThemeConfig) { c.Language = "Go" }, true, "Language"},
		{"missing framework", func(c *models.ThemeConfig) { c.Framework = "" }, true, "Framework"},
		{"quote in color", func(c *models.ThemeConfig) { c.PrimaryColor = `#fff"; alert(1)` }, true, "PrimaryColor"},
		{"brace in size", func(c *models.ThemeConfig) { c.FontSize = "16}" }, true, "FontSize"},
		{"semicolon in font family", func(c *models.ThemeConfig) { c.FontFamily = "Arial; color: red" }, true, "FontFamily"},
		{"newline in font family", func(c *models.ThemeConfig) { c.FontFamily = "Arial\n}" }, true, "FontFamily"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.NewDefaultThemeConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, models.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention field %s", err, tt.field)
			}
		})
	}
}

func TestIsBareLiteral(t *testing.T) {
	safe := []string{"#ABCDEF", "16", "1.5rem", "", "rgb(0,0,0)"}
	for _, s := range safe {
		if !models.IsBareLiteral(s) {
			t.Errorf("IsBareLiteral(%q) = false, want true", s)
		}
	}
	unsafe := []string{`"`, "'", "`", `\`, ";", "{", "}", "<", ">", "a\nb"}
	for _, s := range unsafe {
		if models.IsBareLiteral(s) {
			t.Errorf("IsBareLiteral(%q) = true, want false", s)
		}
	}
}
