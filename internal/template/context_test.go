package template

import (
	"slices"
	"testing"

	"github.com/modu-ai/themegen/pkg/models"
)

func defaultThemeConfig() models.ThemeConfig {
	return models.NewDefaultThemeConfig()
}

func TestNewTemplateContext(t *testing.T) {
	cfg := defaultThemeConfig()
	cfg.Language = models.LanguageJavaScript
	cfg.PrimaryColor = "#000000"

	ctx := NewTemplateContext(cfg)

	if ctx.Ext != "js" {
		t.Errorf("Ext = %q, want js", ctx.Ext)
	}
	if ctx.PrimaryColor != "#000000" {
		t.Errorf("PrimaryColor = %q", ctx.PrimaryColor)
	}
	if !slices.Equal(ctx.TailwindContent, DefaultTailwindContent) {
		t.Errorf("TailwindContent = %v, want defaults", ctx.TailwindContent)
	}
}

func TestTemplateContextFrameworkFlags(t *testing.T) {
	tests := []struct {
		framework models.Framework
		vite      bool
		next      bool
	}{
		{models.FrameworkReactVite, true, false},
		{models.FrameworkNextJS, false, true},
		{models.FrameworkNone, true, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.framework), func(t *testing.T) {
			cfg := defaultThemeConfig()
			cfg.Framework = tt.framework
			ctx := NewTemplateContext(cfg)
			if ctx.ShowVite != tt.vite || ctx.ShowNext != tt.next {
				t.Errorf("ShowVite=%v ShowNext=%v, want %v %v", ctx.ShowVite, ctx.ShowNext, tt.vite, tt.next)
			}
		})
	}
}

func TestWithTailwindContent(t *testing.T) {
	custom := []string{"./web/**/*.tsx"}
	ctx := NewTemplateContext(defaultThemeConfig(), WithTailwindContent(custom))
	if !slices.Equal(ctx.TailwindContent, custom) {
		t.Errorf("TailwindContent = %v, want %v", ctx.TailwindContent, custom)
	}

	custom[0] = "mutated"
	if ctx.TailwindContent[0] == "mutated" {
		t.Error("WithTailwindContent should copy its input")
	}

	ctx = NewTemplateContext(defaultThemeConfig(), WithTailwindContent(nil))
	if !slices.Equal(ctx.TailwindContent, DefaultTailwindContent) {
		t.Error("empty override should keep defaults")
	}
}
