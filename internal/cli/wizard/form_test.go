package wizard

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"

	"github.com/modu-ai/themegen/pkg/models"
)

// lineReader hands out one line per Read so each form's scanner only
// consumes the answer meant for it.
type lineReader struct {
	lines []string
}

func (r *lineReader) Read(p []byte) (int, error) {
	if len(r.lines) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.lines[0]+"\n")
	r.lines = r.lines[1:]
	return n, nil
}

func TestFormCollectorRunnerErrors(t *testing.T) {
	tests := []struct {
		name    string
		runErr  error
		wantErr error
	}{
		{"user abort", huh.ErrUserAborted, ErrCancelled},
		{"input ended", io.EOF, ErrInputUnavailable},
		{"input cut short", io.ErrUnexpectedEOF, ErrInputUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := models.NewDefaultThemeConfig()
			c := NewFormCollector(DefaultQuestions(defaults), defaults)
			calls := 0
			c.run = func(context.Context, *huh.Form) error {
				calls++
				if calls == 3 {
					return tt.runErr
				}
				return nil
			}

			_, err := c.Collect(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if calls != 3 {
				t.Errorf("form ran %d times, want collection to stop at 3", calls)
			}
		})
	}
}

func TestFormCollectorOtherErrorsAreWrapped(t *testing.T) {
	boom := errors.New("terminal gone")
	defaults := models.NewDefaultThemeConfig()
	c := NewFormCollector(DefaultQuestions(defaults), defaults)
	c.run = func(context.Context, *huh.Form) error { return boom }

	_, err := c.Collect(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
	if errors.Is(err, ErrCancelled) {
		t.Error("a form failure is not a cancellation")
	}
}

func TestFormCollectorUntouchedFieldsKeepDefaults(t *testing.T) {
	defaults := models.NewDefaultThemeConfig()
	defaults.Language = models.LanguageJavaScript
	defaults.IncludeTailwind = true
	defaults.PrimaryColor = "#123456"

	c := NewFormCollector(DefaultQuestions(defaults), defaults)
	ran := 0
	c.run = func(context.Context, *huh.Form) error {
		ran++
		return nil
	}

	cfg, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if ran != 9 {
		t.Errorf("form ran %d times, want 9", ran)
	}
	if cfg != defaults {
		t.Errorf("cfg = %+v\nwant %+v", cfg, defaults)
	}
}

func TestFormCollectorContextCancelled(t *testing.T) {
	defaults := models.NewDefaultThemeConfig()
	c := NewFormCollector(DefaultQuestions(defaults), defaults)
	c.run = func(context.Context, *huh.Form) error {
		t.Fatal("no form should run after cancellation")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Collect(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFormCollectorAccessibleAnswers(t *testing.T) {
	in := &lineReader{lines: []string{
		"2", // JavaScript
		"2", // second framework
		"n",
		"y",
		"y",
		"n",
		"#ABCDEF",
		"Inter",
		"16",
	}}
	var out strings.Builder
	defaults := models.NewDefaultThemeConfig()
	c := NewFormCollector(DefaultQuestions(defaults), defaults,
		WithAccessible(true),
		WithIO(in, &out),
		WithStyles(NoColorStyles()),
	)

	cfg, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v\noutput:\n%s", err, out.String())
	}

	want := models.ThemeConfig{
		Language:        models.LanguageJavaScript,
		Framework:       models.ValidFrameworks()[1],
		IncludeMui:      false,
		IncludeTailwind: true,
		IncludeShadcn:   true,
		IncludeScss:     false,
		PrimaryColor:    "#ABCDEF",
		FontFamily:      "Inter",
		FontSize:        "16",
	}
	if cfg != want {
		t.Errorf("cfg = %+v\nwant %+v", cfg, want)
	}
	if !strings.Contains(out.String(), "Choose your language") {
		t.Errorf("output should show the first prompt:\n%s", out.String())
	}
}
