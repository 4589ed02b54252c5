package wizard

import (
	"errors"
	"testing"

	"github.com/modu-ai/themegen/pkg/models"
)

func TestResolveSelect(t *testing.T) {
	q := QuestionByID(DefaultQuestions(models.NewDefaultThemeConfig()), IDFramework)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "React + Vite", false},
		{"1", "React + Vite", false},
		{"3", "None", false},
		{"NEXT.JS", "Next.js", false},
		{"  none  ", "None", false},
		{"0", "", true},
		{"4", "", true},
		{"Angular", "", true},
	}
	for _, tt := range tests {
		got, err := q.Resolve(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAnswer) {
				t.Errorf("Resolve(%q) error = %v, want ErrInvalidAnswer", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestResolveConfirm(t *testing.T) {
	q := QuestionByID(DefaultQuestions(models.NewDefaultThemeConfig()), IDIncludeTailwind)

	tests := map[string]string{
		"":      "false",
		"y":     "true",
		"Yes":   "true",
		"TRUE":  "true",
		"n":     "false",
		"no":    "false",
		"false": "false",
	}
	for in, want := range tests {
		got, err := q.Resolve(in)
		if err != nil || got != want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := q.Resolve("sure"); !errors.Is(err, ErrInvalidAnswer) {
		t.Errorf("Resolve(sure) error = %v, want ErrInvalidAnswer", err)
	}
}

func TestSaveAnswerUnknownQuestion(t *testing.T) {
	var cfg models.ThemeConfig
	if err := saveAnswer("project_name", "x", &cfg); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("expected ErrUnknownQuestion, got %v", err)
	}
	if err := saveAnswer(IDIncludeMui, "maybe", &cfg); !errors.Is(err, ErrInvalidAnswer) {
		t.Errorf("expected ErrInvalidAnswer, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  e\u0301 \n"); got != "\u00e9" {
		t.Errorf("Normalize = %q", got)
	}
}
