package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/modu-ai/themegen/pkg/models"
)

// Normalize trims surrounding whitespace and converts s to Unicode NFC so
// that visually identical answers produce identical output files.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Resolve turns a raw answer into the canonical stored value. Empty input
// selects the question's default. Select questions accept an option label,
// value, or 1-based index; confirms accept y/yes/n/no/true/false. Input
// questions are not validated here.
func (q *Question) Resolve(raw string) (string, error) {
	ans := Normalize(raw)
	if ans == "" {
		return q.Default, nil
	}

	switch q.Type {
	case QuestionTypeSelect:
		if opt, ok := q.matchOption(ans); ok {
			return opt.Value, nil
		}
		return "", fmt.Errorf("%w: choose one of %s", ErrInvalidAnswer, q.optionLabels())
	case QuestionTypeConfirm:
		b, ok := parseConfirm(ans)
		if !ok {
			return "", fmt.Errorf("%w: answer y or n", ErrInvalidAnswer)
		}
		return strconv.FormatBool(b), nil
	}
	return ans, nil
}

func (q *Question) matchOption(ans string) (Option, bool) {
	if n, err := strconv.Atoi(ans); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1], true
	}
	for _, opt := range q.Options {
		if strings.EqualFold(ans, opt.Label) || strings.EqualFold(ans, opt.Value) {
			return opt, true
		}
	}
	return Option{}, false
}

func (q *Question) optionLabels() string {
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Label
	}
	return strings.Join(labels, ", ")
}

func parseConfirm(ans string) (bool, bool) {
	switch strings.ToLower(ans) {
	case "y", "yes", "true":
		return true, true
	case "n", "no", "false":
		return false, true
	}
	return false, false
}

// saveAnswer stores a resolved answer in cfg.
func saveAnswer(id, value string, cfg *models.ThemeConfig) error {
	switch id {
	case IDLanguage:
		cfg.Language = models.Language(value)
	case IDFramework:
		cfg.Framework = models.Framework(value)
	case IDPrimaryColor:
		cfg.PrimaryColor = value
	case IDFontFamily:
		cfg.FontFamily = value
	case IDFontSize:
		cfg.FontSize = value
	case IDIncludeMui, IDIncludeTailwind, IDIncludeShadcn, IDIncludeScss:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidAnswer, id, value)
		}
		switch id {
		case IDIncludeMui:
			cfg.IncludeMui = b
		case IDIncludeTailwind:
			cfg.IncludeTailwind = b
		case IDIncludeShadcn:
			cfg.IncludeShadcn = b
		default:
			cfg.IncludeScss = b
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return nil
}
