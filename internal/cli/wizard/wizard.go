package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/modu-ai/themegen/pkg/models"
)

// FormCollector asks the questions with interactive huh forms.
type FormCollector struct {
	questions  []Question
	defaults   models.ThemeConfig
	theme      *huh.Theme
	accessible bool
	in         io.Reader
	out        io.Writer
	run        func(context.Context, *huh.Form) error
}

// FormOption configures a FormCollector.
type FormOption func(*FormCollector)

// WithAccessible switches huh to its accessible (screen reader) mode.
func WithAccessible(on bool) FormOption {
	return func(c *FormCollector) { c.accessible = on }
}

// WithIO overrides the terminal streams used by the forms.
func WithIO(in io.Reader, out io.Writer) FormOption {
	return func(c *FormCollector) {
		c.in = in
		c.out = out
	}
}

// WithStyles selects the form theme. nil keeps the default theme.
func WithStyles(styles *Styles) FormOption {
	return func(c *FormCollector) {
		if styles != nil && styles.NoColor {
			c.theme = huh.ThemeBase()
		}
	}
}

// NewFormCollector creates an interactive collector.
func NewFormCollector(questions []Question, defaults models.ThemeConfig, opts ...FormOption) *FormCollector {
	c := &FormCollector{
		questions: questions,
		defaults:  defaults,
		theme:     newThemegenWizardTheme(),
		run:       runForm,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect runs the wizard.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func (c *FormCollector) Collect(ctx context.Context) (models.ThemeConfig, error) {
	if len(c.questions) == 0 {
		return models.ThemeConfig{}, ErrNoQuestions
	}

	cfg := c.defaults
	for i := range c.questions {
		q := &c.questions[i]

		raw, field := buildQuestionField(q)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(c.theme).
			WithAccessible(c.accessible)
		if c.in != nil {
			form = form.WithInput(c.in)
		}
		if c.out != nil {
			form = form.WithOutput(c.out)
		}

		if err := ctx.Err(); err != nil {
			return models.ThemeConfig{}, err
		}
		if err := c.run(ctx, form); err != nil {
			switch {
			case errors.Is(err, huh.ErrUserAborted):
				return models.ThemeConfig{}, ErrCancelled
			case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
				return models.ThemeConfig{}, fmt.Errorf("%w: %s", ErrInputUnavailable, q.ID)
			}
			return models.ThemeConfig{}, fmt.Errorf("wizard error: %w", err)
		}

		value, err := q.Resolve(raw())
		if err != nil {
			return models.ThemeConfig{}, err
		}
		if err := saveAnswer(q.ID, value, &cfg); err != nil {
			return models.ThemeConfig{}, err
		}
	}
	return cfg, nil
}

func runForm(ctx context.Context, form *huh.Form) error {
	return form.RunWithContext(ctx)
}

// buildQuestionField creates the huh field for q and returns a getter for
// the raw answer once the form has run.
func buildQuestionField(q *Question) (func() string, huh.Field) {
	switch q.Type {
	case QuestionTypeSelect:
		sel := buildSelectField(q)
		return sel.value, sel.field
	case QuestionTypeConfirm:
		value := q.Default == "true"
		field := huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&value)
		return func() string { return strconv.FormatBool(value) }, field
	default:
		return buildInputField(q)
	}
}

type selectField struct {
	field    *huh.Select[string]
	selected *string
}

func (s selectField) value() string { return *s.selected }

// buildSelectField creates a huh.Select field for a select-type question.
//
// Options are built eagerly with Options() and no Height() call: huh v0.8.x
// OptionsFunc forces a fixed viewport height, which makes the viewport scroll
// so the selected item is at the top and hides options above the cursor.
func buildSelectField(q *Question) selectField {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	return selectField{field: sel, selected: &selected}
}

// buildInputField creates a huh.Input field for an input-type question.
// Empty input is accepted and resolves to the default afterwards.
func buildInputField(q *Question) (func() string, huh.Field) {
	var value string

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	return func() string { return value }, inp
}
