package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/modu-ai/themegen/pkg/models"
)

// LineCollector asks each question on out and reads one answer per line
// from in. It is used when stdin is not a terminal.
type LineCollector struct {
	questions []Question
	defaults  models.ThemeConfig
	in        *bufio.Reader
	out       io.Writer
}

// NewLineCollector creates a line-based collector for the given questions.
// Answers are applied on top of defaults.
func NewLineCollector(questions []Question, defaults models.ThemeConfig, in io.Reader, out io.Writer) *LineCollector {
	if out == nil {
		out = io.Discard
	}
	return &LineCollector{
		questions: questions,
		defaults:  defaults,
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// Collect asks every question in order. An unrecognised answer re-asks the
// same question. If the input ends early, ErrInputUnavailable is returned.
func (c *LineCollector) Collect(ctx context.Context) (models.ThemeConfig, error) {
	if len(c.questions) == 0 {
		return models.ThemeConfig{}, ErrNoQuestions
	}

	cfg := c.defaults
	for i := range c.questions {
		q := &c.questions[i]
		for {
			if err := ctx.Err(); err != nil {
				return models.ThemeConfig{}, err
			}

			c.prompt(q)
			line, err := c.readLine()
			if err != nil {
				return models.ThemeConfig{}, err
			}

			value, err := q.Resolve(line)
			if err != nil {
				fmt.Fprintf(c.out, "  ✗ %v\n", err)
				continue
			}
			if err := saveAnswer(q.ID, value, &cfg); err != nil {
				return models.ThemeConfig{}, err
			}
			break
		}
	}
	return cfg, nil
}

func (c *LineCollector) prompt(q *Question) {
	switch q.Type {
	case QuestionTypeSelect:
		fmt.Fprintf(c.out, "? %s\n", q.Title)
		for i, opt := range q.Options {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, opt.Label)
		}
		fmt.Fprintf(c.out, "  [%s]: ", q.Default)
	case QuestionTypeConfirm:
		hint := "y/N"
		if q.Default == "true" {
			hint = "Y/n"
		}
		fmt.Fprintf(c.out, "? %s (%s): ", q.Title, hint)
	default:
		fmt.Fprintf(c.out, "? %s (%s): ", q.Title, q.Default)
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still an answer; a stream that is already exhausted
// yields ErrInputUnavailable.
func (c *LineCollector) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			fmt.Fprintln(c.out)
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", ErrInputUnavailable
		}
		return "", fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// DefaultsCollector returns the configured defaults without asking anything.
type DefaultsCollector struct {
	Defaults models.ThemeConfig
}

// Collect returns the defaults, normalised like typed answers.
func (c DefaultsCollector) Collect(ctx context.Context) (models.ThemeConfig, error) {
	if err := ctx.Err(); err != nil {
		return models.ThemeConfig{}, err
	}
	cfg := c.Defaults
	cfg.PrimaryColor = Normalize(cfg.PrimaryColor)
	cfg.FontFamily = Normalize(cfg.FontFamily)
	cfg.FontSize = Normalize(cfg.FontSize)
	return cfg, nil
}
