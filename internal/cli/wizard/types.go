// Package wizard collects a theme configuration by asking the fixed
// sequence of setup questions, either through interactive huh forms or
// line by line over any reader.
package wizard

import (
	"context"
	"errors"

	"github.com/modu-ai/themegen/pkg/models"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
	// QuestionTypeInput is a free-text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string       // Unique identifier
	Type        QuestionType // Select, Confirm, or Input
	Title       string       // Question title
	Description string       // Additional description
	Options     []Option     // Options for select questions
	Default     string       // Value used for empty input; "true"/"false" for confirms
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Collector produces a complete ThemeConfig.
type Collector interface {
	Collect(ctx context.Context) (models.ThemeConfig, error)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(ctx context.Context) (models.ThemeConfig, error)

// Collect calls f(ctx).
func (f CollectorFunc) Collect(ctx context.Context) (models.ThemeConfig, error) { return f(ctx) }

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInputUnavailable is returned when the input stream ends before
	// every question is answered.
	ErrInputUnavailable = errors.New("input ended before all questions were answered")
	// ErrInvalidAnswer is returned when an answer does not fit the question.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrUnknownQuestion is returned when an answer targets an unknown question ID.
	ErrUnknownQuestion = errors.New("unknown question")
)
