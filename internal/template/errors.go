package template

import "errors"

// Sentinel errors for template rendering and deployment.
var (
	// ErrTemplateNotFound indicates the requested template is not embedded.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates template execution referenced a missing key.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates rendered output still contains a placeholder token.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrUnsafeValue indicates a value would break the syntax of the generated file.
	ErrUnsafeValue = errors.New("template: value contains syntactically significant characters")

	// ErrMalformedStylesheet indicates a rendered stylesheet failed the token check.
	ErrMalformedStylesheet = errors.New("template: malformed stylesheet")

	// ErrPathTraversal indicates a target path escapes the output root.
	ErrPathTraversal = errors.New("template: path escapes output root")
)
