package template

import (
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// IsStylesheet reports whether name is a file CheckStylesheet understands.
func IsStylesheet(name string) bool {
	switch path.Ext(name) {
	case ".css", ".scss":
		return true
	}
	return false
}

// CheckStylesheet tokenizes rendered CSS or SCSS and fails when braces do
// not balance or a string or url token is left unterminated. It is a
// syntax smoke test, not a validator: SCSS-only constructs lex as plain
// delimiters.
func CheckStylesheet(name string, content []byte) error {
	lexer := css.NewLexer(parse.NewInputBytes(content))

	depth := 0
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: %s: %v", ErrMalformedStylesheet, name, err)
			}
			if depth != 0 {
				return fmt.Errorf("%w: %s: %d unclosed block(s)", ErrMalformedStylesheet, name, depth)
			}
			return nil
		case css.BadStringToken, css.BadURLToken:
			return fmt.Errorf("%w: %s: unterminated token %q", ErrMalformedStylesheet, name, string(text))
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: %s: unexpected '}'", ErrMalformedStylesheet, name)
			}
		}
	}
}
