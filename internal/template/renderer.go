package template

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
	"text/template/parse"

	"github.com/modu-ai/themegen/pkg/models"
)

// templateFuncMap provides the escaping helpers available in all templates.
// Every user-supplied value must pass through one of them.
var templateFuncMap = template.FuncMap{
	// jsString renders s as a double-quoted JS/JSON string literal.
	"jsString": func(s string) (string, error) {
		b, err := json.Marshal(s)
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
	// literal renders s unquoted and rejects characters that would end
	// the surrounding literal or statement.
	"literal": func(s string) (string, error) {
		if !models.IsBareLiteral(s) {
			return "", fmt.Errorf("%w: %q", ErrUnsafeValue, s)
		}
		return s, nil
	},
	// cssValue renders s as the value of a single CSS declaration.
	"cssValue": func(s string) (string, error) {
		if !models.IsCSSValue(s) {
			return "", fmt.Errorf("%w: %q", ErrUnsafeValue, s)
		}
		return s, nil
	},
}

// unexpandedTokenPattern detects leftover dynamic tokens in template text.
// Matches ${VAR}, {{VAR}}, and $VAR patterns. SCSS variables are lowercase
// and do not match. Only the template's own text is checked, never the
// values interpolated into it.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}|\$[A-Z_][A-Z0-9_]*`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the template FS and executes
	// it with the given data. Returns ErrUnexpandedToken if the template
	// text carries a placeholder no action fills, ErrMissingTemplateKey if
	// a key is missing, and ErrUnsafeValue if an escaping helper rejects a
	// value.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	if tok := findUnexpandedToken(tmpl); tok != "" {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, tok, templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		if errors.Is(err, ErrUnsafeValue) {
			return nil, fmt.Errorf("render %q: %w", templateName, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	return buf.Bytes(), nil
}

// findUnexpandedToken returns the first placeholder found in the literal
// text of tmpl and its associated templates, or "".
func findUnexpandedToken(tmpl *template.Template) string {
	for _, t := range tmpl.Templates() {
		if t.Tree == nil || t.Tree.Root == nil {
			continue
		}
		if tok := tokenInNode(t.Tree.Root); tok != "" {
			return tok
		}
	}
	return ""
}

func tokenInNode(node parse.Node) string {
	switch n := node.(type) {
	case *parse.TextNode:
		return string(unexpandedTokenPattern.Find(n.Text))
	case *parse.ListNode:
		if n == nil {
			return ""
		}
		for _, child := range n.Nodes {
			if tok := tokenInNode(child); tok != "" {
				return tok
			}
		}
	case *parse.IfNode:
		return tokenInBranch(&n.BranchNode)
	case *parse.RangeNode:
		return tokenInBranch(&n.BranchNode)
	case *parse.WithNode:
		return tokenInBranch(&n.BranchNode)
	}
	return ""
}

func tokenInBranch(b *parse.BranchNode) string {
	if tok := tokenInNode(b.List); tok != "" {
		return tok
	}
	if b.ElseList != nil {
		return tokenInNode(b.ElseList)
	}
	return ""
}
