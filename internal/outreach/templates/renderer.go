package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Renderer renders campaign email templates for outbound messaging.
type Renderer struct{}

// Render compiles the provided template text with strict missing-key semantics.
func (Renderer) Render(name, tmpl string, data any) (string, error) {
	if tmpl == "" {
		return "", fmt.Errorf("templates: template text required")
	}
	t, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("templates: parse: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("templates: execute: %w", err)
	}
	return buf.String(), nil
}

// SplitSubject separates a rendered email into its subject line and body.
// Templates start with a "Subject: ..." line followed by the body.
func SplitSubject(rendered string) (subject, body string, err error) {
	trimmed := strings.TrimLeft(rendered, "\n")
	line, rest, found := strings.Cut(trimmed, "\n")
	if !found || !strings.HasPrefix(line, "Subject: ") {
		return "", "", fmt.Errorf("templates: rendered email missing subject line")
	}
	return strings.TrimPrefix(line, "Subject: "), strings.TrimLeft(rest, "\n"), nil
}
