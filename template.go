package docserv

import (
	"bytes"
	"fmt"

	"github.com/cbroglie/mustache"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/eringen/docserv/views"
)

// Template is the compiled page skeleton every response is rendered through.
// It exposes two variables: {{title}} and {{{content}}}.
type Template struct {
	path string
	tmpl *mustache.Template
}

// TemplateError reports a failed render. Partial holds the bytes the
// template produced before failing.
type TemplateError struct {
	Path    string
	Partial []byte
	Err     error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("render template %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// LoadTemplate reads and compiles the mustache template at path. When strict
// is set, references to variables missing from the render context fail the
// render instead of expanding to nothing. Strictness is process-wide in the
// mustache package, so the last loaded template decides it.
func LoadTemplate(fs afero.Fs, path string, strict bool) (*Template, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read template %s", path)
	}
	mustache.AllowMissingVariables = !strict
	tmpl, err := mustache.ParseString(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "compile template %s", path)
	}
	return &Template{path: path, tmpl: tmpl}, nil
}

// Path returns the file the template was loaded from.
func (t *Template) Path() string {
	return t.path
}

// Render executes the template for page. On failure it returns the output
// produced so far along with a *TemplateError.
func (t *Template) Render(page views.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.tmpl.FRender(&buf, page.Vars()); err != nil {
		return buf.Bytes(), &TemplateError{Path: t.path, Partial: buf.Bytes(), Err: err}
	}
	return buf.Bytes(), nil
}
