// Package scaffold generates a new docserv project: a document directory
// with a starter page, a stylesheet, the default page template and a config
// file.
package scaffold

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Templates contains all scaffold files. Files with a .tmpl suffix are
// executed as Go text/template with Data; the rest are copied verbatim.
//
//go:embed all:templates
var Templates embed.FS

const root = "templates"

// Data holds the template variables passed to every scaffold template.
type Data struct {
	ProjectName string
	SiteName    string
}

// Generate writes the scaffold into dir on fsys and returns the created
// file paths in walk order. It refuses to touch an existing directory.
func Generate(fsys afero.Fs, dir string, data Data) ([]string, error) {
	if exists, err := afero.Exists(fsys, dir); err != nil {
		return nil, err
	} else if exists {
		return nil, errors.Errorf("directory %q already exists", dir)
	}

	var created []string
	err := fs.WalkDir(Templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		outPath := filepath.Join(dir, filepath.FromSlash(rel))
		if d.IsDir() {
			return fsys.MkdirAll(outPath, 0o755)
		}

		content, err := Templates.ReadFile(p)
		if err != nil {
			return errors.Wrapf(err, "read %s", p)
		}
		if strings.HasSuffix(p, ".tmpl") {
			outPath = strings.TrimSuffix(outPath, ".tmpl")
			content, err = execute(p, content, data)
			if err != nil {
				return err
			}
		}
		if err := afero.WriteFile(fsys, outPath, content, 0o644); err != nil {
			return errors.Wrapf(err, "create %s", outPath)
		}
		created = append(created, outPath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func execute(name string, content []byte, data Data) ([]byte, error) {
	tmpl, err := template.New(path.Base(name)).Parse(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "parse template %s", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "execute template %s", name)
	}
	return buf.Bytes(), nil
}

// ToTitle turns a directory name like "my-docs" into "My Docs".
func ToTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
