// Package templatefs serves the source templates compiled into the binary.
package templatefs

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/domain"
)

//go:embed templates/*.txt
var embedded embed.FS

var _ secondary.TemplateSource = (*Source)(nil)

// Source loads templates named <name>_template.txt from a file system
type Source struct {
	fsys fs.FS
	dir  string
}

// New returns a source over the built-in templates
func New() *Source {
	return &Source{fsys: embedded, dir: "templates"}
}

// NewFromFS returns a source over an arbitrary file system, with templates
// at its root
func NewFromFS(fsys fs.FS) *Source {
	return &Source{fsys: fsys, dir: "."}
}

// LoadTemplate reads the template file for name
func (s *Source) LoadTemplate(_ context.Context, name domain.TemplateName) (string, error) {
	file := path.Join(s.dir, string(name)+"_template.txt")

	b, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(b), nil
}
