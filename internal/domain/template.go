package domain

import "strings"

// TemplateMarker is the token a template carries where student code goes.
const TemplateMarker = "// STUDENT_CODE_HERE"

// TemplateName identifies one of the known source templates.
type TemplateName string

const (
	TemplateJava   TemplateName = "java"
	TemplatePython TemplateName = "python"
	TemplateCpp    TemplateName = "cpp"
)

// DefaultTemplate is used for every language without a dedicated template.
const DefaultTemplate = TemplateCpp

// Template is a resolved source scaffold.
//
// Fallback reports that the requested language had no dedicated template.
// Warning is set when the template content could not be loaded; Text is
// then empty.
type Template struct {
	Name     TemplateName
	Text     string
	Fallback bool
	Warning  error
}

// TemplateFor maps a language id, case-insensitively, to its template.
// The second result is false when the default template was chosen.
func TemplateFor(languageID string) (TemplateName, bool) {
	switch strings.ToLower(languageID) {
	case "java":
		return TemplateJava, true
	case "python":
		return TemplatePython, true
	case "cpp":
		return TemplateCpp, true
	default:
		return DefaultTemplate, false
	}
}

// Compose inlines studentCode at the first marker occurrence. A template
// without a marker is returned unchanged.
func Compose(template, studentCode string) string {
	return strings.Replace(template, TemplateMarker, studentCode, 1)
}
