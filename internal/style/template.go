package style

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var variablePattern = regexp.MustCompile(`\{\{([a-z0-9-]+)\}\}`)

// Template is a text template using {{variable-name}} placeholders.
type Template struct {
	text string
}

// NewTemplate validates the delimiters of text and returns a template.
func NewTemplate(text string) (*Template, error) {
	openCount := strings.Count(text, "{{")
	closeCount := strings.Count(text, "}}")
	if openCount != closeCount {
		return nil, fmt.Errorf("mismatched variable delimiters: %d opens, %d closes", openCount, closeCount)
	}
	return &Template{text: text}, nil
}

// MustTemplate is like NewTemplate but panics on error.
func MustTemplate(text string) *Template {
	t, err := NewTemplate(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Variables returns the distinct variables of the template in order of first use.
func (t *Template) Variables() []string {
	matches := variablePattern.FindAllStringSubmatch(t.text, -1)
	seen := make(map[string]bool, len(matches))
	vars := make([]string, 0, len(matches))
	for _, match := range matches {
		if !seen[match[1]] {
			seen[match[1]] = true
			vars = append(vars, match[1])
		}
	}
	return vars
}

// Render substitutes every variable. Unknown variables are an error.
func (t *Template) Render(values map[string]string) (string, error) {
	var missing []string
	out := variablePattern.ReplaceAllStringFunc(t.text, func(m string) string {
		name := variablePattern.FindStringSubmatch(m)[1]
		v, ok := values[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("unknown template variables: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
