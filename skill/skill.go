// Package skill ships the companion policy document for the
// AskUserQuestion tool: markdown with YAML frontmatter that tells the
// invoking model when to ask the user a question, how to phrase the
// payload, and how many attempts it gets per decision.
//
// The canonical document is embedded; Discover finds additional ones in
// skill directories laid out as <dir>/<name>/SKILL.md.
package skill

import (
	_ "embed"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed SKILL.md
var embedded string

// Skill is one parsed policy document.
type Skill struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Trigger     string `yaml:"trigger"`
	Content     string `yaml:"-"` // markdown body without frontmatter
	FilePath    string `yaml:"-"` // source path, empty for the embedded document
}

// Default returns the embedded asking-questions skill.
func Default() Skill {
	return Parse(embedded, "")
}

// Raw returns the embedded document verbatim, frontmatter included.
func Raw() string {
	return embedded
}

// Parse reads a markdown document with optional YAML frontmatter
// delimited by "---" lines. A document without usable frontmatter keeps
// its whole text as content and derives its name from the path.
func Parse(content, filePath string) Skill {
	s := Skill{FilePath: filePath}

	body := content
	if strings.HasPrefix(content, "---") {
		if parts := strings.SplitN(content, "---", 3); len(parts) == 3 {
			if err := yaml.Unmarshal([]byte(parts[1]), &s); err == nil {
				body = parts[2]
			}
		}
	}

	s.Content = strings.TrimSpace(body)
	if s.Name == "" && filePath != "" {
		s.Name = nameFromPath(filePath)
	}
	return s
}

// nameFromPath falls back to the containing directory for the
// conventional SKILL.md layout, and to the bare file name otherwise.
func nameFromPath(path string) string {
	base := filepath.Base(path)
	if strings.EqualFold(base, "SKILL.md") {
		return filepath.Base(filepath.Dir(path))
	}
	return strings.TrimSuffix(base, ".md")
}
