package skill

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover scans the given directories for SKILL.md files at any depth.
// Earlier directories win on name collisions, so callers pass the
// project directory before the user one. Missing directories and
// unreadable files are skipped silently.
func Discover(dirs ...string) []Skill {
	var skills []Skill
	seen := make(map[string]bool)

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, "**", "SKILL.md"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			s := Parse(string(data), path)
			if s.Name == "" || seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			skills = append(skills, s)
		}
	}
	return skills
}
