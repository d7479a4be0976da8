package docs

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// splitFrontmatter separates a leading YAML frontmatter block from a
// Markdown body. Only string values are kept, with lower-cased keys.
func splitFrontmatter(content string) (map[string]string, string) {
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return map[string]string{}, content
	}

	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return map[string]string{}, content
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(parts[1])), &raw); err != nil {
		return map[string]string{}, content
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if sv, ok := v.(string); ok {
			out[strings.ToLower(k)] = strings.TrimSpace(sv)
		}
	}
	return out, strings.TrimPrefix(parts[2], "\n")
}
