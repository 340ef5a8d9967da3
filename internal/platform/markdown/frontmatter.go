package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// Split separates a leading YAML frontmatter block from the body. Content
// without frontmatter yields an empty header.
func Split(content string) (string, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, separator) {
		return "", content, nil
	}
	rest := strings.TrimPrefix(content, separator)
	idx := strings.Index(rest, "\n---\n")
	if idx < 0 {
		return "", "", fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	return rest[:idx], strings.TrimLeft(rest[idx+len("\n---\n"):], "\n"), nil
}

// DecodeFrontmatter unmarshals the frontmatter of content into v and returns
// the remaining body.
func DecodeFrontmatter(content string, v any) (string, error) {
	raw, body, err := Split(content)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return body, nil
	}
	if err := yaml.Unmarshal([]byte(raw), v); err != nil {
		return "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return body, nil
}
