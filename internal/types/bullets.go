package types

import "strings"

// SplitBullets breaks a description field into bullet lines: split on
// newline, strip a leading "- " prefix, trim whitespace, drop blank
// lines. Experience and project descriptions use this convention.
func SplitBullets(description string) []string {
	if description == "" {
		return nil
	}
	lines := strings.Split(description, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.TrimPrefix(strings.TrimSpace(line), "- ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	if len(bullets) == 0 {
		return nil
	}
	return bullets
}

// JoinBullets is the inverse of SplitBullets: each bullet becomes a
// "- " prefixed line. Splitting the result reproduces the input.
func JoinBullets(bullets []string) string {
	if len(bullets) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, b := range bullets {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(strings.TrimSpace(b))
	}
	return sb.String()
}
