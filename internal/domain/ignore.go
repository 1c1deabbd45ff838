package domain

import "strings"

const ignoreDirective = "codemaid:ignore"

// fileIgnored reports whether the leading comment block of content carries
// a codemaid:ignore directive. Scanning stops at the first line that is
// neither blank nor a line comment, so directives buried in the file body
// have no effect.
func fileIgnored(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}

		if !strings.HasPrefix(trimmed, "//") {
			return false
		}

		comment := strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))
		if strings.HasPrefix(comment, ignoreDirective) {
			return true
		}
	}

	return false
}
