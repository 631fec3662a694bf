package pathtidy

import (
	"strings"
	"unicode/utf8"
)

// checkNotNull rejects empty input. Under Windows rules a whitespace-only
// value is treated as empty too; POSIX-style platforms tolerate it.
func checkNotNull(value string, platform Platform) *ValidationError {
	if value == "" {
		return newNullNameError(platform)
	}
	if windowsRules(platform) && strings.TrimSpace(value) == "" {
		return newNullNameError(platform)
	}
	return nil
}

// findInvalidChars collects the characters of value that appear in the
// invalid set, deduplicated, in order of first occurrence.
func findInvalidChars(value, invalid string) []rune {
	var found []rune
	seen := make(map[rune]bool)
	for _, r := range value {
		if !seen[r] && strings.ContainsRune(invalid, r) {
			seen[r] = true
			found = append(found, r)
		}
	}
	return found
}

// replaceInvalidChars substitutes every character of the invalid set with
// the replacement text in a single left-to-right pass. The replacement text
// itself is not re-scanned.
func replaceInvalidChars(value, invalid, replacement string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if strings.ContainsRune(invalid, r) {
			b.WriteString(replacement)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// truncateRunes caps s at max characters.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// splitExt splits a name into stem and extension. A leading dot (or a name
// of only dots) does not start an extension, so ".bashrc" and ".." both have
// an empty extension.
func splitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	if strings.Trim(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}

// lastComponent returns the final separator-delimited segment of p. Windows
// rules split on both separators, POSIX rules on slash only.
func lastComponent(p string, windowsRules bool) string {
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c == '/' || (windowsRules && c == '\\') {
			return p[i+1:]
		}
	}
	return p
}
