package text

import (
	"strconv"
	"strings"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// IsNumber returns if a text is an integer.
func IsNumber(text string) bool {
	_, err := strconv.Atoi(text)
	return err == nil
}

// PrefixLines prepends every line with the given prefix.
func PrefixLines(text string, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// TrimLinefeeds removes blank lines at both ends of a text.
func TrimLinefeeds(text string) string {
	return strings.Trim(text, "\n")
}
