package inspect

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	upperRe      = regexp.MustCompile(`([A-Z])`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CamelCaseToSpaced turns an identifier such as "ContainKeyAndValue" into
// "contain key and value".
func CamelCaseToSpaced(s string) string {
	spaced := upperRe.ReplaceAllStringFunc(s, func(m string) string {
		return " " + strings.ToLower(m)
	})
	return strings.TrimSpace(spaced)
}

// Quotify replaces single quotes with double quotes.
func Quotify(s string) string {
	return strings.ReplaceAll(s, "'", `"`)
}

func StripWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(s, "")
}

// DelimitWith joins the default formatting of items with sep. Nil items
// contribute an empty string.
func DelimitWith[E any](items []E, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		if IsNilValue(any(item)) {
			continue
		}
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}
