package typescript

import (
	"strconv"
	"strings"
	"unicode"
)

// ToIdentifier converts an arbitrary schema identifier into a capitalized
// identifier usable as a TypeScript type name. Purely alphanumeric input
// keeps its casing and only has the first character raised; everything else
// is split into words on separator characters and on digit/letter
// boundaries, each word capitalized, and the separators dropped.
func ToIdentifier(raw string) string {
	if raw == "" {
		return ""
	}
	if isAlphanumeric(raw) {
		return upperFirst(raw)
	}

	var b strings.Builder
	for _, word := range splitWords(raw) {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// SanitizeMemberName returns a member name safe to print inside a type
// literal. Names whose first character starts a numeric literal are not valid
// bare identifiers, so the whole name is wrapped in double quotes instead.
func SanitizeMemberName(name string) string {
	if name == "" {
		return name
	}
	if _, err := strconv.ParseFloat(name[:1], 64); err == nil {
		return `"` + name + `"`
	}
	return name
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// splitWords yields the maximal letter and digit runs of s, starting a new
// word whenever the rune class changes or a separator is crossed.
func splitWords(s string) []string {
	var (
		words   []string
		current strings.Builder
		last    rune
	)
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if unicode.IsDigit(last) {
				flush()
			}
		case unicode.IsDigit(r):
			if unicode.IsLetter(last) {
				flush()
			}
		default:
			flush()
			last = r
			continue
		}
		current.WriteRune(r)
		last = r
	}
	flush()
	return words
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	head := unicode.ToUpper(runes[0])
	return string(head) + strings.ToLower(string(runes[1:]))
}

func upperFirst(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
