// Package locale holds the supported languages and their user facing
// messages.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported display language.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Languages lists the supported languages, the first one is the fallback.
var Languages = []Language{English, Chinese}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// Parse parses a language code.
func Parse(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Chinese:
		return l, nil
	default:
		return "", fmt.Errorf("unsupported language %q, want %q or %q", s, English, Chinese)
	}
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Detect returns the supported language that best matches the first
// meaningful locale among values, typically $LC_ALL, $LC_MESSAGES and $LANG.
// It returns English when nothing matches.
func Detect(values ...string) Language {
	for _, v := range values {
		tag, ok := posixTag(v)
		if !ok {
			continue
		}
		_, i, c := matcher.Match(tag)
		if c == language.No {
			continue
		}
		return Languages[i]
	}
	return English
}

// posixTag converts a POSIX locale like "zh_CN.UTF-8@pinyin" to a tag.
func posixTag(v string) (language.Tag, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
