// Package locale selects the locale an application renders in.
//
// Selection is deliberately simple. A platform candidate is normalized, an optional
// application callback gets the first say, and otherwise the first exact match or the
// first language match in the supported list wins. The first supported locale is the
// fallback, so resolution always produces a value.
package locale

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// ErrNoSupportedLocales is returned when a supported list is empty.
var ErrNoSupportedLocales = errors.New("locale: supported locale list must not be empty")

// Locale identifies a language and an optional country. Two locales are equal when both
// codes are equal, so == is the comparison to use.
type Locale struct {
	Language string
	Country  string
}

// New returns a locale with the given codes.
func New(lang, country string) Locale {
	return Locale{Language: lang, Country: country}
}

// EnglishUS is the default supported locale.
var EnglishUS = Locale{Language: "en", Country: "US"}

func (l Locale) String() string {
	if l.Country == "" {
		return l.Language
	}
	return l.Language + "_" + l.Country
}

// IsZero reports whether the locale carries no language.
func (l Locale) IsZero() bool {
	return l.Language == ""
}

// Tag converts the locale into a BCP-47 tag. Unknown codes yield language.Und.
func (l Locale) Tag() language.Tag {
	if l.IsZero() {
		return language.Und
	}
	s := l.Language
	if l.Country != "" {
		s += "-" + l.Country
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}

// SupportedList is an ordered set of locales. Index 0 is the ultimate fallback.
type SupportedList []Locale

// Validate reports ErrNoSupportedLocales for an empty list.
func (s SupportedList) Validate() error {
	if len(s) == 0 {
		return ErrNoSupportedLocales
	}
	return nil
}

// Contains reports whether l is a member of the list.
func (s SupportedList) Contains(l Locale) bool {
	for _, c := range s {
		if c == l {
			return true
		}
	}
	return false
}

func (s SupportedList) String() string {
	parts := make([]string, 0, len(s))
	for _, l := range s {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ",")
}
