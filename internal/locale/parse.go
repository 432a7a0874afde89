package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Parse reads a platform locale string such as "en_US.UTF-8", "fr-CA", "de_DE@euro" or
// "C". Legacy language codes are kept as given; Resolve rewrites them.
func Parse(raw string) (Locale, error) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, ".@"); i > 0 {
		s = s[:i]
	}
	switch s {
	case "":
		return Locale{}, fmt.Errorf("locale: empty locale string")
	case "C", "POSIX":
		return EnglishUS, nil
	}
	s = strings.ReplaceAll(s, "_", "-")

	parts := strings.Split(s, "-")
	lang := strings.ToLower(parts[0])
	if _, ok := legacyLanguages[lang]; ok {
		// x/text canonicalizes these on parse, which would hide the original code.
		country := ""
		if len(parts) > 1 {
			country = strings.ToUpper(parts[len(parts)-1])
		}
		return Locale{Language: lang, Country: country}, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, fmt.Errorf("locale: parse %q: %w", raw, err)
	}
	base, _ := tag.Base()
	l := Locale{Language: base.String()}
	if region, conf := tag.Region(); conf == language.Exact {
		l.Country = region.String()
	}
	return l, nil
}

// ParseList parses every entry of raws in order.
func ParseList(raws []string) (SupportedList, error) {
	out := make(SupportedList, 0, len(raws))
	for _, raw := range raws {
		l, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Detect returns the current platform locale from LC_ALL, LC_MESSAGES and LANG, the
// first non-empty parseable value winning.
func Detect(getenv func(string) string) (Locale, error) {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := getenv(key)
		if raw == "" {
			continue
		}
		if l, err := Parse(raw); err == nil {
			return l, nil
		}
	}
	return Locale{}, fmt.Errorf("locale: could not detect platform locale")
}
