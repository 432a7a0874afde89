package locale

// ResolutionFunc lets an application pick the locale itself. Returning ok=false defers
// to the built-in matching.
type ResolutionFunc func(candidate Locale, supported SupportedList) (Locale, bool)

var legacyLanguages = map[string]string{
	"iw": "he",
	"ji": "yi",
	"in": "id",
}

// Normalize rewrites deprecated language codes to their current ISO form.
// The country code is kept.
func Normalize(l Locale) Locale {
	if modern, ok := legacyLanguages[l.Language]; ok {
		l.Language = modern
	}
	return l
}

// Resolve maps a candidate to the locale the application should use.
//
// A result from override is returned unchanged even when it is not in supported.
// Language-only matching takes the first entry in list order, not the closest country.
// Resolve panics when supported is empty.
func Resolve(candidate Locale, supported SupportedList, override ResolutionFunc) Locale {
	if err := supported.Validate(); err != nil {
		panic(err)
	}
	candidate = Normalize(candidate)
	if override != nil {
		if l, ok := override(candidate, supported); ok {
			return l
		}
	}

	var languageMatch *Locale
	for i := range supported {
		if supported[i] == candidate {
			return supported[i]
		}
		if languageMatch == nil && supported[i].Language == candidate.Language {
			languageMatch = &supported[i]
		}
	}
	if languageMatch != nil {
		return *languageMatch
	}
	return supported[0]
}
