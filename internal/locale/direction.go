package locale

import "golang.org/x/text/language"

// TextDirection is the reading direction of a locale.
type TextDirection int

const (
	LTR TextDirection = iota
	RTL
)

func (d TextDirection) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Syrc": true,
	"Thaa": true,
	"Nkoo": true,
	"Adlm": true,
	"Rohg": true,
}

// Direction reports the reading direction of the likely script for l.
func Direction(l Locale) TextDirection {
	tag := Normalize(l).Tag()
	if tag == language.Und {
		return LTR
	}
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return RTL
	}
	return LTR
}
