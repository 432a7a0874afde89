package shell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/appshell/internal/locale"
)

type namedDelegate struct {
	name string
	only locale.Locale
}

func (d namedDelegate) Name() string { return d.name }
func (d namedDelegate) IsSupported(l locale.Locale) bool {
	return d.only.IsZero() || d.only == l
}

func TestDelegatesEndWithDefault(t *testing.T) {
	require.Equal(t, []Delegate{DefaultDelegate{}}, Delegates(nil))

	a, b, c := namedDelegate{name: "a"}, namedDelegate{name: "b"}, namedDelegate{name: "c"}
	got := Delegates([]Delegate{a, b, c})
	require.Equal(t, []Delegate{a, b, c, DefaultDelegate{}}, got)
}

func TestDelegatesKeepExactlyOneDefault(t *testing.T) {
	a, b := namedDelegate{name: "a"}, namedDelegate{name: "b"}
	got := Delegates([]Delegate{DefaultDelegate{}, a, nil, DefaultDelegate{}, b})
	require.Equal(t, []Delegate{a, b, DefaultDelegate{}}, got)
}

func TestDelegatesDropPointerDefault(t *testing.T) {
	a := namedDelegate{name: "a"}
	got := Delegates([]Delegate{&DefaultDelegate{}, a, (*DefaultDelegate)(nil)})
	require.Equal(t, []Delegate{a, DefaultDelegate{}}, got)
}

func TestDefaultDelegateDirection(t *testing.T) {
	var d DefaultDelegate
	require.Equal(t, locale.RTL, d.Direction(locale.New("he", "IL")))
	require.Equal(t, locale.LTR, d.Direction(locale.EnglishUS))
	require.True(t, d.IsSupported(locale.New("zz", "")))
}
