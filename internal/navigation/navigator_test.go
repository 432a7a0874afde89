package navigation

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type testPage struct {
	route string
	hits  int
}

func (p *testPage) Route() string                  { return p.route }
func (p *testPage) Title() string                  { return p.route }
func (p *testPage) View(int, int) string           { return "page " + p.route }
func (p *testPage) Update(tea.Msg) (Page, tea.Cmd) { p.hits++; return p, nil }

type guardedPage struct {
	testPage
	allow   bool
	entered chan struct{}
	release chan struct{}
}

func (p *guardedPage) WillPop(ctx context.Context) (bool, error) {
	if p.entered != nil {
		close(p.entered)
	}
	if p.release != nil {
		select {
		case <-p.release:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return p.allow, nil
}

func factory(known ...string) RouteFactory {
	set := map[string]bool{}
	for _, k := range known {
		set[k] = true
	}
	return func(s RouteSettings) (Page, bool) {
		if !set[s.Name] {
			return nil, false
		}
		return &testPage{route: s.Name}, true
	}
}

func TestNewRequiresFactory(t *testing.T) {
	_, err := New(Options{})
	require.ErrorIs(t, err, ErrMissingRouteFactory)
}

func TestMaybePopAtRootIsNotConsumed(t *testing.T) {
	n, err := New(Options{Generate: factory("/")})
	require.NoError(t, err)

	popped, err := n.MaybePop(context.Background())
	require.NoError(t, err)
	require.False(t, popped)
	require.Equal(t, 1, n.Depth())
}

func TestMaybePopReducesDepth(t *testing.T) {
	n, err := New(Options{Generate: factory("/", "/settings")})
	require.NoError(t, err)
	n.PushNamed("/settings")
	require.Equal(t, 2, n.Depth())

	popped, err := n.MaybePop(context.Background())
	require.NoError(t, err)
	require.True(t, popped)
	require.Equal(t, 1, n.Depth())
	require.Equal(t, "/", n.Current().Route())
}

func TestMaybePopVetoedByGuard(t *testing.T) {
	guard := &guardedPage{testPage: testPage{route: "/edit"}, allow: false}
	n, err := New(Options{Generate: func(s RouteSettings) (Page, bool) {
		if s.Name == "/edit" {
			return guard, true
		}
		return &testPage{route: s.Name}, true
	}})
	require.NoError(t, err)
	n.PushNamed("/edit")

	handled, err := n.MaybePop(context.Background())
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, 2, n.Depth())
}

func TestMaybePopWaitsForGuard(t *testing.T) {
	guard := &guardedPage{testPage: testPage{route: "/slow"}, allow: true, release: make(chan struct{})}
	n, err := New(Options{Generate: func(s RouteSettings) (Page, bool) {
		if s.Name == "/slow" {
			return guard, true
		}
		return &testPage{route: s.Name}, true
	}})
	require.NoError(t, err)
	n.PushNamed("/slow")

	done := make(chan bool, 1)
	go func() {
		popped, _ := n.MaybePop(context.Background())
		done <- popped
	}()
	select {
	case <-done:
		t.Fatalf("pop should wait for the guard")
	case <-time.After(20 * time.Millisecond):
	}
	close(guard.release)
	require.True(t, <-done)
	require.Equal(t, 1, n.Depth())
}

func TestMaybePopCancelled(t *testing.T) {
	guard := &guardedPage{testPage: testPage{route: "/slow"}, allow: true, release: make(chan struct{})}
	n, err := New(Options{Generate: func(s RouteSettings) (Page, bool) {
		if s.Name == "/slow" {
			return guard, true
		}
		return &testPage{route: s.Name}, true
	}})
	require.NoError(t, err)
	n.PushNamed("/slow")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = n.MaybePop(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 2, n.Depth())
}

func TestInitialRouteExpandsHierarchy(t *testing.T) {
	n, err := New(Options{Generate: factory("/", "/a", "/a/b"), InitialRoute: "/a/b"})
	require.NoError(t, err)
	require.Equal(t, []string{"/", "/a", "/a/b"}, n.Routes())
}

func TestInitialRouteSkipsMissingPrefix(t *testing.T) {
	n, err := New(Options{Generate: factory("/", "/a/b"), InitialRoute: "/a/b"})
	require.NoError(t, err)
	require.Equal(t, []string{"/", "/a/b"}, n.Routes())
}

func TestInitialRouteFallsBackToDefault(t *testing.T) {
	n, err := New(Options{Generate: factory("/", "/a"), InitialRoute: "/a/missing"})
	require.NoError(t, err)
	require.Equal(t, []string{"/"}, n.Routes())
}

func TestPushUnknownUsesUnknownFactory(t *testing.T) {
	n, err := New(Options{Generate: factory("/"), KnownRoutes: []string{"/", "/settings"}})
	require.NoError(t, err)
	n.PushNamed("/setings")
	require.Equal(t, 2, n.Depth())
	view := n.View(80, 10)
	require.Contains(t, view, `No route named "/setings"`)
	require.Contains(t, view, "/settings")
}

func TestPushDroppedWhenNothingResolves(t *testing.T) {
	n, err := New(Options{
		Generate: factory("/"),
		Unknown:  func(RouteSettings) (Page, bool) { return nil, false },
	})
	require.NoError(t, err)
	n.PushNamed("/nowhere")
	require.Equal(t, 1, n.Depth())
}

func TestUpdateGoesToTopPage(t *testing.T) {
	n, err := New(Options{Generate: factory("/", "/b")})
	require.NoError(t, err)
	n.PushNamed("/b")
	n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Equal(t, 1, n.Current().(*testPage).hits)
}

func TestSuggest(t *testing.T) {
	known := []string{"/", "/settings", "/about", "/setup"}
	require.Equal(t, []string{"/settings", "/setup"}, Suggest("/setings", known))
	require.Empty(t, Suggest("/zzzzzzzzzz", known))
}

// listPage is a value page with a slice field, so its interface values cannot be compared.
type listPage struct {
	route string
	items []string
}

func (p listPage) Route() string        { return p.route }
func (p listPage) Title() string        { return p.route }
func (p listPage) View(int, int) string { return strings.Join(p.items, ",") }

func (p listPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		p.items = append(p.items, km.String())
	}
	return p, nil
}

func listFactory(s RouteSettings) (Page, bool) {
	return listPage{route: s.Name}, true
}

func TestUpdateValuePageWithSlice(t *testing.T) {
	n, err := New(Options{Generate: listFactory})
	require.NoError(t, err)

	require.NotPanics(t, func() {
		n.Update(tea.KeyMsg{Type: tea.KeyDown})
		n.Update(tea.KeyMsg{Type: tea.KeyUp})
	})
	require.Equal(t, "down,up", n.View(80, 10))
}

func TestMaybePopValuePageWithSlice(t *testing.T) {
	n, err := New(Options{Generate: listFactory})
	require.NoError(t, err)
	n.PushNamed("/list")

	var popped bool
	require.NotPanics(t, func() {
		popped, err = n.MaybePop(context.Background())
	})
	require.NoError(t, err)
	require.True(t, popped)
	require.Equal(t, []string{"/"}, n.Routes())
}

func TestMaybePopUnknownRoutePage(t *testing.T) {
	n, err := New(Options{Generate: factory("/"), KnownRoutes: []string{"/", "/about"}})
	require.NoError(t, err)
	n.PushNamed("/abuot")
	require.NotPanics(t, func() { n.Update(tea.KeyMsg{Type: tea.KeyDown}) })
	require.Contains(t, n.View(80, 10), "/about")

	popped, err := n.MaybePop(context.Background())
	require.NoError(t, err)
	require.True(t, popped)
	require.Equal(t, 1, n.Depth())
}

func TestMaybePopSkippedWhenStackChangedDuringGuard(t *testing.T) {
	guard := &guardedPage{
		testPage: testPage{route: "/slow"},
		allow:    true,
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	n, err := New(Options{Generate: func(s RouteSettings) (Page, bool) {
		if s.Name == "/slow" {
			return guard, true
		}
		return &testPage{route: s.Name}, true
	}})
	require.NoError(t, err)
	n.PushNamed("/slow")

	done := make(chan bool, 1)
	go func() {
		handled, _ := n.MaybePop(context.Background())
		done <- handled
	}()
	<-guard.entered
	n.PushNamed("/other")
	close(guard.release)

	require.True(t, <-done)
	require.Equal(t, []string{"/", "/slow", "/other"}, n.Routes())
}
