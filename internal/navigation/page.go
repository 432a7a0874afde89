package navigation

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Page is one entry of the navigation stack.
type Page interface {
	Route() string
	Title() string
	Update(msg tea.Msg) (Page, tea.Cmd)
	View(width, height int) string
}

// PageInitializer is implemented by pages that start work when they become visible.
type PageInitializer interface {
	InitPage() tea.Cmd
}

// PopGuard lets the top page veto or delay a pop. WillPop may block, for example while
// a transition or a confirmation is still pending.
type PopGuard interface {
	WillPop(ctx context.Context) (bool, error)
}

// RouteSettings describes the route being generated.
type RouteSettings struct {
	Name      string
	Arguments any
}

// RouteFactory builds a page for a route. ok=false means the route is unknown.
type RouteFactory func(settings RouteSettings) (Page, bool)
