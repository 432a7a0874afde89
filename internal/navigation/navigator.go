package navigation

import (
	"context"
	"errors"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// DefaultRoute is the root route name.
const DefaultRoute = "/"

var ErrMissingRouteFactory = errors.New("navigation: route factory is required")

// Options configures a Navigator.
type Options struct {
	Generate     RouteFactory
	Unknown      RouteFactory
	InitialRoute string
	// KnownRoutes feeds suggestions on the default unknown-route page.
	KnownRoutes []string
	Logger      *zap.Logger
}

// Navigator is the stack-based router mounted by the shell. The back query runs on a
// command goroutine while the shell reads the stack for rendering, so the stack is
// guarded.
type Navigator struct {
	mu      sync.Mutex
	stack   Stack
	opts    Options
	log     *zap.Logger
	pending []tea.Cmd
	// pushes and pops so far; pages are not comparable in general.
	changes uint64
}

// New builds a navigator and pushes the initial route.
func New(opts Options) (*Navigator, error) {
	if opts.Generate == nil {
		return nil, ErrMissingRouteFactory
	}
	if opts.InitialRoute == "" {
		opts.InitialRoute = DefaultRoute
	}
	if opts.Unknown == nil {
		opts.Unknown = defaultUnknownRoute(opts.KnownRoutes)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	n := &Navigator{opts: opts, log: log.Named("navigator")}
	n.pushInitial(opts.InitialRoute)
	return n, nil
}

// pushInitial expands "/a/b" into "/", "/a" and "/a/b". Prefixes that do not resolve
// are skipped; if the full route does not resolve only the default route is pushed.
func (n *Navigator) pushInitial(route string) {
	if route == DefaultRoute || !strings.HasPrefix(route, "/") {
		n.pushLocked(route)
		return
	}
	var pages []Page
	segments := strings.Split(strings.Trim(route, "/"), "/")
	prefix := ""
	for i := -1; i < len(segments); i++ {
		name := DefaultRoute
		if i >= 0 {
			prefix += "/" + segments[i]
			name = prefix
		}
		p, ok := n.opts.Generate(RouteSettings{Name: name})
		if ok {
			pages = append(pages, p)
			continue
		}
		if i == len(segments)-1 {
			n.log.Warn("initial route not found, falling back", zap.String("route", route))
			pages = nil
		}
	}
	if len(pages) == 0 {
		n.pushLocked(DefaultRoute)
		return
	}
	for _, p := range pages {
		n.stack.Push(p)
		n.changes++
		n.queueInit(p)
	}
}

// PushNamed pushes the page generated for name.
func (n *Navigator) PushNamed(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushLocked(name)
}

func (n *Navigator) pushLocked(name string) {
	settings := RouteSettings{Name: name}
	p, ok := n.opts.Generate(settings)
	if !ok {
		p, ok = n.opts.Unknown(settings)
	}
	if !ok || p == nil {
		n.log.Error("no page for route", zap.String("route", name))
		return
	}
	n.stack.Push(p)
	n.changes++
	n.queueInit(p)
	n.log.Debug("pushed", zap.String("route", name), zap.Int("depth", n.stack.Len()))
}

func (n *Navigator) queueInit(p Page) {
	if init, ok := p.(PageInitializer); ok {
		if cmd := init.InitPage(); cmd != nil {
			n.pending = append(n.pending, cmd)
		}
	}
}

// MaybePop pops the top page unless it is the root. It reports whether the request was
// handled: true when a page was popped or the top page vetoed the pop, false at the root.
func (n *Navigator) MaybePop(ctx context.Context) (bool, error) {
	n.mu.Lock()
	top := n.stack.Top()
	depth := n.stack.Len()
	seen := n.changes
	n.mu.Unlock()
	if depth <= 1 {
		return false, nil
	}

	if guard, ok := top.(PopGuard); ok {
		allow, err := guard.WillPop(ctx)
		if err != nil {
			return false, err
		}
		if !allow {
			return true, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.changes != seen {
		// Something else changed the stack while the guard was deciding.
		return true, nil
	}
	popped := n.stack.Pop()
	n.changes++
	n.log.Debug("popped", zap.String("route", popped.Route()), zap.Int("depth", n.stack.Len()))
	return true, nil
}

// Depth returns the number of pages on the stack.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Len()
}

// Current returns the top page.
func (n *Navigator) Current() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Top()
}

// Routes returns the stack's route names bottom to top.
func (n *Navigator) Routes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Routes()
}

// Update forwards msg to the top page.
func (n *Navigator) Update(msg tea.Msg) tea.Cmd {
	n.mu.Lock()
	defer n.mu.Unlock()
	top := n.stack.Top()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	n.stack.ReplaceTop(next)
	return cmd
}

// View renders the top page.
func (n *Navigator) View(width, height int) string {
	top := n.Current()
	if top == nil {
		return ""
	}
	return top.View(width, height)
}

// TakeInitCmds returns the init commands of pages pushed since the last call.
func (n *Navigator) TakeInitCmds() tea.Cmd {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.pending) == 0 {
		return nil
	}
	cmds := n.pending
	n.pending = nil
	return tea.Batch(cmds...)
}
