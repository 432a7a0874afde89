package shell

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/appshell/internal/locale"
	"github.com/jask/appshell/internal/navigation"
	"github.com/jask/appshell/internal/platform"
)

const recentEventCap = 32

// Recorder persists lifecycle events for diagnostics.
type Recorder interface {
	Record(ctx context.Context, kind, detail string) error
}

// Deps are the collaborators of a Model. Only Platform is required.
type Deps struct {
	Platform locale.Locale
	Source   *platform.Dispatcher
	Keys     *platform.KeyRegistry
	Journal  Recorder
	Hooks    Hooks
	Logger   *zap.Logger
}

// Model is the Bubble Tea root of an appshell program.
type Model struct {
	opts       Options
	bridge     *Bridge
	nav        *navigation.Navigator
	dispatcher *platform.Dispatcher
	terminal   platform.Terminal
	journal    Recorder
	log        *zap.Logger

	width    int
	height   int
	events   []string
	frame    string
	frameGen uint64
	frameW   int
	frameH   int
	quitting bool
}

// New validates opts, mounts the navigator and resolves the initial locale.
func New(opts Options, deps Deps) (*Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("shell: invalid options: %w", err)
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	nav, err := navigation.New(navigation.Options{
		Generate:     opts.OnGenerateRoute,
		Unknown:      opts.OnUnknownRoute,
		InitialRoute: opts.InitialRoute,
		KnownRoutes:  opts.KnownRoutes,
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}
	src := deps.Source
	if src == nil {
		src = platform.NewDispatcher()
	}

	m := &Model{
		opts:       opts,
		nav:        nav,
		dispatcher: src,
		terminal:   platform.NewTerminal(deps.Keys),
		journal:    deps.Journal,
		log:        log.Named("shell"),
		width:      100,
		height:     32,
	}
	for _, b := range opts.KeyBindings {
		m.terminal.Keys.Register(b)
	}
	m.bridge = NewBridge(opts.SupportedLocales, opts.LocaleResolution, deps.Hooks, log)
	if err := m.bridge.Mount(nav, src, deps.Platform); err != nil {
		return nil, fmt.Errorf("shell: mount: %w", err)
	}
	m.note("mount", m.bridge.Locale().String())
	return m, nil
}

func (m *Model) Bridge() *Bridge                  { return m.bridge }
func (m *Model) Navigator() *navigation.Navigator { return m.nav }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.nav.TakeInitCmds(), m.record("mount", m.bridge.Locale().String()))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	scope := m.scope()

	if msg, ok := msg.(BackResolvedMsg); ok {
		consumed := m.bridge.ResolveBack(msg)
		detail := "consumed"
		if !consumed {
			detail = "at root"
		}
		m.note("back", detail)
		if !consumed {
			return m, tea.Batch(m.record("back", detail), m.quit())
		}
		return m, tea.Batch(m.record("back", detail), m.nav.TakeInitCmds())
	}

	if m.terminal.IsQuit(msg, scope) {
		return m, m.quit()
	}
	if action, ok := m.terminal.Toggle(msg, scope); ok {
		toggleOverride(&Overrides, action)
		m.bridge.MarkNeedsBuild()
		return m, nil
	}

	if ev, ok := m.terminal.Translate(msg, scope); ok {
		if size, ok := ev.(platform.MetricsChange); ok {
			m.width, m.height = size.Width, size.Height
		}
		cmd, _ := m.dispatcher.Dispatch(ev)
		kind, detail := platform.Kind(ev), eventDetail(ev)
		m.note(kind, detail)
		return m, tea.Batch(cmd, m.record(kind, detail), m.nav.TakeInitCmds())
	}

	cmd := m.nav.Update(msg)
	m.bridge.MarkNeedsBuild()
	return m, tea.Batch(cmd, m.nav.TakeInitCmds())
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.bridge.Unmount()
	return tea.Quit
}

// View composes a frame when a rebuild was scheduled or the size changed, and returns
// the previous frame otherwise.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	gen := m.bridge.Generation()
	if m.frame != "" && gen == m.frameGen && m.width == m.frameW && m.height == m.frameH {
		return m.frame
	}
	d := Describe(m.opts, m.bridge, &Overrides)
	d.Route = m.scope()
	d.Routes = m.nav.Routes()
	d.Events = m.events
	d.Keys = m.terminal.Keys.BindingsForScope(d.Route)
	m.frame = Render(d, m.nav.View, m.width, m.height)
	m.frameGen, m.frameW, m.frameH = gen, m.width, m.height
	return m.frame
}

func toggleOverride(o *DebugOverrides, action string) {
	switch action {
	case platform.ActionTogglePerformanceOverlay:
		o.SetPerformanceOverlay(!o.PerformanceOverlay())
	case platform.ActionToggleInspector:
		o.SetInspector(!o.Inspector())
	case platform.ActionToggleBanner:
		o.SetBanner(!o.Banner())
	}
}

func (m *Model) scope() string {
	if p := m.nav.Current(); p != nil {
		return p.Route()
	}
	return ""
}

// note keeps the recent events for the inspector.
func (m *Model) note(kind, detail string) {
	line := kind
	if detail != "" {
		line += " " + detail
	}
	m.events = append(m.events, line)
	if len(m.events) > recentEventCap {
		m.events = m.events[len(m.events)-recentEventCap:]
	}
}

func (m *Model) record(kind, detail string) tea.Cmd {
	if m.journal == nil {
		return nil
	}
	j, log := m.journal, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := j.Record(ctx, kind, detail); err != nil {
			log.Warn("journal write failed", zap.Error(err))
		}
		return nil
	}
}

func eventDetail(ev any) string {
	switch ev := ev.(type) {
	case platform.PushRoute:
		return ev.Route
	case platform.LocaleChange:
		return ev.Locale.String()
	case platform.MetricsChange:
		return fmt.Sprintf("%dx%d", ev.Width, ev.Height)
	case platform.MemoryPressure:
		return fmt.Sprintf("%d MiB", ev.HeapBytes>>20)
	case platform.LifecycleChange:
		return ev.State.String()
	}
	return ""
}
