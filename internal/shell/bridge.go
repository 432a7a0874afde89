package shell

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/appshell/internal/locale"
	"github.com/jask/appshell/internal/platform"
)

// Router is the navigation capability the bridge drives.
type Router interface {
	// MaybePop reports whether the request was handled. false means the stack is at
	// its root. It may block until a pending transition settles.
	MaybePop(ctx context.Context) (bool, error)
	PushNamed(name string)
}

// Hooks are optional handlers for events the bridge itself ignores.
type Hooks struct {
	MemoryPressure  func(heapBytes uint64)
	LifecycleChange func(state platform.AppLifecycleState)
}

// BackResolvedMsg carries the result of a back request.
type BackResolvedMsg struct {
	Consumed bool
	Err      error
}

// Bridge owns the shell's locale and navigator reference. All methods are called from
// the program's update loop; only the back query runs elsewhere.
type Bridge struct {
	supported locale.SupportedList
	resolve   locale.ResolutionFunc
	hooks     Hooks
	log       *zap.Logger

	current      locale.Locale
	router       Router
	sub          platform.Subscription
	ctx          context.Context
	cancel       context.CancelFunc
	mounted      bool
	disposed     bool
	backInFlight bool
	generation   uint64
}

// NewBridge panics when supported is empty.
func NewBridge(supported locale.SupportedList, resolve locale.ResolutionFunc, hooks Hooks, log *zap.Logger) *Bridge {
	if err := supported.Validate(); err != nil {
		panic(err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		supported: supported,
		resolve:   resolve,
		hooks:     hooks,
		log:       log.Named("bridge"),
	}
}

// Mount resolves the platform locale and subscribes to src. The locale is resolved
// before Mount returns, so the first frame never sees an unresolved locale.
func (b *Bridge) Mount(router Router, src platform.Source, platformLocale locale.Locale) error {
	if b.mounted || b.disposed {
		return errors.New("shell: bridge already mounted")
	}
	b.current = locale.Resolve(platformLocale, b.supported, b.resolve)
	sub, err := src.Subscribe(b.handlers())
	if err != nil {
		return err
	}
	b.sub = sub
	b.router = router
	b.ctx, b.cancel = context.WithCancel(context.Background())
	b.mounted = true
	b.generation++
	b.log.Debug("mounted", zap.Stringer("locale", b.current))
	return nil
}

func (b *Bridge) handlers() platform.Handlers {
	return platform.Handlers{
		Back: b.HandleBack,
		PushRoute: func(route string) tea.Cmd {
			b.PushRoute(route)
			return nil
		},
		LocaleChange: func(l locale.Locale) tea.Cmd {
			b.ChangeLocale(l)
			return nil
		},
		MetricsChange: func(int, int) tea.Cmd {
			b.ChangeMetrics()
			return nil
		},
		MemoryPressure: func(heap uint64) tea.Cmd {
			b.MemoryPressure(heap)
			return nil
		},
		Lifecycle: func(state platform.AppLifecycleState) tea.Cmd {
			b.ChangeLifecycle(state)
			return nil
		},
	}
}

// Unmount unsubscribes, cancels an in-flight back query and drops the router. Calling
// it again is a no-op.
func (b *Bridge) Unmount() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.mounted = false
	if b.sub != nil {
		b.sub.Unsubscribe()
	}
	if b.cancel != nil {
		b.cancel()
	}
	b.router = nil
	b.log.Debug("unmounted")
}

func (b *Bridge) Mounted() bool         { return b.mounted }
func (b *Bridge) Locale() locale.Locale { return b.current }

// Generation counts scheduled rebuilds.
func (b *Bridge) Generation() uint64 { return b.generation }

// MarkNeedsBuild schedules a rebuild.
func (b *Bridge) MarkNeedsBuild() {
	if b.disposed {
		return
	}
	b.generation++
}

// HandleBack starts a back query on the router. The returned command yields a
// BackResolvedMsg which must be passed to ResolveBack. A second request while one is in
// flight is absorbed so a single press is never consumed twice. It panics if no router
// is mounted.
func (b *Bridge) HandleBack() tea.Cmd {
	if b.disposed {
		b.log.Debug("back ignored after unmount")
		return nil
	}
	if b.router == nil {
		panic("shell: back request before a router is mounted")
	}
	if b.backInFlight {
		b.log.Debug("back ignored, previous request still pending")
		return nil
	}
	b.backInFlight = true
	router, ctx := b.router, b.ctx
	return func() tea.Msg {
		consumed, err := router.MaybePop(ctx)
		return BackResolvedMsg{Consumed: consumed, Err: err}
	}
}

// ResolveBack applies a back result and reports whether the request was consumed.
// Errors count as consumed so a failed query never falls through to the platform
// default. Results arriving after Unmount are ignored.
func (b *Bridge) ResolveBack(msg BackResolvedMsg) bool {
	b.backInFlight = false
	if b.disposed {
		return true
	}
	if msg.Err != nil {
		b.log.Warn("back query failed", zap.Error(msg.Err))
		return true
	}
	if msg.Consumed {
		b.MarkNeedsBuild()
	}
	return msg.Consumed
}

// BackPending reports whether a back query is in flight.
func (b *Bridge) BackPending() bool { return b.backInFlight }

// PushRoute forwards name to the router. It always reports the request as consumed and
// does not wait for the page to settle.
func (b *Bridge) PushRoute(name string) bool {
	if b.disposed {
		b.log.Debug("push ignored after unmount", zap.String("route", name))
		return true
	}
	if b.router == nil {
		b.log.Warn("push before a router is mounted", zap.String("route", name))
		return true
	}
	b.router.PushNamed(name)
	b.MarkNeedsBuild()
	return true
}

// ChangeLocale re-resolves candidate and reports whether the locale changed. Nothing is
// rebuilt when the resolved locale is unchanged.
func (b *Bridge) ChangeLocale(candidate locale.Locale) bool {
	if b.disposed {
		return false
	}
	resolved := locale.Resolve(candidate, b.supported, b.resolve)
	if resolved == b.current {
		return false
	}
	b.log.Info("locale changed", zap.Stringer("from", b.current), zap.Stringer("to", resolved))
	b.current = resolved
	b.MarkNeedsBuild()
	return true
}

// ChangeMetrics always schedules a rebuild; composition reads the live metrics.
func (b *Bridge) ChangeMetrics() {
	b.MarkNeedsBuild()
}

func (b *Bridge) MemoryPressure(heapBytes uint64) {
	if b.disposed || b.hooks.MemoryPressure == nil {
		return
	}
	b.hooks.MemoryPressure(heapBytes)
}

func (b *Bridge) ChangeLifecycle(state platform.AppLifecycleState) {
	if b.disposed || b.hooks.LifecycleChange == nil {
		return
	}
	b.hooks.LifecycleChange(state)
}
