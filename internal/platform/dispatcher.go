package platform

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/appshell/internal/locale"
)

var ErrAlreadySubscribed = errors.New("platform: source already has a subscriber")

// Handlers is the callback table of a subscriber. Nil entries ignore their event.
// Each handler may return a command to run after it.
type Handlers struct {
	Back           func() tea.Cmd
	PushRoute      func(route string) tea.Cmd
	LocaleChange   func(l locale.Locale) tea.Cmd
	MetricsChange  func(width, height int) tea.Cmd
	MemoryPressure func(heapBytes uint64) tea.Cmd
	Lifecycle      func(state AppLifecycleState) tea.Cmd
}

// Source is a platform event source with a single subscriber.
type Source interface {
	Subscribe(h Handlers) (Subscription, error)
}

// Subscription is an active registration on a Source.
type Subscription interface {
	Unsubscribe()
}

// Dispatcher is a Source fed by Dispatch. Dispatch is called from the program's update
// loop, so handlers run one at a time in delivery order.
type Dispatcher struct {
	mu      sync.Mutex
	current *subscription
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

type subscription struct {
	d        *Dispatcher
	handlers Handlers
}

func (s *subscription) Unsubscribe() {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.current == s {
		s.d.current = nil
	}
}

func (d *Dispatcher) Subscribe(h Handlers) (Subscription, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current != nil {
		return nil, ErrAlreadySubscribed
	}
	d.current = &subscription{d: d, handlers: h}
	return d.current, nil
}

// Subscribed reports whether a subscriber is registered.
func (d *Dispatcher) Subscribed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current != nil
}

// Dispatch delivers ev to the subscriber. It reports false when there is no subscriber
// or ev is not a platform event.
func (d *Dispatcher) Dispatch(ev any) (tea.Cmd, bool) {
	d.mu.Lock()
	sub := d.current
	d.mu.Unlock()
	if sub == nil {
		return nil, false
	}
	h := sub.handlers

	switch ev := ev.(type) {
	case BackRequest:
		if h.Back != nil {
			return h.Back(), true
		}
	case PushRoute:
		if h.PushRoute != nil {
			return h.PushRoute(ev.Route), true
		}
	case LocaleChange:
		if h.LocaleChange != nil {
			return h.LocaleChange(ev.Locale), true
		}
	case MetricsChange:
		if h.MetricsChange != nil {
			return h.MetricsChange(ev.Width, ev.Height), true
		}
	case MemoryPressure:
		if h.MemoryPressure != nil {
			return h.MemoryPressure(ev.HeapBytes), true
		}
	case LifecycleChange:
		if h.Lifecycle != nil {
			return h.Lifecycle(ev.State), true
		}
	default:
		return nil, false
	}
	return nil, true
}
