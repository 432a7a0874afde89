package platform

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/appshell/internal/locale"
)

// WatchConfig configures the process-level producers.
type WatchConfig struct {
	// DeepLinkFile is read on SIGUSR1; its first line is pushed as a route.
	DeepLinkFile string
	// MemoryThreshold in bytes; zero disables the sampler.
	MemoryThreshold uint64
	MemoryInterval  time.Duration
	Getenv          func(string) string
	Logger          *zap.Logger
}

// Watch starts the signal and memory producers. Events are delivered through send,
// usually (*tea.Program).Send. Producers stop when ctx is done.
func Watch(ctx context.Context, cfg WatchConfig, send func(tea.Msg)) {
	if cfg.Getenv == nil {
		cfg.Getenv = os.Getenv
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	log := cfg.Logger.Named("platform")

	sigs := make(chan os.Signal, 4)
	signal.Notify(sigs, syscall.SIGHUP, syscall.SIGUSR1)
	go func() {
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigs:
				if ev, ok := signalEvent(sig, cfg, log); ok {
					send(ev)
				}
			}
		}
	}()

	if cfg.MemoryThreshold > 0 {
		interval := cfg.MemoryInterval
		if interval <= 0 {
			interval = 5 * time.Second
		}
		go sampleMemory(ctx, interval, cfg.MemoryThreshold, readHeap, send)
	}
}

func signalEvent(sig os.Signal, cfg WatchConfig, log *zap.Logger) (any, bool) {
	switch sig {
	case syscall.SIGHUP:
		raw := localeFromEnv(cfg.Getenv)
		l, err := locale.Detect(cfg.Getenv)
		if err != nil {
			log.Warn("locale change ignored", zap.Error(err))
			return nil, false
		}
		return LocaleChange{Raw: raw, Locale: l}, true
	case syscall.SIGUSR1:
		route, err := ReadDeepLink(cfg.DeepLinkFile)
		if err != nil {
			log.Warn("deep link ignored", zap.String("file", cfg.DeepLinkFile), zap.Error(err))
			return nil, false
		}
		if route == "" {
			return nil, false
		}
		return PushRoute{Route: route}, true
	}
	return nil, false
}

func localeFromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// ReadDeepLink returns the first non-empty line of path.
func ReadDeepLink(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", nil
}

func readHeap() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc
}

// sampleMemory sends MemoryPressure each time the heap crosses threshold upward.
func sampleMemory(ctx context.Context, interval time.Duration, threshold uint64, heap func() uint64, send func(tea.Msg)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	above := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h := heap()
			if h >= threshold && !above {
				send(MemoryPressure{HeapBytes: h})
			}
			above = h >= threshold
		}
	}
}
