package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ini-generator/internal/logger"
)

const managerComponent = "ShutdownManager"

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
	sigChan    chan os.Signal
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		timeout:    10 * time.Second,
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen runs onSignal when SIGINT or SIGTERM arrives. onSignal is expected
// to stop the event loop; Shutdown runs once the loop returns.
func (m *Manager) Listen(onSignal func()) {
	m.sigChan = make(chan os.Signal, 1)
	signal.Notify(m.sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-m.sigChan:
			m.logger.Info(managerComponent, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			onSignal()
		case <-m.ctx.Done():
		}
	}()
}

// Shutdown stops registered components in reverse order. Only the first call
// does any work.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	if m.sigChan != nil {
		signal.Stop(m.sigChan)
	}

	m.logger.Info(managerComponent, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			component.Shutdown()
		}()

		select {
		case <-done:
		case <-time.After(m.timeout):
			m.logger.Warning(managerComponent, "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info(managerComponent, "shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
