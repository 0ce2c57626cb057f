package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"food-menu/internal/logger"
)

const defaultStepTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type component struct {
	name string
	impl Shutdownable
}

type Manager struct {
	components  []component
	logger      logger.Logger
	stepTimeout time.Duration
	mu          sync.Mutex
	done        chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Manager{
		logger:      log,
		stepTimeout: defaultStepTimeout,
		done:        make(chan struct{}),
	}
}

// Register adds a component. Components shut down in reverse registration order.
func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component{name: name, impl: c})
}

// Listen runs onSignal after Shutdown when SIGINT or SIGTERM arrives.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.impl.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": c.name,
			})
		case <-time.After(m.stepTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": c.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
