// Package lifecycle coordinates startup hooks, shutdown hooks, and
// readiness across the service's subsystems.
package lifecycle

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ReadinessChecker reports whether a subsystem is ready to serve traffic.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator manages startup and shutdown hooks for the application lifecycle.
type Coordinator struct {
	ctx        context.Context
	cancel     context.CancelFunc
	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup

	mu      sync.RWMutex
	started bool
	checks  map[string]ReadinessChecker
}

// New creates a Coordinator with a cancellable context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
		checks: make(map[string]ReadinessChecker),
	}
}

// Context returns the coordinator's context, cancelled on shutdown.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup registers a function to run concurrently during startup.
func (c *Coordinator) OnStartup(fn func()) {
	c.startupWg.Go(fn)
}

// OnShutdown registers a function to run concurrently during shutdown.
// Shutdown hooks should block on <-c.Context().Done() before executing cleanup.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Go(fn)
}

// AddCheck registers a named subsystem whose readiness gates Ready.
func (c *Coordinator) AddCheck(name string, check ReadinessChecker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Ready returns true once all startup hooks have completed and every
// registered check reports ready.
func (c *Coordinator) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.started {
		return false
	}
	for _, check := range c.checks {
		if !check.Ready() {
			return false
		}
	}
	return true
}

// Pending returns the sorted names of registered checks not yet ready.
func (c *Coordinator) Pending() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var pending []string
	for name, check := range c.checks {
		if !check.Ready() {
			pending = append(pending, name)
		}
	}
	slices.Sort(pending)
	return pending
}

// WaitForStartup blocks until all startup hooks have completed.
func (c *Coordinator) WaitForStartup() {
	c.startupWg.Wait()
	c.mu.Lock()
	c.started = true
	c.mu.Unlock()
}

// Shutdown cancels the context and waits for shutdown hooks to complete
// within the given timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
