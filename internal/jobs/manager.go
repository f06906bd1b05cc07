package jobs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warden-sh/warden-cli/internal/modules"
)

// Manager is the in-process Registry implementation.
//
// NOTE: The jobs map only shrinks when jobs are stopped or exit on their
// own. Handler jobs run until stopped, so for a single operator session
// that's fine; there is no persistence and no cross-process state.
type Manager struct {
	jobs map[int]*Job
	next int

	mu sync.Mutex
}

// NewManager creates an empty Manager. The first submitted job gets id 0.
func NewManager() *Manager {
	return &Manager{jobs: make(map[int]*Job)}
}

// Submit registers mod as a new job and returns the assigned id. If mod
// implements modules.Runner, it is started in a background goroutine and
// deregisters itself if it returns before being stopped.
func (m *Manager) Submit(mod modules.Module, info string) (int, error) {
	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	id := m.next
	m.next++
	job := &Job{
		ID:        id,
		Name:      mod.Name(),
		Info:      info,
		StartedAt: time.Now(),
		module:    mod,
		cancel:    cancel,
	}
	m.jobs[id] = job
	m.mu.Unlock()

	if runner, ok := mod.(modules.Runner); ok {
		go func() {
			// Run blocks until the job finishes or Stop cancels it.
			_ = runner.Run(ctx)
			m.remove(id)
		}()
	}

	return id, nil
}

// Get returns the job with the given id or ErrJobNotFound.
func (m *Manager) Get(id int) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[id]
	if !exists {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Exists reports whether a job with the given id is registered.
func (m *Manager) Exists(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.jobs[id]
	return exists
}

// IDs returns all registered job identifiers in ascending order.
func (m *Manager) IDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int, 0, len(m.jobs))
	for id := range m.jobs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Stop cancels and deregisters the job with the given id. It returns once
// the job is removed from the registry; it does not wait for the
// underlying task to finish shutting down.
func (m *Manager) Stop(id int) error {
	m.mu.Lock()
	job, exists := m.jobs[id]
	if exists {
		delete(m.jobs, id)
	}
	m.mu.Unlock()

	if !exists {
		return ErrJobNotFound
	}

	job.cancel()
	return nil
}

// Rename changes the display name of the job with the given id in place.
func (m *Manager) Rename(id int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[id]
	if !exists {
		return ErrJobNotFound
	}
	job.Name = name
	return nil
}

// Shutdown stops every registered job. Best effort: jobs that already
// exited are skipped.
func (m *Manager) Shutdown() {
	for _, id := range m.IDs() {
		_ = m.Stop(id)
	}
}

// remove deregisters a job that exited on its own. Idempotent with Stop.
func (m *Manager) remove(id int) {
	m.mu.Lock()
	delete(m.jobs, id)
	m.mu.Unlock()
}

var _ Registry = (*Manager)(nil)
