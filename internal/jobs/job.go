// Package jobs tracks long-running background tasks inside the host
// process. The Registry interface is the narrow surface the console uses;
// Manager is the in-process implementation that actually runs modules.
package jobs

import (
	"context"
	"time"

	"github.com/warden-sh/warden-cli/internal/modules"
)

// Job is a registry-tracked handle to a running background task.
//
// The identifier is registry-assigned and immutable; the name is mutable
// via Registry.Rename. The underlying execution context is owned by the
// registry and never interpreted by callers.
type Job struct {
	// ID uniquely identifies this job within the registry.
	ID int

	// Name is the display name. Defaults to the module name at submission.
	Name string

	// Info is a short human-readable summary of what the job is doing,
	// set once at submission (e.g. payload and target).
	Info string

	// StartedAt is when the registry accepted the job.
	StartedAt time.Time

	module modules.Module
	cancel context.CancelFunc
}

// Module returns the module instance this job is running.
func (j *Job) Module() modules.Module {
	return j.module
}

// Registry is the job registry surface consumed by the console. All calls
// are synchronous with respect to acknowledgment: Stop returns once the
// job is removed from the registry, not once the underlying task has
// finished shutting down.
type Registry interface {
	// Get returns the job with the given id, or ErrJobNotFound.
	Get(id int) (*Job, error)

	// Exists reports whether a job with the given id is registered.
	Exists(id int) bool

	// IDs returns all registered job identifiers in ascending order.
	IDs() []int

	// Stop cancels and removes the job with the given id, or returns
	// ErrJobNotFound. Stopping an already-removed id is not fatal to
	// batch callers; they report it and continue.
	Stop(id int) error

	// Rename changes the display name of the job with the given id in
	// place, or returns ErrJobNotFound.
	Rename(id int, name string) error

	// Submit registers mod as a new job and returns the assigned id.
	// If mod implements modules.Runner it is started in the background.
	Submit(mod modules.Module, info string) (int, error)
}
