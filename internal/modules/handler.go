package modules

import "context"

// Handler is the generic handler module. It is submitted to the job
// registry with a fully merged datastore (payload defaults, target
// overrides, fixed handler fields) and runs until stopped.
type Handler struct {
	base
}

func newHandler() Module {
	b := newBase("generic/handler", KindHandler, "Waits for and services an incoming payload connection")
	b.ds.Set(KeyRunAsJob, "true")
	b.ds.Set(KeyExitOnSession, "false")
	b.ds.Set(KeyLocalInput, "console")
	b.ds.Set(KeyLocalOutput, "console")
	return &Handler{b}
}

// Run blocks until ctx is cancelled. Actual wire transport is owned by
// collaborators outside this process; from the registry's point of view
// the handler is simply a long-running background task.
func (h *Handler) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

var _ Runner = (*Handler)(nil)
