package console

import (
	"errors"
	"fmt"

	"github.com/warden-sh/warden-cli/internal/jobs"
	"github.com/warden-sh/warden-cli/internal/modules"
)

// HandlerRequest is the fully-specified input for launching a handler job.
// Payload, Host, and Port are required; the rest are optional.
type HandlerRequest struct {
	Payload       string
	Host          string
	Port          string
	Encoder       string
	JobName       string
	ExitOnSession bool
}

// Builder turns a HandlerRequest into a submitted handler job. It owns
// target-field resolution and the configuration overlay merge; the
// registry and module factory are injected collaborators.
type Builder struct {
	factory  modules.Factory
	registry jobs.Registry

	// warnf reports non-fatal launch diagnostics (encoder resolution
	// failure). Defaults to discarding when nil.
	warnf func(format string, args ...any)
}

// NewBuilder creates a Builder over the given collaborators.
func NewBuilder(factory modules.Factory, registry jobs.Registry, warnf func(format string, args ...any)) *Builder {
	return &Builder{factory: factory, registry: registry, warnf: warnf}
}

// targetCandidates maps a target field to the datastore keys that may
// carry it, in resolution order. Adding a third key convention is a new
// entry here, not a new conditional in Launch.
var targetCandidates = []struct {
	field string
	keys  []string
}{
	{field: "host", keys: []string{modules.KeyLocalHost, modules.KeyRemoteHost}},
	{field: "port", keys: []string{modules.KeyLocalPort, modules.KeyRemotePort}},
}

// Launch validates, assembles, and submits a handler job, returning the
// registry-assigned job id.
//
// Every missing required field is collected and reported in one batch
// before any module resolution is attempted. An encoder that fails to
// resolve only produces a warning; the launch proceeds without stage
// encoding. No registry mutation happens on any failure path.
func (b *Builder) Launch(req HandlerRequest) (int, error) {
	var missing []string
	if req.Payload == "" {
		missing = append(missing, "payload (-p)")
	}
	if req.Host == "" {
		missing = append(missing, "host (-H)")
	}
	if req.Port == "" {
		missing = append(missing, "port (-P)")
	}
	if len(missing) > 0 {
		return 0, MissingOptionsError{Options: missing}
	}

	payload := b.factory.CreatePayload(req.Payload)
	if payload == nil {
		return 0, UnknownPayloadError{Name: req.Payload}
	}

	// Resolve which datastore key receives each target value. The host
	// and port resolutions are independent; both failures are reported.
	values := map[string]string{"host": req.Host, "port": req.Port}
	overrides := modules.NewDatastore()
	var unresolved []error
	for _, candidate := range targetCandidates {
		key, ok := resolveTargetKey(payload.Datastore(), candidate.keys)
		if !ok {
			unresolved = append(unresolved, UnresolvableTargetError{Field: candidate.field})
			continue
		}
		overrides.Set(key, values[candidate.field])
	}
	if len(unresolved) > 0 {
		return 0, errors.Join(unresolved...)
	}

	if req.Encoder != "" {
		if enc := b.factory.CreateEncoder(req.Encoder); enc != nil {
			overrides.Set(modules.KeyEnableStageEncoding, "true")
			overrides.Set(modules.KeyStageEncoder, enc.Name())
		} else {
			b.warn("encoder %q did not resolve, launching without stage encoding", req.Encoder)
		}
	}

	fixed := modules.NewDatastore()
	fixed.Set(modules.KeyExitOnSession, fmt.Sprintf("%t", req.ExitOnSession))
	fixed.Set(modules.KeyRunAsJob, "true")
	fixed.Set(modules.KeyLocalInput, "console")
	fixed.Set(modules.KeyLocalOutput, "console")

	handler := b.factory.CreateHandler()
	handler.Datastore().MergeFrom(modules.Overlay(payload.Datastore(), overrides, fixed))
	handler.Datastore().Set(modules.KeyPayload, payload.Name())

	info := fmt.Sprintf("%s on %s:%s", payload.Name(), req.Host, req.Port)
	id, err := b.registry.Submit(handler, info)
	if err != nil {
		return 0, fmt.Errorf("submit handler: %w", err)
	}

	if req.JobName != "" {
		if err := b.registry.Rename(id, req.JobName); err != nil {
			return id, fmt.Errorf("rename job %d: %w", id, err)
		}
	}

	return id, nil
}

func (b *Builder) warn(format string, args ...any) {
	if b.warnf != nil {
		b.warnf(format, args...)
	}
}

// resolveTargetKey returns the first candidate key the payload exposes.
func resolveTargetKey(ds *modules.Datastore, keys []string) (string, bool) {
	for _, key := range keys {
		if ds.Has(key) {
			return key, true
		}
	}
	return "", false
}
