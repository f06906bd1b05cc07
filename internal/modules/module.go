// Package modules provides the configurable units launched and managed by
// the Warden console: payloads, stage encoders, and the generic handler.
//
// Modules are opaque configuration-bearing objects. Each carries a
// Datastore of options seeded with the module's defaults; the console
// inspects and overrides those options but never interprets what a module
// does with them at runtime.
package modules

import (
	"context"

	"github.com/google/uuid"
)

// Kind classifies a module.
type Kind string

const (
	KindPayload Kind = "payload"
	KindEncoder Kind = "encoder"
	KindHandler Kind = "handler"
)

// Well-known datastore keys. Payloads expose exactly one of the host pair
// and one of the port pair, depending on connection direction.
const (
	KeyLocalHost  = "LHOST"
	KeyLocalPort  = "LPORT"
	KeyRemoteHost = "RHOST"
	KeyRemotePort = "RPORT"

	KeyPayload             = "PAYLOAD"
	KeyStageEncoder        = "StageEncoder"
	KeyEnableStageEncoding = "EnableStageEncoding"
	KeyExitOnSession       = "ExitOnSession"
	KeyRunAsJob            = "RunAsJob"
	KeyLocalInput          = "LocalInput"
	KeyLocalOutput         = "LocalOutput"
)

// Module is a named, configuration-bearing unit.
type Module interface {
	// Name returns the catalog name, e.g. "shell/reverse_tcp".
	Name() string

	// Kind returns the module classification.
	Kind() Kind

	// Description returns a one-line summary for listings.
	Description() string

	// InstanceID uniquely identifies this constructed instance.
	InstanceID() string

	// Datastore returns the module's mutable option store.
	Datastore() *Datastore
}

// Runner is implemented by modules that do work when launched as a job.
// Run blocks until the work completes or ctx is cancelled.
type Runner interface {
	Run(ctx context.Context) error
}

// base is the common implementation backing all builtin modules.
type base struct {
	name string
	kind Kind
	desc string
	id   string
	ds   *Datastore
}

func newBase(name string, kind Kind, desc string) base {
	return base{
		name: name,
		kind: kind,
		desc: desc,
		id:   uuid.NewString(),
		ds:   NewDatastore(),
	}
}

func (b *base) Name() string          { return b.name }
func (b *base) Kind() Kind            { return b.kind }
func (b *base) Description() string   { return b.desc }
func (b *base) InstanceID() string    { return b.id }
func (b *base) Datastore() *Datastore { return b.ds }
