package modules

// Factory constructs payload, encoder, and handler module instances by name.
// Create methods return nil when no module matches; callers decide whether
// that is fatal.
type Factory interface {
	CreatePayload(name string) Module
	CreateEncoder(name string) Module
	CreateHandler() Module
}

// Catalog is the builtin Factory. Each lookup constructs a fresh instance
// so one launch cannot leak option overrides into the next.
type Catalog struct {
	payloads map[string]func() Module
	encoders map[string]func() Module
}

// NewCatalog creates a Catalog holding the builtin module set.
func NewCatalog() *Catalog {
	return &Catalog{
		payloads: map[string]func() Module{
			"shell/reverse_tcp":    newReverseShellPayload,
			"shell/bind_tcp":       newBindShellPayload,
			"staged/reverse_https": newStagedReversePayload,
		},
		encoders: map[string]func() Module{
			"base64": func() Module { return newEncoder("base64", "Base64 stage encoder") },
			"xor":    func() Module { return newXOREncoder() },
		},
	}
}

// CreatePayload returns a new instance of the named payload, or nil if the
// name is not in the catalog.
func (c *Catalog) CreatePayload(name string) Module {
	ctor, ok := c.payloads[name]
	if !ok {
		return nil
	}
	return ctor()
}

// CreateEncoder returns a new instance of the named encoder, or nil if the
// name is not in the catalog.
func (c *Catalog) CreateEncoder(name string) Module {
	ctor, ok := c.encoders[name]
	if !ok {
		return nil
	}
	return ctor()
}

// CreateHandler returns a new generic handler instance.
func (c *Catalog) CreateHandler() Module {
	return newHandler()
}

// PayloadNames returns the catalog's payload names, unordered.
func (c *Catalog) PayloadNames() []string {
	names := make([]string, 0, len(c.payloads))
	for name := range c.payloads {
		names = append(names, name)
	}
	return names
}

func newReverseShellPayload() Module {
	b := newBase("shell/reverse_tcp", KindPayload, "Command shell, reverse TCP connect-back")
	b.ds.Set(KeyLocalHost, "")
	b.ds.Set(KeyLocalPort, "4444")
	return &payload{b}
}

func newStagedReversePayload() Module {
	b := newBase("staged/reverse_https", KindPayload, "Staged payload, reverse HTTPS connect-back")
	b.ds.Set(KeyLocalHost, "")
	b.ds.Set(KeyLocalPort, "8443")
	return &payload{b}
}

func newBindShellPayload() Module {
	b := newBase("shell/bind_tcp", KindPayload, "Command shell, bind TCP listener on the target")
	b.ds.Set(KeyRemoteHost, "")
	b.ds.Set(KeyRemotePort, "4444")
	return &payload{b}
}

type payload struct {
	base
}

func newEncoder(name, desc string) Module {
	b := newBase(name, KindEncoder, desc)
	return &encoder{b}
}

func newXOREncoder() Module {
	b := newBase("xor", KindEncoder, "Single-byte XOR stage encoder")
	b.ds.Set("XORKey", "0xaa")
	return &encoder{b}
}

type encoder struct {
	base
}
