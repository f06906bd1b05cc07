package modules

// Datastore is an ordered string key/value store holding a module's
// configuration. Keys keep their insertion order so rendered option
// listings are stable across runs.
type Datastore struct {
	keys []string
	vals map[string]string
}

// NewDatastore creates an empty Datastore.
func NewDatastore() *Datastore {
	return &Datastore{vals: make(map[string]string)}
}

// Set stores a value under key, appending the key on first use.
func (d *Datastore) Set(key, value string) {
	if _, exists := d.vals[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = value
}

// Get returns the value for key and whether the key is present.
func (d *Datastore) Get(key string) (string, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Has reports whether key is present, regardless of its value.
func (d *Datastore) Has(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Keys returns the keys in insertion order.
func (d *Datastore) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of stored keys.
func (d *Datastore) Len() int {
	return len(d.keys)
}

// Copy returns an independent copy of the Datastore.
func (d *Datastore) Copy() *Datastore {
	out := NewDatastore()
	for _, k := range d.keys {
		out.Set(k, d.vals[k])
	}
	return out
}

// MergeFrom copies every key from other into d, overwriting on conflict.
func (d *Datastore) MergeFrom(other *Datastore) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		d.Set(k, other.vals[k])
	}
}

// Overlay merges the given layers into a new Datastore. Later layers win
// on key conflict; earlier layers supply keys absent from later ones.
func Overlay(layers ...*Datastore) *Datastore {
	out := NewDatastore()
	for _, layer := range layers {
		out.MergeFrom(layer)
	}
	return out
}
