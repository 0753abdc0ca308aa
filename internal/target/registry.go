package target

// Registry maps namespace identifiers to the attributes a collaborator
// toolchain exposes. It stands in for dynamic import: a namespace is
// "importable" when some package registered it, and an attribute is "present"
// when that registration named it.
type Registry struct {
	spaces map[string]map[string]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{spaces: make(map[string]map[string]Handle)}
}

// Register binds an attribute in a namespace to a handle. Invalid handles are
// ignored so a half-initialized collaborator cannot poison resolution. Later
// registrations of the same (namespace, attribute) pair win.
func (r *Registry) Register(namespace, attr string, h Handle) {
	if namespace == "" || attr == "" || !h.Valid() {
		return
	}
	space, ok := r.spaces[namespace]
	if !ok {
		space = make(map[string]Handle)
		r.spaces[namespace] = space
	}
	space[attr] = h
}

// Lookup returns the handle bound to (namespace, attr), if any.
func (r *Registry) Lookup(namespace, attr string) (Handle, bool) {
	space, ok := r.spaces[namespace]
	if !ok {
		return Handle{}, false
	}
	h, ok := space[attr]
	return h, ok
}

// Default is the process-wide registry collaborator packages register into.
var Default = NewRegistry()
