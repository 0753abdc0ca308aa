package fuzztests

import "rattle/internal/target"

// newRegistryWith builds a registry holding a single no-op function handle
// under the given pair.
func newRegistryWith(namespace, attr string) *target.Registry {
	reg := target.NewRegistry()
	reg.Register(namespace, attr, target.FuncHandle(func(target.Input) error { return nil }))
	return reg
}
