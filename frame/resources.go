package frame

import (
	"fmt"
	"reflect"
)

// Resources holds one shared value per type for systems to reach through Resource fields.
// The game session, the key bindings and the like live here.
type Resources struct {
	values map[reflect.Type]any
}

// NewResources creates an empty store.
func NewResources() *Resources {
	return &Resources{values: make(map[reflect.Type]any)}
}

// Provide stores v as the T resource, replacing any previous one.
func Provide[T any](r *Resources, v *T) {
	if v == nil {
		panic(fmt.Sprintf("frame: nil %v resource", reflect.TypeFor[T]()))
	}
	r.values[reflect.TypeFor[T]()] = v
}

// Lookup returns the T resource, or nil when none was provided.
func Lookup[T any](r *Resources) *T {
	if r == nil {
		return nil
	}
	v, ok := r.values[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return v.(*T)
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.values)
}

// Resource is a system field that resolves to a shared value. The Scheduler initializes
// Resource fields when the system is registered.
type Resource[T any] struct {
	resources *Resources
}

// Init binds the field to a store. Register calls it.
func (r *Resource[T]) Init(resources *Resources) {
	r.resources = resources
}

// Get returns the current value, or nil if it has not been provided.
func (r *Resource[T]) Get() *T {
	return Lookup[T](r.resources)
}

// MustGet is Get but panics when the resource is missing.
func (r *Resource[T]) MustGet() *T {
	v := r.Get()
	if v == nil {
		panic(fmt.Sprintf("frame: resource %v not provided", reflect.TypeFor[T]()))
	}
	return v
}
