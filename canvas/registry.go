package canvas

import (
	"fmt"
	"slices"
	"sync"
)

// Factory creates a fresh, unopened canvas.
type Factory func() Canvas

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a backend available by name. Backend packages call it
// from init, the way database/sql drivers register themselves:
//
//	import _ "github.com/gogpu/easel/canvas/soft"
//
// Register panics if factory is nil or the name is taken.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("canvas: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("canvas: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend. It is mostly useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a canvas from the backend registered under name.
func New(name string) (Canvas, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("canvas: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
