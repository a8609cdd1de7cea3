package text

import (
	"fmt"
	"sort"
	"sync"
)

// MeasurerFactory creates a new measurer. Factories are registered via
// RegisterMeasurer and called by NewMeasurer.
type MeasurerFactory func() (Measurer, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	measurers  = make(map[string]MeasurerFactory)
)

func init() {
	RegisterMeasurer("face", func() (Measurer, error) {
		return NewFaceMeasurer()
	})
	RegisterMeasurer("shaping", func() (Measurer, error) {
		faces, err := NewFaceMeasurer()
		if err != nil {
			return nil, err
		}
		return NewShapingMeasurer(faces, ""), nil
	})
}

// RegisterMeasurer registers a measurer factory with the given name.
// Platform adapters call it from init() to make their measurer selectable
// by name:
//
//	func init() {
//	    text.RegisterMeasurer("skia", newSkiaMeasurer)
//	}
//
// RegisterMeasurer panics if factory is nil or if a measurer with the same
// name is already registered.
func RegisterMeasurer(name string, factory MeasurerFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("text: RegisterMeasurer factory is nil")
	}
	if _, dup := measurers[name]; dup {
		panic("text: RegisterMeasurer called twice for " + name)
	}
	measurers[name] = factory
}

// UnregisterMeasurer removes a measurer from the registry. If the name is
// not registered, this is a no-op.
func UnregisterMeasurer(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(measurers, name)
}

// NewMeasurer creates a measurer by name. The built-in names are "face"
// (FaceMeasurer) and "shaping" (ShapingMeasurer), both over the Go fonts.
func NewMeasurer(name string) (Measurer, error) {
	registryMu.RLock()
	factory, ok := measurers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownMeasurer, name)
	}
	return factory()
}

// Measurers returns the sorted names of all registered measurers.
func Measurers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(measurers))
	for name := range measurers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
