package driver

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/loop"
)

// Registry errors.
var (
	// ErrNotRegistered is returned when a requested driver is not registered.
	ErrNotRegistered = errors.New("driver: not registered")

	// ErrNoDrivers is returned when no driver is registered at all.
	ErrNoDrivers = errors.New("driver: no drivers registered")
)

// Factory creates a driver for windows with the given attributes.
type Factory func(attrs loop.WindowAttributes) (loop.Driver, error)

// Entry is a registered driver and the renderer construction for it.
type Entry struct {
	New       Factory
	Construct engine.Construct
}

// registry holds registered drivers.
var (
	registryMu sync.RWMutex
	entries    = make(map[string]Entry)
	// Priority order for driver selection (first available wins).
	// A GPU window beats a terminal, which beats no window at all.
	driverPriority = []string{"gogpu", "web", "term", "headless"}
)

// Register makes a driver available under name, replacing any earlier
// entry. Driver packages call it from init(). It panics if e lacks a
// factory or a renderer construction, so a broken driver fails at start
// up rather than when selected.
func Register(name string, e Entry) {
	if e.New == nil || e.Construct == nil {
		panic(fmt.Sprintf("driver: Register %q with incomplete entry", name))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	entries[name] = e
}

// Unregister removes name. Tests use it to isolate the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(entries, name)
}

// Available returns the registered driver names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return namesLocked()
}

// Get returns the entry registered under name.
func Get(name string) (Entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := entries[name]
	return e, ok
}

// Default picks the first registered driver in priority order, or the
// alphabetically first name when none of the known drivers is linked in.
func Default() (string, Entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range driverPriority {
		if e, ok := entries[name]; ok {
			return name, e, true
		}
	}
	names := namesLocked()
	if len(names) == 0 {
		return "", Entry{}, false
	}
	return names[0], entries[names[0]], true
}

func namesLocked() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options builds engine options for the named driver. An empty name
// selects Default().
func Options(name string, attrs loop.WindowAttributes) ([]engine.Option, error) {
	var (
		e  Entry
		ok bool
	)
	if name == "" {
		name, e, ok = Default()
		if !ok {
			return nil, ErrNoDrivers
		}
	} else if e, ok = Get(name); !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrNotRegistered, name, Available())
	}

	attrs = attrs.WithDefaults()
	d, err := e.New(attrs)
	if err != nil {
		return nil, fmt.Errorf("driver: %s: %w", name, err)
	}
	return []engine.Option{
		engine.WithDriver(d),
		engine.WithConstruct(e.Construct),
		engine.WithWindow(attrs),
	}, nil
}
