package driver_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/driver"
	"github.com/gogpu/engine/driver/headless"
	"github.com/gogpu/engine/loop"
)

// register adds e under name for the duration of the test, restoring
// whatever was registered before.
func register(t *testing.T, name string, e driver.Entry) {
	t.Helper()
	prev, had := driver.Get(name)
	driver.Register(name, e)
	t.Cleanup(func() {
		if had {
			driver.Register(name, prev)
		} else {
			driver.Unregister(name)
		}
	})
}

// unregister removes name for the duration of the test.
func unregister(t *testing.T, name string) {
	t.Helper()
	prev, had := driver.Get(name)
	driver.Unregister(name)
	t.Cleanup(func() {
		if had {
			driver.Register(name, prev)
		}
	})
}

func fakeEntry(d loop.Driver, err error) driver.Entry {
	return driver.Entry{
		New: func(loop.WindowAttributes) (loop.Driver, error) {
			return d, err
		},
		Construct: engine.Build(headless.NewRenderer),
	}
}

func TestHeadlessRegisteredByImport(t *testing.T) {
	e, ok := driver.Get(headless.Name)
	if !ok {
		t.Fatalf("%q not registered, available: %v", headless.Name, driver.Available())
	}
	if e.New == nil || e.Construct == nil {
		t.Errorf("Get(%q) = %+v, %v; want a complete entry", headless.Name, e, ok)
	}
}

func TestRegisterUnregister(t *testing.T) {
	register(t, "zz-test", fakeEntry(headless.New(), nil))
	if _, ok := driver.Get("zz-test"); !ok {
		t.Fatal("registered driver not found")
	}
	if !slices.Contains(driver.Available(), "zz-test") {
		t.Errorf("Available() = %v, missing zz-test", driver.Available())
	}

	driver.Unregister("zz-test")
	if _, ok := driver.Get("zz-test"); ok {
		t.Error("Get() found an unregistered driver")
	}
	if slices.Contains(driver.Available(), "zz-test") {
		t.Errorf("Available() = %v, still lists zz-test", driver.Available())
	}
}

func TestRegisterIncompleteEntryPanics(t *testing.T) {
	tests := []struct {
		name  string
		entry driver.Entry
	}{
		{"no factory", driver.Entry{Construct: engine.Build(headless.NewRenderer)}},
		{"no construct", driver.Entry{New: fakeEntry(headless.New(), nil).New}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
				if _, ok := driver.Get("incomplete"); ok {
					t.Error("incomplete entry was registered")
				}
			}()
			driver.Register("incomplete", tt.entry)
		})
	}
}

func TestAvailableSorted(t *testing.T) {
	register(t, "b-test", fakeEntry(headless.New(), nil))
	register(t, "a-test", fakeEntry(headless.New(), nil))

	got := driver.Available()
	if !slices.IsSorted(got) {
		t.Errorf("Available() = %v, not sorted", got)
	}
}

func TestDefaultPriority(t *testing.T) {
	for _, name := range driver.Available() {
		unregister(t, name)
	}
	if _, _, ok := driver.Default(); ok {
		t.Fatal("Default() found a driver in an empty registry")
	}

	register(t, "zeta", fakeEntry(headless.New(), nil))
	register(t, "alpha", fakeEntry(headless.New(), nil))
	if name, _, _ := driver.Default(); name != "alpha" {
		t.Errorf("Default() without known drivers = %q, want alphabetical first %q", name, "alpha")
	}

	register(t, "headless", fakeEntry(headless.New(), nil))
	if name, _, _ := driver.Default(); name != "headless" {
		t.Errorf("Default() = %q, want headless", name)
	}

	register(t, "term", fakeEntry(headless.New(), nil))
	if name, _, _ := driver.Default(); name != "term" {
		t.Errorf("Default() = %q, want term over headless", name)
	}

	register(t, "gogpu", fakeEntry(headless.New(), nil))
	if name, _, _ := driver.Default(); name != "gogpu" {
		t.Errorf("Default() = %q, want gogpu over term", name)
	}
}

func TestOptionsNoDrivers(t *testing.T) {
	for _, name := range driver.Available() {
		unregister(t, name)
	}
	if _, err := driver.Options("", loop.WindowAttributes{}); !errors.Is(err, driver.ErrNoDrivers) {
		t.Errorf("Options() error = %v, want ErrNoDrivers", err)
	}
}

func TestOptionsNotRegistered(t *testing.T) {
	_, err := driver.Options("vulkan-direct", loop.WindowAttributes{})
	if !errors.Is(err, driver.ErrNotRegistered) {
		t.Errorf("Options() error = %v, want ErrNotRegistered", err)
	}
}

func TestOptionsFactoryError(t *testing.T) {
	boom := errors.New("no tty")
	register(t, "broken", fakeEntry(nil, boom))

	if _, err := driver.Options("broken", loop.WindowAttributes{}); !errors.Is(err, boom) {
		t.Errorf("Options() error = %v, want wrapped %v", err, boom)
	}
}

func TestOptionsPassDefaultedAttributes(t *testing.T) {
	var got loop.WindowAttributes
	d := headless.New(headless.WithExitWhenIdle())
	register(t, "capture", driver.Entry{
		New: func(attrs loop.WindowAttributes) (loop.Driver, error) {
			got = attrs
			return d, nil
		},
		Construct: engine.Build(headless.NewRenderer),
	})

	opts, err := driver.Options("capture", loop.WindowAttributes{Title: "t"})
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	want := loop.WindowAttributes{Title: "t", Size: loop.Size{Width: loop.DefaultWidth, Height: loop.DefaultHeight}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("factory attributes mismatch (-want +got):\n%s", diff)
	}

	orig := engine.Logger()
	t.Cleanup(func() { engine.SetLogger(orig) })
	e, err := engine.New(append(opts, engine.WithLogEnv(""))...)
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if w := d.Windows(); len(w) != 1 || w[0].Title() != "t" {
		t.Errorf("windows = %v, want one titled window", w)
	}
}
