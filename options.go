package engine

import (
	"io"
	"os"

	"github.com/gogpu/engine/loop"
)

// DefaultLogEnv is the environment variable read on native targets to set
// the log level (debug, info, warn, error or off). The default is error.
const DefaultLogEnv = "ENGINE_LOG"

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	e, err := engine.New(
//	    engine.WithDriver(term.New()),
//	    engine.WithConstruct(engine.Build(cells.New)),
//	    engine.WithWindow(loop.WindowAttributes{Title: "demo"}),
//	)
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	driver    loop.Driver
	construct Construct
	window    loop.WindowAttributes
	flow      loop.ControlFlow
	logEnv    string
	logOutput io.Writer
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		window:    loop.DefaultWindowAttributes(),
		flow:      loop.Poll,
		logEnv:    DefaultLogEnv,
		logOutput: os.Stderr,
	}
}

// WithDriver sets the platform window driver. Required.
func WithDriver(d loop.Driver) Option {
	return func(o *options) {
		o.driver = d
	}
}

// WithConstruct sets the renderer construction routine. Required.
func WithConstruct(c Construct) Option {
	return func(o *options) {
		o.construct = c
	}
}

// WithWindow sets the attributes of the window created on activation.
// Zero fields keep their defaults.
func WithWindow(attrs loop.WindowAttributes) Option {
	return func(o *options) {
		o.window = attrs.WithDefaults()
	}
}

// WithControlFlow overrides the control flow. The engine polls by default
// so per-frame work runs without new OS events.
func WithControlFlow(cf loop.ControlFlow) Option {
	return func(o *options) {
		o.flow = cf
	}
}

// WithLogEnv changes the environment variable consulted for the log level.
// An empty name disables the override and keeps the default level.
func WithLogEnv(name string) Option {
	return func(o *options) {
		o.logEnv = name
	}
}

// WithLogOutput sets where the native runner writes log records.
// The default is os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.logOutput = w
		}
	}
}
