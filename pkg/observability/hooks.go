// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about transform execution and replay
// recording.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTransformHooks(&myTransformHooks{})
//	    // ... run application
//	}
//
// The transform engine calls hooks to emit events:
//
//	observability.Transforms().OnFire(name, id)
package observability

import "sync"

// TransformHooks receives events from the transform engine.
type TransformHooks interface {
	// OnFire records a transform deciding to apply.
	OnFire(name, id string)

	// OnSkip records a transform passing data through unmodified.
	OnSkip(name, id string)

	// OnRecord records a deterministic transform saving its parameters.
	OnRecord(name, id, saveKey string)

	// OnReplay records a transform running in replay mode. applied reports
	// whether recorded parameters were reapplied or the data passed through.
	OnReplay(name, id string, applied bool)
}

// NoopTransformHooks is a no-op implementation of TransformHooks.
type NoopTransformHooks struct{}

func (NoopTransformHooks) OnFire(string, string)           {}
func (NoopTransformHooks) OnSkip(string, string)           {}
func (NoopTransformHooks) OnRecord(string, string, string) {}
func (NoopTransformHooks) OnReplay(string, string, bool)   {}

var (
	transformHooks TransformHooks = NoopTransformHooks{}
	hooksMu        sync.RWMutex
)

// SetTransformHooks registers custom transform hooks.
// This should be called once at application startup before any transforms run.
func SetTransformHooks(h TransformHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		transformHooks = h
	}
}

// Transforms returns the registered transform hooks.
func Transforms() TransformHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return transformHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	transformHooks = NoopTransformHooks{}
}
