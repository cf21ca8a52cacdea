package settings

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/goliatone/go-aspectplus/pkg/model"
	"github.com/goliatone/go-aspectplus/pkg/widgets"
)

// Getter reads current option values.
type Getter interface {
	Get(key string) (any, bool)
}

// Registry is the host settings registry options are declared into.
//
// Register seeds the key's value with spec.Default only when the key has no
// value yet; re-registering an existing key keeps its value. Set always
// overwrites the value.
type Registry interface {
	Getter
	Set(key string, value any)
	Register(key string, spec model.OptionSpec) error
}

// ErrEmptyKey is returned when registering an option without a key.
var ErrEmptyKey = errors.New("settings: option key is required")

// MemoryRegistry is an in-process Registry. Specs run through the configured
// decorators (widget resolution/validation and label sanitising by default)
// before they are stored. Re-registering a key replaces its spec and keeps
// its value, matching a host reloading its extensions.
type MemoryRegistry struct {
	mu         sync.RWMutex
	specs      map[string]model.OptionSpec
	order      []string
	values     map[string]any
	decorators []model.Decorator
}

// MemoryOption configures a MemoryRegistry.
type MemoryOption func(*MemoryRegistry)

// WithValues seeds persisted values, typically loaded with LoadValues.
func WithValues(values map[string]any) MemoryOption {
	return func(r *MemoryRegistry) {
		maps.Copy(r.values, values)
	}
}

// WithDecorators replaces the default decorators.
func WithDecorators(decorators ...model.Decorator) MemoryOption {
	return func(r *MemoryRegistry) {
		r.decorators = append([]model.Decorator(nil), decorators...)
	}
}

// NewMemoryRegistry constructs an empty registry.
func NewMemoryRegistry(opts ...MemoryOption) *MemoryRegistry {
	r := &MemoryRegistry{
		specs:      make(map[string]model.OptionSpec),
		values:     make(map[string]any),
		decorators: []model.Decorator{widgets.NewRegistry(), LabelSanitizer()},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register implements Registry.
func (r *MemoryRegistry) Register(key string, spec model.OptionSpec) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	stored := spec.Clone()
	for _, decorator := range r.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(key, &stored); err != nil {
			return fmt.Errorf("settings: register %s: %w", key, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.specs[key]; !exists {
		r.order = append(r.order, key)
	}
	r.specs[key] = stored
	if _, ok := r.values[key]; !ok {
		r.values[key] = stored.Default
	}
	return nil
}

// Get implements Registry.
func (r *MemoryRegistry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[key]
	return value, ok
}

// Set implements Registry.
func (r *MemoryRegistry) Set(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// Spec returns the stored spec for key.
func (r *MemoryRegistry) Spec(key string) (model.OptionSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[key]
	return spec, ok
}

// Options returns the registered options in first-registration order.
func (r *MemoryRegistry) Options() []model.Option {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Option, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, model.Option{Key: key, Spec: r.specs[key], Value: r.values[key]})
	}
	return out
}

// Values returns a copy of every known value, registered or only seeded.
func (r *MemoryRegistry) Values() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.values)
}
