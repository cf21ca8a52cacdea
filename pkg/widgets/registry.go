package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-aspectplus/pkg/model"
)

// Matcher decides whether a widget kind should handle the supplied spec.
type Matcher func(spec model.OptionSpec) bool

type rule struct {
	kind     model.WidgetKind
	priority int
	match    Matcher
	order    int
}

// Registry selects widget kinds for option specs that do not name one.
// Higher priority wins; ties fall back to registration order. An empty
// registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for kind with the provided priority.
func (r *Registry) Register(kind model.WidgetKind, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	if strings.TrimSpace(string(kind)) == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     kind,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget kind for a spec. An explicit Widget is honoured
// before matcher evaluation.
func (r *Registry) Resolve(spec model.OptionSpec) (model.WidgetKind, bool) {
	if spec.Widget != "" {
		return spec.Widget, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(spec) {
			return entry.kind, true
		}
	}
	return "", false
}

// Decorate implements model.Decorator: it fills in the resolved widget kind
// and then validates the widget arguments.
func (r *Registry) Decorate(key string, spec *model.OptionSpec) error {
	if spec == nil {
		return nil
	}
	if kind, ok := r.Resolve(*spec); ok {
		spec.Widget = kind
	}
	return Validate(key, *spec)
}

func (r *Registry) registerBuiltins() {
	r.Register(model.WidgetCheckbox, 90, func(spec model.OptionSpec) bool {
		_, ok := spec.Default.(bool)
		return ok
	})

	r.Register(model.WidgetRadio, 80, func(spec model.OptionSpec) bool {
		return len(spec.Choices()) > 0
	})

	r.Register(model.WidgetSlider, 70, func(spec model.OptionSpec) bool {
		if _, ok := toFloat(spec.Default); !ok {
			return false
		}
		_, hasMin := spec.WidgetArgs[model.ArgMinimum]
		_, hasMax := spec.WidgetArgs[model.ArgMaximum]
		return hasMin && hasMax
	})

	r.Register(model.WidgetNumber, 60, func(spec model.OptionSpec) bool {
		_, ok := toFloat(spec.Default)
		return ok
	})

	r.Register(model.WidgetTextbox, 50, func(spec model.OptionSpec) bool {
		_, ok := spec.Default.(string)
		return ok
	})
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
