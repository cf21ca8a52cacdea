package widgets

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goliatone/go-aspectplus/pkg/model"
)

// ErrInvalidWidget is wrapped by every ValidationError.
var ErrInvalidWidget = errors.New("widgets: invalid widget spec")

// ValidationError reports why a widget spec was rejected.
type ValidationError struct {
	Key    string
	Widget model.WidgetKind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("widgets: option %q (%s): %s", e.Key, e.Widget, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidWidget
}

// Validate checks the widget arguments of spec against its widget kind.
func Validate(key string, spec model.OptionSpec) error {
	fail := func(format string, args ...any) error {
		return &ValidationError{Key: key, Widget: spec.Widget, Reason: fmt.Sprintf(format, args...)}
	}

	switch spec.Widget {
	case model.WidgetCheckbox:
		if _, ok := spec.Default.(bool); !ok {
			return fail("default %v is not a boolean", spec.Default)
		}
	case model.WidgetSlider:
		minimum, ok := toFloat(spec.WidgetArgs[model.ArgMinimum])
		if !ok {
			return fail("missing numeric %s", model.ArgMinimum)
		}
		maximum, ok := toFloat(spec.WidgetArgs[model.ArgMaximum])
		if !ok {
			return fail("missing numeric %s", model.ArgMaximum)
		}
		step, ok := toFloat(spec.WidgetArgs[model.ArgStep])
		if !ok {
			return fail("missing numeric %s", model.ArgStep)
		}
		if minimum > maximum {
			return fail("%s %v exceeds %s %v", model.ArgMinimum, minimum, model.ArgMaximum, maximum)
		}
		if step <= 0 {
			return fail("%s must be positive, got %v", model.ArgStep, step)
		}
		if _, ok := toFloat(spec.Default); !ok {
			return fail("default %v is not numeric", spec.Default)
		}
	case model.WidgetNumber:
		if _, ok := toFloat(spec.Default); !ok {
			return fail("default %v is not numeric", spec.Default)
		}
	case model.WidgetRadio:
		choices := spec.Choices()
		if len(choices) == 0 {
			return fail("no %s declared", model.ArgChoices)
		}
		def, ok := spec.Default.(string)
		if !ok || !slices.Contains(choices, def) {
			return fail("default %v is not one of %v", spec.Default, choices)
		}
	case model.WidgetTextbox:
		if raw, present := spec.WidgetArgs[model.ArgLines]; present {
			lines, ok := raw.(int)
			if !ok || lines <= 0 {
				return fail("%s must be a positive integer, got %v", model.ArgLines, raw)
			}
		}
	case "":
		return fail("no widget kind resolved")
	default:
		return fail("unknown widget kind")
	}
	return nil
}
