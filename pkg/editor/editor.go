// Package editor walks registered options in a terminal session and prompts
// for new values according to each option's widget kind. Hidden options are
// never shown.
package editor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-aspectplus/pkg/model"
)

// Store is the value side of a settings registry.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Validator checks a textual answer before it is accepted.
type Validator func(string) error

// Editor prompts for option values.
type Editor struct {
	driver     PromptDriver
	validators map[string]Validator
}

// Option configures an Editor.
type Option func(*Editor)

// WithPromptDriver overrides the prompt driver, survey by default.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithValidator registers an extra validator for a textbox option.
func WithValidator(key string, fn Validator) Option {
	return func(e *Editor) {
		if key != "" && fn != nil {
			e.validators[key] = fn
		}
	}
}

// New constructs an Editor.
func New(opts ...Option) *Editor {
	e := &Editor{validators: make(map[string]Validator)}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver()
	}
	return e
}

// Edit prompts for every visible option in order, writes answers that differ
// from the current value into store and returns them keyed by option key.
func (e *Editor) Edit(ctx context.Context, store Store, options []model.Option) (map[string]any, error) {
	if ctx == nil {
		return nil, errors.New("editor: context is required")
	}
	if store == nil {
		return nil, ErrNilStore
	}

	changed := make(map[string]any)
	for _, opt := range options {
		if opt.Spec.Hidden {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current, ok := store.Get(opt.Key)
		if !ok {
			current = opt.Spec.Default
		}
		next, err := e.prompt(ctx, opt, current)
		if err != nil {
			return nil, fmt.Errorf("editor: %s: %w", opt.Key, err)
		}
		if sameValue(current, next) {
			continue
		}
		store.Set(opt.Key, next)
		changed[opt.Key] = next
	}
	return changed, nil
}

func (e *Editor) prompt(ctx context.Context, opt model.Option, current any) (any, error) {
	spec := opt.Spec
	switch spec.Widget {
	case model.WidgetCheckbox:
		def, _ := current.(bool)
		return e.driver.Confirm(ctx, ConfirmConfig{Message: spec.Label, Default: def, Help: spec.Help})
	case model.WidgetRadio:
		return e.promptChoice(ctx, spec, current)
	case model.WidgetSlider, model.WidgetNumber:
		return e.promptInt(ctx, opt.Key, spec, current)
	default:
		return e.promptText(ctx, opt.Key, spec, current)
	}
}

func (e *Editor) promptChoice(ctx context.Context, spec model.OptionSpec, current any) (any, error) {
	choices := spec.Choices()
	selected, _ := current.(string)
	for {
		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:      spec.Label,
			Options:      choices,
			DefaultIndex: indexOf(choices, selected),
			Help:         spec.Help,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(choices) {
			if err := e.driver.Info(ctx, "Invalid selection"); err != nil {
				return nil, err
			}
			continue
		}
		return choices[idx], nil
	}
}

func (e *Editor) promptInt(ctx context.Context, key string, spec model.OptionSpec, current any) (any, error) {
	def := ""
	if n, ok := toInt(current); ok {
		def = strconv.Itoa(n)
	}
	check := func(raw string) error {
		_, err := parseBounded(raw, spec)
		return err
	}
	for {
		answer, err := e.driver.Input(ctx, InputConfig{
			Message:   spec.Label,
			Default:   def,
			Help:      spec.Help,
			Validator: check,
		})
		if err != nil {
			return nil, err
		}
		value, err := parseBounded(answer, spec)
		if err != nil {
			if err := e.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", key, err)); err != nil {
				return nil, err
			}
			continue
		}
		return value, nil
	}
}

func (e *Editor) promptText(ctx context.Context, key string, spec model.OptionSpec, current any) (any, error) {
	def, _ := current.(string)
	lines, _ := spec.WidgetArgs[model.ArgLines].(int)
	validate := e.validators[key]
	for {
		var (
			answer string
			err    error
		)
		if lines > 1 {
			answer, err = e.driver.TextArea(ctx, TextAreaConfig{Message: spec.Label, Default: def, Help: spec.Help})
		} else {
			answer, err = e.driver.Input(ctx, InputConfig{Message: spec.Label, Default: def, Help: spec.Help, Validator: validate})
		}
		if err != nil {
			return nil, err
		}
		if validate != nil {
			if err := validate(answer); err != nil {
				if err := e.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", key, err)); err != nil {
					return nil, err
				}
				continue
			}
		}
		return answer, nil
	}
}

// parseBounded parses an integer answer and checks it against the slider
// range and step when the spec declares them.
func parseBounded(raw string, spec model.OptionSpec) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if spec.Widget != model.WidgetSlider {
		return value, nil
	}
	minimum, hasMin := toInt(spec.WidgetArgs[model.ArgMinimum])
	maximum, hasMax := toInt(spec.WidgetArgs[model.ArgMaximum])
	if hasMin && value < minimum {
		return 0, fmt.Errorf("must be at least %d", minimum)
	}
	if hasMax && value > maximum {
		return 0, fmt.Errorf("must be at most %d", maximum)
	}
	if step, ok := toInt(spec.WidgetArgs[model.ArgStep]); ok && step > 0 && hasMin && (value-minimum)%step != 0 {
		return 0, fmt.Errorf("must be a multiple of %d from %d", step, minimum)
	}
	return value, nil
}

func sameValue(a, b any) bool {
	if x, ok := toInt(a); ok {
		if y, ok := toInt(b); ok {
			return x == y
		}
	}
	return a == b
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(math.Round(n)), true
	default:
		return 0, false
	}
}
