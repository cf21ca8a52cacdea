package widgets

import (
	"errors"
	"testing"

	"github.com/goliatone/go-aspectplus/pkg/model"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	spec := model.OptionSpec{Default: true, Widget: model.WidgetTextbox}

	if got, ok := reg.Resolve(spec); !ok || got != model.WidgetTextbox {
		t.Fatalf("expected explicit widget to win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		spec   model.OptionSpec
		expect model.WidgetKind
	}{
		{
			name:   "boolean checkbox",
			spec:   model.OptionSpec{Default: true},
			expect: model.WidgetCheckbox,
		},
		{
			name: "choices radio",
			spec: model.OptionSpec{
				Default:    "Off",
				WidgetArgs: map[string]any{model.ArgChoices: []string{"Off", "On"}},
			},
			expect: model.WidgetRadio,
		},
		{
			name: "bounded number slider",
			spec: model.OptionSpec{
				Default:    2,
				WidgetArgs: map[string]any{model.ArgMinimum: 1, model.ArgMaximum: 4, model.ArgStep: 1},
			},
			expect: model.WidgetSlider,
		},
		{
			name:   "bare number",
			spec:   model.OptionSpec{Default: 64},
			expect: model.WidgetNumber,
		},
		{
			name:   "string textbox",
			spec:   model.OptionSpec{Default: "1:1"},
			expect: model.WidgetTextbox,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Resolve(tc.spec)
			if !ok || got != tc.expect {
				t.Fatalf("expected %q, got %q (ok=%v)", tc.expect, got, ok)
			}
		})
	}
}

func TestResolve_PriorityAndOrder(t *testing.T) {
	reg := &Registry{}
	reg.Register("first", 10, func(model.OptionSpec) bool { return true })
	reg.Register("second", 10, func(model.OptionSpec) bool { return true })
	reg.Register("preferred", 20, func(model.OptionSpec) bool { return true })

	if got, _ := reg.Resolve(model.OptionSpec{}); got != "preferred" {
		t.Fatalf("expected higher priority to win, got %q", got)
	}

	empty := &Registry{}
	if _, ok := empty.Resolve(model.OptionSpec{Default: true}); ok {
		t.Fatalf("empty registry should not resolve")
	}
}

func TestDecorate_FillsWidgetAndValidates(t *testing.T) {
	reg := NewRegistry()
	spec := model.OptionSpec{Default: true}
	if err := reg.Decorate("arp_aspect_ratio_show", &spec); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if spec.Widget != model.WidgetCheckbox {
		t.Fatalf("widget not filled: %q", spec.Widget)
	}

	bad := model.OptionSpec{Default: "x", Widget: model.WidgetRadio}
	err := reg.Decorate("arp_presets_show", &bad)
	if !errors.Is(err, ErrInvalidWidget) {
		t.Fatalf("expected ErrInvalidWidget, got %v", err)
	}
}
