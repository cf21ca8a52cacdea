package model

import "fmt"

// WidgetKind names the host widget used to edit an option.
type WidgetKind string

const (
	WidgetCheckbox WidgetKind = "checkbox"
	WidgetTextbox  WidgetKind = "textbox"
	WidgetRadio    WidgetKind = "radio"
	WidgetSlider   WidgetKind = "slider"
	WidgetNumber   WidgetKind = "number"
)

// Widget argument keys understood by the host widgets.
const (
	ArgMinimum = "minimum"
	ArgMaximum = "maximum"
	ArgStep    = "step"
	ArgChoices = "choices"
	ArgLines   = "lines"
)

// Section identifies the settings page section an option is listed under.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// OptionSpec describes how the host should present and default an option.
// WidgetArgs carries widget constraints using the Arg* keys.
type OptionSpec struct {
	Default    any            `json:"default" yaml:"default"`
	Label      string         `json:"label" yaml:"label"`
	Widget     WidgetKind     `json:"widget,omitempty" yaml:"widget,omitempty"`
	WidgetArgs map[string]any `json:"widgetArgs,omitempty" yaml:"widgetArgs,omitempty"`
	Section    Section        `json:"section" yaml:"section"`
	Help       string         `json:"help,omitempty" yaml:"help,omitempty"`
	Hidden     bool           `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// WithHelp returns a copy of the spec carrying the supplied help text.
func (s OptionSpec) WithHelp(text string) OptionSpec {
	s.Help = text
	return s
}

// Clone returns a deep copy of the spec's argument map.
func (s OptionSpec) Clone() OptionSpec {
	out := s
	if len(s.WidgetArgs) > 0 {
		out.WidgetArgs = make(map[string]any, len(s.WidgetArgs))
		for k, v := range s.WidgetArgs {
			if choices, ok := v.([]string); ok {
				v = append([]string(nil), choices...)
			}
			out.WidgetArgs[k] = v
		}
	}
	return out
}

// Choices returns the radio choices declared in WidgetArgs.
func (s OptionSpec) Choices() []string {
	if s.WidgetArgs == nil {
		return nil
	}
	switch v := s.WidgetArgs[ArgChoices].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

// Option is a registered (key, spec) pair together with its current value.
type Option struct {
	Key   string     `json:"key" yaml:"key"`
	Spec  OptionSpec `json:"spec" yaml:"spec"`
	Value any        `json:"value" yaml:"value"`
}

// Bounds is the min/max dimension pair synchronised from the UI config.
type Bounds struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DefaultBounds applies whenever the UI config yields no usable pair.
var DefaultBounds = Bounds{Min: 64, Max: 2048}

// Valid reports whether Min does not exceed Max.
func (b Bounds) Valid() bool {
	return b.Min <= b.Max
}

func (b Bounds) String() string {
	return fmt.Sprintf("%d-%d", b.Min, b.Max)
}
