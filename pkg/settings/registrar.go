package settings

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/goliatone/go-aspectplus/internal/logger"
	"github.com/goliatone/go-aspectplus/pkg/model"
	"github.com/goliatone/go-aspectplus/pkg/presets"
	"github.com/goliatone/go-aspectplus/pkg/uiconfig"
)

// BoundsReader supplies the bounds synchronised into the hidden fields.
type BoundsReader interface {
	ReadBounds() model.Bounds
}

// ErrNilRegistry is returned when Register is called without a host registry.
var ErrNilRegistry = errors.New("settings: host registry is nil")

// Registrar declares every option into a host registry.
type Registrar struct {
	reader     BoundsReader
	fs         afero.Fs
	configPath string
	uiPath     string
	section    model.Section
	logger     logger.Logger
}

// RegistrarOption configures a Registrar.
type RegistrarOption func(*Registrar)

// WithBoundsReader overrides the bounds source. By default a uiconfig.Reader
// sharing the registrar's filesystem and logger is used.
func WithBoundsReader(reader BoundsReader) RegistrarOption {
	return func(r *Registrar) {
		r.reader = reader
	}
}

// WithFs overrides the filesystem holding the config files.
func WithFs(fsys afero.Fs) RegistrarOption {
	return func(r *Registrar) {
		if fsys != nil {
			r.fs = fsys
		}
	}
}

// WithConfigPath overrides the persisted settings file cleaned on startup.
func WithConfigPath(path string) RegistrarOption {
	return func(r *Registrar) {
		if path != "" {
			r.configPath = path
		}
	}
}

// WithUIConfigPath overrides the UI configuration file read by the default
// bounds reader.
func WithUIConfigPath(path string) RegistrarOption {
	return func(r *Registrar) {
		if path != "" {
			r.uiPath = path
		}
	}
}

// WithSection overrides the settings page section.
func WithSection(section model.Section) RegistrarOption {
	return func(r *Registrar) {
		if section.ID != "" {
			r.section = section
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logger.Logger) RegistrarOption {
	return func(r *Registrar) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistrar constructs a Registrar working on the OS filesystem.
func NewRegistrar(opts ...RegistrarOption) *Registrar {
	r := &Registrar{
		fs:         afero.NewOsFs(),
		configPath: DefaultConfigPath,
		uiPath:     uiconfig.DefaultPath,
		section:    DefaultSection,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.reader == nil {
		r.reader = uiconfig.NewReader(
			uiconfig.WithFs(r.fs),
			uiconfig.WithPath(r.uiPath),
			uiconfig.WithLogger(r.logger),
		)
	}
	return r
}

// Register runs the startup sequence against host. Cleanup and bounds
// failures are logged and never returned; host registry errors are.
func (r *Registrar) Register(host Registry) error {
	if host == nil {
		return ErrNilRegistry
	}

	r.cleanup()
	bounds := r.reader.ReadBounds()

	if err := r.registerHidden(host, bounds); err != nil {
		return err
	}
	for _, opt := range r.VisibleOptions(host, bounds) {
		if err := host.Register(opt.Key, opt.Spec); err != nil {
			return fmt.Errorf("settings: register %s: %w", opt.Key, err)
		}
	}
	r.logger.Debug("options registered", "section", r.section.ID, "min", bounds.Min, "max", bounds.Max)
	return nil
}

func (r *Registrar) cleanup() {
	removed, err := CleanupStaleFields(r.fs, r.configPath, HiddenKeys...)
	if err != nil {
		r.logger.Warn("stale field cleanup failed", "path", r.configPath, "error", err)
		return
	}
	if removed {
		r.logger.Debug("removed stale sync fields", "path", r.configPath)
	}
}

// registerHidden declares the two sync fields and then overwrites their
// values. Register alone would keep a value persisted by an earlier run; the
// Set calls must come after Register so the bounds read now take effect.
func (r *Registrar) registerHidden(host Registry, bounds model.Bounds) error {
	hidden := []struct {
		key   string
		label string
		value int
	}{
		{key: KeyUIMinHidden, label: "UI minimum dimension", value: bounds.Min},
		{key: KeyUIMaxHidden, label: "UI maximum dimension", value: bounds.Max},
	}
	for _, field := range hidden {
		spec := model.OptionSpec{
			Default: field.value,
			Label:   field.label,
			Widget:  model.WidgetNumber,
			Section: r.section,
			Hidden:  true,
		}
		if err := host.Register(field.key, spec); err != nil {
			return fmt.Errorf("settings: register %s: %w", field.key, err)
		}
	}
	for _, field := range hidden {
		host.Set(field.key, field.value)
	}
	return nil
}

// VisibleOptions returns the user-facing options in registration order. The
// presets textbox height is sized from the value currently held by values,
// falling back to presets.DefaultText.
func (r *Registrar) VisibleOptions(values Getter, bounds model.Bounds) []model.Option {
	section := r.section
	spec := func(def any, label string, widget model.WidgetKind, args map[string]any) model.OptionSpec {
		return model.OptionSpec{
			Default:    def,
			Label:      label,
			Widget:     widget,
			WidgetArgs: args,
			Section:    section,
		}
	}
	slider := func(minimum, maximum, step int) map[string]any {
		return map[string]any{model.ArgMinimum: minimum, model.ArgMaximum: maximum, model.ArgStep: step}
	}
	choices := func(items ...string) map[string]any {
		return map[string]any{model.ArgChoices: items}
	}

	return []model.Option{
		{
			Key: KeyAspectRatioShow,
			Spec: spec(true, "Enable Aspect Ratio Controls", model.WidgetCheckbox, nil).
				WithHelp("Shows aspect ratio dropdown controls in txt2img and img2img tabs"),
		},
		{
			Key: KeyAspectRatios,
			Spec: spec(DefaultAspectRatios, "Available Aspect Ratios", model.WidgetTextbox, nil).
				WithHelp("Comma-separated list of aspect ratios to show in the dropdown"),
		},
		{
			Key: KeyAspectRatioLimit,
			Spec: spec(true, "Enforce Aspect Ratio Limits", model.WidgetCheckbox, nil).
				WithHelp("If enabled, the width/height sliders will respect the selected aspect ratio limits"),
		},
		{
			Key: KeySettingsSource,
			Spec: spec(SourceUISettings, "Dimension Settings Source", model.WidgetRadio,
				choices(SourceUISettings, SourceExtensionSettings)).
				WithHelp(fmt.Sprintf("UI Settings uses the slider limits from ui-config.json (currently %d to %d). Extension Settings uses the limits below.", bounds.Min, bounds.Max)),
		},
		{
			Key: KeyMinDimension,
			Spec: spec(64, "Minimum Dimension", model.WidgetSlider, slider(64, 2048, 64)).
				WithHelp("Smallest width/height allowed when Extension Settings is the source"),
		},
		{
			Key: KeyMaxDimension,
			Spec: spec(2048, "Maximum Dimension", model.WidgetSlider, slider(2048, 4096, 64)).
				WithHelp("Largest width/height allowed when Extension Settings is the source"),
		},
		{
			Key: KeyPresetsShow,
			Spec: spec(PresetsOnlyTxt2Img, "Show Dimension Presets Button", model.WidgetRadio,
				choices(PresetsOff, PresetsOnlyTxt2Img, PresetsTxt2ImgAndImg)).
				WithHelp("Where the dimension presets button is shown"),
		},
		{
			Key: KeyPresets,
			Spec: spec(presets.DefaultText, "Dimension Presets", model.WidgetTextbox,
				map[string]any{model.ArgLines: presets.DisplayLines(currentPresets(values))}).
				WithHelp(`Presets list: use ">" for labels, "#" for comments, "width x height" for presets`),
		},
		{
			Key: KeyPresetsColumns,
			Spec: spec(2, "Presets Popup Columns", model.WidgetSlider, slider(1, 4, 1)).
				WithHelp("Number of columns in the presets popup window"),
		},
		{
			Key: KeyPresetsAutoLabel,
			Spec: spec(true, `Auto-create "Others" label`, model.WidgetCheckbox, nil).
				WithHelp(`If enabled, presets not under any ">" label will be grouped under an "Others" label`),
		},
	}
}

func currentPresets(values Getter) string {
	if text := stringValue(values, KeyPresets); text != "" {
		return text
	}
	return presets.DefaultText
}
