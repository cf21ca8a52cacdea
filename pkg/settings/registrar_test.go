package settings

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/goliatone/go-aspectplus/pkg/model"
	"github.com/goliatone/go-aspectplus/pkg/presets"
	"github.com/goliatone/go-aspectplus/pkg/uiconfig"
)

type staticBounds model.Bounds

func (b staticBounds) ReadBounds() model.Bounds { return model.Bounds(b) }

type recordingHost struct {
	*MemoryRegistry
	calls   []string
	failKey string
}

func newRecordingHost() *recordingHost {
	return &recordingHost{MemoryRegistry: NewMemoryRegistry()}
}

func (h *recordingHost) Register(key string, spec model.OptionSpec) error {
	h.calls = append(h.calls, "register:"+key)
	if key == h.failKey {
		return errors.New("duplicate key")
	}
	return h.MemoryRegistry.Register(key, spec)
}

func (h *recordingHost) Set(key string, value any) {
	h.calls = append(h.calls, "set:"+key)
	h.MemoryRegistry.Set(key, value)
}

func TestRegister_FirstRun(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, uiconfig.DefaultPath, `{"txt2img/Width/minimum": "128", "img2img/Height/maximum": "3072"}`)
	host := NewMemoryRegistry()

	if err := NewRegistrar(WithFs(fsys)).Register(host); err != nil {
		t.Fatalf("register: %v", err)
	}

	var keys []string
	for _, opt := range host.Options() {
		keys = append(keys, opt.Key)
	}
	wantKeys := []string{
		KeyUIMinHidden, KeyUIMaxHidden,
		KeyAspectRatioShow, KeyAspectRatios, KeyAspectRatioLimit,
		KeySettingsSource, KeyMinDimension, KeyMaxDimension,
		KeyPresetsShow, KeyPresets, KeyPresetsColumns, KeyPresetsAutoLabel,
	}
	if diff := cmp.Diff(wantKeys, keys); diff != "" {
		t.Fatalf("registration order mismatch (-want +got):\n%s", diff)
	}

	wantValues := map[string]any{
		KeyUIMinHidden:      128,
		KeyUIMaxHidden:      3072,
		KeyAspectRatioShow:  true,
		KeyAspectRatios:     DefaultAspectRatios,
		KeyAspectRatioLimit: true,
		KeySettingsSource:   SourceUISettings,
		KeyMinDimension:     64,
		KeyMaxDimension:     2048,
		KeyPresetsShow:      PresetsOnlyTxt2Img,
		KeyPresets:          presets.DefaultText,
		KeyPresetsColumns:   2,
		KeyPresetsAutoLabel: true,
	}
	if diff := cmp.Diff(wantValues, host.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	for _, key := range HiddenKeys {
		spec, _ := host.Spec(key)
		if !spec.Hidden || spec.Widget != model.WidgetNumber {
			t.Fatalf("%s should be a hidden number field, got %+v", key, spec)
		}
	}

	source, _ := host.Spec(KeySettingsSource)
	if !strings.Contains(source.Help, "128 to 3072") {
		t.Fatalf("source help should embed the bounds, got %q", source.Help)
	}
	if diff := cmp.Diff([]string{SourceUISettings, SourceExtensionSettings}, source.Choices()); diff != "" {
		t.Fatalf("source choices mismatch (-want +got):\n%s", diff)
	}

	minDim, _ := host.Spec(KeyMinDimension)
	wantArgs := map[string]any{model.ArgMinimum: 64, model.ArgMaximum: 2048, model.ArgStep: 64}
	if diff := cmp.Diff(wantArgs, minDim.WidgetArgs); diff != "" {
		t.Fatalf("min dimension args mismatch (-want +got):\n%s", diff)
	}
	maxDim, _ := host.Spec(KeyMaxDimension)
	wantArgs = map[string]any{model.ArgMinimum: 2048, model.ArgMaximum: 4096, model.ArgStep: 64}
	if diff := cmp.Diff(wantArgs, maxDim.WidgetArgs); diff != "" {
		t.Fatalf("max dimension args mismatch (-want +got):\n%s", diff)
	}

	presetSpec, _ := host.Spec(KeyPresets)
	if presetSpec.WidgetArgs[model.ArgLines] != 11 {
		t.Fatalf("expected 11 preset lines, got %v", presetSpec.WidgetArgs[model.ArgLines])
	}
	for _, opt := range host.Options() {
		if opt.Spec.Section != DefaultSection {
			t.Fatalf("%s registered in section %+v", opt.Key, opt.Spec.Section)
		}
	}
}

func TestRegister_ReloadRefreshesOnlyHiddenFields(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, uiconfig.DefaultPath, `{"txt2img/Width/minimum": 64, "txt2img/Width/maximum": 2048}`)
	host := NewMemoryRegistry()
	registrar := NewRegistrar(WithFs(fsys))

	if err := registrar.Register(host); err != nil {
		t.Fatalf("first register: %v", err)
	}
	host.Set(KeyPresetsColumns, 4)
	host.Set(KeySettingsSource, SourceExtensionSettings)
	host.Set(KeyMinDimension, 512)

	writeFile(t, fsys, uiconfig.DefaultPath, `{"TXT2IMG/WIDTH/MINIMUM": 256, "img2img/Height/maximum": 3584}`)
	if err := registrar.Register(host); err != nil {
		t.Fatalf("second register: %v", err)
	}

	checks := map[string]any{
		KeyUIMinHidden:    256,
		KeyUIMaxHidden:    3584,
		KeyPresetsColumns: 4,
		KeySettingsSource: SourceExtensionSettings,
		KeyMinDimension:   512,
		KeyPresetsShow:    PresetsOnlyTxt2Img,
	}
	for key, want := range checks {
		if got, _ := host.Get(key); got != want {
			t.Fatalf("%s = %v, want %v", key, got, want)
		}
	}
	if got := len(host.Options()); got != 12 {
		t.Fatalf("re-registration should not duplicate options, got %d", got)
	}
}

func TestRegister_PersistedHiddenValuesOverwritten(t *testing.T) {
	host := NewMemoryRegistry(WithValues(map[string]any{
		KeyUIMinHidden:    float64(8),
		KeyUIMaxHidden:    float64(16),
		KeyPresetsColumns: float64(3),
	}))
	registrar := NewRegistrar(
		WithFs(afero.NewMemMapFs()),
		WithBoundsReader(staticBounds{Min: 96, Max: 1536}),
	)
	if err := registrar.Register(host); err != nil {
		t.Fatalf("register: %v", err)
	}
	if got, _ := host.Get(KeyUIMinHidden); got != 96 {
		t.Fatalf("hidden min = %v, want 96", got)
	}
	if got, _ := host.Get(KeyUIMaxHidden); got != 1536 {
		t.Fatalf("hidden max = %v, want 1536", got)
	}
	if got, _ := host.Get(KeyPresetsColumns); got != float64(3) {
		t.Fatalf("persisted columns should win over default, got %v", got)
	}
}

func TestRegister_HiddenFieldsRegisteredThenSet(t *testing.T) {
	host := newRecordingHost()
	registrar := NewRegistrar(
		WithFs(afero.NewMemMapFs()),
		WithBoundsReader(staticBounds(model.DefaultBounds)),
	)
	if err := registrar.Register(host); err != nil {
		t.Fatalf("register: %v", err)
	}
	want := []string{
		"register:" + KeyUIMinHidden,
		"register:" + KeyUIMaxHidden,
		"set:" + KeyUIMinHidden,
		"set:" + KeyUIMaxHidden,
		"register:" + KeyAspectRatioShow,
	}
	if diff := cmp.Diff(want, host.calls[:len(want)]); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
	for _, call := range host.calls[len(want):] {
		if strings.HasPrefix(call, "set:") {
			t.Fatalf("visible options must not be force-set, saw %s", call)
		}
	}
}

func TestRegister_CleansPersistedConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "data/config.json", persistedFixture)
	registrar := NewRegistrar(
		WithFs(fsys),
		WithConfigPath("data/config.json"),
		WithBoundsReader(staticBounds(model.DefaultBounds)),
	)
	if err := registrar.Register(NewMemoryRegistry()); err != nil {
		t.Fatalf("register: %v", err)
	}
	got := readFile(t, fsys, "data/config.json")
	if strings.Contains(got, KeyUIMinHidden) || strings.Contains(got, KeyUIMaxHidden) {
		t.Fatalf("stale fields not removed:\n%s", got)
	}
}

func TestRegister_CleanupFailureIsNotFatal(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, DefaultConfigPath, `{"arp_ui_min_hidden": `)
	host := NewMemoryRegistry()
	registrar := NewRegistrar(WithFs(fsys), WithBoundsReader(staticBounds{Min: 128, Max: 1024}))

	if err := registrar.Register(host); err != nil {
		t.Fatalf("register should tolerate cleanup failure: %v", err)
	}
	if got, _ := host.Get(KeyUIMaxHidden); got != 1024 {
		t.Fatalf("hidden max = %v, want 1024", got)
	}
}

func TestRegister_HostErrorPropagates(t *testing.T) {
	for _, failKey := range []string{KeyUIMinHidden, KeyPresetsColumns} {
		t.Run(failKey, func(t *testing.T) {
			host := newRecordingHost()
			host.failKey = failKey
			registrar := NewRegistrar(
				WithFs(afero.NewMemMapFs()),
				WithBoundsReader(staticBounds(model.DefaultBounds)),
			)
			err := registrar.Register(host)
			if err == nil || !strings.Contains(err.Error(), failKey) {
				t.Fatalf("expected error naming %s, got %v", failKey, err)
			}
		})
	}

	if err := NewRegistrar().Register(nil); !errors.Is(err, ErrNilRegistry) {
		t.Fatalf("expected ErrNilRegistry, got %v", err)
	}
}

func TestVisibleOptions_PresetLinesFollowCurrentValue(t *testing.T) {
	registrar := NewRegistrar(WithFs(afero.NewMemMapFs()))
	cases := []struct {
		name  string
		value any
		want  int
	}{
		{name: "single line", value: "512 x 512", want: 5},
		{name: "ten newlines", value: strings.Repeat("512 x 512\n", 10), want: 11},
		{name: "fifty newlines", value: strings.Repeat("512 x 512\n", 50), want: 40},
		{name: "empty falls back to default", value: "", want: 11},
		{name: "non string falls back to default", value: 12, want: 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			host := NewMemoryRegistry(WithValues(map[string]any{KeyPresets: tc.value}))
			var lines any
			for _, opt := range registrar.VisibleOptions(host, model.DefaultBounds) {
				if opt.Key == KeyPresets {
					lines = opt.Spec.WidgetArgs[model.ArgLines]
				}
			}
			if lines != tc.want {
				t.Fatalf("lines = %v, want %d", lines, tc.want)
			}
		})
	}
}

func TestRegister_CustomSection(t *testing.T) {
	section := model.Section{ID: "arp_custom", Title: "Custom"}
	host := NewMemoryRegistry()
	registrar := NewRegistrar(
		WithFs(afero.NewMemMapFs()),
		WithSection(section),
		WithBoundsReader(staticBounds(model.DefaultBounds)),
	)
	if err := registrar.Register(host); err != nil {
		t.Fatalf("register: %v", err)
	}
	for _, opt := range host.Options() {
		if opt.Spec.Section != section {
			t.Fatalf("%s in %s, want %s", opt.Key, fmt.Sprint(opt.Spec.Section), fmt.Sprint(section))
		}
	}
}
