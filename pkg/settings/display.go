package settings

import (
	"math"

	"github.com/goliatone/go-aspectplus/pkg/model"
)

// ShowPresets reports whether the presets button is shown on page
// ("txt2img" or "img2img") for the given arp_presets_show mode. An empty mode
// behaves like the default, PresetsOnlyTxt2Img.
func ShowPresets(mode, page string) bool {
	switch mode {
	case PresetsTxt2ImgAndImg:
		return true
	case PresetsOnlyTxt2Img, "":
		return page == "txt2img"
	default:
		return false
	}
}

// DimensionLimits resolves the slider limits currently in effect. With the
// UI Settings source the hidden sync fields apply, otherwise the extension's
// own min/max sliders. Missing or zero values fall back to
// model.DefaultBounds per side.
func DimensionLimits(values Getter) model.Bounds {
	source := stringValue(values, KeySettingsSource)
	if source == "" {
		source = SourceUISettings
	}
	minKey, maxKey := KeyMinDimension, KeyMaxDimension
	if source == SourceUISettings {
		minKey, maxKey = KeyUIMinHidden, KeyUIMaxHidden
	}
	return model.Bounds{
		Min: intValue(values, minKey, model.DefaultBounds.Min),
		Max: intValue(values, maxKey, model.DefaultBounds.Max),
	}
}

func stringValue(values Getter, key string) string {
	if values == nil {
		return ""
	}
	raw, ok := values.Get(key)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

func intValue(values Getter, key string, fallback int) int {
	if values == nil {
		return fallback
	}
	raw, ok := values.Get(key)
	if !ok {
		return fallback
	}
	var f float64
	switch n := raw.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case float64:
		f = n
	default:
		return fallback
	}
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return int(math.Round(f))
}
