package settings

import "github.com/goliatone/go-aspectplus/pkg/model"

// Option keys.
const (
	KeyAspectRatioShow  = "arp_aspect_ratio_show"
	KeyAspectRatios     = "arp_aspect_ratio"
	KeyAspectRatioLimit = "arp_aspect_ratio_limit"
	KeySettingsSource   = "arp_settings_source"
	KeyMinDimension     = "arp_min_dimension"
	KeyMaxDimension     = "arp_max_dimension"
	KeyPresetsShow      = "arp_presets_show"
	KeyPresets          = "arp_presets"
	KeyPresetsColumns   = "arp_presets_columns"
	KeyPresetsAutoLabel = "arp_presets_autolabel"

	// Hidden fields mirroring the ui-config.json bounds.
	KeyUIMinHidden = "arp_ui_min_hidden"
	KeyUIMaxHidden = "arp_ui_max_hidden"
)

// HiddenKeys lists the synchronised fields removed from the persisted config
// on every startup.
var HiddenKeys = []string{KeyUIMinHidden, KeyUIMaxHidden}

// Dimension settings sources.
const (
	SourceUISettings        = "UI Settings"
	SourceExtensionSettings = "Extension Settings"
)

// Presets button visibility modes.
const (
	PresetsOff           = "Off"
	PresetsOnlyTxt2Img   = "Only txt2img"
	PresetsTxt2ImgAndImg = "txt2img & img2img"
)

// DefaultAspectRatios is the initial arp_aspect_ratio value.
const DefaultAspectRatios = "1:1, 2:3, 3:4, 4:5, 9:16"

// DefaultSection groups every option on the host settings page.
var DefaultSection = model.Section{ID: "aspect_ratio_plus", Title: "Aspect Ratio+"}
