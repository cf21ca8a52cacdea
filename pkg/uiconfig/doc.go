// Package uiconfig reads the host's UI configuration file (ui-config.json)
// and derives the min/max dimension bounds configured for the txt2img and
// img2img width/height sliders. Reading never fails from the caller's point of
// view: missing files, malformed JSON and unusable values all resolve to
// model.DefaultBounds.
package uiconfig
