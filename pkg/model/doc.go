// Package model defines the option types exchanged with the host settings
// registry: the OptionSpec describing a widget, its default and constraints,
// the Section it is listed under, and the Bounds pair synchronised from the
// host UI configuration. Widget constraints travel in OptionSpec.WidgetArgs
// using the Arg* keys so hosts can map them onto their own component
// arguments (slider minimum/maximum/step, radio choices, textbox lines).
package model
