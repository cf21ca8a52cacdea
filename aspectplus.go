// Package aspectplus registers the Aspect Ratio+ extension settings into a
// host settings registry. The heavy lifting lives in pkg/settings; this
// package re-exports the common entry points.
package aspectplus

import (
	"github.com/goliatone/go-aspectplus/pkg/model"
	"github.com/goliatone/go-aspectplus/pkg/settings"
	"github.com/goliatone/go-aspectplus/pkg/uiconfig"
)

// Registry is the host settings registry contract.
type Registry = settings.Registry

// Bounds is the min/max dimension pair synchronised from the UI config.
type Bounds = model.Bounds

// NewRegistrar exposes the registrar constructor from the top-level module.
func NewRegistrar(options ...settings.RegistrarOption) *settings.Registrar {
	return settings.NewRegistrar(options...)
}

// Register runs the startup registration against host using files relative to
// the working directory unless options say otherwise. It is meant to be
// called once from the host's settings callback.
func Register(host Registry, options ...settings.RegistrarOption) error {
	return settings.NewRegistrar(options...).Register(host)
}

// ReadBounds reads the dimension bounds from the UI configuration file.
func ReadBounds(options ...uiconfig.Option) Bounds {
	return uiconfig.NewReader(options...).ReadBounds()
}
