package uiconfig

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/goliatone/go-aspectplus/internal/logger"
	"github.com/goliatone/go-aspectplus/pkg/model"
)

// DefaultPath is the UI configuration file, relative to the working directory.
const DefaultPath = "ui-config.json"

var (
	// Tabs are the generation tabs whose sliders carry dimension bounds.
	Tabs = []string{"txt2img", "img2img"}
	// Dimensions are the slider names inspected on every tab.
	Dimensions = []string{"Width", "Height"}
)

// Key builds the ui-config key for a tab/dimension/bound triple, e.g.
// "txt2img/Width/minimum".
func Key(tab, dimension, bound string) string {
	return fmt.Sprintf("%s/%s/%s", tab, dimension, bound)
}

// Reader loads bounds from the UI configuration file.
type Reader struct {
	fs     afero.Fs
	path   string
	logger logger.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithFs overrides the filesystem, the OS filesystem by default.
func WithFs(fsys afero.Fs) Option {
	return func(r *Reader) {
		if fsys != nil {
			r.fs = fsys
		}
	}
}

// WithPath overrides the UI configuration path.
func WithPath(path string) Option {
	return func(r *Reader) {
		if path != "" {
			r.path = path
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewReader constructs a Reader for DefaultPath on the OS filesystem.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		fs:     afero.NewOsFs(),
		path:   DefaultPath,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Path returns the file the reader inspects.
func (r *Reader) Path() string {
	return r.path
}

// ReadBounds returns the smallest configured minimum and the largest
// configured maximum across every tab and dimension. It falls back to
// model.DefaultBounds when the file is missing or unreadable, when no minimum
// or no maximum could be read, or when the resulting pair is inverted.
func (r *Reader) ReadBounds() model.Bounds {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("ui config not found, using default bounds", "path", r.path)
		} else {
			r.logger.Warn("ui config unreadable, using default bounds", "path", r.path, "error", err)
		}
		return model.DefaultBounds
	}

	doc, err := ParseDocument(data)
	if err != nil {
		r.logger.Warn("ui config unparseable, using default bounds", "path", r.path, "error", err)
		return model.DefaultBounds
	}

	bounds, ok := BoundsFrom(doc)
	if !ok {
		r.logger.Debug("ui config has no usable bounds, using defaults", "path", r.path)
		return model.DefaultBounds
	}
	r.logger.Debug("ui config bounds", "path", r.path, "min", bounds.Min, "max", bounds.Max)
	return bounds
}

// BoundsFrom scans doc for every tab/dimension minimum and maximum. Entries
// that are missing or not integers are skipped individually. It reports false
// unless at least one minimum and one maximum were found and the resulting
// pair is not inverted.
func BoundsFrom(doc Document) (model.Bounds, bool) {
	var (
		mins []int
		maxs []int
	)
	for _, tab := range Tabs {
		for _, dim := range Dimensions {
			if v, ok := doc.Int(Key(tab, dim, "minimum")); ok {
				mins = append(mins, v)
			}
			if v, ok := doc.Int(Key(tab, dim, "maximum")); ok {
				maxs = append(maxs, v)
			}
		}
	}
	if len(mins) == 0 || len(maxs) == 0 {
		return model.Bounds{}, false
	}
	bounds := model.Bounds{Min: mins[0], Max: maxs[0]}
	for _, v := range mins[1:] {
		bounds.Min = min(bounds.Min, v)
	}
	for _, v := range maxs[1:] {
		bounds.Max = max(bounds.Max, v)
	}
	if !bounds.Valid() {
		return model.Bounds{}, false
	}
	return bounds, true
}
