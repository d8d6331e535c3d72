package layout

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/wbreza/drawkit/ux"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind = errors.New("unknown widget kind")
	ErrInvalidSize = errors.New("widget size out of range")
	ErrMixedKinds  = errors.New("layout mixes widget kinds")
	ErrEmpty       = errors.New("layout has no widgets")
)

const (
	KindButton    = "button"
	KindSelectBox = "selectbox"
)

// Document represents the structure of a layout yaml file
type Document struct {
	Title   string   `yaml:"title"`
	Widgets []Widget `yaml:"widgets"`
}

type Widget struct {
	Kind    string   `yaml:"kind"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Label   string   `yaml:"label,omitempty"`
	Options []string `yaml:"options,omitempty"`
}

var factories = map[string]func(w Widget, width, height uint8) ux.Drawable{
	KindButton: func(w Widget, width, height uint8) ux.Drawable {
		return ux.Button{Width: width, Height: height, Label: w.Label}
	},
	KindSelectBox: func(w Widget, width, height uint8) ux.Drawable {
		return ux.SelectBox{Width: width, Height: height, Options: w.Options}
	},
}

// Kinds returns the widget kinds a layout may reference, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}

	sort.Strings(kinds)

	return kinds
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Document, error) {
	var document Document
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	for i := range document.Widgets {
		document.Widgets[i].Kind = strings.ToLower(strings.TrimSpace(document.Widgets[i].Kind))

		if _, err := document.Widgets[i].Drawable(); err != nil {
			return nil, fmt.Errorf("widget %d: %w", i, err)
		}
	}

	return &document, nil
}

// Demo is the layout used when no file is given.
func Demo() *Document {
	return &Document{
		Widgets: []Widget{
			{Kind: KindButton, Width: 50, Height: 20, Label: "ok"},
			{Kind: KindSelectBox, Width: 80, Height: 30, Options: []string{"first", "second"}},
		},
	}
}

func (w Widget) Drawable() (ux.Drawable, error) {
	factory, has := factories[w.Kind]
	if !has {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownKind, w.Kind)
	}

	width, err := toUint8("width", w.Width)
	if err != nil {
		return nil, err
	}

	height, err := toUint8("height", w.Height)
	if err != nil {
		return nil, err
	}

	return factory(w, width, height), nil
}

// Components wraps every widget for use in a ux.Screen.
func (d *Document) Components() ([]ux.Component, error) {
	components := make([]ux.Component, 0, len(d.Widgets))

	for i, widget := range d.Widgets {
		drawable, err := widget.Drawable()
		if err != nil {
			return nil, fmt.Errorf("widget %d: %w", i, err)
		}

		components = append(components, ux.Wrap(drawable))
	}

	return components, nil
}

// Kind returns the single kind shared by every widget.
func (d *Document) Kind() (string, error) {
	if len(d.Widgets) == 0 {
		return "", ErrEmpty
	}

	kind := d.Widgets[0].Kind
	for _, widget := range d.Widgets[1:] {
		if widget.Kind != kind {
			return "", fmt.Errorf("%w: '%s' and '%s'", ErrMixedKinds, kind, widget.Kind)
		}
	}

	return kind, nil
}

// Typed converts every widget to T. It fails with ErrMixedKinds when a widget is not a T.
func Typed[T ux.Drawable](d *Document) ([]T, error) {
	values := make([]T, 0, len(d.Widgets))

	for i, widget := range d.Widgets {
		drawable, err := widget.Drawable()
		if err != nil {
			return nil, fmt.Errorf("widget %d: %w", i, err)
		}

		value, ok := drawable.(T)
		if !ok {
			return nil, fmt.Errorf("%w: widget %d is '%s'", ErrMixedKinds, i, widget.Kind)
		}

		values = append(values, value)
	}

	return values, nil
}

func toUint8(name string, value int) (uint8, error) {
	if value < 0 || value > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %s %d", ErrInvalidSize, name, value)
	}

	return uint8(value), nil
}
