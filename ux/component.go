package ux

import (
	"reflect"
	"regexp"
)

var packagePathRegex = regexp.MustCompile(`(?:[\w\-.]+/)*[\w\-]+\.`)

// Component owns exactly one Drawable whose concrete type is erased.
// The concrete type is fixed by Wrap and never changes afterwards.
type Component struct {
	drawable Drawable
}

// Wrap erases the concrete type of value. Types without a Draw(Printer)
// method are rejected by the compiler.
func Wrap[T Drawable](value T) Component {
	if isNil(value) {
		panic(ErrNilComponent)
	}

	return Component{drawable: value}
}

// Draw dispatches to the wrapped value's Draw method.
func (c Component) Draw(printer Printer) {
	if c.drawable == nil {
		panic(ErrNilComponent)
	}

	c.drawable.Draw(printer)
}

// Kind returns the name of the wrapped concrete type, without package paths.
func (c Component) Kind() string {
	if c.drawable == nil {
		return ""
	}

	t := reflect.TypeOf(c.drawable)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return packagePathRegex.ReplaceAllString(t.Name(), "")
}

func (c Component) IsZero() bool {
	return c.drawable == nil
}

func isNil(d Drawable) bool {
	if d == nil {
		return true
	}

	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}

	return false
}
