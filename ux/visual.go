package ux

// Drawable is implemented by anything that can render itself onto a Printer.
//
// Draw must not return the implementing type and takes no type parameters, so
// every Drawable can be stored behind a Component and mixed with other kinds.
type Drawable interface {
	Draw(printer Printer)
}

// DrawFunc adapts an ordinary function to a Drawable.
type DrawFunc func(printer Printer)

func (f DrawFunc) Draw(printer Printer) {
	f(printer)
}
