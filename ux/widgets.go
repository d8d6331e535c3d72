package ux

// Button is a labelled push button.
type Button struct {
	Width  uint8
	Height uint8
	Label  string
}

func (b Button) Draw(printer Printer) {
	printer.Fprintln("Draw Button")
}

// SelectBox is a drop down with a fixed list of options.
type SelectBox struct {
	Width   uint8
	Height  uint8
	Options []string
}

func (s SelectBox) Draw(printer Printer) {
	printer.Fprintln("Draw SelectBox")
}
