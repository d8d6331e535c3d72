package ux

import (
	"errors"

	"github.com/fatih/color"
)

var ErrNilComponent = errors.New("component has no drawable value")

var BoldString = color.New(color.Bold).SprintfFunc()

func Render(drawFn func(printer Printer)) Component {
	return Wrap(DrawFunc(drawFn))
}
