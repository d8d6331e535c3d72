package ux

import (
	"io"
	"os"

	"dario.cat/mergo"
)

type ScreenOptions struct {
	// The writer Run renders to (default: os.Stdout)
	Writer io.Writer
	// Optional heading printed in bold before the components
	Title string
}

var DefaultScreenOptions ScreenOptions = ScreenOptions{
	Writer: os.Stdout,
}

func mergeScreenOptions(options *ScreenOptions) *ScreenOptions {
	mergedOptions := ScreenOptions{}

	if options == nil {
		options = &ScreenOptions{}
	}

	if err := mergo.Merge(&mergedOptions, options, mergo.WithoutDereference); err != nil {
		panic(err)
	}

	if err := mergo.Merge(&mergedOptions, DefaultScreenOptions, mergo.WithoutDereference); err != nil {
		panic(err)
	}

	return &mergedOptions
}

func printTitle(printer Printer, title string) {
	if title == "" {
		return
	}

	printer.Fprintln(BoldString(title))
}
