package ux

import (
	"log"
	"slices"
	"sync"
)

// Screen is an ordered collection of components of any kind.
// Components are drawn in insertion order, one dynamic dispatch each.
type Screen struct {
	options    *ScreenOptions
	components []Component
	lock       sync.RWMutex
}

func NewScreen(options *ScreenOptions, components ...Component) *Screen {
	for _, component := range components {
		if component.IsZero() {
			panic(ErrNilComponent)
		}
	}

	return &Screen{
		options:    mergeScreenOptions(options),
		components: slices.Clone(components),
	}
}

// Append adds a component to the end of the screen.
func (s *Screen) Append(component Component) *Screen {
	if component.IsZero() {
		panic(ErrNilComponent)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.components = append(s.components, component)

	return s
}

func (s *Screen) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.components)
}

// Draw renders every component onto printer, front to back.
func (s *Screen) Draw(printer Printer) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	log.Printf("Drawing screen with %d components\n", len(s.components))

	for _, component := range s.components {
		log.Printf("Drawing %s\n", component.Kind())
		component.Draw(printer)
	}
}

// Run renders the title and all components to the configured writer.
func (s *Screen) Run() {
	printer := NewPrinter(s.options.Writer)
	printTitle(printer, s.options.Title)
	s.Draw(printer)
}
