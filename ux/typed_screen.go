package ux

import (
	"log"
	"slices"
	"sync"
)

// TypedScreen is an ordered collection whose elements all share the type T.
// Elements are stored unboxed and Draw is bound when T is instantiated, so
// no per element interface lookup happens. Use Screen to mix kinds.
// Nil elements are rejected with ErrNilComponent, as in Screen.
type TypedScreen[T Drawable] struct {
	options    *ScreenOptions
	components []T
	lock       sync.RWMutex
}

func NewTypedScreen[T Drawable](options *ScreenOptions, components ...T) *TypedScreen[T] {
	for _, component := range components {
		if isNil(component) {
			panic(ErrNilComponent)
		}
	}

	return &TypedScreen[T]{
		options:    mergeScreenOptions(options),
		components: slices.Clone(components),
	}
}

func (s *TypedScreen[T]) Append(component T) *TypedScreen[T] {
	if isNil(component) {
		panic(ErrNilComponent)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.components = append(s.components, component)

	return s
}

func (s *TypedScreen[T]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.components)
}

func (s *TypedScreen[T]) Draw(printer Printer) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	log.Printf("Drawing typed screen with %d components\n", len(s.components))

	for _, component := range s.components {
		component.Draw(printer)
	}
}

func (s *TypedScreen[T]) Run() {
	printer := NewPrinter(s.options.Writer)
	printTitle(printer, s.options.Title)
	s.Draw(printer)
}
