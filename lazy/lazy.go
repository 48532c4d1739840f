// Package lazy provides a value that is computed on first use.
package lazy

import "sync"

// Of holds a value that is built by a callback the first time Get is
// called. Later calls return the memoized value without invoking the
// callback again. The zero value of Of yields the zero value of T.
type Of[T any] struct {
	build func() T
	once  sync.Once
	value T
}

// New returns a lazy value built by f on first access.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{build: f}
}

// Get returns the value, building it first if needed. Safe for
// concurrent use. If the build callback panics, the panic propagates
// and the value stays unbuilt, so a later Get retries.
func (l *Of[T]) Get() T { //nolint:ireturn
	defer func() {
		if r := recover(); r != nil {
			l.once = sync.Once{}

			panic(r)
		}
	}()

	l.once.Do(func() {
		if l.build != nil {
			l.value = l.build()
			l.build = nil
		}
	})

	return l.value
}
