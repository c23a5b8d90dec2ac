package di

import "sync"

// Token is a typed key for a service registered in the container.
type Token[T any] struct {
	name string
}

// NewToken creates a typed token with a unique name.
func NewToken[T any](name string) Token[T] {
	return Token[T]{name: name}
}

// Name returns the token's registration name.
func (t Token[T]) Name() string {
	return t.name
}

// lazy defers construction until first resolution and memoizes the result.
type lazy[T any] struct {
	once    sync.Once
	factory func(ServiceRegistry) T
	value   T
}

func (l *lazy[T]) resolve(sr ServiceRegistry) T {
	l.once.Do(func() {
		l.value = l.factory(sr)
	})
	return l.value
}

// RegisterToken registers a lazily constructed service under the token.
func RegisterToken[T any](c Container, t Token[T], factory func(ServiceRegistry) T) {
	c.Register(t.name, &lazy[T]{factory: factory})
}

// GetToken resolves the service registered under the token. Returns the
// zero value when nothing is registered.
func GetToken[T any](sr ServiceRegistry, t Token[T]) T {
	switch v := sr.Get(t.name).(type) {
	case *lazy[T]:
		return v.resolve(sr)
	case T:
		return v
	default:
		var zero T
		return zero
	}
}
