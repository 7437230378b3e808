package suite

import "unsafe"

// hookSet holds the hooks of one kind. Insertion is idempotent, keyed by
// closure identity: re-registering the same func value is a no-op, while
// distinct closures are all kept even when they share compiled code.
// Iteration follows insertion order, though the contract promises no
// order within a kind.
type hookSet[T any] struct {
	seen map[uintptr]struct{}
	fns  []T
}

// funcKey returns the func value's data word. The code pointer would
// conflate separate closures built from the same literal; the data word
// identifies the closure object itself. The set keeps every registered
// hook reachable, so a key cannot be reused while it is in the map.
func funcKey[T any](fn T) uintptr {
	i := any(fn)
	return uintptr((*[2]unsafe.Pointer)(unsafe.Pointer(&i))[1])
}

func (s *hookSet[T]) add(fn T) {
	key := funcKey(fn)
	if s.seen == nil {
		s.seen = make(map[uintptr]struct{})
	}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.fns = append(s.fns, fn)
}

func (s *hookSet[T]) len() int { return len(s.fns) }
