package queryfn

// ToSlice enumerates s into a new slice. An empty source returns a non-nil,
// empty slice.
func (s Seq[T]) ToSlice() ([]T, error) {
	if err := s.validate("ToSlice", "source"); err != nil {
		return nil, err
	}
	out := make([]T, 0)
	err := s.run(func(v T) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToMap enumerates s into a map keyed by key. Two elements with the same key
// are reported as a DuplicateKeyError; no value is silently overwritten.
func ToMap[T any, K comparable](s Seq[T], key Selector[T, K]) (map[K]T, error) {
	return toMap("ToMap", s, key, identity[T])
}

// ToMapSelect is ToMap with values projected by value.
func ToMapSelect[T any, K comparable, V any](s Seq[T], key Selector[T, K], value Selector[T, V]) (map[K]V, error) {
	return toMap("ToMapSelect", s, key, value)
}

func toMap[T any, K comparable, V any](op string, s Seq[T], key Selector[T, K], value Selector[T, V]) (map[K]V, error) {
	err := check(
		s.validate(op, "source"),
		notNil(key == nil, op, "key"),
		notNil(value == nil, op, "value"),
	)
	if err != nil {
		return nil, err
	}

	out := make(map[K]V)
	var dupErr error
	err = s.run(func(v T) bool {
		k := key(v)
		if _, ok := out[k]; ok {
			dupErr = &DuplicateKeyError{Key: k}
			return false
		}
		out[k] = value(v)
		return true
	})
	if err := check(err, dupErr); err != nil {
		return nil, err
	}
	return out, nil
}
