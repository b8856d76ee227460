package patch

import "reflect"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Empty reports whether none of the given optional fields were supplied.
func Empty(ptrs ...any) bool {
	for _, p := range ptrs {
		if p == nil {
			continue
		}
		v := reflect.ValueOf(p)
		if v.Kind() == reflect.Pointer && v.IsNil() {
			continue
		}
		return false
	}
	return true
}
