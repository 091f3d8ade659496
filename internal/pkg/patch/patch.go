package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Set writes *src into m[key] when src is non-nil and reports whether it did.
func Set[T any](m map[string]any, key string, src *T) bool {
	if src == nil {
		return false
	}
	m[key] = *src
	return true
}
