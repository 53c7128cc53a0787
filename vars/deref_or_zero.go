package vars

// DerefOrZero dereferences ptr, or returns the zero value for a nil ptr.
func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr == nil {
		return
	}
	return *ptr
}
