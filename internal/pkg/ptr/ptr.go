package ptr

// To returns a pointer to v. Convenient for optional DTO fields.
func To[T any](v T) *T {
	return &v
}
