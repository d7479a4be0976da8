package session

// Update is either a replacement value or a function of the current value.
// Build one with Value or Updater.
type Update[T any] struct {
	value T
	fn    func(T) T
}

// Value replaces the current value with v.
func Value[T any](v T) Update[T] {
	return Update[T]{value: v}
}

// Updater derives the new value from the current one.
func Updater[T any](fn func(T) T) Update[T] {
	return Update[T]{fn: fn}
}

// Apply returns the value u produces from cur.
func (u Update[T]) Apply(cur T) T {
	if u.fn != nil {
		return u.fn(cur)
	}
	return u.value
}
