package core

import "golang.org/x/exp/constraints"

// IncrementRangeLoop increments *v and wraps it back to min once it passes max.
// Requires min <= max; this is not checked.
func IncrementRangeLoop[T constraints.Integer](v *T, min, max T) {
	// Compare before incrementing so max can be the type's largest value
	if *v >= max {
		*v = min
		return
	}
	*v++
}
