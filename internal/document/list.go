package document

// Direction identifies which way a list entry moves during a reorder.
type Direction string

// Reorder directions.
const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Valid reports whether d names a known direction.
func (d Direction) Valid() bool {
	return d == MoveUp || d == MoveDown
}

// Move exchanges the entry at index with its neighbor in the requested
// direction. A move at the boundary (index 0 for up, last index for down) or
// with an out-of-range index is a no-op; it reports whether the list changed.
// The rule is identical for every repeated section.
func Move[T any](list []T, index int, dir Direction) bool {
	if index < 0 || index >= len(list) {
		return false
	}
	switch dir {
	case MoveUp:
		if index == 0 {
			return false
		}
		list[index-1], list[index] = list[index], list[index-1]
	case MoveDown:
		if index == len(list)-1 {
			return false
		}
		list[index], list[index+1] = list[index+1], list[index]
	default:
		return false
	}
	return true
}

// RemoveAt returns the list with the entry at index removed, preserving the
// order of the remaining entries. An out-of-range index returns the list
// unchanged.
func RemoveAt[T any](list []T, index int) []T {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}
