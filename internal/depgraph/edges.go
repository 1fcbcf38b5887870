package depgraph

// edgeIndex maps a vertex to an ordered list of adjacent vertices. A key is
// present only while its list is non-empty.
type edgeIndex[T comparable] map[T][]T

// appendEdge adds to to the list stored under from, creating the list if needed.
func appendEdge[T comparable](index edgeIndex[T], from, to T) {
	index[from] = append(index[from], to)
}

// removeEdge drops the first occurrence of to from the list stored under from.
// The key is deleted when its list becomes empty. Unknown keys or values are
// ignored.
func removeEdge[T comparable](index edgeIndex[T], from, to T) {
	list, ok := index[from]
	if !ok {
		return
	}
	for i, v := range list {
		if v == to {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(index, from)
		return
	}
	index[from] = list
}

// copyEdges returns a copy of the list stored under key, or nil if there is none.
func copyEdges[T comparable](index edgeIndex[T], key T) []T {
	list, ok := index[key]
	if !ok {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}

