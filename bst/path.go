package bst

import (
	"strconv"
	"strings"
)

// Path is the trail of nodes visited by a search, starting at the root.
type Path []*Node

// Keys returns the keys along the path.
func (path Path) Keys() []int {
	keys := make([]int, len(path))
	for i, n := range path {
		keys[i] = n.key
	}
	return keys
}

// Last returns the final node of the path, or nil for an empty path.
func (path Path) Last() *Node {
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}

func (path Path) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, n := range path {
		sb.WriteRune('⟨')
		sb.WriteString(strconv.Itoa(n.key))
		sb.WriteRune('⟩')
	}
	sb.WriteRune(']')
	return sb.String()
}
