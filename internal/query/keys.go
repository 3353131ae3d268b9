package query

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key identifies a cached read. Elements are compared by their JSON encoding,
// so structs and maps with the same content address the same entry.
type Key []any

func (k Key) parts() []string {
	out := make([]string, len(k))
	for i, el := range k {
		b, err := json.Marshal(el)
		if err != nil {
			b = []byte(fmt.Sprintf("%q", fmt.Sprint(el)))
		}
		out[i] = string(b)
	}
	return out
}

func (k Key) String() string {
	return strings.Join(k.parts(), "/")
}

func hasPrefix(parts, prefix []string) bool {
	if len(prefix) > len(parts) {
		return false
	}
	for i := range prefix {
		if parts[i] != prefix[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix matches k element by element.
func (k Key) HasPrefix(prefix Key) bool {
	return hasPrefix(k.parts(), prefix.parts())
}
