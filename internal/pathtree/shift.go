package pathtree

import "strings"

// Shift splits p at its first separator ('/' or '\'), returning the leading
// segment and everything after it. When p has no separator isLast is true
// and both next and rest are p itself. For example:
//
//   - "path/to/the/file" -> "path", "to/the/file", false
//   - "file" -> "file", "file", true
//   - "file/" -> "file", "", false
func Shift(p string) (next, rest string, isLast bool) {
	i := strings.IndexAny(p, `/\`)
	if i < 0 {
		return p, p, true
	}
	return p[:i], p[i+1:], false
}
