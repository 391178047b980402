// Package chardiff renders a compact single-line diff between two short
// strings, used in warning details.
package chardiff

import "fmt"

// Diff returns old and new with the changed region bracketed, e.g.
// "My [Old -> New] App". Identical strings yield the string itself.
func Diff(old, new string) string {
	if old == new {
		return old
	}
	o, n := []rune(old), []rune(new)

	prefix := 0
	for prefix < len(o) && prefix < len(n) && o[prefix] == n[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(o)-prefix && suffix < len(n)-prefix && o[len(o)-1-suffix] == n[len(n)-1-suffix] {
		suffix++
	}

	return fmt.Sprintf("%s[%s -> %s]%s",
		string(o[:prefix]),
		string(o[prefix:len(o)-suffix]),
		string(n[prefix:len(n)-suffix]),
		string(o[len(o)-suffix:]),
	)
}
