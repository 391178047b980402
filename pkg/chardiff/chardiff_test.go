package chardiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     string
	}{
		{"identical", "same", "same", "same"},
		{"middle change", "My Old App", "My New App", "My [Old -> New] App"},
		{"full replacement", "abc", "xyz", "[abc -> xyz]"},
		{"insertion", "ab", "axb", "a[ -> x]b"},
		{"deletion", "axb", "ab", "a[x -> ]b"},
		{"empty old", "", "new", "[ -> new]"},
		{"empty new", "old", "", "[old -> ]"},
		{"unicode", "héllo", "hèllo", "h[é -> è]llo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff(tt.old, tt.new))
		})
	}
}
