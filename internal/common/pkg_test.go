package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		in       string
		wantPkg  string
		wantName string
	}{
		{"github.com/acme/model.Pet", "github.com/acme/model", "Pet"},
		{"net/http.Response", "net/http", "Response"},
		{"io.Reader", "io", "Reader"},
		{"int32", "", "int32"},
		{"plain", "", "plain"},
		{"github.com/acme/model", "", "github.com/acme/model"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			pkg, name := SplitQualified(tt.in)
			assert.Equal(t, tt.wantPkg, pkg)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestPkgAlias(t *testing.T) {
	assert.Empty(t, PkgAlias(""))
	assert.Equal(t, "model", PkgAlias("github.com/acme/model"))
	assert.Equal(t, "io", PkgAlias("io"))
}

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.True(t, IsSingle([]int{1}))
	assert.True(t, IsMultiple([]int{1, 2}))

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string{})
	assert.False(t, ok)

	out := FlatMap([]int{1, 2, 3}, func(i int) []int {
		if i == 2 {
			return nil
		}

		return []int{i, i * 10}
	})
	assert.Equal(t, []int{1, 10, 3, 30}, out)
}
