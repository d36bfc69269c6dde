package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetType(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		generics []string
		want     TargetType
	}{
		{
			name: "qualified",
			in:   "github.com/acme/coll.List",
			want: TargetType{Name: "List", Pkg: "github.com/acme/coll"},
		},
		{
			name: "builtin",
			in:   "int32",
			want: TargetType{Name: "int32"},
		},
		{
			name: "plain",
			in:   " plain ",
			want: TargetType{Name: "plain"},
		},
		{
			name: "empty generic slot",
			in:   "github.com/acme/model.Items<>",
			want: TargetType{Name: "Items", Pkg: "github.com/acme/model"},
		},
		{
			name: "inline generics",
			in:   "github.com/acme/coll.Map<string, int>",
			want: TargetType{Name: "Map", Pkg: "github.com/acme/coll", Generics: []string{"string", "int"}},
		},
		{
			name:     "explicit generics",
			in:       "github.com/acme/coll.List",
			generics: []string{"github.com/acme/model.Pet"},
			want:     TargetType{Name: "List", Pkg: "github.com/acme/coll", Generics: []string{"github.com/acme/model.Pet"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTargetType(tt.in, tt.generics)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTargetTypeErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "List<string", "List>", "Map<List<int>>", "pkg.<int>"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTargetType(in, nil)
			require.Error(t, err)
		})
	}
}

func TestTargetTypeNames(t *testing.T) {
	tt := TargetType{Name: "List", Pkg: "github.com/acme/coll", Generics: []string{"string"}}

	assert.Equal(t, "github.com/acme/coll.List", tt.QualifiedName())
	assert.Equal(t, "coll.List[string]", tt.TypeName())
	assert.Equal(t, "github.com/acme/coll.List<string>", tt.String())
	assert.False(t, tt.IsPlain())

	plain := TargetType{Name: PlainTypeName}
	assert.True(t, plain.IsPlain())
	assert.Equal(t, "plain", plain.TypeName())
	assert.Equal(t, "plain", plain.String())
}
