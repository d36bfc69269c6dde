package datatype

import (
	"slices"
	"strings"

	"typemap-resolver/internal/common"
	"typemap-resolver/internal/mapping"
)

// TypeID identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "github.com/acme/model"
	Name    string // e.g., "Pet"
}

// ID returns the TypeID of a target type.
func ID(t mapping.TargetType) TypeID {
	return TypeID{PkgPath: t.Pkg, Name: t.Name}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeName returns the name as written in code, e.g. "model.Pet".
func (t TypeID) TypeName() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// Kind represents the kind of a data type.
type Kind int

const (
	KindUnknown    Kind = iota
	KindObject          // named schema type
	KindArray           // plain slice of an item type
	KindMapped          // type replaced by a type rule
	KindCollection      // collection replaced by the multi wrapper
	KindSingle          // value wrapped by the single wrapper
	KindResult          // response wrapped by the result envelope
	KindNone            // no content
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindMapped:
		return "mapped"
	case KindCollection:
		return "collection"
	case KindSingle:
		return "single"
	case KindResult:
		return "result"
	case KindNone:
		return "none"
	default:
		return common.UnknownStr
	}
}

// DataType is a type of the generated code.
type DataType interface {
	Kind() Kind
	// Name is the type name without package.
	Name() string
	// Pkg is the import path, empty for builtin types.
	Pkg() string
	// TypeName is the type as written in code, e.g. "coll.List[model.Pet]".
	TypeName() string
	// Imports lists the import paths the type needs, sorted.
	Imports() []string
}

var (
	_ DataType = (*Object)(nil)
	_ DataType = (*Array)(nil)
	_ DataType = (*Mapped)(nil)
	_ DataType = (*MappedCollection)(nil)
	_ DataType = (*Single)(nil)
	_ DataType = (*Result)(nil)
	_ DataType = None{}
)

// Object is a named schema type.
type Object struct {
	ID TypeID
}

func (t *Object) Kind() Kind { return KindObject }
func (t *Object) Name() string { return t.ID.Name }
func (t *Object) Pkg() string { return t.ID.PkgPath }
func (t *Object) TypeName() string { return t.ID.TypeName() }
func (t *Object) Imports() []string { return imports(t.ID.PkgPath) }

// Array is a slice of Item.
type Array struct {
	Item DataType
}

func (t *Array) Kind() Kind { return KindArray }
func (t *Array) Name() string { return "[]" + t.Item.Name() }
func (t *Array) Pkg() string { return t.Item.Pkg() }
func (t *Array) TypeName() string { return "[]" + t.Item.TypeName() }
func (t *Array) Imports() []string { return imports("", t.Item) }

// Mapped is a schema type replaced by the target of a type rule.
type Mapped struct {
	Target mapping.TargetType
}

func (t *Mapped) Kind() Kind { return KindMapped }
func (t *Mapped) Name() string { return t.Target.Name }
func (t *Mapped) Pkg() string { return t.Target.Pkg }
func (t *Mapped) TypeName() string { return t.Target.TypeName() }
func (t *Mapped) Imports() []string { return imports(t.Target.Pkg) }

// MappedCollection is an array replaced by a collection type. Without
// Generics the collection is instantiated with Item.
type MappedCollection struct {
	ID       TypeID
	Item     DataType
	Generics []string
}

func (t *MappedCollection) Kind() Kind { return KindCollection }
func (t *MappedCollection) Name() string { return t.ID.Name }
func (t *MappedCollection) Pkg() string { return t.ID.PkgPath }
func (t *MappedCollection) Imports() []string { return imports(t.ID.PkgPath, t.Item) }

func (t *MappedCollection) TypeName() string {
	if len(t.Generics) > 0 {
		return generic(t.ID, t.Generics...)
	}

	return generic(t.ID, t.Item.TypeName())
}

// Single wraps a single value, e.g. "rx.Mono[model.Pet]".
type Single struct {
	ID      TypeID
	Wrapped DataType
}

func (t *Single) Kind() Kind { return KindSingle }
func (t *Single) Name() string { return t.ID.Name }
func (t *Single) Pkg() string { return t.ID.PkgPath }
func (t *Single) TypeName() string { return generic(t.ID, t.Wrapped.TypeName()) }
func (t *Single) Imports() []string { return imports(t.ID.PkgPath, t.Wrapped) }

// Result wraps a response body in the result envelope.
type Result struct {
	ID      TypeID
	Wrapped DataType
}

func (t *Result) Kind() Kind { return KindResult }
func (t *Result) Name() string { return t.ID.Name }
func (t *Result) Pkg() string { return t.ID.PkgPath }
func (t *Result) TypeName() string { return generic(t.ID, t.Wrapped.TypeName()) }
func (t *Result) Imports() []string { return imports(t.ID.PkgPath, t.Wrapped) }

// None is the type of an empty response.
type None struct {
	// InResult is set once the type is wrapped in a result envelope, where
	// the content type is not known.
	InResult bool
}

func (None) Kind() Kind { return KindNone }
func (None) Name() string { return "none" }
func (None) Pkg() string { return "" }
func (None) Imports() []string { return nil }

func (t None) TypeName() string {
	if t.InResult {
		return "any"
	}

	return "struct{}"
}

// WrappedInResult returns the form of None used inside a result envelope.
func (None) WrappedInResult() None { return None{InResult: true} }

func generic(id TypeID, args ...string) string {
	return id.TypeName() + "[" + strings.Join(args, ", ") + "]"
}

// imports collects pkg and the imports of nested, sorted and without
// duplicates.
func imports(pkg string, nested ...DataType) []string {
	var out []string
	if pkg != "" {
		out = append(out, pkg)
	}

	for _, dt := range nested {
		out = append(out, dt.Imports()...)
	}

	if len(out) == 0 {
		return nil
	}

	slices.Sort(out)

	return slices.Compact(out)
}
