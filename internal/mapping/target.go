package mapping

import (
	"errors"
	"fmt"
	"strings"

	"typemap-resolver/internal/common"
)

// PlainTypeName is the target name that disables wrapping: the data type is
// passed through unchanged. It is a sentinel, not a real type.
const PlainTypeName = "plain"

// TargetType describes the type a rule maps to.
type TargetType struct {
	// Name is the type name without package, e.g. "List".
	Name string
	// Pkg is the import path, empty for builtin types and "plain".
	Pkg string
	// Generics fills the generic slot of the target, e.g. ["string"].
	Generics []string
}

// IsPlain reports whether the target is the "plain" sentinel.
func (t TargetType) IsPlain() bool {
	return t.Name == PlainTypeName
}

// QualifiedName returns "pkg/path.Name" or just "Name" without a package.
func (t TargetType) QualifiedName() string {
	if t.Pkg == "" {
		return t.Name
	}

	return t.Pkg + "." + t.Name
}

// TypeName returns the name as written in generated code, using the package
// alias and the generic slot, e.g. "coll.List[string]".
func (t TargetType) TypeName() string {
	name := t.Name
	if alias := common.PkgAlias(t.Pkg); alias != "" {
		name = alias + "." + name
	}

	if len(t.Generics) == 0 {
		return name
	}

	return name + "[" + strings.Join(t.Generics, ", ") + "]"
}

// String returns the configuration form of the target, e.g. "pkg.List<string>".
func (t TargetType) String() string {
	if len(t.Generics) == 0 {
		return t.QualifiedName()
	}

	return t.QualifiedName() + "<" + strings.Join(t.Generics, ", ") + ">"
}

// ParseTargetType parses "pkg/path.Name", "pkg/path.Name<A, B>" or "plain".
// Explicit generics are appended to the ones written inline.
func ParseTargetType(s string, generics []string) (TargetType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TargetType{}, errors.New("empty target type")
	}

	var inline []string

	if open := strings.Index(s, "<"); open >= 0 {
		if !strings.HasSuffix(s, ">") {
			return TargetType{}, fmt.Errorf("invalid target type %q: unbalanced generic slot", s)
		}

		inner := strings.TrimSpace(s[open+1 : len(s)-1])
		if strings.ContainsAny(inner, "<>") {
			return TargetType{}, fmt.Errorf("invalid target type %q: nested generic slot", s)
		}

		for g := range strings.SplitSeq(inner, ",") {
			if g = strings.TrimSpace(g); g != "" {
				inline = append(inline, g)
			}
		}

		s = strings.TrimSpace(s[:open])
	} else if strings.Contains(s, ">") {
		return TargetType{}, fmt.Errorf("invalid target type %q: unbalanced generic slot", s)
	}

	pkg, name := common.SplitQualified(s)
	if name == "" {
		return TargetType{}, fmt.Errorf("invalid target type %q: missing type name", s)
	}

	all := append(inline, generics...)
	if len(all) == 0 {
		all = nil
	}

	return TargetType{Name: name, Pkg: pkg, Generics: all}, nil
}
