package sfl

import (
	"github.com/sfl-lang/sfl/pkg/hm"
)

type Type = hm.Type

// Base type constructors. The unifier compares constructors by name only, so
// adding a base type is a table entry, not a unifier change.
const (
	NumberType  = hm.TypeConst("number")
	BooleanType = hm.TypeConst("bool")

	// UnitType is the type of a block with no trailing expression.
	UnitType = hm.TypeConst("unit")
)

var baseTypes = map[string]hm.TypeConst{
	NumberType.Name():  NumberType,
	BooleanType.Name(): BooleanType,
	UnitType.Name():    UnitType,
}

// RegisterBaseType registers an additional nullary type constructor for
// annotation resolution.
func RegisterBaseType(name string) hm.TypeConst {
	tc := hm.TypeConst(name)
	baseTypes[name] = tc
	return tc
}

// LookupBaseType resolves a constructor name from the registry.
func LookupBaseType(name string) (hm.TypeConst, bool) {
	tc, found := baseTypes[name]
	return tc, found
}

// TypeNode is a surface type annotation, resolved to a Type during
// inference.
type TypeNode interface {
	SourceLocatable
	Resolve(env hm.Env, fresh hm.Fresher) (hm.Type, error)
}

// NamedTypeNode is a type annotation naming a base constructor.
type NamedTypeNode struct {
	Named string
	Loc   *SourceLocation
}

var _ TypeNode = (*NamedTypeNode)(nil)

func (t *NamedTypeNode) GetSourceLocation() *SourceLocation { return t.Loc }

func (t *NamedTypeNode) Resolve(env hm.Env, fresh hm.Fresher) (hm.Type, error) {
	tc, found := LookupBaseType(t.Named)
	if !found {
		return nil, NewInferError(UnresolvedTypeError{Name: t.Named}, t)
	}
	return tc, nil
}

// FnTypeNode is a function type annotation.
type FnTypeNode struct {
	Params []TypeNode
	Ret    TypeNode
	Loc    *SourceLocation
}

var _ TypeNode = (*FnTypeNode)(nil)

func (t *FnTypeNode) GetSourceLocation() *SourceLocation { return t.Loc }

func (t *FnTypeNode) Resolve(env hm.Env, fresh hm.Fresher) (hm.Type, error) {
	params := make([]hm.Type, len(t.Params))
	for i, p := range t.Params {
		pt, err := resolveAnnotation(p, env, fresh)
		if err != nil {
			return nil, err
		}
		params[i] = pt
	}
	ret, err := resolveAnnotation(t.Ret, env, fresh)
	if err != nil {
		return nil, err
	}
	return hm.NewFnType(params, ret), nil
}

// resolveAnnotation converts an annotation to a type. An absent annotation
// stands for a fresh type variable.
func resolveAnnotation(t TypeNode, env hm.Env, fresh hm.Fresher) (hm.Type, error) {
	if t == nil {
		return fresh.Fresh(), nil
	}
	return t.Resolve(env, fresh)
}
