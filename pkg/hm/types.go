package hm

import (
	"fmt"
	"strings"
)

// Substitutable is any value that can have substitutions applied and knows
// its free type variables.
type Substitutable interface {
	Apply(Subs) Substitutable
	FreeTypeVar() TypeVarSet
}

// Type represents a type term: a variable, a nullary constructor, or a
// function type. Terms are immutable value trees; Apply builds new terms
// rather than mutating in place.
type Type interface {
	Substitutable
	Name() string
	Types() Types
	Eq(Type) bool
	fmt.Stringer
}

// Types represents a slice of types.
type Types []Type

// TypeVariable is an inference placeholder. Ids are allocated by a Fresher
// and are unique within one inference run.
type TypeVariable int

func (tv TypeVariable) Name() string {
	return tv.String()
}

func (tv TypeVariable) Apply(subs Subs) Substitutable {
	if t, exists := subs[tv]; exists {
		if ot, ok := t.(TypeVariable); ok && ot == tv {
			return tv
		}
		// Recurse into the image so chained bindings resolve even when the
		// substitution was not pre-collapsed.
		return t.Apply(subs)
	}
	return tv
}

func (tv TypeVariable) FreeTypeVar() TypeVarSet {
	return NewTypeVarSet(tv)
}

func (tv TypeVariable) Types() Types {
	return nil
}

func (tv TypeVariable) Eq(other Type) bool {
	if ot, ok := other.(TypeVariable); ok {
		return tv == ot
	}
	return false
}

func (tv TypeVariable) String() string {
	return fmt.Sprintf("t%d", int(tv))
}

// TypeConst is a nullary base type such as number or bool. Constructors are
// compared by name only, so new base types need no unifier changes.
type TypeConst string

func (tc TypeConst) Name() string {
	return string(tc)
}

func (tc TypeConst) Apply(Subs) Substitutable {
	return tc
}

func (tc TypeConst) FreeTypeVar() TypeVarSet {
	return NewTypeVarSet()
}

func (tc TypeConst) Types() Types {
	return nil
}

func (tc TypeConst) Eq(other Type) bool {
	if ot, ok := other.(TypeConst); ok {
		return tc == ot
	}
	return false
}

func (tc TypeConst) String() string {
	return string(tc)
}

// FunctionType represents an n-ary function type. Arity is the parameter
// count; zero-parameter functions are valid.
type FunctionType struct {
	params Types
	ret    Type
}

func NewFnType(params []Type, ret Type) *FunctionType {
	return &FunctionType{params: params, ret: ret}
}

func (ft *FunctionType) Name() string {
	return ft.String()
}

func (ft *FunctionType) Arity() int {
	return len(ft.params)
}

// Params returns the ordered parameter types.
func (ft *FunctionType) Params() Types {
	return ft.params
}

// Ret returns the result type.
func (ft *FunctionType) Ret() Type {
	return ft.ret
}

func (ft *FunctionType) Apply(subs Subs) Substitutable {
	params := make(Types, len(ft.params))
	for i, p := range ft.params {
		params[i] = p.Apply(subs).(Type)
	}
	return &FunctionType{
		params: params,
		ret:    ft.ret.Apply(subs).(Type),
	}
}

func (ft *FunctionType) FreeTypeVar() TypeVarSet {
	result := ft.ret.FreeTypeVar()
	for _, p := range ft.params {
		result = result.Union(p.FreeTypeVar())
	}
	return result
}

func (ft *FunctionType) Types() Types {
	ts := make(Types, 0, len(ft.params)+1)
	ts = append(ts, ft.params...)
	return append(ts, ft.ret)
}

func (ft *FunctionType) Eq(other Type) bool {
	ot, ok := other.(*FunctionType)
	if !ok || len(ft.params) != len(ot.params) {
		return false
	}
	for i, p := range ft.params {
		if !p.Eq(ot.params[i]) {
			return false
		}
	}
	return ft.ret.Eq(ot.ret)
}

func (ft *FunctionType) String() string {
	params := make([]string, len(ft.params))
	for i, p := range ft.params {
		params[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(params, ", "), ft.ret)
}
