package hm

import (
	"fmt"
)

// TypeMismatchError reports two type terms that cannot be made equal.
type TypeMismatchError struct {
	Expected Type
	Actual   Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.Expected, e.Actual)
}

// ArityMismatchError reports two function types with different parameter
// counts.
type ArityMismatchError struct {
	Expected int
	Actual   int
}

func (e ArityMismatchError) Error() string {
	return fmt.Sprintf("expected %d argument(s), got %d", e.Expected, e.Actual)
}

// InfiniteTypeError reports an occurs-check failure: binding Var to Type
// would produce a type containing itself.
type InfiniteTypeError struct {
	Var  TypeVariable
	Type Type
}

func (e InfiniteTypeError) Error() string {
	return fmt.Sprintf("infinite type: %s occurs in %s", e.Var, e.Type)
}

// Unify computes the most general substitution making two type terms equal.
// It introduces no constraint beyond what equality requires; the result is
// unique up to renaming of fresh variables.
func Unify(t1, t2 Type) (Subs, error) {
	if tv1, ok := t1.(TypeVariable); ok {
		return bindVar(tv1, t2)
	}
	if tv2, ok := t2.(TypeVariable); ok {
		return bindVar(tv2, t1)
	}

	switch a := t1.(type) {
	case TypeConst:
		if b, ok := t2.(TypeConst); ok && a == b {
			return NewSubs(), nil
		}
		return nil, TypeMismatchError{Expected: t1, Actual: t2}
	case *FunctionType:
		b, ok := t2.(*FunctionType)
		if !ok {
			return nil, TypeMismatchError{Expected: t1, Actual: t2}
		}
		return unifyFns(a, b)
	default:
		return nil, TypeMismatchError{Expected: t1, Actual: t2}
	}
}

// unifyFns unifies parameters pairwise left-to-right, threading the
// accumulated substitution through each pair, then unifies the results.
func unifyFns(a, b *FunctionType) (Subs, error) {
	if a.Arity() != b.Arity() {
		return nil, ArityMismatchError{Expected: a.Arity(), Actual: b.Arity()}
	}

	subs := NewSubs()
	for i := range a.params {
		s, err := Unify(subs.Apply(a.params[i]), subs.Apply(b.params[i]))
		if err != nil {
			return nil, err
		}
		subs = s.Compose(subs)
	}

	s, err := Unify(subs.Apply(a.ret), subs.Apply(b.ret))
	if err != nil {
		return nil, err
	}
	return s.Compose(subs), nil
}

// bindVar binds a type variable to a type, after the occurs check.
func bindVar(tv TypeVariable, t Type) (Subs, error) {
	if ot, ok := t.(TypeVariable); ok && tv == ot {
		return NewSubs(), nil
	}
	if t.FreeTypeVar().Contains(tv) {
		return nil, InfiniteTypeError{Var: tv, Type: t}
	}
	return NewSubs().Add(tv, t), nil
}
