package hm

import (
	"slices"

	set "github.com/hashicorp/go-set/v3"
)

// TypeVarSet represents a set of type variables.
type TypeVarSet struct {
	s *set.Set[TypeVariable]
}

// NewTypeVarSet creates a new TypeVarSet.
func NewTypeVarSet(tvs ...TypeVariable) TypeVarSet {
	return TypeVarSet{s: set.From(tvs)}
}

// Union returns a new set containing the members of both sets.
func (tvs TypeVarSet) Union(other TypeVarSet) TypeVarSet {
	result := set.New[TypeVariable](tvs.s.Size() + other.s.Size())
	result.InsertSlice(tvs.s.Slice())
	result.InsertSlice(other.s.Slice())
	return TypeVarSet{s: result}
}

// Difference returns a new set containing the members of tvs not in other.
func (tvs TypeVarSet) Difference(other TypeVarSet) TypeVarSet {
	result := set.New[TypeVariable](tvs.s.Size())
	for _, tv := range tvs.s.Slice() {
		if !other.s.Contains(tv) {
			result.Insert(tv)
		}
	}
	return TypeVarSet{s: result}
}

// Contains checks if a type variable is in the set.
func (tvs TypeVarSet) Contains(tv TypeVariable) bool {
	return tvs.s.Contains(tv)
}

// Add adds a type variable to the set.
func (tvs TypeVarSet) Add(tv TypeVariable) {
	tvs.s.Insert(tv)
}

// Size returns the number of variables in the set.
func (tvs TypeVarSet) Size() int {
	return tvs.s.Size()
}

// ToSlice returns the members in ascending id order, so set-derived output
// (quantifier lists, instantiation order) is deterministic.
func (tvs TypeVarSet) ToSlice() []TypeVariable {
	result := tvs.s.Slice()
	slices.Sort(result)
	return result
}
