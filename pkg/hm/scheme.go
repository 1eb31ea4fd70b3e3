package hm

import (
	"fmt"
	"slices"
	"strings"
)

// Scheme represents a type scheme: a type with a set of universally
// quantified variables. A scheme with no quantified variables is monomorphic.
type Scheme struct {
	tvs []TypeVariable
	t   Type
}

// NewScheme creates a new type scheme.
func NewScheme(tvs []TypeVariable, t Type) *Scheme {
	return &Scheme{tvs: tvs, t: t}
}

// Type returns the underlying type and whether the scheme is monomorphic.
func (s *Scheme) Type() (Type, bool) {
	return s.t, len(s.tvs) == 0
}

// TypeVars returns the bound type variables.
func (s *Scheme) TypeVars() []TypeVariable {
	return s.tvs
}

// Apply applies a substitution to the scheme. Quantified variables are bound,
// not free, so bindings for them are dropped before application.
func (s *Scheme) Apply(subs Subs) Substitutable {
	filtered := make(Subs, len(subs))
	for tv, t := range subs {
		if !slices.Contains(s.tvs, tv) {
			filtered[tv] = t
		}
	}
	return &Scheme{
		tvs: s.tvs,
		t:   s.t.Apply(filtered).(Type),
	}
}

// FreeTypeVar returns the free type variables of the scheme: the body's free
// variables minus the quantified ones.
func (s *Scheme) FreeTypeVar() TypeVarSet {
	return s.t.FreeTypeVar().Difference(NewTypeVarSet(s.tvs...))
}

// Clone creates a copy of the scheme.
func (s *Scheme) Clone() *Scheme {
	tvs := make([]TypeVariable, len(s.tvs))
	copy(tvs, s.tvs)
	return &Scheme{tvs: tvs, t: s.t}
}

func (s *Scheme) String() string {
	if len(s.tvs) == 0 {
		return s.t.String()
	}
	tvStrs := make([]string, len(s.tvs))
	for i, tv := range s.tvs {
		tvStrs[i] = tv.String()
	}
	return fmt.Sprintf("forall %s. %s", strings.Join(tvStrs, " "), s.t)
}
