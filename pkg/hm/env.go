package hm

import (
	"github.com/benbjohnson/immutable"
)

// Env represents a type environment: a mapping from identifiers to type
// schemes. Add returns a new environment that shadows outer bindings without
// mutating them, so environments may be freely shared across recursive calls.
type Env interface {
	SchemeOf(name string) (*Scheme, bool)
	Add(name string, scheme *Scheme) Env
	Remove(name string) Env
	FreeTypeVar() TypeVarSet
	Apply(subs Subs) Substitutable
}

// SchemeEnv is a persistent Env backed by an immutable map.
type SchemeEnv struct {
	schemes *immutable.Map[string, *Scheme]
}

// NewEnv creates a new empty environment.
func NewEnv() *SchemeEnv {
	return &SchemeEnv{
		schemes: immutable.NewMap[string, *Scheme](nil),
	}
}

// SchemeOf returns the scheme bound to a name.
func (env *SchemeEnv) SchemeOf(name string) (*Scheme, bool) {
	return env.schemes.Get(name)
}

// Add returns a new environment with the binding added.
func (env *SchemeEnv) Add(name string, scheme *Scheme) Env {
	return &SchemeEnv{schemes: env.schemes.Set(name, scheme)}
}

// Remove returns a new environment without the named binding.
func (env *SchemeEnv) Remove(name string) Env {
	return &SchemeEnv{schemes: env.schemes.Delete(name)}
}

// Len returns the number of bindings.
func (env *SchemeEnv) Len() int {
	return env.schemes.Len()
}

// FreeTypeVar returns the union of the free type variables of every scheme
// in the environment.
func (env *SchemeEnv) FreeTypeVar() TypeVarSet {
	ftvs := NewTypeVarSet()
	for itr := env.schemes.Iterator(); !itr.Done(); {
		_, scheme, _ := itr.Next()
		ftvs = ftvs.Union(scheme.FreeTypeVar())
	}
	return ftvs
}

// Apply applies a substitution to every scheme in the environment.
func (env *SchemeEnv) Apply(subs Subs) Substitutable {
	schemes := immutable.NewMap[string, *Scheme](nil)
	for itr := env.schemes.Iterator(); !itr.Done(); {
		name, scheme, _ := itr.Next()
		schemes = schemes.Set(name, scheme.Apply(subs).(*Scheme))
	}
	return &SchemeEnv{schemes: schemes}
}
