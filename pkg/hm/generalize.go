package hm

// Generalize creates a type scheme by quantifying over the type variables
// free in the type but not free in the environment. The environment must be
// the one in effect before the binding being generalized was added.
func Generalize(env Env, t Type) *Scheme {
	ftvs := t.FreeTypeVar()
	if env != nil {
		ftvs = ftvs.Difference(env.FreeTypeVar())
	}
	return NewScheme(ftvs.ToSlice(), t)
}

// Instantiate replaces every quantified variable of a scheme with a fresh
// type variable, consistently within one call. Separate instantiations of
// the same scheme use disjoint fresh variables.
func Instantiate(fresh Fresher, scheme *Scheme) Type {
	if len(scheme.tvs) == 0 {
		return scheme.t
	}
	subs := NewSubs()
	for _, tv := range scheme.tvs {
		subs.Add(tv, fresh.Fresh())
	}
	return scheme.t.Apply(subs).(Type)
}

// Fresher generates fresh type variables.
type Fresher interface {
	Fresh() TypeVariable
}

// CountingFresher allocates monotonically increasing variable ids. Each
// inference run owns its own CountingFresher; there is no process-wide
// counter, so concurrent runs cannot interfere and tests can seed the
// counter for deterministic output.
type CountingFresher struct {
	next int
}

// NewFresher creates a CountingFresher starting at seed.
func NewFresher(seed int) *CountingFresher {
	return &CountingFresher{next: seed}
}

// Fresh returns the next type variable.
func (f *CountingFresher) Fresh() TypeVariable {
	tv := TypeVariable(f.next)
	f.next++
	return tv
}
