package hm

// Subs represents a substitution: a finite mapping from type variables to
// types. Compose keeps substitutions idempotent by applying the receiver to
// the other substitution's images before inserting them.
type Subs map[TypeVariable]Type

// NewSubs creates a new empty substitution.
func NewSubs() Subs {
	return make(Subs)
}

// Apply applies the substitution to a type.
func (s Subs) Apply(t Type) Type {
	return t.Apply(s).(Type)
}

// Compose returns a substitution equivalent to applying other first and the
// receiver after. The receiver's bindings win on key collision.
func (s Subs) Compose(other Subs) Subs {
	result := make(Subs, len(s)+len(other))
	for tv, t := range other {
		result[tv] = t.Apply(s).(Type)
	}
	for tv, t := range s {
		result[tv] = t
	}
	return result
}

// Clone creates a copy of the substitution.
func (s Subs) Clone() Subs {
	result := make(Subs, len(s))
	for tv, t := range s {
		result[tv] = t
	}
	return result
}

// Add adds a binding and returns the updated substitution.
func (s Subs) Add(tv TypeVariable, t Type) Subs {
	s[tv] = t
	return s
}

// Get gets the image of a type variable.
func (s Subs) Get(tv TypeVariable) (Type, bool) {
	t, exists := s[tv]
	return t, exists
}
