package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeApplication(t *testing.T) {
	// Compose(s1, s2) applies s2 first, then s1.
	s1 := NewSubs().Add(TypeVariable(1), number)
	s2 := NewSubs().Add(TypeVariable(0), TypeVariable(1))

	composed := s1.Compose(s2)

	assert.True(t, composed.Apply(TypeVariable(0)).Eq(number))
	assert.True(t, composed.Apply(TypeVariable(1)).Eq(number))
}

func TestComposePrecedence(t *testing.T) {
	s1 := NewSubs().Add(TypeVariable(0), number)
	s2 := NewSubs().Add(TypeVariable(0), boolT)

	composed := s1.Compose(s2)
	assert.True(t, composed.Apply(TypeVariable(0)).Eq(number),
		"receiver bindings win on key collision")
}

func TestApplyIdempotent(t *testing.T) {
	subs := NewSubs().
		Add(TypeVariable(2), number).
		Compose(NewSubs().Add(TypeVariable(1), NewFnType([]Type{TypeVariable(2)}, TypeVariable(2)))).
		Compose(NewSubs().Add(TypeVariable(0), TypeVariable(1)))

	terms := []Type{
		TypeVariable(0),
		TypeVariable(1),
		NewFnType([]Type{TypeVariable(0), TypeVariable(1)}, TypeVariable(2)),
	}

	for _, term := range terms {
		once := subs.Apply(term)
		twice := subs.Apply(once)
		assert.True(t, once.Eq(twice), "apply(s, apply(s, %s)) != apply(s, %s)", term, term)
	}
}

func TestSchemeApplyRespectsQuantifiers(t *testing.T) {
	// forall t0. (t0) -> t1
	scheme := NewScheme([]TypeVariable{0}, NewFnType([]Type{TypeVariable(0)}, TypeVariable(1)))

	subs := NewSubs().
		Add(TypeVariable(0), number).
		Add(TypeVariable(1), boolT)

	applied := scheme.Apply(subs).(*Scheme)
	body, _ := applied.Type()

	fn := body.(*FunctionType)
	assert.True(t, fn.Params()[0].Eq(TypeVariable(0)), "quantified variable must not be substituted")
	assert.True(t, fn.Ret().Eq(boolT), "free variable must be substituted")
}

func TestSchemeFreeTypeVar(t *testing.T) {
	scheme := NewScheme([]TypeVariable{0}, NewFnType([]Type{TypeVariable(0)}, TypeVariable(1)))

	free := scheme.FreeTypeVar()
	require.Equal(t, 1, free.Size())
	assert.True(t, free.Contains(TypeVariable(1)))
	assert.False(t, free.Contains(TypeVariable(0)))
}

func TestEnvPersistence(t *testing.T) {
	base := NewEnv()
	withFoo := base.Add("foo", NewScheme(nil, number))
	shadowed := withFoo.Add("foo", NewScheme(nil, boolT))

	_, found := base.SchemeOf("foo")
	assert.False(t, found, "adding must not mutate the base environment")

	scheme, found := withFoo.SchemeOf("foo")
	require.True(t, found)
	typ, mono := scheme.Type()
	assert.True(t, mono)
	assert.True(t, typ.Eq(number), "shadowing must not mutate the outer layer")

	scheme, found = shadowed.SchemeOf("foo")
	require.True(t, found)
	typ, _ = scheme.Type()
	assert.True(t, typ.Eq(boolT))
}

func TestEnvApply(t *testing.T) {
	env := NewEnv().Add("f", NewScheme(nil, NewFnType([]Type{TypeVariable(0)}, TypeVariable(0))))

	subs := NewSubs().Add(TypeVariable(0), number)
	applied := env.Apply(subs).(Env)

	scheme, found := applied.SchemeOf("f")
	require.True(t, found)
	typ, _ := scheme.Type()
	assert.True(t, typ.Eq(NewFnType([]Type{number}, number)))
}
