package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralize(t *testing.T) {
	t.Run("quantifies variables not free in env", func(t *testing.T) {
		env := NewEnv().Add("x", NewScheme(nil, TypeVariable(1)))

		scheme := Generalize(env, NewFnType([]Type{TypeVariable(0)}, TypeVariable(1)))
		assert.Equal(t, []TypeVariable{0}, scheme.TypeVars(),
			"t1 is free in the environment and must stay free")
	})

	t.Run("nil env quantifies everything", func(t *testing.T) {
		scheme := Generalize(nil, NewFnType([]Type{TypeVariable(3)}, TypeVariable(5)))
		assert.Equal(t, []TypeVariable{3, 5}, scheme.TypeVars())
	})

	t.Run("monomorphic type yields empty quantifier set", func(t *testing.T) {
		scheme := Generalize(NewEnv(), NewFnType([]Type{number}, boolT))
		_, mono := scheme.Type()
		assert.True(t, mono)
	})
}

func TestInstantiate(t *testing.T) {
	fresh := NewFresher(100)

	t.Run("monomorphic scheme returns body unchanged", func(t *testing.T) {
		body := NewFnType([]Type{number}, boolT)
		assert.True(t, Instantiate(fresh, NewScheme(nil, body)).Eq(body))
	})

	t.Run("consistent replacement within one instantiation", func(t *testing.T) {
		scheme := NewScheme([]TypeVariable{0}, NewFnType([]Type{TypeVariable(0)}, TypeVariable(0)))

		fn := Instantiate(fresh, scheme).(*FunctionType)
		assert.True(t, fn.Params()[0].Eq(fn.Ret()),
			"the same source variable must map to the same fresh variable")
		assert.False(t, fn.Ret().Eq(TypeVariable(0)), "the fresh variable must be new")
	})

	t.Run("disjoint across instantiations", func(t *testing.T) {
		scheme := NewScheme([]TypeVariable{0}, NewFnType([]Type{TypeVariable(0)}, TypeVariable(0)))

		first := Instantiate(fresh, scheme).(*FunctionType)
		second := Instantiate(fresh, scheme).(*FunctionType)
		assert.False(t, first.Ret().Eq(second.Ret()),
			"two instantiations must not share fresh variables")
	})
}

func TestGeneralizeInstantiateRoundTrip(t *testing.T) {
	env := NewEnv()
	fresh := NewFresher(50)

	types := []Type{
		number,
		NewFnType([]Type{number, number}, boolT),
		NewFnType([]Type{TypeVariable(0)}, TypeVariable(0)),
	}

	for _, typ := range types {
		inst := Instantiate(fresh, Generalize(env, typ))
		subs, err := Unify(inst, typ)
		require.NoError(t, err, "instantiate(generalize(env, %s)) must unify with the original", typ)

		if typ.FreeTypeVar().Size() == 0 {
			assert.Empty(t, subs, "ground types round-trip via the empty substitution")
		}
	}
}

func TestFresherIsPerRun(t *testing.T) {
	a := NewFresher(0)
	b := NewFresher(0)

	assert.Equal(t, a.Fresh(), b.Fresh(), "seeded freshers are deterministic")
	assert.Equal(t, TypeVariable(1), a.Fresh())
	assert.Equal(t, TypeVariable(1), b.Fresh(), "runs own independent counters")
}
