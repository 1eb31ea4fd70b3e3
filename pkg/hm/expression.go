package hm

import "context"

// Expression is basically an AST node.
type Expression interface {
	Body() Expression
}

// Namer is anything that knows its own name.
type Namer interface {
	Name() string
}

// Inferer is an Expression that can infer its own Type given an Env,
// returning the substitution accumulated while doing so. Callers apply the
// substitution to the environment before inferring sibling expressions.
type Inferer interface {
	Infer(context.Context, Env, Fresher) (Subs, Type, error)
}
