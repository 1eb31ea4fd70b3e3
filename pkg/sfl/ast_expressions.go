package sfl

import (
	"context"

	"github.com/sfl-lang/sfl/pkg/hm"
)

// Symbol represents an identifier reference.
type Symbol struct {
	InferredTypeHolder
	Named string
	Loc   *SourceLocation
}

var _ Node = (*Symbol)(nil)

func (s *Symbol) Name() string { return s.Named }

func (s *Symbol) Body() hm.Expression { return s }

func (s *Symbol) GetSourceLocation() *SourceLocation { return s.Loc }

func (s *Symbol) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	scheme, found := env.SchemeOf(s.Named)
	if !found {
		return nil, nil, NewInferError(UnboundIdentifierError{Name: s.Named}, s)
	}

	t := hm.Instantiate(fresh, scheme)
	s.SetInferredType(t)
	return hm.NewSubs(), t, nil
}

func (s *Symbol) Walk(fn func(Node) bool) {
	fn(s)
}

// FunCall represents a function call with positional arguments.
type FunCall struct {
	InferredTypeHolder
	Fun  Node
	Args []Node
	Loc  *SourceLocation
}

var _ Node = (*FunCall)(nil)

func (c *FunCall) Body() hm.Expression { return c.Fun }

func (c *FunCall) GetSourceLocation() *SourceLocation { return c.Loc }

func (c *FunCall) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	subs, funType, err := c.Fun.Infer(ctx, env, fresh)
	if err != nil {
		return nil, nil, err
	}

	// Unify the callee against a fresh function shape. This pins the arity
	// and lets argument constraints flow both ways.
	params := make([]hm.Type, len(c.Args))
	for i := range params {
		params[i] = fresh.Fresh()
	}
	retVar := fresh.Fresh()

	shapeSubs, err := hm.Unify(subs.Apply(funType), hm.NewFnType(params, retVar))
	if err != nil {
		return nil, nil, WrapInferError(err, c)
	}
	subs = shapeSubs.Compose(subs)

	for i, arg := range c.Args {
		argEnv := env.Apply(subs).(hm.Env)
		argSubs, argType, err := arg.Infer(ctx, argEnv, fresh)
		if err != nil {
			return nil, nil, err
		}
		subs = argSubs.Compose(subs)

		unified, err := hm.Unify(subs.Apply(argType), subs.Apply(params[i]))
		if err != nil {
			return nil, nil, WrapInferError(err, arg)
		}
		subs = unified.Compose(subs)
	}

	result := subs.Apply(retVar)
	c.SetInferredType(result)
	return subs, result, nil
}

func (c *FunCall) Walk(fn func(Node) bool) {
	if !fn(c) {
		return
	}
	c.Fun.Walk(fn)
	for _, arg := range c.Args {
		arg.Walk(fn)
	}
}

// Conditional represents an if/else expression. Both branches are blocks;
// Else may be nil, in which case the conditional has unit type.
type Conditional struct {
	InferredTypeHolder
	Condition Node
	Then      *Block
	Else      *Block
	Loc       *SourceLocation
}

var _ Node = (*Conditional)(nil)

func (c *Conditional) Body() hm.Expression { return c }

func (c *Conditional) GetSourceLocation() *SourceLocation { return c.Loc }

func (c *Conditional) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	subs, condType, err := c.Condition.Infer(ctx, env, fresh)
	if err != nil {
		return nil, nil, err
	}

	condSubs, err := hm.Unify(subs.Apply(condType), BooleanType)
	if err != nil {
		return nil, nil, WrapInferError(err, c.Condition)
	}
	subs = condSubs.Compose(subs)

	thenEnv := env.Apply(subs).(hm.Env)
	thenSubs, thenType, err := c.Then.Infer(ctx, thenEnv, fresh)
	if err != nil {
		return nil, nil, err
	}
	subs = thenSubs.Compose(subs)

	if c.Else == nil {
		c.SetInferredType(UnitType)
		return subs, UnitType, nil
	}

	elseEnv := env.Apply(subs).(hm.Env)
	elseSubs, elseType, err := c.Else.Infer(ctx, elseEnv, fresh)
	if err != nil {
		return nil, nil, err
	}
	subs = elseSubs.Compose(subs)

	branchSubs, err := hm.Unify(subs.Apply(thenType), subs.Apply(elseType))
	if err != nil {
		// Report at the else branch's value.
		var errorNode Node = c.Else
		if len(c.Else.Forms) > 0 {
			errorNode = c.Else.Forms[len(c.Else.Forms)-1]
		}
		return nil, nil, NewInferError(BranchMismatchError{
			Then: subs.Apply(thenType),
			Else: subs.Apply(elseType),
		}, errorNode)
	}
	subs = branchSubs.Compose(subs)

	result := subs.Apply(thenType)
	c.SetInferredType(result)
	return subs, result, nil
}

func (c *Conditional) Walk(fn func(Node) bool) {
	if !fn(c) {
		return
	}
	c.Condition.Walk(fn)
	c.Then.Walk(fn)
	if c.Else != nil {
		c.Else.Walk(fn)
	}
}

// Let represents a let binding: let name = expr. Its value is generalized
// against the environment in effect before the binding, making aliases of
// polymorphic functions reusable at multiple call sites.
type Let struct {
	InferredTypeHolder
	Named string
	Value Node
	Loc   *SourceLocation
}

var _ Node = (*Let)(nil)
var _ Declarer = (*Let)(nil)

func (l *Let) DeclaredName() string { return l.Named }

func (l *Let) Body() hm.Expression { return l.Value }

func (l *Let) GetSourceLocation() *SourceLocation { return l.Loc }

func (l *Let) InferBinding(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Env, error) {
	subs, valueType, err := l.Value.Infer(ctx, env, fresh)
	if err != nil {
		return nil, nil, err
	}

	// Generalize against the substituted environment as it stood prior to
	// this binding.
	substituted := env.Apply(subs).(hm.Env)
	t := subs.Apply(valueType)
	l.SetInferredType(t)
	return subs, substituted.Add(l.Named, hm.Generalize(substituted, t)), nil
}

func (l *Let) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	subs, _, err := l.InferBinding(ctx, env, fresh)
	if err != nil {
		return nil, nil, err
	}
	// A let is a statement; it carries no value of its own.
	return subs, UnitType, nil
}

func (l *Let) Walk(fn func(Node) bool) {
	if !fn(l) {
		return
	}
	l.Value.Walk(fn)
}
