package sfl

import (
	"context"

	"github.com/sfl-lang/sfl/pkg/hm"
)

// ArgDecl is a function parameter declaration. A nil Type annotation stands
// for a fresh type variable.
type ArgDecl struct {
	Named string
	Type  TypeNode
	Loc   *SourceLocation
}

// FunDecl represents a function definition with annotated parameters and
// return type:
//
//	def name(p1: T1, ..., pn: Tn): Tr { body }
type FunDecl struct {
	InferredTypeHolder
	Named string
	Args  []ArgDecl
	Ret   TypeNode
	Fbody *Block
	Loc   *SourceLocation
}

var _ Node = (*FunDecl)(nil)
var _ Declarer = (*FunDecl)(nil)

func (f *FunDecl) DeclaredName() string { return f.Named }

func (f *FunDecl) Body() hm.Expression { return f.Fbody }

func (f *FunDecl) GetSourceLocation() *SourceLocation { return f.Loc }

func (f *FunDecl) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	params := make([]hm.Type, len(f.Args))
	for i, arg := range f.Args {
		pt, err := resolveAnnotation(arg.Type, env, fresh)
		if err != nil {
			return nil, nil, err
		}
		params[i] = pt
	}
	retType, err := resolveAnnotation(f.Ret, env, fresh)
	if err != nil {
		return nil, nil, err
	}

	fnType := hm.NewFnType(params, retType)

	// Bind the function's own name monomorphically before checking the body.
	// Self-recursive calls must see the unquantified type; generalizing
	// before the body passes would be unsound.
	bodyEnv := env.Add(f.Named, hm.NewScheme(nil, fnType))
	for i, arg := range f.Args {
		bodyEnv = bodyEnv.Add(arg.Named, hm.NewScheme(nil, params[i]))
	}

	subs, bodyType, err := f.Fbody.Infer(ctx, bodyEnv, fresh)
	if err != nil {
		return nil, nil, err
	}

	declared := subs.Apply(retType)
	inferred := subs.Apply(bodyType)
	retSubs, err := hm.Unify(inferred, declared)
	if err != nil {
		var errorNode Node = f.Fbody
		if len(f.Fbody.Forms) > 0 {
			errorNode = f.Fbody.Forms[len(f.Fbody.Forms)-1]
		}
		return nil, nil, NewInferError(ReturnTypeMismatchError{
			Declared: declared,
			Inferred: inferred,
		}, errorNode)
	}
	subs = retSubs.Compose(subs)

	final := subs.Apply(fnType)
	f.SetInferredType(final)
	return subs, final, nil
}

// InferBinding checks the definition and rebinds its name in the outer
// environment, now generalized. With concrete annotations no variables
// ordinarily remain free, but unannotated positions leave some and this
// keeps the rule uniform.
func (f *FunDecl) InferBinding(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Env, error) {
	subs, fnType, err := f.Infer(ctx, env, fresh)
	if err != nil {
		return nil, nil, err
	}

	outer := env.Apply(subs).(hm.Env)
	return subs, outer.Add(f.Named, hm.Generalize(outer, fnType)), nil
}

func (f *FunDecl) Walk(fn func(Node) bool) {
	if !fn(f) {
		return
	}
	f.Fbody.Walk(fn)
}
