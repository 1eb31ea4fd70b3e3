package sfl

import (
	"context"

	"github.com/sfl-lang/sfl/pkg/hm"
)

// Block represents an ordered sequence of expressions and declarations. Its
// value is the last expression's; a block ending in a declaration (or an
// empty block) has unit type. Declarations are visible to the forms that
// follow them, and only within the block.
type Block struct {
	InferredTypeHolder
	Forms []Node
	Loc   *SourceLocation
}

var _ Node = (*Block)(nil)

func (b *Block) Body() hm.Expression { return b }

func (b *Block) GetSourceLocation() *SourceLocation { return b.Loc }

func (b *Block) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	subs := hm.NewSubs()
	scope := env
	var result hm.Type = UnitType

	for _, form := range b.Forms {
		if decl, ok := form.(Declarer); ok {
			declSubs, declScope, err := decl.InferBinding(ctx, scope, fresh)
			if err != nil {
				return nil, nil, err
			}
			subs = declSubs.Compose(subs)
			scope = declScope
			result = UnitType
			continue
		}

		formSubs, formType, err := form.Infer(ctx, scope, fresh)
		if err != nil {
			return nil, nil, err
		}
		subs = formSubs.Compose(subs)
		scope = scope.Apply(formSubs).(hm.Env)
		result = formType
	}

	result = subs.Apply(result)
	b.SetInferredType(result)
	return subs, result, nil
}

func (b *Block) Walk(fn func(Node) bool) {
	if !fn(b) {
		return
	}
	for _, form := range b.Forms {
		form.Walk(fn)
	}
}
