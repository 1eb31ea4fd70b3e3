package sfl

import (
	"context"

	"github.com/sfl-lang/sfl/pkg/hm"
)

// Int represents an integer literal
type Int struct {
	InferredTypeHolder
	Value int64
	Loc   *SourceLocation
}

var _ Node = (*Int)(nil)

func (i *Int) Body() hm.Expression { return i }

func (i *Int) GetSourceLocation() *SourceLocation { return i.Loc }

func (i *Int) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	i.SetInferredType(NumberType)
	return hm.NewSubs(), NumberType, nil
}

func (i *Int) Walk(fn func(Node) bool) {
	fn(i)
}

// Boolean represents a boolean literal
type Boolean struct {
	InferredTypeHolder
	Value bool
	Loc   *SourceLocation
}

var _ Node = (*Boolean)(nil)

func (b *Boolean) Body() hm.Expression { return b }

func (b *Boolean) GetSourceLocation() *SourceLocation { return b.Loc }

func (b *Boolean) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	b.SetInferredType(BooleanType)
	return hm.NewSubs(), BooleanType, nil
}

func (b *Boolean) Walk(fn func(Node) bool) {
	fn(b)
}
