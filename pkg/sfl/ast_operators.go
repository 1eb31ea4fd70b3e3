package sfl

import (
	"context"
	"fmt"

	"github.com/sfl-lang/sfl/pkg/hm"
)

// OpSignature is the fixed monomorphic signature of a binary operator: both
// operands unify against Operand and the expression has type Result.
type OpSignature struct {
	Operand hm.Type
	Result  hm.Type
}

var binaryOps = map[string]OpSignature{
	"+": {Operand: NumberType, Result: NumberType},
	"-": {Operand: NumberType, Result: NumberType},
	"*": {Operand: NumberType, Result: NumberType},
	"/": {Operand: NumberType, Result: NumberType},

	">":  {Operand: NumberType, Result: BooleanType},
	"<":  {Operand: NumberType, Result: BooleanType},
	">=": {Operand: NumberType, Result: BooleanType},
	"<=": {Operand: NumberType, Result: BooleanType},
	"==": {Operand: NumberType, Result: BooleanType},
	"!=": {Operand: NumberType, Result: BooleanType},
}

// BinaryOp represents an infix arithmetic or comparison expression.
type BinaryOp struct {
	InferredTypeHolder
	Op    string
	Left  Node
	Right Node
	Loc   *SourceLocation
}

var _ Node = (*BinaryOp)(nil)

func (b *BinaryOp) Body() hm.Expression { return b }

func (b *BinaryOp) GetSourceLocation() *SourceLocation { return b.Loc }

func (b *BinaryOp) Infer(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Type, error) {
	sig, known := binaryOps[b.Op]
	if !known {
		return nil, nil, NewInferError(fmt.Errorf("unknown operator %q", b.Op), b)
	}

	subs, leftType, err := b.Left.Infer(ctx, env, fresh)
	if err != nil {
		return nil, nil, err
	}

	rightEnv := env.Apply(subs).(hm.Env)
	rightSubs, rightType, err := b.Right.Infer(ctx, rightEnv, fresh)
	if err != nil {
		return nil, nil, err
	}
	subs = rightSubs.Compose(subs)

	leftUnified, err := hm.Unify(subs.Apply(leftType), sig.Operand)
	if err != nil {
		return nil, nil, WrapInferError(err, b.Left)
	}
	subs = leftUnified.Compose(subs)

	rightUnified, err := hm.Unify(subs.Apply(rightType), sig.Operand)
	if err != nil {
		return nil, nil, WrapInferError(err, b.Right)
	}
	subs = rightUnified.Compose(subs)

	b.SetInferredType(sig.Result)
	return subs, sig.Result, nil
}

func (b *BinaryOp) Walk(fn func(Node) bool) {
	if !fn(b) {
		return
	}
	b.Left.Walk(fn)
	b.Right.Walk(fn)
}
