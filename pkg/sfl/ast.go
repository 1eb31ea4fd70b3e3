package sfl

import (
	"context"

	"github.com/sfl-lang/sfl/pkg/hm"
)

// Node is an AST node produced by the external parser. Nodes are read-only
// to the inference engine except for the inferred-type annotation, which is
// recorded for downstream tooling (evaluator, IDE integration).
type Node interface {
	hm.Expression
	hm.Inferer
	GetSourceLocation() *SourceLocation

	// SetInferredType stores the inferred type for this node
	SetInferredType(hm.Type)

	// GetInferredType retrieves the inferred type for this node
	GetInferredType() hm.Type

	// Walk recursively visits this node and all its children, calling fn for
	// each node. The callback returns true to continue walking into children,
	// false to skip children.
	Walk(fn func(Node) bool)
}

// Declarer is a form that introduces a binding visible to the forms that
// follow it in the enclosing block or program.
type Declarer interface {
	Node

	// DeclaredName returns the name this form binds.
	DeclaredName() string

	// InferBinding infers the bound value and returns the environment
	// extended with its scheme.
	InferBinding(ctx context.Context, env hm.Env, fresh hm.Fresher) (hm.Subs, hm.Env, error)
}

// InferredTypeHolder is embedded in AST nodes to store inferred types
type InferredTypeHolder struct {
	inferredType hm.Type
}

func (h *InferredTypeHolder) SetInferredType(t hm.Type) {
	h.inferredType = t
}

func (h *InferredTypeHolder) GetInferredType() hm.Type {
	return h.inferredType
}
