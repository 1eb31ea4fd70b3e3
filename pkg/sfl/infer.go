package sfl

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sfl-lang/sfl/pkg/hm"
)

// Infer type checks a single expression against an environment and returns
// its principal type as a scheme. Each call owns its own fresh-variable
// supply, so independent calls cannot interfere.
func Infer(ctx context.Context, env hm.Env, node Node) (*hm.Scheme, error) {
	if node == nil {
		return nil, errors.Errorf("cannot infer a nil expression")
	}
	if env == nil {
		env = hm.NewEnv()
	}

	_, t, err := node.Infer(ctx, env, hm.NewFresher(0))
	if err != nil {
		return nil, err
	}
	return hm.Generalize(nil, t), nil
}

// InferProgram type checks top-level forms in file order, sharing one
// environment across them. Inference stops at the first error within a form
// and continues with subsequent forms, so one invocation surfaces every
// independently failing definition. The returned environment holds the
// schemes of every successfully checked declaration.
func InferProgram(ctx context.Context, env hm.Env, forms []Node) (hm.Env, error) {
	if env == nil {
		env = hm.NewEnv()
	}

	fresh := hm.NewFresher(0)
	inferErrs := &InferenceErrors{}

	for _, form := range forms {
		if decl, ok := form.(Declarer); ok {
			_, declEnv, err := decl.InferBinding(ctx, env, fresh)
			if err != nil {
				inferErrs.Add(errors.Wrapf(err, "definition %q", decl.DeclaredName()))
				// Bind the name to a fresh variable so later forms still
				// resolve it instead of piling on unbound-identifier noise.
				env = env.Add(decl.DeclaredName(), hm.NewScheme(nil, fresh.Fresh()))
				continue
			}
			env = declEnv
			continue
		}

		if _, _, err := form.Infer(ctx, env, fresh); err != nil {
			inferErrs.Add(err)
		}
	}

	if inferErrs.HasErrors() {
		return env, inferErrs
	}
	return env, nil
}

// InferenceErrors accumulates multiple errors during type inference.
type InferenceErrors struct {
	Errors []error
}

func (ie *InferenceErrors) Add(err error) {
	if err != nil {
		ie.Errors = append(ie.Errors, err)
	}
}

func (ie *InferenceErrors) Unwrap() []error {
	return ie.Errors
}

func (ie *InferenceErrors) HasErrors() bool {
	return len(ie.Errors) > 0
}

func (ie *InferenceErrors) Error() string {
	if len(ie.Errors) == 0 {
		return "no errors"
	}
	if len(ie.Errors) == 1 {
		return ie.Errors[0].Error()
	}
	msgs := make([]string, len(ie.Errors))
	for i, err := range ie.Errors {
		msgs[i] = fmt.Sprintf("Error %d:\n%s", i+1, err.Error())
	}
	return fmt.Sprintf("%d inference errors:\n\n%s", len(ie.Errors), strings.Join(msgs, "\n\n"))
}
