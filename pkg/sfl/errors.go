package sfl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sfl-lang/sfl/pkg/hm"
)

// SourceLocation represents a location in source code, supplied by the
// external parser.
type SourceLocation struct {
	Filename string
	Line     int
	Column   int
	Length   int // Length of the syntax node that caused the error
}

// SourceLocatable is anything that knows where it came from.
type SourceLocatable interface {
	GetSourceLocation() *SourceLocation
}

// UnboundIdentifierError reports a reference to a name not present in the
// current environment.
type UnboundIdentifierError struct {
	Name string
}

func (e UnboundIdentifierError) Error() string {
	return fmt.Sprintf("'%s' is not defined here", e.Name)
}

// BranchMismatchError reports if/else branches that disagree on their type.
type BranchMismatchError struct {
	Then hm.Type
	Else hm.Type
}

func (e BranchMismatchError) Error() string {
	return fmt.Sprintf("if branches disagree: then is %s, else is %s", e.Then, e.Else)
}

// ReturnTypeMismatchError reports a function body whose type disagrees with
// the declared return type.
type ReturnTypeMismatchError struct {
	Declared hm.Type
	Inferred hm.Type
}

func (e ReturnTypeMismatchError) Error() string {
	return fmt.Sprintf("return type mismatch: declared %s, inferred %s", e.Declared, e.Inferred)
}

// UnresolvedTypeError reports a type annotation naming an unknown
// constructor.
type UnresolvedTypeError struct {
	Name string
}

func (e UnresolvedTypeError) Error() string {
	return fmt.Sprintf("unresolved type: %s", e.Name)
}

// InferError represents a type inference error with source location
// information.
type InferError struct {
	Inner    error
	Location *SourceLocation
	Node     any    // the offending AST node, for the external reporter
	Hint     string // optional fix hint, rendered below the indicator
}

func (e *InferError) Error() string {
	return e.Inner.Error()
}

func (e *InferError) Unwrap() error {
	return e.Inner
}

// NewInferError creates a new InferError with source location from an AST
// node.
func NewInferError(inner error, node SourceLocatable) *InferError {
	var location *SourceLocation
	if node != nil {
		location = node.GetSourceLocation()
	}
	return &InferError{
		Inner:    inner,
		Location: location,
		Node:     node,
	}
}

// WrapInferError wraps an error with source location information unless it
// already carries one.
func WrapInferError(err error, node SourceLocatable) error {
	var inferErr *InferError
	if errors.As(err, &inferErr) {
		return inferErr
	}
	return NewInferError(err, node)
}

// SourceError renders an error against the source text it occurred in, with
// the offending line underlined. The external reporter pairs an InferError
// with the source it has on hand to produce one of these.
type SourceError struct {
	Inner    error
	Location *SourceLocation
	Source   string // the source code of the file
	Hint     string
}

// NewSourceError creates a new SourceError.
func NewSourceError(inner error, location *SourceLocation, source string) *SourceError {
	hint := ""
	var inferErr *InferError
	if errors.As(inner, &inferErr) {
		hint = inferErr.Hint
	}
	return &SourceError{
		Inner:    inner,
		Location: location,
		Source:   source,
		Hint:     hint,
	}
}

func (e *SourceError) Unwrap() error {
	return e.Inner
}

func (e *SourceError) Error() string {
	if e.Location == nil {
		return e.Inner.Error()
	}
	return e.FormatWithHighlighting()
}

// FormatWithHighlighting returns a formatted error with the offending line
// underlined and surrounding context shown.
func (e *SourceError) FormatWithHighlighting() string {
	if e.Source == "" {
		return e.Inner.Error()
	}

	lines := strings.Split(e.Source, "\n")
	if e.Location.Line < 1 || e.Location.Line > len(lines) {
		return e.Inner.Error()
	}

	const (
		red   = "\033[31m"
		blue  = "\033[34m"
		bold  = "\033[1m"
		reset = "\033[0m"
		dim   = "\033[2m"
	)

	var result strings.Builder

	result.WriteString(fmt.Sprintf("%s%serror:%s %s\n", bold, red, reset, e.Inner))
	result.WriteString(fmt.Sprintf("  %s%s--> %s:%d:%d%s\n", dim, blue, e.Location.Filename, e.Location.Line, e.Location.Column, reset))
	result.WriteString(fmt.Sprintf(" %s%s |%s\n", dim, padLeft("", 3), reset))

	startLine := max(1, e.Location.Line-2)
	endLine := min(len(lines), e.Location.Line+2)

	for i := startLine; i <= endLine; i++ {
		paddedLineStr := padLeft(fmt.Sprintf("%d", i), 3)
		if i == e.Location.Line {
			result.WriteString(fmt.Sprintf(" %s%s%s%s | %s%s\n",
				dim, blue, bold, paddedLineStr, reset, lines[i-1]))

			padding := strings.Repeat(" ", 1+3+3+e.Location.Column-1)
			underline := strings.Repeat("^", max(1, e.Location.Length))
			result.WriteString(fmt.Sprintf("%s%s%s%s\n",
				padding, red, underline, reset))
		} else {
			result.WriteString(fmt.Sprintf(" %s%s | %s%s\n",
				dim, paddedLineStr, lines[i-1], reset))
		}
	}

	result.WriteString(fmt.Sprintf(" %s%s |%s\n", dim, padLeft("", 3), reset))

	if e.Hint != "" {
		result.WriteString(fmt.Sprintf("  %s%shint:%s %s\n", bold, blue, reset, e.Hint))
	}

	return result.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
